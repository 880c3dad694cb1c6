package huffman

import (
	"bytes"
	"testing"

	"github.com/kelbwah/parahuff/internal/concurrent"
)

func TestEncodeParallelSingleSymbol(t *testing.T) {
	pool := concurrent.NewPool(2)
	defer pool.Close()

	data := bytes.Repeat([]byte{'a'}, 8)
	codebook := map[byte]string{'a': "0"}
	bits, index := encodeParallel(pool, codebook, data)

	if string(bits) != "00000000" {
		t.Fatalf("bits = %q, want %q", bits, "00000000")
	}
	if len(index) != 0 {
		t.Fatalf("index = %v, want empty (data shorter than one block)", index)
	}
}

func TestPadBitstreamAlwaysInRange(t *testing.T) {
	for length := 0; length < 20; length++ {
		bits := bytes.Repeat([]byte{'1'}, length)
		padded, pad := padBitstream(bits)
		if pad < 1 || pad > 8 {
			t.Fatalf("length %d: pad = %d, want in [1,8]", length, pad)
		}
		if len(padded)%8 != 0 {
			t.Fatalf("length %d: padded length %d not a multiple of 8", length, len(padded))
		}
		if len(padded) != length+int(pad) {
			t.Fatalf("length %d: padded length = %d, want %d", length, len(padded), length+int(pad))
		}
	}
}

func TestPackBitsMSBFirst(t *testing.T) {
	pool := concurrent.NewPool(1)
	defer pool.Close()

	bits := []byte("0000000011111111")
	packed := packBits(pool, bits)
	if len(packed) != 2 || packed[0] != 0x00 || packed[1] != 0xFF {
		t.Fatalf("packed = %v, want [0 255]", packed)
	}
}

func TestPackBitsParallelMatchesSequentialChunking(t *testing.T) {
	bits := bytes.Repeat([]byte("01101001"), 3000) // 24000 bits, several packBlockBits chunks
	pool1 := concurrent.NewPool(1)
	seq := packBits(pool1, bits)
	pool1.Close()

	pool4 := concurrent.NewPool(4)
	par := packBits(pool4, bits)
	pool4.Close()

	if !bytes.Equal(seq, par) {
		t.Fatal("packing result differs across thread counts")
	}
}
