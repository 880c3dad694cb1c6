package huffman

import (
	"bytes"
	"testing"

	"github.com/kelbwah/parahuff/internal/concurrent"
)

func TestUnpackBitsRoundTripsPackBits(t *testing.T) {
	pool := concurrent.NewPool(3)
	defer pool.Close()

	original := bytes.Repeat([]byte("0110100101011111"), 400) // multiple of 8; one full block plus a tail in each stage
	packed := packBits(pool, original)
	unpacked := unpackBits(pool, packed)

	if !bytes.Equal(unpacked, original) {
		t.Fatalf("unpack(pack(x)) != x")
	}
}

func TestSplitBlocksDetectsOverrun(t *testing.T) {
	bits := []byte("00001111")
	_, _, err := splitBlocks(bits, []uint32{100})
	if err == nil {
		t.Fatal("expected error for index entry past end of bits")
	}
}

func TestSplitBlocksFinalIsRemainder(t *testing.T) {
	bits := []byte("000011110000")
	segments, final, err := splitBlocks(bits, []uint32{4, 4})
	if err != nil {
		t.Fatal(err)
	}
	if string(segments[0]) != "0000" || string(segments[1]) != "1111" {
		t.Fatalf("unexpected segments: %q %q", segments[0], segments[1])
	}
	if string(final) != "0000" {
		t.Fatalf("final = %q, want %q", final, "0000")
	}
}

func TestDecodeBlockDetectsUnmatchedResidue(t *testing.T) {
	decodingTable := map[string]byte{"0": 'a', "10": 'b'}
	_, err := decodeBlock(decodingTable, []byte("1"))
	if err == nil {
		t.Fatal("expected error for unmatched trailing bits")
	}
}

func TestDecodeBlockEmptySegment(t *testing.T) {
	out, err := decodeBlock(map[string]byte{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty output, got %v", out)
	}
}
