package huffman

import (
	"github.com/kelbwah/parahuff/internal/bufpool"
	"github.com/kelbwah/parahuff/internal/concurrent"
)

// unpackBits converts payload into its ASCII '0'/'1' bitstream, MSB-first
// within each byte, in the same order packBits used to produce it.
// Conversion is parallelised over blockSize-byte blocks, with the final
// partial block handled on the calling goroutine.
func unpackBits(pool *concurrent.Pool, payload []byte) []byte {
	numBlocks := len(payload) / blockSize
	futures := make([]*concurrent.Future[[]byte], numBlocks)
	for i := 0; i < numBlocks; i++ {
		block := payload[i*blockSize : (i+1)*blockSize]
		futures[i] = concurrent.Submit(pool, func() []byte { return unpackChunk(block) })
	}

	tail := unpackChunk(payload[numBlocks*blockSize:])

	out := make([]byte, 0, len(payload)*8)
	for _, f := range futures {
		out = append(out, f.Wait()...)
	}
	out = append(out, tail...)
	return out
}

func unpackChunk(payload []byte) []byte {
	out := bufpool.Get(len(payload) * 8)[:0]
	for _, b := range payload {
		for j := 0; j < 8; j++ {
			if (b>>(7-j))&1 == 1 {
				out = append(out, '1')
			} else {
				out = append(out, '0')
			}
		}
	}
	unpacked := make([]byte, len(out))
	copy(unpacked, out)
	bufpool.Put(out)
	return unpacked
}

// splitBlocks consumes index[i] bits for each leading block from bits and
// returns those segments plus whatever remains as the final, implicit
// block. It raises ErrCorrupt if an index entry runs past the end of
// bits.
func splitBlocks(bits []byte, index []uint32) (segments [][]byte, final []byte, err error) {
	segments = make([][]byte, len(index))
	pos := 0
	for i, length := range index {
		end := pos + int(length)
		if end > len(bits) {
			return nil, nil, corruptf("block %d: index length %d runs past end of payload", i, length)
		}
		segments[i] = bits[pos:end]
		pos = end
	}
	return segments, bits[pos:], nil
}

// decodeParallel decodes each block-offset segment independently (in
// parallel for the leading blocks, on the caller for the final one) by
// running the longest-match automaton against decodingTable, and
// concatenates the results in submission order.
func decodeParallel(pool *concurrent.Pool, decodingTable map[string]byte, segments [][]byte, final []byte) ([]byte, error) {
	futures := make([]*concurrent.Future[decodeResult], len(segments))
	for i, seg := range segments {
		i, seg := i, seg
		futures[i] = concurrent.Submit(pool, func() decodeResult {
			out, err := decodeBlock(decodingTable, seg)
			return decodeResult{out: out, err: err, index: i}
		})
	}

	finalOut, err := decodeBlock(decodingTable, final)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(final))
	for _, f := range futures {
		r := f.Wait()
		if r.err != nil {
			return nil, r.err
		}
		out = append(out, r.out...)
	}
	out = append(out, finalOut...)
	return out, nil
}

type decodeResult struct {
	out   []byte
	err   error
	index int
}

// decodeBlock runs the prefix-matching automaton over a single bit
// segment: accumulate bits into cur, and whenever cur is a key of
// decodingTable, emit the symbol and reset. A nonempty cur at the end of
// the segment means a codeword was left unmatched, which can only happen
// if the container is corrupt (the encoder never splits a codeword across
// a block boundary).
func decodeBlock(decodingTable map[string]byte, segment []byte) ([]byte, error) {
	out := bufpool.Get(len(segment))[:0]
	cur := make([]byte, 0, 8)
	for _, bit := range segment {
		cur = append(cur, bit)
		if symbol, ok := decodingTable[string(cur)]; ok {
			out = append(out, symbol)
			cur = cur[:0]
		}
	}
	if len(cur) != 0 {
		bufpool.Put(out)
		return nil, corruptf("block ends with %d unmatched bits", len(cur))
	}
	decoded := make([]byte, len(out))
	copy(decoded, out)
	bufpool.Put(out)
	return decoded, nil
}
