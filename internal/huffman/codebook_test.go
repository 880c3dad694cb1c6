package huffman

import "testing"

func isPrefixFree(codebook map[byte]string) bool {
	codes := make([]string, 0, len(codebook))
	for _, c := range codebook {
		codes = append(codes, c)
	}
	for i := range codes {
		for j := range codes {
			if i == j {
				continue
			}
			a, b := codes[i], codes[j]
			if len(a) <= len(b) && b[:len(a)] == a {
				return false
			}
		}
	}
	return true
}

func TestBuildCodebookEmpty(t *testing.T) {
	cb := buildCodebook(nil)
	if len(cb) != 0 {
		t.Fatalf("expected empty codebook, got %v", cb)
	}
}

func TestBuildCodebookSingleSymbol(t *testing.T) {
	root := buildTree(histOf(map[byte]uint64{'a': 8}))
	cb := buildCodebook(root)
	if cb['a'] != "0" {
		t.Fatalf("expected degenerate code \"0\", got %q", cb['a'])
	}
}

func TestBuildCodebookPrefixFree(t *testing.T) {
	root := buildTree(histOf(map[byte]uint64{'a': 2048, 'b': 1024, 'c': 1024}))
	cb := buildCodebook(root)
	if !isPrefixFree(cb) {
		t.Fatalf("codebook is not prefix-free: %v", cb)
	}
	if len(cb['a']) != 1 {
		t.Fatalf("expected 'a' to have a 1-bit code, got %q", cb['a'])
	}
	if len(cb['b']) != 2 || len(cb['c']) != 2 {
		t.Fatalf("expected 'b' and 'c' to have 2-bit codes, got %q %q", cb['b'], cb['c'])
	}
}

func TestInvertCodebookBijective(t *testing.T) {
	root := buildTree(histOf(map[byte]uint64{'a': 5, 'b': 3, 'c': 2, 'd': 1}))
	cb := buildCodebook(root)
	inv := invertCodebook(cb)
	if len(inv) != len(cb) {
		t.Fatalf("inverse has %d entries, codebook has %d", len(inv), len(cb))
	}
	for symbol, code := range cb {
		if inv[code] != symbol {
			t.Fatalf("inverse[%q] = %v, want %v", code, inv[code], symbol)
		}
	}
}
