package huffman

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when numThreads < 1.
var ErrInvalidArgument = errors.New("huffman: invalid argument")

// ErrCorrupt is returned when a container fails to parse, or is
// internally inconsistent in a way that prevents decoding: padding
// outside [1,8], an index bit-length that runs past the remaining
// payload, a block that ends with unmatched bits, or an unknown code
// prefix that exhausts a segment.
var ErrCorrupt = errors.New("huffman: container corrupt")

// corruptf wraps ErrCorrupt with a specific reason, still matchable via
// errors.Is(err, ErrCorrupt).
func corruptf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCorrupt, fmt.Sprintf(format, args...))
}

// ioError wraps an I/O failure with the offending path, matchable via
// errors.Is against the underlying cause (e.g. os.ErrNotExist).
func ioError(path string, err error) error {
	return fmt.Errorf("%s: %w", path, err)
}
