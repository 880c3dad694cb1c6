package huffman

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// writeContainer serializes codebook, pad, and index as the ASCII header
// described by the container format, followed by the raw payload bytes.
// Codebook entries are written in ascending symbol order so that the same
// codebook always yields the same header; the decoder reconstructs its
// mapping regardless of ordering.
func writeContainer(w io.Writer, codebook map[byte]string, pad uint8, index []uint32, payload []byte) error {
	bw := bufio.NewWriter(w)

	for s := 0; s < 256; s++ {
		symbol := byte(s)
		code, ok := codebook[symbol]
		if !ok {
			continue
		}
		if _, err := bw.WriteString(code); err != nil {
			return err
		}
		if err := bw.WriteByte(' '); err != nil {
			return err
		}
		if _, err := bw.WriteString(strconv.Itoa(int(symbol))); err != nil {
			return err
		}
		if err := bw.WriteByte(' '); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	if _, err := bw.WriteString(strconv.Itoa(int(pad))); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	for _, length := range index {
		if _, err := bw.WriteString(strconv.FormatUint(uint64(length), 10)); err != nil {
			return err
		}
		if err := bw.WriteByte(' '); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	if _, err := bw.Write(payload); err != nil {
		return err
	}
	return bw.Flush()
}

// readContainer parses the ASCII header produced by writeContainer and
// returns the decoding table, padding count, block-offset index, and the
// raw payload (everything after the third newline). It returns
// ErrCorrupt if the header cannot be parsed or padding is out of range.
func readContainer(r io.Reader) (decodingTable map[string]byte, pad uint8, index []uint32, payload []byte, err error) {
	br := bufio.NewReader(r)

	codebookLine, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, 0, nil, nil, corruptf("reading codebook line: %v", err)
	}
	decodingTable, err = parseCodebookLine(codebookLine)
	if err != nil {
		return nil, 0, nil, nil, err
	}

	paddingLine, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, 0, nil, nil, corruptf("reading padding line: %v", err)
	}
	pad, err = parsePaddingLine(paddingLine)
	if err != nil {
		return nil, 0, nil, nil, err
	}

	indexLine, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, 0, nil, nil, corruptf("reading index line: %v", err)
	}
	index, err = parseIndexLine(indexLine)
	if err != nil {
		return nil, 0, nil, nil, err
	}

	payload, err = io.ReadAll(br)
	if err != nil {
		return nil, 0, nil, nil, corruptf("reading payload: %v", err)
	}

	return decodingTable, pad, index, payload, nil
}

func parseCodebookLine(line string) (map[string]byte, error) {
	fields := strings.Fields(line)
	if len(fields)%2 != 0 {
		return nil, corruptf("codebook line has an odd number of fields")
	}
	table := make(map[string]byte, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		code := fields[i]
		n, err := strconv.Atoi(fields[i+1])
		if err != nil || n < 0 || n > 255 {
			return nil, corruptf("codebook entry %q has invalid symbol %q", code, fields[i+1])
		}
		table[code] = byte(n)
	}
	return table, nil
}

func parsePaddingLine(line string) (uint8, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, corruptf("padding line %q is not an integer", line)
	}
	if n < 1 || n > 8 {
		return 0, corruptf("padding %d outside [1,8]", n)
	}
	return uint8(n), nil
}

func parseIndexLine(line string) ([]uint32, error) {
	fields := strings.Fields(line)
	index := make([]uint32, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return nil, corruptf("index entry %q is not a valid bit length", f)
		}
		index = append(index, uint32(n))
	}
	return index, nil
}
