// Command huffmin is a gzip-style command line front end for the
// parallel Huffman codec: it selects input/output paths and the worker
// count, the concerns spec.md treats as external to the core codec.
package main

import (
	"github.com/kelbwah/parahuff/internal/huffman"

	"rsc.io/getopt"

	"golang.org/x/term"

	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
)

var (
	decompress = flag.Bool("decompress", false, "decompress the input instead of compressing it")
	keep       = flag.Bool("keep", false, "keep (don't delete) the input file")
	toStdout   = flag.Bool("stdout", false, "write to stdout; implies -k")
	force      = flag.Bool("force", false, "overwrite an existing output file")
	threads    = flag.Int("threads", defaultThreads(), "number of worker goroutines to use")

	inPath  string
	inFile  *os.File
	outPath string
)

const extension = ".huff"

func defaultThreads() int {
	if n := runtime.GOMAXPROCS(0) - 1; n >= 1 {
		return n
	}
	return 1
}

func run() int {
	inFile.Close()

	tmpOut := outPath + ".tmp"
	var err error
	if *decompress {
		err = huffman.Decompress(inPath, tmpOut, *threads)
	} else {
		err = huffman.Compress(inPath, tmpOut, *threads)
	}
	if err != nil {
		os.Remove(tmpOut)
		fmt.Fprintf(os.Stderr, "%s: %v\n", inPath, err)
		switch {
		case errors.Is(err, huffman.ErrInvalidArgument):
			return 2
		case errors.Is(err, huffman.ErrCorrupt):
			return 3
		default:
			return 1
		}
	}

	if outPath == "-" {
		data, readErr := os.ReadFile(tmpOut)
		os.Remove(tmpOut)
		if readErr != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", outPath, readErr)
			return 1
		}
		if _, err := os.Stdout.Write(data); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", outPath, err)
			return 1
		}
		return 0
	}

	if err := os.Rename(tmpOut, outPath); err != nil {
		os.Remove(tmpOut)
		fmt.Fprintf(os.Stderr, "%s: %v\n", outPath, err)
		return 1
	}

	if !*keep && !*toStdout {
		if err := os.Remove(inPath); err != nil {
			fmt.Fprintf(os.Stderr, "%s: unlink: %v\n", inPath, err)
			return 1
		}
	}

	return 0
}

func do() int {
	if len(flag.Args()) != 1 {
		fmt.Fprintln(os.Stderr, "usage: huffmin [-d] [-t threads] [-k] [-c] [-f] file")
		return 2
	}
	inPath = flag.Args()[0]

	var err error
	if _, statErr := os.Stat(inPath); errors.Is(statErr, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "%s: %v\n", inPath, statErr)
		return 1
	}
	inFile, err = os.Open(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", inPath, err)
		return 1
	}

	if *toStdout {
		outPath = "-"
	} else if *decompress {
		if strings.HasSuffix(inPath, extension) {
			outPath = inPath[:len(inPath)-len(extension)]
		} else {
			outPath = inPath + ".out"
			fmt.Fprintf(os.Stderr, "%s: unknown extension, writing to %s\n", inPath, outPath)
		}
	} else {
		outPath = inPath + extension
	}

	if outPath == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) && !*decompress {
			fmt.Fprintln(os.Stderr, "huffmin: refusing to write compressed data to a terminal")
			return 4
		}
	} else {
		if _, err := os.Stat(outPath); err == nil && !*force {
			fmt.Fprintf(os.Stderr, "%s: already exists\n", outPath)
			return 5
		}
	}

	return run()
}

func main() {
	getopt.Alias("d", "decompress")
	getopt.Alias("k", "keep")
	getopt.Alias("c", "stdout")
	getopt.Alias("f", "force")
	getopt.Alias("t", "threads")

	// Work around https://github.com/rsc/getopt/issues/3
	if err := getopt.CommandLine.Parse(os.Args[1:]); err != nil {
		os.Exit(6)
	}

	if *threads < 1 {
		fmt.Fprintln(os.Stderr, "huffmin: --threads must be at least 1")
		os.Exit(2)
	}

	os.Exit(do())
}
