package routes

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/kelbwah/parahuff/internal/huffman"
	"github.com/labstack/echo/v4"
)

func defaultThreads() int {
	if n := runtime.GOMAXPROCS(0) - 1; n >= 1 {
		return n
	}
	return 1
}

func threadsFromRequest(c echo.Context) (int, error) {
	raw := c.FormValue("threads")
	if raw == "" {
		return defaultThreads(), nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "threads must be an integer")
	}
	return n, nil
}

func httpStatusFor(err error) int {
	switch {
	case errors.Is(err, huffman.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, huffman.ErrCorrupt):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func CompressFile(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file required")
	}
	threads, err := threadsFromRequest(c)
	if err != nil {
		return err
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot open uploaded file")
	}
	defer src.Close()

	tempInputPath := filepath.Join(os.TempDir(), file.Filename)
	outFile, err := os.Create(tempInputPath)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create temp file")
	}
	defer os.Remove(tempInputPath)

	if _, err = io.Copy(outFile, src); err != nil {
		outFile.Close()
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to copy file data")
	}
	outFile.Close()

	tempOutputPath := tempInputPath + ".huff"
	defer os.Remove(tempOutputPath)

	if err := huffman.Compress(tempInputPath, tempOutputPath, threads); err != nil {
		return echo.NewHTTPError(httpStatusFor(err), "compression failed: "+err.Error())
	}

	compressedBytes, err := os.ReadFile(tempOutputPath)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to read compressed output")
	}

	c.Response().Header().Set(echo.HeaderContentType, "application/octet-stream")
	c.Response().Header().Set(
		echo.HeaderContentDisposition,
		"attachment; filename=\"compressed_"+file.Filename+".huff\"",
	)

	_, err = c.Response().Write(compressedBytes)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to write response")
	}

	return nil
}

func DecompressFile(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file required")
	}
	threads, err := threadsFromRequest(c)
	if err != nil {
		return err
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot open uploaded file")
	}
	defer src.Close()

	tempInputPath := filepath.Join(os.TempDir(), file.Filename)
	inFile, err := os.Create(tempInputPath)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create temp file")
	}
	defer os.Remove(tempInputPath)

	if _, err = io.Copy(inFile, src); err != nil {
		inFile.Close()
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to copy file data")
	}
	inFile.Close()

	tempOutputPath := tempInputPath + ".decoded"
	defer os.Remove(tempOutputPath)

	if err := huffman.Decompress(tempInputPath, tempOutputPath, threads); err != nil {
		return echo.NewHTTPError(httpStatusFor(err), "decompression failed: "+err.Error())
	}

	decompressedBytes, err := os.ReadFile(tempOutputPath)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to read decompressed output")
	}

	c.Response().Header().Set(echo.HeaderContentType, "application/octet-stream")
	c.Response().Header().Set(
		echo.HeaderContentDisposition,
		"attachment; filename=\"decompressed_"+strings.TrimSuffix(file.Filename, ".huff")+"\"",
	)

	_, err = c.Response().Write(decompressedBytes)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to write response")
	}

	return nil
}
