package marketsim

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// This file contains the line oriented text format shared by the market and
// the portfolio files: one record per line, fields separated by whitespace,
// numbers written with a fixed number of fractional digits.

// fractionDigits is the number of fractional digits written for every number.
const fractionDigits = 6

// scanRecords calls fn with the fields of every non blank line of r.
// Errors returned by fn are wrapped into a *LoadError locating the line.
// filename is for error message only.
func scanRecords(filename string, r io.Reader, fn func(fields []string) error) error {
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if err := fn(fields); err != nil {
			return &LoadError{File: filename, Line: i, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("cannot read %q: %w", filename, err)
	}
	return nil
}

// saveFile creates filename and streams encode into it.
func saveFile(filename string, encode func(io.Writer) error) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot open %q for writing: %w", filename, err)
	}
	w := bufio.NewWriter(f)
	if err := encode(w); err != nil {
		f.Close()
		return fmt.Errorf("cannot write %q: %w", filename, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("cannot write %q: %w", filename, err)
	}
	return f.Close()
}
