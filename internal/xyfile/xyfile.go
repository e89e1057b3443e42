// SPDX-License-Identifier: MIT

// Package xyfile reads two-column XY data: whitespace-separated numbers,
// read as alternating x and y values. Blank lines and lines whose first
// non-blank character is '#' are ignored.
package xyfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrSyntax indicates a token that is not a number.
	ErrSyntax = errors.New("xyfile: malformed number")

	// ErrOddValues indicates an x without its y.
	ErrOddValues = errors.New("xyfile: odd number of values")

	// ErrEmpty indicates a file without data.
	ErrEmpty = errors.New("xyfile: no data")
)

// Parse reads all (x, y) pairs from r.
func Parse(r io.Reader) (xs, ys []float64, err error) {
	var vals []float64
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		for _, tok := range strings.Fields(text) {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: line %d: %q", ErrSyntax, line, tok)
			}
			vals = append(vals, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("xyfile: read: %w", err)
	}
	if len(vals) == 0 {
		return nil, nil, ErrEmpty
	}
	if len(vals)%2 != 0 {
		return nil, nil, fmt.Errorf("%w: %d", ErrOddValues, len(vals))
	}

	xs = make([]float64, 0, len(vals)/2)
	ys = make([]float64, 0, len(vals)/2)
	for i := 0; i < len(vals); i += 2 {
		xs = append(xs, vals[i])
		ys = append(ys, vals[i+1])
	}

	return xs, ys, nil
}

// Read parses the file at path.
func Read(path string) (xs, ys []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("xyfile: %w", err)
	}
	defer f.Close()

	xs, ys, err = Parse(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	return xs, ys, nil
}
