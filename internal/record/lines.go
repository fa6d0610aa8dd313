// SPDX-License-Identifier: MIT

package record

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Separator is the field delimiter of every plain-text format.
const Separator = ","

// maxLineBytes bounds a single input line; bufio's 64 KiB default is too
// small for wide matrix rows.
const maxLineBytes = 1 << 20

// Lines reads r to the end and returns its lines without terminators.
// A trailing "\r" is dropped. The input is fully materialized before the
// caller parses anything.
// Complexity: O(n) time and memory in the input size.
func Lines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var out []string
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "record: read lines")
	}

	return out, nil
}

// Fields splits line on Separator and trims surrounding whitespace from each
// token. An empty line yields a single empty token, like strings.Split.
func Fields(line string) []string {
	toks := strings.Split(line, Separator)
	for i := range toks {
		toks[i] = strings.TrimSpace(toks[i])
	}

	return toks
}

// IsBlank reports whether line holds nothing but whitespace.
func IsBlank(line string) bool { return strings.TrimSpace(line) == "" }

// Int32s parses every token of line as a signed 32-bit integer.
// lineNo is only used for error reporting.
func Int32s(line string, lineNo int) ([]int32, error) {
	toks := Fields(line)
	out := make([]int32, len(toks))
	for j, tok := range toks {
		v, err := Int32(tok, lineNo, j)
		if err != nil {
			return nil, err
		}
		out[j] = v
	}

	return out, nil
}

// Open opens path for reading, attaching the path to any failure.
// errors.Is(err, fs.ErrNotExist) still holds for a missing file.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}

	return f, nil
}

// Load opens path and hands it to parse, closing the file afterwards.
func Load[T any](path string, parse func(io.Reader) (T, error)) (T, error) {
	var zero T
	rc, err := Open(path)
	if err != nil {
		return zero, err
	}
	defer rc.Close()

	v, err := parse(rc)
	if err != nil {
		return zero, errors.WithMessagef(err, "load %s", path)
	}

	return v, nil
}
