package table

import (
	"bufio"
	"io"
	"strings"

	"github.com/matzehuels/tablewrap/pkg/errors"
)

// DefaultDelimiter separates cells within a line.
const DefaultDelimiter = ","

// maxLineSize bounds a single input line.
const maxLineSize = 10 * 1024 * 1024

// Read consumes r line by line and splits each line on delimiter.
// No quoting or escaping is recognized: every occurrence of delimiter
// starts a new cell. Line terminators ("\n" or "\r\n") are stripped.
//
// Read returns a MALFORMED_INPUT error if a line's cell count differs from
// the first line's, or if r fails. Zero input lines yield an empty Table
// and no error. Read does not close r.
func Read(r io.Reader, delimiter string) (Table, error) {
	if delimiter == "" {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "delimiter must not be empty")
	}

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var t Table
	for s.Scan() {
		t = append(t, strings.Split(s.Text(), delimiter))
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "read input")
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
