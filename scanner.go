package fixedrec

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// A Scanner splits an input stream into fixed-length records, yielding a
// fresh Reader for each line.
type Scanner struct {
	data *bufio.Reader
	done bool
}

// NewScanner returns a Scanner that reads records from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{data: bufio.NewReader(r)}
}

// Next returns a Reader for the next record. The trailing newline (and
// any preceding carriage return) is stripped. Next returns io.EOF once
// the input is exhausted.
func (s *Scanner) Next() (*Reader, error) {
	if s.done {
		return nil, io.EOF
	}
	line, err := s.data.ReadBytes('\n')
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "fixedrec: reading record")
	}
	if err == io.EOF {
		s.done = true
		if len(line) == 0 {
			return nil, io.EOF
		}
	}
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return NewReader(string(line)), nil
}
