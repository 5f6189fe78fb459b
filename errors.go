package fixedrec

import "strconv"

// A ParseError describes a read that could not be completed, either
// because the record was too short for the requested width or because
// the extracted characters were not a valid value of the requested kind.
//
// The cursor of the Reader that produced the error is left at Start,
// exactly where the failed read began.
type ParseError struct {
	Kind  string // the kind of value being read
	Start int    // offset the read started at
	End   int    // offset one past the last character the read needed
	Line  string // full text of the record
	Err   error  // underlying conversion error, nil for bounds failures
}

func (e *ParseError) Error() string {
	s := "fixedrec: cannot read " + e.Kind +
		" at " + strconv.Itoa(e.Start) + ".." + strconv.Itoa(e.End) +
		" in record [" + e.Line + "]"
	if e.Err != nil {
		return s + ": " + e.Err.Error()
	}
	return s
}

// Unwrap returns the underlying conversion error, if any.
func (e *ParseError) Unwrap() error { return e.Err }

// Cause returns the underlying conversion error, if any. It allows
// github.com/pkg/errors.Cause to reach through a ParseError.
func (e *ParseError) Cause() error { return e.Err }
