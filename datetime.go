package fixedrec

import (
	"strings"
	"time"
)

// Date, time, and datetime fields use the ISO-8601 basic (no separators)
// or extended (with separators) representations. A field whose extracted
// characters are empty, all whitespace, or the literal "00000000" is
// absent: the width is consumed and the zero time.Time is returned with
// no error. Callers detect absent values with IsZero.

// zeroSentinel is the exact literal an absent field is compared against,
// regardless of the field's width.
const zeroSentinel = "00000000"

// BasicDate parses the next 8 characters as a date in the form YYYYMMDD.
func (r *Reader) BasicDate() (time.Time, error) {
	return r.temporal("basic date", "20060102", 8)
}

// ExtendedDate parses the next 10 characters as a date in the form
// YYYY-MM-DD.
func (r *Reader) ExtendedDate() (time.Time, error) {
	return r.temporal("extended date", "2006-01-02", 10)
}

// BasicTime parses the next 6 characters as a time of day in the form
// HHMMSS.
func (r *Reader) BasicTime() (time.Time, error) {
	return r.temporal("basic time", "150405", 6)
}

// ExtendedTime parses the next 8 characters as a time of day in the form
// HH:MM:SS.
func (r *Reader) ExtendedTime() (time.Time, error) {
	return r.temporal("extended time", "15:04:05", 8)
}

// BasicDateTime parses the next 15 characters as a datetime in the form
// YYYYMMDDTHHMMSS. With timeOffset set it parses 20 characters in the
// form YYYYMMDDTHHMMSS±HHMM, applies the offset, and returns the result
// in UTC.
func (r *Reader) BasicDateTime(timeOffset bool) (time.Time, error) {
	if timeOffset {
		return r.temporalUTC("basic datetime", "20060102T150405-0700", 20)
	}
	return r.temporal("basic datetime", "20060102T150405", 15)
}

// ExtendedDateTime parses the next 19 characters as a datetime in the
// form YYYY-MM-DDTHH:MM:SS. With timeOffset set it parses 25 characters
// with a trailing ±HH:MM offset, applies the offset, and returns the
// result in UTC.
func (r *Reader) ExtendedDateTime(timeOffset bool) (time.Time, error) {
	if timeOffset {
		return r.temporalUTC("extended datetime", "2006-01-02T15:04:05-07:00", 25)
	}
	return r.temporal("extended datetime", "2006-01-02T15:04:05", 19)
}

func (r *Reader) temporal(kind, layout string, length int) (time.Time, error) {
	s, err := r.slice(kind, length)
	if err != nil {
		return time.Time{}, err
	}
	if strings.TrimSpace(s) == "" || s == zeroSentinel {
		r.pos += length
		return time.Time{}, nil
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, &ParseError{Kind: kind, Start: r.pos, End: r.pos + length, Line: r.buffer, Err: err}
	}
	r.pos += length
	return t, nil
}

func (r *Reader) temporalUTC(kind, layout string, length int) (time.Time, error) {
	t, err := r.temporal(kind, layout, length)
	if err != nil || t.IsZero() {
		return t, err
	}
	return t.UTC(), nil
}
