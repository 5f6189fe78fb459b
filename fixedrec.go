// Package fixedrec decodes typed values from fixed-length text records.
//
// A Reader owns a single record line and a cursor. Every read extracts a
// fixed number of characters starting at the cursor, converts them to the
// requested type, and advances the cursor past the consumed characters.
// Widths are supplied by the caller at each call site, mirroring the
// physical field layout of the record.
package fixedrec

import (
	"math"
	"strconv"
)

// A Reader decodes typed values from a single fixed-length record,
// advancing its cursor with every successful read. A failed read leaves
// the cursor where it was and returns a *ParseError carrying the offset
// the read started at.
//
// A Reader is not safe for concurrent use; use one Reader per record per
// goroutine.
type Reader struct {
	buffer string
	pos    int
}

// NewReader returns a Reader positioned at the start of line.
func NewReader(line string) *Reader {
	return &Reader{buffer: line}
}

// Pos returns the current cursor position.
func (r *Reader) Pos() int { return r.pos }

// Remaining returns the number of unconsumed characters.
func (r *Reader) Remaining() int { return len(r.buffer) - r.pos }

// slice returns the next length characters without advancing the cursor.
func (r *Reader) slice(kind string, length int) (string, error) {
	end := r.pos + length
	if length < 0 || end > len(r.buffer) {
		return "", &ParseError{Kind: kind, Start: r.pos, End: end, Line: r.buffer}
	}
	return r.buffer[r.pos:end], nil
}

// Text returns the next length characters verbatim, with no trimming or
// validation.
func (r *Reader) Text(length int) (string, error) {
	s, err := r.slice("text", length)
	if err != nil {
		return "", err
	}
	r.pos += length
	return s, nil
}

// Skip consumes the next length characters without producing a value.
func (r *Reader) Skip(length int) error {
	if _, err := r.slice("text", length); err != nil {
		return err
	}
	r.pos += length
	return nil
}

// Char returns the next character.
func (r *Reader) Char() (byte, error) {
	if r.pos >= len(r.buffer) {
		return 0, &ParseError{Kind: "char", Start: r.pos, End: r.pos + 1, Line: r.buffer}
	}
	c := r.buffer[r.pos]
	r.pos++
	return c, nil
}

// Byte returns a byte decoded from its hexadecimal representation. With
// withPrefix set it consumes four characters and discards the leading
// "0x" prefix; otherwise it consumes two characters and interprets them
// directly as hex digits.
func (r *Reader) Byte(withPrefix bool) (byte, error) {
	length := 2
	if withPrefix {
		length = 4
	}
	s, err := r.slice("byte", length)
	if err != nil {
		return 0, err
	}
	if withPrefix {
		s = s[2:]
	}
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, &ParseError{Kind: "byte", Start: r.pos, End: r.pos + length, Line: r.buffer, Err: err}
	}
	r.pos += length
	return byte(v), nil
}

// Int parses the next length characters as a base-10 signed integer.
func (r *Reader) Int(length int) (int, error) {
	s, err := r.slice("int", length)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ParseError{Kind: "int", Start: r.pos, End: r.pos + length, Line: r.buffer, Err: err}
	}
	r.pos += length
	return v, nil
}

// Int64 parses the next length characters as a base-10 signed integer.
func (r *Reader) Int64(length int) (int64, error) {
	s, err := r.slice("int64", length)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &ParseError{Kind: "int64", Start: r.pos, End: r.pos + length, Line: r.buffer, Err: err}
	}
	r.pos += length
	return v, nil
}

// Float32 parses the next length characters as a decimal literal with an
// optional sign and decimal point.
func (r *Reader) Float32(length int) (float32, error) {
	v, err := r.float("float32", length, 0, 32)
	return float32(v), err
}

// Float64 parses the next length characters as a decimal literal with an
// optional sign and decimal point.
func (r *Reader) Float64(length int) (float64, error) {
	return r.float("float64", length, 0, 64)
}

// ImpliedFloat32 parses the next length characters as a decimal literal
// written without a decimal point and scales the result down by
// 10^decimals. decimals of zero means no scaling.
func (r *Reader) ImpliedFloat32(length, decimals int) (float32, error) {
	v, err := r.float("float32", length, decimals, 32)
	return float32(v), err
}

// ImpliedFloat64 parses the next length characters as a decimal literal
// written without a decimal point and scales the result down by
// 10^decimals. decimals of zero means no scaling.
func (r *Reader) ImpliedFloat64(length, decimals int) (float64, error) {
	return r.float("float64", length, decimals, 64)
}

func (r *Reader) float(kind string, length, decimals, bitSize int) (float64, error) {
	s, err := r.slice(kind, length)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, bitSize)
	if err != nil {
		return 0, &ParseError{Kind: kind, Start: r.pos, End: r.pos + length, Line: r.buffer, Err: err}
	}
	if decimals > 0 {
		v /= math.Pow10(decimals)
	}
	r.pos += length
	return v, nil
}
