package message

import (
	"bufio"
	"errors"
	"io"
	"unicode/utf8"
)

var (
	// ErrTooLong - raw line exceeds scanner limit.
	ErrTooLong = errors.New("message: line too long")

	// ErrInvalidEncoding - line is not valid UTF-8 text.
	ErrInvalidEncoding = errors.New("message: invalid UTF-8 sequence")
)

// rawSlack - framing bound: raw line may exceed max message size by this factor before
// the scanner gives up, whatever is left after trimming.
const rawSlack = 4

// Scanner - reads newline-delimited text lines from byte stream.
type Scanner struct {
	scanner *bufio.Scanner
	line    string
	err     error
}

// NewScanner - builds line scanner for messages which are not longer than maxSize bytes.
// Lines are returned as is, without normalization, to let caller decide about their size.
func NewScanner(r io.Reader, maxSize int) *Scanner {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	limit := maxSize*rawSlack + len("\r\n")
	s := bufio.NewScanner(r)
	// token size is the larger of limit and initial capacity
	s.Buffer(make([]byte, 0, min(4096, limit)), limit)
	s.Split(bufio.ScanLines)
	return &Scanner{scanner: s}
}

// Scan - advances to the next line. Returns false at the end of stream or on error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	if !s.scanner.Scan() {
		s.err = s.scanner.Err()
		if errors.Is(s.err, bufio.ErrTooLong) {
			s.err = ErrTooLong
		}
		return false
	}
	b := s.scanner.Bytes()
	if !utf8.Valid(b) {
		s.err = ErrInvalidEncoding
		return false
	}
	s.line = string(b)
	return true
}

// Text - returns the most recent line.
func (s *Scanner) Text() string {
	return s.line
}

// Err - returns the first non-EOF error.
func (s *Scanner) Err() error {
	return s.err
}
