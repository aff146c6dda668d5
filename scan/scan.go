// Package scan provides the byte-level cursor that the message grammar
// is built on. A Scanner walks a single immutable frame; grammar rules
// compose by recording the cursor with Pos and restoring it with Rewind
// when an alternative fails.
package scan

// EOF is returned by Next and Peek once the cursor passes the end of
// the frame.
const EOF = -1

// Scanner is a cursor over one message frame. It never copies or
// mutates the underlying buffer; every byte range it hands out aliases
// the original frame.
type Scanner struct {
	input    []byte
	position int
}

func New(input []byte) *Scanner {
	return &Scanner{input: input}
}

func (s *Scanner) Next() int {
	if s.position == len(s.input) {
		return EOF
	}

	b := s.input[s.position]
	s.position++
	return int(b)
}

func (s *Scanner) Peek() int {
	if s.position == len(s.input) {
		return EOF
	}
	return int(s.input[s.position])
}

// Pos records the current cursor so a failed alternative can Rewind.
func (s *Scanner) Pos() int { return s.position }

func (s *Scanner) Rewind(pos int) { s.position = pos }

// Accept consumes the next byte only if it equals b.
func (s *Scanner) Accept(b byte) bool {
	if s.Peek() == int(b) {
		s.position++
		return true
	}
	return false
}

// TakeWhile consumes the maximal (possibly empty) run of bytes
// satisfying pred and returns it as a subslice of the frame.
func (s *Scanner) TakeWhile(pred func(byte) bool) []byte {
	start := s.position
	for s.position < len(s.input) && pred(s.input[s.position]) {
		s.position++
	}
	return s.input[start:s.position]
}

// From returns the bytes between a previously recorded position and the
// cursor.
func (s *Scanner) From(start int) []byte {
	return s.input[start:s.position]
}

func (s *Scanner) Empty() bool { return s.position == len(s.input) }

// a-zA-Z
func IsLetter(b byte) bool { return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') }
func IsDigit(b byte) bool  { return b >= '0' && b <= '9' }
func IsAlnum(b byte) bool  { return IsLetter(b) || IsDigit(b) }

func IsHexDigit(b byte) bool {
	return IsDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
