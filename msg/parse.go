package msg

import (
	"errors"
	"fmt"

	"github.com/andreasots/irc-syntax/scan"
)

var (
	// ErrParse reports bytes that cannot match the grammar. The frame
	// is unusable; resynchronization policy belongs to the caller.
	ErrParse = errors.New("parse error")

	// ErrIncomplete reports a frame that ended before a mandatory
	// element, notably the terminator. Callers reading from a stream
	// may retry once more bytes arrive.
	ErrIncomplete = errors.New("incomplete message")
)

// Parse parses one complete frame:
//
//	["@" tags SPACE] [":" source SPACE] command [params] crlf
//
// The tags and source stages are optional; when one fails to match, the
// cursor rewinds to where the attempt began and parsing continues
// without it. Command and the crlf terminator are mandatory. The
// returned Message aliases frame wherever no decoding was needed, so
// frame must outlive it.
func Parse(frame []byte) (*Message, error) {
	s := scan.New(frame)
	m := &Message{Source: Implicit{}}

	m.Tags = tags(s)
	m.Source = prefix(s)

	cmd, err := command(s)
	if err != nil {
		return nil, err
	}
	m.Command = cmd

	m.Params, m.trailingSet = params(s)

	// expect a crlf ending
	switch {
	case s.Empty():
		return nil, fmt.Errorf("%w: missing crlf", ErrIncomplete)
	case !s.Accept('\r'):
		return nil, fmt.Errorf("%w: expected cr", ErrParse)
	case s.Empty():
		return nil, fmt.Errorf("%w: missing lf", ErrIncomplete)
	case !s.Accept('\n'):
		return nil, fmt.Errorf("%w: expected lf", ErrParse)
	case !s.Empty():
		return nil, fmt.Errorf("%w: bytes after crlf", ErrParse)
	}

	return m, nil
}

// tags := "@" tag *(";" tag) " "
// A tag section that does not terminate in the mandatory space rewinds
// completely and reads as "no tags"; the command stage then trips over
// the '@' and reports the failure for the whole frame.
func tags(s *scan.Scanner) []Tag {
	mark := s.Pos()
	if !s.Accept('@') {
		return nil
	}

	t := []Tag{tag(s)}
	for s.Accept(';') {
		t = append(t, tag(s))
	}

	if !s.Accept(' ') {
		s.Rewind(mark)
		return nil
	}
	return t
}

// tag := [host "/"] 1*(ALPHA / DIGIT / "-") ["=" value]
// The key keeps its raw bytes, vendor prefix and all; only the value is
// unescaped. No '=' at all is distinct from '=' with nothing after it.
func tag(s *scan.Scanner) Tag {
	start := s.Pos()

	vendor := s.Pos()
	host(s)
	if !s.Accept('/') {
		s.Rewind(vendor)
	}
	s.TakeWhile(isKeyChar)

	t := Tag{Key: s.From(start)}
	if s.Accept('=') {
		t.Value = unescape(s.TakeWhile(isTagValueChar))
		t.HasValue = true
	}
	return t
}

// prefix := ":" ( hostname " " / nickname ["!" user] ["@" host] " " )
// A bare token matches both alternatives; hostname is tried first, so
// lexically indistinguishable sources resolve to Server. That ambiguity
// is in the wire format itself and downstream consumers rely on this
// resolution.
func prefix(s *scan.Scanner) Prefix {
	mark := s.Pos()
	if !s.Accept(':') {
		return Implicit{}
	}

	alt := s.Pos()
	h := hostname(s)
	if s.Accept(' ') {
		return Server{Host: h}
	}
	s.Rewind(alt)

	p := User{Nick: nickname(s)}
	if bang := s.Pos(); s.Accept('!') {
		if u, ok := user(s); ok {
			p.User = u
		} else {
			s.Rewind(bang)
		}
	}
	if s.Accept('@') {
		p.Host = host(s)
	}
	if !s.Accept(' ') {
		s.Rewind(mark)
		return Implicit{}
	}
	return p
}

// command := 3DIGIT / 1*ALPHA
// This is the one mandatory grammar element between the optional
// leading segments and the terminator.
func command(s *scan.Scanner) (Command, error) {
	if s.Empty() {
		return nil, fmt.Errorf("%w: missing command", ErrIncomplete)
	}

	if digits := s.TakeWhile(scan.IsDigit); len(digits) > 0 {
		// the fold in numericCommand indexes three bytes; any other
		// run length must be rejected before it runs
		if len(digits) != 3 {
			return nil, fmt.Errorf("%w: numeric command has %d digits, want 3", ErrParse, len(digits))
		}
		return numericCommand(digits), nil
	}

	if letters := s.TakeWhile(scan.IsLetter); len(letters) > 0 {
		if cmd, ok := lookupCommand(letters); ok {
			return cmd, nil
		}
		return Unknown(letters), nil
	}

	return nil, fmt.Errorf("%w: expected command", ErrParse)
}

func numericCommand(digits []byte) Command {
	code := uint16(digits[0]-'0')*100 + uint16(digits[1]-'0')*10 + uint16(digits[2]-'0')

	if reply, ok := lookupReply(code); ok {
		return reply
	}
	if errReply, ok := lookupError(code); ok {
		return errReply
	}
	return Numeric(code)
}

// params := *( " " middle ) [ " :" trailing ]
// Either group, both, or neither may be present. The trailing marker
// always contributes one element, even when the trailing content is
// empty.
func params(s *scan.Scanner) (ps [][]byte, trailingSet bool) {
	mark := s.Pos()
	if s.Accept(' ') {
		if m, ok := middle(s); ok {
			ps = append(ps, m)
			for {
				sep := s.Pos()
				if !s.Accept(' ') {
					break
				}
				m, ok := middle(s)
				if !ok {
					s.Rewind(sep)
					break
				}
				ps = append(ps, m)
			}
		} else {
			s.Rewind(mark)
		}
	}

	trail := s.Pos()
	if s.Accept(' ') && s.Accept(':') {
		return append(ps, trailing(s)), true
	}
	s.Rewind(trail)
	return ps, false
}

// middle := nospcrlfcl *( ":" / nospcrlfcl )
func middle(s *scan.Scanner) ([]byte, bool) {
	start := s.Pos()
	if len(s.TakeWhile(isMiddleStart)) == 0 {
		return nil, false
	}
	s.TakeWhile(isMiddleChar)
	return s.From(start), true
}

// trailing := *( ":" / " " / nospcrlfcl )
func trailing(s *scan.Scanner) []byte {
	return s.TakeWhile(isTrailingChar)
}

func isKeyChar(b byte) bool { return scan.IsAlnum(b) || b == '-' }

func isTagValueChar(b byte) bool {
	return b != 0 && b != '\r' && b != '\n' && b != ';' && b != ' '
}

func isMiddleStart(b byte) bool {
	return b != 0 && b != '\r' && b != '\n' && b != ' ' && b != ':'
}

func isMiddleChar(b byte) bool {
	return b != 0 && b != '\r' && b != '\n' && b != ' '
}

func isTrailingChar(b byte) bool {
	return b != 0 && b != '\r' && b != '\n'
}
