// Package msg parses single IRC message frames, including IRCv3 message
// tags, into a structured Message. It is a pure grammar layer: one
// complete CRLF-terminated frame goes in, a Message or an error comes
// out. Framing, connection handling and protocol semantics live with
// the caller.
package msg

import (
	"fmt"
	"strings"
)

// Message is the parse result for one frame. Byte-slice fields alias
// the input buffer wherever possible, so the buffer must stay valid and
// unmodified for as long as the Message is in use.
type Message struct {
	// Tags preserves insertion order and does not deduplicate keys.
	Tags []Tag

	// Source is Implicit when the frame carried no prefix segment.
	Source Prefix

	Command Command

	// Params holds the middle parameters followed by the trailing
	// parameter, when one was marked.
	Params [][]byte

	// true if a trailing marker was found, even if the trailing
	// parameter itself is blank
	trailingSet bool
}

// Tag is one key/value entry from the leading '@' segment. The key is
// raw bytes (vendor prefix included, never unescaped). HasValue
// distinguishes a key with no '=' from a key with an empty value; both
// occur in real traffic.
type Tag struct {
	Key      []byte
	Value    []byte
	HasValue bool
}

// Prefix is the message source: a server name, a user mask, or nothing.
type Prefix interface {
	isPrefix()
	String() string
}

type Server struct {
	Host []byte
}

type User struct {
	Nick []byte
	// User and Host are nil when the corresponding segment was absent.
	User []byte
	Host []byte
}

// Implicit is the valid, common case of a frame with no prefix segment,
// e.g. anything a client sends.
type Implicit struct{}

func (Server) isPrefix()   {}
func (User) isPrefix()     {}
func (Implicit) isPrefix() {}

func (p Server) String() string { return string(p.Host) }

func (p User) String() string {
	var b strings.Builder
	b.Write(p.Nick)
	if p.User != nil {
		b.WriteByte('!')
		b.Write(p.User)
	}
	if p.Host != nil {
		b.WriteByte('@')
		b.Write(p.Host)
	}
	return b.String()
}

func (Implicit) String() string { return "" }

// Command is the classified command token. Reply, Error and Known are
// enriched classifications against the static tables; Numeric and
// Unknown are the fallbacks for tokens the tables do not cover.
type Command interface {
	isCommand()
	String() string
}

// Reply is a numeric reply code found in the reply table.
type Reply uint16

// Error is a numeric error code found in the error table.
type Error uint16

// Known is a recognized command name.
type Known string

// Numeric is a 3-digit code present in neither numeric table.
type Numeric uint16

// Unknown is an alphabetic command token absent from the command table.
type Unknown []byte

func (Reply) isCommand()   {}
func (Error) isCommand()   {}
func (Known) isCommand()   {}
func (Numeric) isCommand() {}
func (Unknown) isCommand() {}

func (c Reply) String() string {
	if name, ok := replyNames[c]; ok {
		return name
	}
	return fmt.Sprintf("%03d", uint16(c))
}

func (c Error) String() string {
	if name, ok := errorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("%03d", uint16(c))
}

func (c Known) String() string { return string(c) }

func (c Numeric) String() string { return fmt.Sprintf("%03d", uint16(c)) }

func (c Unknown) String() string { return string(c) }

// String renders the message for logs and diagnostics. It is not wire
// serialization: tag values stay decoded and no escaping is applied.
func (m *Message) String() string {
	var b strings.Builder

	for i, t := range m.Tags {
		if i == 0 {
			b.WriteByte('@')
		} else {
			b.WriteByte(';')
		}
		b.Write(t.Key)
		if t.HasValue {
			b.WriteByte('=')
			b.Write(t.Value)
		}
	}
	if len(m.Tags) > 0 {
		b.WriteByte(' ')
	}

	if _, ok := m.Source.(Implicit); !ok {
		b.WriteByte(':')
		b.WriteString(m.Source.String())
		b.WriteByte(' ')
	}

	b.WriteString(m.Command.String())
	for i, p := range m.Params {
		b.WriteByte(' ')
		if i == len(m.Params)-1 && m.trailingSet {
			b.WriteByte(':')
		}
		b.Write(p)
	}

	return b.String()
}

// Trailing reports whether the final parameter was introduced by the
// trailing marker.
func (m *Message) Trailing() bool { return m.trailingSet }
