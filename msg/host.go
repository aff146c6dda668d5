package msg

import "github.com/andreasots/irc-syntax/scan"

// Primitive recognizers. Each consumes the maximal match from the
// scanner and returns the matched range as a subslice of the frame.
// These are byte-class recognizers, not validators: "999.999.999.999"
// is a perfectly good ip4addr here.

func isHostnameChar(b byte) bool {
	return scan.IsAlnum(b) || b == '-' || b == '_'
}

func isIP4Char(b byte) bool { return scan.IsDigit(b) || b == '.' }

func isIP6Char(b byte) bool {
	return scan.IsHexDigit(b) || b == ':' || b == '.'
}

// <nickname chars> also cover `[ \ ] ^ _ `` { | }`; nicknames may start
// with a digit, which is looser than RFC 2812 but matches live traffic.
func isNicknameChar(b byte) bool {
	return scan.IsAlnum(b) || (b >= 0x5B && b <= 0x60) || (b >= 0x7B && b <= 0x7D)
}

func isUserChar(b byte) bool {
	return b != 0 && b != '\r' && b != '\n' && b != ' ' && b != '@'
}

// hostname := label *("." label). Labels may be empty; a single empty
// label means hostname matches the empty string, and a trailing dot is
// part of the match.
func hostname(s *scan.Scanner) []byte {
	start := s.Pos()
	s.TakeWhile(isHostnameChar)
	for s.Accept('.') {
		s.TakeWhile(isHostnameChar)
	}
	return s.From(start)
}

// hostaddr := ip4addr / ip6addr
func hostaddr(s *scan.Scanner) ([]byte, bool) {
	if addr := s.TakeWhile(isIP4Char); len(addr) > 0 {
		return addr, true
	}
	if addr := s.TakeWhile(isIP6Char); len(addr) > 0 {
		return addr, true
	}
	return nil, false
}

// host := hostname / hostaddr, hostname tried first. Since hostname
// admits the empty match it never fails, so it also absorbs the
// dotted-digit forms and the alternative only matters for callers that
// use hostaddr directly. Downstream behavior depends on this ordering;
// do not tighten it.
func host(s *scan.Scanner) []byte {
	return hostname(s)
}

func nickname(s *scan.Scanner) []byte {
	return s.TakeWhile(isNicknameChar)
}

// user requires at least one byte.
func user(s *scan.Scanner) ([]byte, bool) {
	u := s.TakeWhile(isUserChar)
	if len(u) == 0 {
		return nil, false
	}
	return u, true
}
