package msg

import "bytes"

// The defined tag-value escapes, in the order the passes run. The order
// is observable: each pattern gets one full scan, and scanning resumes
// one byte after a replacement, so a replacement byte can still take
// part in a later pattern's window but never in the current one.
var escapeSequences = [5]struct {
	pattern     []byte
	replacement byte
}{
	{[]byte(`\:`), ';'},
	{[]byte(`\s`), ' '},
	{[]byte(`\\`), '\\'},
	{[]byte(`\r`), '\r'},
	{[]byte(`\n`), '\n'},
}

// unescape decodes the escape sequences in a raw tag value. A value
// containing no sequence is returned as-is, aliasing the input; the
// first replacement switches to a private copy. Unrecognized \X pairs
// and lone backslashes pass through untouched. unescape never fails.
func unescape(value []byte) []byte {
	owned := false

	for _, esc := range escapeSequences {
		start := 0
		for {
			idx := bytes.Index(value[start:], esc.pattern)
			if idx == -1 {
				break
			}
			idx += start

			if !owned {
				value = append([]byte(nil), value...)
				owned = true
			}
			value[idx] = esc.replacement
			value = append(value[:idx+1], value[idx+2:]...)
			start = idx + 1
		}
	}

	return value
}
