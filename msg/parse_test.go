package msg

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func TestParseMessage(t *testing.T) {
	tests := []struct {
		s string
		m *Message
	}{
		{":dan!d@localhost PRIVMSG #chan :Hey!\r\n",
			&Message{
				Source:      User{Nick: []byte("dan"), User: []byte("d"), Host: []byte("localhost")},
				Command:     Known("PRIVMSG"),
				Params:      [][]byte{[]byte("#chan"), []byte("Hey!")},
				trailingSet: true,
			},
		},
		{"NICK alice\r\n",
			&Message{
				Source:  Implicit{},
				Command: Known("NICK"),
				Params:  [][]byte{[]byte("alice")},
			},
		},
		{"PING [::]:6667\r\n",
			&Message{
				Source:  Implicit{},
				Command: Known("PING"),
				Params:  [][]byte{[]byte("[::]:6667")},
			},
		},
		{"USER alice 0 * :Alice Smith\r\n",
			&Message{
				Source:      Implicit{},
				Command:     Known("USER"),
				Params:      [][]byte{[]byte("alice"), []byte("0"), []byte("*"), []byte("Alice Smith")},
				trailingSet: true,
			},
		},
		{"PRIVMSG bob :  hi bob!\r\n",
			&Message{
				Source:      Implicit{},
				Command:     Known("PRIVMSG"),
				Params:      [][]byte{[]byte("bob"), []byte("  hi bob!")},
				trailingSet: true,
			},
		},
		// the trailing marker contributes an element even when blank
		{"TOPIC #chan :\r\n",
			&Message{
				Source:      Implicit{},
				Command:     Known("TOPIC"),
				Params:      [][]byte{[]byte("#chan"), {}},
				trailingSet: true,
			},
		},
		{":tmi.twitch.tv 001 twitch_username :Welcome, GLHF!\r\n",
			&Message{
				Source:      Server{Host: []byte("tmi.twitch.tv")},
				Command:     RPL_WELCOME,
				Params:      [][]byte{[]byte("twitch_username"), []byte("Welcome, GLHF!")},
				trailingSet: true,
			},
		},
		{":tmi.twitch.tv 421 twitch_username WHO :Unknown command\r\n",
			&Message{
				Source:      Server{Host: []byte("tmi.twitch.tv")},
				Command:     ERR_UNKNOWNCOMMAND,
				Params:      [][]byte{[]byte("twitch_username"), []byte("WHO"), []byte("Unknown command")},
				trailingSet: true,
			},
		},
		{":srv 999 nick\r\n",
			&Message{
				Source:  Server{Host: []byte("srv")},
				Command: Numeric(999),
				Params:  [][]byte{[]byte("nick")},
			},
		},
		{"CLEARCHAT #chan\r\n",
			&Message{
				Source:  Implicit{},
				Command: Unknown("CLEARCHAT"),
				Params:  [][]byte{[]byte("#chan")},
			},
		},
		{"CAP REQ :twitch.tv/membership\r\n",
			&Message{
				Source:      Implicit{},
				Command:     Unknown("CAP"),
				Params:      [][]byte{[]byte("REQ"), []byte("twitch.tv/membership")},
				trailingSet: true,
			},
		},
		{":tmi.twitch.tv GLOBALUSERSTATE\r\n",
			&Message{
				Source:  Server{Host: []byte("tmi.twitch.tv")},
				Command: Unknown("GLOBALUSERSTATE"),
			},
		},
		{":jtv MODE #channel +o operator_user\r\n",
			&Message{
				Source:  Server{Host: []byte("jtv")},
				Command: Known("MODE"),
				Params:  [][]byte{[]byte("#channel"), []byte("+o"), []byte("operator_user")},
			},
		},
		// nickname starting with a digit
		{":3and4fifths!3and4fifths@3and4fifths.tmi.twitch.tv PRIVMSG #loadingreadyrun :You missed a window to climb through\r\n",
			&Message{
				Source: User{
					Nick: []byte("3and4fifths"),
					User: []byte("3and4fifths"),
					Host: []byte("3and4fifths.tmi.twitch.tv"),
				},
				Command:     Known("PRIVMSG"),
				Params:      [][]byte{[]byte("#loadingreadyrun"), []byte("You missed a window to climb through")},
				trailingSet: true,
			},
		},
		// hostname component ending with an underscore
		{":featherweight_!featherweight_@featherweight_.tmi.twitch.tv PRIVMSG #loadingreadyrun :Hello human people\r\n",
			&Message{
				Source: User{
					Nick: []byte("featherweight_"),
					User: []byte("featherweight_"),
					Host: []byte("featherweight_.tmi.twitch.tv"),
				},
				Command:     Known("PRIVMSG"),
				Params:      [][]byte{[]byte("#loadingreadyrun"), []byte("Hello human people")},
				trailingSet: true,
			},
		},
		{"@msg-id=slow_off :tmi.twitch.tv NOTICE #channel :This room is no longer in slow mode.\r\n",
			&Message{
				Tags:        []Tag{{Key: []byte("msg-id"), Value: []byte("slow_off"), HasValue: true}},
				Source:      Server{Host: []byte("tmi.twitch.tv")},
				Command:     Known("NOTICE"),
				Params:      [][]byte{[]byte("#channel"), []byte("This room is no longer in slow mode.")},
				trailingSet: true,
			},
		},
		{"@aaa=bbb;ccc;example.com/ddd=eee :nick!ident@host.com PRIVMSG me :Hello\r\n",
			&Message{
				Tags: []Tag{
					{Key: []byte("aaa"), Value: []byte("bbb"), HasValue: true},
					{Key: []byte("ccc")},
					{Key: []byte("example.com/ddd"), Value: []byte("eee"), HasValue: true},
				},
				Source:      User{Nick: []byte("nick"), User: []byte("ident"), Host: []byte("host.com")},
				Command:     Known("PRIVMSG"),
				Params:      [][]byte{[]byte("me"), []byte("Hello")},
				trailingSet: true,
			},
		},
		{"@ban-duration=1;ban-reason=Follow\\sthe\\srules :tmi.twitch.tv CLEARCHAT #channel :target_username\r\n",
			&Message{
				Tags: []Tag{
					{Key: []byte("ban-duration"), Value: []byte("1"), HasValue: true},
					{Key: []byte("ban-reason"), Value: []byte("Follow the rules"), HasValue: true},
				},
				Source:      Server{Host: []byte("tmi.twitch.tv")},
				Command:     Unknown("CLEARCHAT"),
				Params:      [][]byte{[]byte("#channel"), []byte("target_username")},
				trailingSet: true,
			},
		},
	}

	for _, v := range tests {
		t.Run(v.s, func(t *testing.T) {
			out, err := Parse([]byte(v.s))
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(out, v.m) {
				t.Error("parse error; wanted", v.m, "but got", out)
			}
		})
	}
}

// A bare source token could be either a server name or a nickname; the
// hostname alternative runs first, so it must come out as Server.
func TestPrefixAmbiguity(t *testing.T) {
	m, err := Parse([]byte(":tmi.example.tv 001 nick :Welcome\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := Server{Host: []byte("tmi.example.tv")}
	if !reflect.DeepEqual(m.Source, want) {
		t.Error("wanted", want, "but got", m.Source)
	}

	// even a token that looks exactly like a nickname
	m, err = Parse([]byte(":nick PING\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := m.Source.(Server); !ok {
		t.Errorf("bare nickname source should classify as Server, got %T", m.Source)
	}

	// the '!' forces the user alternative
	m, err = Parse([]byte(":nick!u PING\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(m.Source, User{Nick: []byte("nick"), User: []byte("u")}) {
		t.Error("wanted a User source but got", m.Source)
	}
}

func TestTagValueStates(t *testing.T) {
	m, err := Parse([]byte("@ccc :nick!u@h CMD p\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	if m.Tags[0].HasValue {
		t.Error("tag without '=' should have an absent value")
	}

	m, err = Parse([]byte("@aaa= :nick!u@h CMD p\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !m.Tags[0].HasValue || len(m.Tags[0].Value) != 0 {
		t.Error("tag with bare '=' should have a present-empty value, got", m.Tags[0])
	}
}

func TestTagValueBorrowing(t *testing.T) {
	frame := []byte("@aaa=bbb PING x\r\n")
	m, err := Parse(frame)
	if err != nil {
		t.Fatal(err)
	}
	idx := bytes.Index(frame, []byte("bbb"))
	if &m.Tags[0].Value[0] != &frame[idx] {
		t.Error("unescaped tag value should alias the frame")
	}

	frame = []byte("@aaa=b\\sb PING x\r\n")
	m, err = Parse(frame)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(m.Tags[0].Value, []byte("b b")) {
		t.Error("wanted", "b b", "but got", string(m.Tags[0].Value))
	}
	if &m.Tags[0].Value[0] == &frame[bytes.Index(frame, []byte("b\\sb"))] {
		t.Error("escaped tag value must not alias the frame")
	}
}

func TestDuplicateTagKeysKept(t *testing.T) {
	m, err := Parse([]byte("@a=1;a=2;a PING x\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := []Tag{
		{Key: []byte("a"), Value: []byte("1"), HasValue: true},
		{Key: []byte("a"), Value: []byte("2"), HasValue: true},
		{Key: []byte("a")},
	}
	if !reflect.DeepEqual(m.Tags, want) {
		t.Error("wanted", want, "but got", m.Tags)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		s    string
		want error
	}{
		{"", ErrIncomplete},
		{"PING", ErrIncomplete},
		{"PING :tmi.twitch.tv", ErrIncomplete},
		{"PING\r", ErrIncomplete},
		{":srv 001 nick :hi", ErrIncomplete},

		{"PING\rx\n", ErrParse},
		{"PING\n", ErrParse},
		// numeric commands are exactly 3 digits
		{"12 hi\r\n", ErrParse},
		{"1234 hi\r\n", ErrParse},
		{"#chan hello\r\n", ErrParse},
		{" PRIVMSG x\r\n", ErrParse},
		// a tag section with no terminating space rewinds, then the
		// command stage fails on the '@'
		{"@a=b\r\n", ErrParse},
		{"PING x\r\nPING y\r\n", ErrParse},
	}

	for _, v := range tests {
		t.Run(v.s, func(t *testing.T) {
			m, err := Parse([]byte(v.s))
			if m != nil {
				t.Error("failed parse should not yield a message")
			}
			if !errors.Is(err, v.want) {
				t.Errorf("wanted %v but got %v", v.want, err)
			}
		})
	}
}

func TestParseDeterministic(t *testing.T) {
	frame := []byte("@a=1;b :nick!u@h PRIVMSG #chan :hello world\r\n")

	first, err := Parse(frame)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Parse(frame)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated parses of the same frame disagree")
	}
}

func TestMessageString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"@aaa=bbb :nick!u@h PRIVMSG #c :hi there\r\n", "@aaa=bbb :nick!u@h PRIVMSG #c :hi there"},
		{":tmi.twitch.tv 001 nick :Welcome\r\n", ":tmi.twitch.tv RPL_WELCOME nick :Welcome"},
		{"@ccc PING x\r\n", "@ccc PING x"},
		{"QUIT\r\n", "QUIT"},
	}

	for _, v := range tests {
		t.Run(v.in, func(t *testing.T) {
			m, err := Parse([]byte(v.in))
			if err != nil {
				t.Fatal(err)
			}
			if got := m.String(); got != v.want {
				t.Errorf("wanted %q but got %q", v.want, got)
			}
		})
	}
}

func BenchmarkParse(b *testing.B) {
	frame := []byte("@badges=staff/1,bits/1000;bits=100;color=;display-name=TWITCH_UserNaME :twitch_username!twitch_username@twitch_username.tmi.twitch.tv PRIVMSG #channel :cheer100\r\n")
	for i := 0; i < b.N; i++ {
		Parse(frame)
	}
}
