package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ircdump.toml")
	data := `
addr = "irc.example.net:6667"
quiet = true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := options{logLevel: "debug", capture: "frames.db"}
	if err := loadConfig(path, &opts); err != nil {
		t.Fatal(err)
	}

	if opts.addr != "irc.example.net:6667" {
		t.Error("addr was not taken from the file:", opts.addr)
	}
	if !opts.quiet {
		t.Error("quiet was not taken from the file")
	}
	// keys absent from the file keep their flag values
	if opts.logLevel != "debug" {
		t.Error("log level should not have been overridden:", opts.logLevel)
	}
	if opts.capture != "frames.db" {
		t.Error("capture path should not have been overridden:", opts.capture)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	var opts options
	if err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"), &opts); err == nil {
		t.Error("expected an error for a missing config file")
	}
}
