package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type fileConfig struct {
	Addr     string `toml:"addr"`
	Capture  string `toml:"capture"`
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
	Quiet    bool   `toml:"quiet"`
}

// loadConfig overlays a TOML config file onto opts. Only keys that are
// actually present in the file override the flag values.
func loadConfig(path string, opts *options) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("addr") {
		opts.addr = strings.TrimSpace(raw.Addr)
	}
	if meta.IsDefined("capture") {
		opts.capture = strings.TrimSpace(raw.Capture)
	}
	if meta.IsDefined("log_level") {
		opts.logLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("log_file") {
		opts.logFile = strings.TrimSpace(raw.LogFile)
	}
	if meta.IsDefined("quiet") {
		opts.quiet = raw.Quiet
	}

	return nil
}
