// Command ircdump reads IRC wire frames from files, stdin or a live
// TCP stream, parses each one and prints its structure. Malformed and
// incomplete frames are counted separately and reported in the summary.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"

	"golang.org/x/term"

	"github.com/andreasots/irc-syntax/capture"
	"github.com/andreasots/irc-syntax/msg"
	"github.com/andreasots/irc-syntax/pkg/logger"
)

type options struct {
	addr     string
	capture  string
	logLevel string
	logFile  string
	quiet    bool
}

func main() {
	var opts options
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to a TOML config file")
	flag.StringVar(&opts.addr, "addr", "", "tail a live host:port stream instead of reading files")
	flag.StringVar(&opts.capture, "capture", "", "record frames into this sqlite database")
	flag.StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")
	flag.StringVar(&opts.logFile, "log-file", "", "also write JSON logs to this rotated file")
	flag.BoolVar(&opts.quiet, "q", false, "suppress per-frame output, keep the summary")
	flag.Parse()

	if configPath != "" {
		if err := loadConfig(configPath, &opts); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	log := logger.New(opts.logLevel, opts.logFile)

	d := &dumper{
		log:    log,
		quiet:  opts.quiet,
		pretty: term.IsTerminal(int(os.Stdout.Fd())),
	}

	if opts.capture != "" {
		store, err := capture.Open(opts.capture)
		if err != nil {
			log.Error("opening capture database", "path", opts.capture, "err", err)
			os.Exit(2)
		}
		defer store.Close()
		log.Info("recording frames", "path", opts.capture, "session", store.Session())
		d.store = store
	}

	if err := d.dump(opts.addr, flag.Args()); err != nil {
		log.Error("reading frames", "err", err)
		os.Exit(2)
	}

	log.Info("done",
		"frames", d.total,
		"malformed", d.malformed,
		"incomplete", d.incomplete)
	if d.malformed > 0 {
		os.Exit(1)
	}
}

type dumper struct {
	log    *slog.Logger
	store  *capture.Store
	quiet  bool
	pretty bool

	total      int
	malformed  int
	incomplete int
}

func (d *dumper) dump(addr string, files []string) error {
	if addr != "" {
		conn, err := net.Dial("tcp", addr)
		if err != nil {
			return err
		}
		defer conn.Close()
		d.log.Info("connected", "addr", addr)
		return d.run(conn)
	}

	if len(files) == 0 {
		return d.run(os.Stdin)
	}

	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		err = d.run(f)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func (d *dumper) run(r io.Reader) error {
	reader := bufio.NewReader(r)
	for {
		// read until we encounter a newline
		// really we should have \r\n, but we allow the parser to check that \r exists
		frame, err := reader.ReadBytes('\n')
		if len(frame) > 0 {
			d.frame(frame)
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (d *dumper) frame(frame []byte) {
	d.total++

	m, err := msg.Parse(frame)
	if d.store != nil {
		if rerr := d.store.Record(frame, m, err); rerr != nil {
			d.log.Error("recording frame", "err", rerr)
		}
	}

	switch {
	case errors.Is(err, msg.ErrIncomplete):
		d.incomplete++
		d.log.Warn("incomplete frame", "err", err)
	case err != nil:
		d.malformed++
		d.log.Warn("malformed frame", "err", err)
	default:
		if !d.quiet {
			d.print(m)
		}
	}
}

func (d *dumper) print(m *msg.Message) {
	if !d.pretty {
		fmt.Println(m)
		return
	}

	source := ""
	if _, ok := m.Source.(msg.Implicit); !ok {
		source = m.Source.String()
	}
	fmt.Printf("%-18s %-32s", m.Command, source)
	for _, p := range m.Params {
		fmt.Printf(" %q", p)
	}
	fmt.Println()
}
