package main

import (
	"flag"
	"fmt"
	"io"
	"runtime"
)

type config struct {
	q         int
	workers   int
	tableDir  string
	html      string
	npyDir    string
	serve     string
	maxQ      int
	progress  string
	verbosity int
}

// parseFlags returns the configuration, and whether to exit right away
// with the given code.
func parseFlags(args []string, stderr io.Writer) (config, bool, int) {
	var cfg config
	fs := flag.NewFlagSet("gausstable", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.q, "q", 0, "prime characteristic q; 0 prompts for it")
	fs.IntVar(&cfg.workers, "workers", runtime.NumCPU(), "rows computed in parallel")
	fs.StringVar(&cfg.tableDir, "tables", "", "directory caching discrete log tables (empty disables)")
	fs.StringVar(&cfg.html, "html", "", "write the colored table to this HTML file")
	fs.StringVar(&cfg.npyDir, "npy", "", "export the table and row labels as .npy files into this directory")
	fs.StringVar(&cfg.serve, "serve", "", "serve compute requests over socket.io on this address instead")
	fs.IntVar(&cfg.maxQ, "max_q", 31, "largest q accepted by -serve")
	fs.StringVar(&cfg.progress, "progress", "auto", "progress bars: auto, on or off")
	fs.IntVar(&cfg.verbosity, "verbosity", 3, "log level 0-5")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return cfg, true, 0
		}
		return cfg, true, 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", fs.Args())
		return cfg, true, 2
	}
	switch cfg.progress {
	case "auto", "on", "off":
	default:
		fmt.Fprintf(stderr, "invalid -progress %q: want auto, on or off\n", cfg.progress)
		return cfg, true, 2
	}
	return cfg, false, 0
}
