// Command gausstable computes the Gauss sums of GF(q^2) relative to GF(q)
// and groups the theta rows that are identical.
//
// Usage:
//
//	gausstable [flags]
//
// Flags:
//
//	-q          prime characteristic (default: prompt)
//	-workers    rows computed in parallel (default: NumCPU)
//	-tables     discrete log table cache directory
//	-html       write the colored table as HTML
//	-npy        export the table projection and row labels as .npy
//	-serve      serve requests over socket.io on an address
//	-progress   auto, on or off (default: auto)
//	-verbosity  log level 0-5 (default: 3)
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"golang.org/x/term"

	"github.com/jamwevan/MATH-440/export"
	"github.com/jamwevan/MATH-440/field"
	"github.com/jamwevan/MATH-440/pipeline"
	"github.com/jamwevan/MATH-440/render"
	"github.com/jamwevan/MATH-440/server"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is the actual entry point, returning an exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, exit, code := parseFlags(args, stderr)
	if exit {
		return code
	}
	setupLogging(cfg.verbosity, stderr)

	if cfg.serve != "" {
		srv := server.New(server.Config{Workers: cfg.workers, TableDir: cfg.tableDir, MaxQ: cfg.maxQ})
		if err := srv.ListenAndServe(cfg.serve); err != nil {
			log.Error("Server failed", "err", err)
			return 1
		}
		return 0
	}

	q := cfg.q
	if q == 0 {
		var err error
		if q, err = promptPrime(stdin, stdout); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}

	var progress io.Writer
	if cfg.progress == "on" || (cfg.progress == "auto" && isTerminal(stderr)) {
		progress = stderr
	}
	res, err := pipeline.Run(pipeline.Config{Q: q, Workers: cfg.workers, TableDir: cfg.tableDir, Progress: progress})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	log.Info("Computation finished", "q", q, "groups", len(res.Groups), "elapsed", res.Elapsed)

	if err := render.Console(stdout, q, res.Groups); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if cfg.html != "" {
		if err := render.SaveHTML(cfg.html, res.Table, res.Groups); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprintf(stdout, "Saved Gauss Sum Table as %s\n", cfg.html)
	}
	if cfg.npyDir != "" {
		files, err := export.WriteNPY(cfg.npyDir, res.Table, res.Groups)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		log.Info("Exported table", "real", files.Real, "imag", files.Imag, "labels", files.Labels)
	}
	return 0
}

// promptPrime asks until a prime q >= 2 is entered.
func promptPrime(in io.Reader, out io.Writer) (int, error) {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Enter a prime number (q >= 2): ")
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, fmt.Errorf("read q: %w", err)
			}
			return 0, errors.New("read q: no input")
		}
		q, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
		if err != nil {
			fmt.Fprintln(out, "Please enter a valid number.")
			continue
		}
		if err := field.Validate(q); err != nil {
			fmt.Fprintln(out, err)
			fmt.Fprintln(out, "Please enter a valid prime number (q >= 2).")
			continue
		}
		return q, nil
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func setupLogging(verbosity int, w io.Writer) {
	var lvl slog.Level
	switch {
	case verbosity <= 1:
		lvl = slog.LevelError
	case verbosity == 2:
		lvl = slog.LevelWarn
	case verbosity == 3:
		lvl = slog.LevelInfo
	case verbosity == 4:
		lvl = slog.LevelDebug
	default:
		lvl = log.LevelTrace
	}
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(w, lvl, isTerminal(w))))
}
