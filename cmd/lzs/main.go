// lzs - command line front end for the lzs codec
//
// Usage:
//
//	lzs encode [-alphabet base64|uri|utf16|bytes|raw] [file]   Compress text
//	lzs decode [-alphabet base64|uri|utf16|bytes|raw] [file]   Decompress a payload
//	lzs pack [-pattern '**/*.json'] -out dir root             Pack JSON assets
//	lzs stats [file]                                          Compare forms and codecs
//
// If no file is given, input is read from stdin. Diagnostics go to stderr
// through log/slog; -v enables debug output.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 2
	}

	cmd, rest := args[0], args[1:]

	var err error
	switch cmd {
	case "encode":
		err = cmdEncode(rest, stdin, stdout, stderr)
	case "decode":
		err = cmdDecode(rest, stdin, stdout, stderr)
	case "pack":
		err = cmdPack(rest, stdout, stderr)
	case "stats":
		err = cmdStats(rest, stdin, stdout, stderr)
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "lzs: unknown command: %s\n", cmd)
		printUsage(stderr)
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		return 2
	default:
		slog.New(slog.NewTextHandler(stderr, nil)).Error("commandFailed", "cmd", cmd, "err", err)
		return 1
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `usage:
  lzs encode [-alphabet base64|uri|utf16|bytes|raw] [file]
  lzs decode [-alphabet base64|uri|utf16|bytes|raw] [file]
  lzs pack [-pattern '**/*.json'] -out dir root
  lzs stats [file]
`)
}

// newFlagSet returns a flag set that reports errors to stderr, plus the
// shared -v flag.
func newFlagSet(name string, stderr io.Writer) (*flag.FlagSet, *bool) {
	fs := flag.NewFlagSet("lzs "+name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "enable debug logging")

	return fs, verbose
}

func newLogger(stderr io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

// readInput reads the named file, or stdin when name is "" or "-".
func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(name)
}
