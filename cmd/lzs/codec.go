package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/arloliu/lzs"
	"github.com/arloliu/lzs/format"
)

func parseAlphabetFlag(name string) (format.AlphabetType, error) {
	alpha, ok := format.ParseAlphabet(name)
	if !ok {
		return 0, fmt.Errorf("%w: unknown alphabet %q", errUsage, name)
	}

	return alpha, nil
}

func cmdEncode(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs, verbose := newFlagSet("encode", stderr)
	alphaName := fs.String("alphabet", "base64", "output form: base64, uri, utf16, bytes or raw")
	if err := fs.Parse(args); err != nil {
		return err
	}
	logger := newLogger(stderr, *verbose)

	alpha, err := parseAlphabetFlag(*alphaName)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}

	input, err := readInput(fs.Arg(0), stdin)
	if err != nil {
		return err
	}

	out, err := lzs.New().Encode(alpha, string(input))
	if err != nil {
		return err
	}
	logger.Debug("encoded", "alphabet", alpha.String(), "in", len(input), "out", len(out))

	_, err = stdout.Write(out)

	return err
}

func cmdDecode(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs, verbose := newFlagSet("decode", stderr)
	alphaName := fs.String("alphabet", "base64", "input form: base64, uri, utf16, bytes or raw")
	if err := fs.Parse(args); err != nil {
		return err
	}
	logger := newLogger(stderr, *verbose)

	alpha, err := parseAlphabetFlag(*alphaName)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}

	input, err := readInput(fs.Arg(0), stdin)
	if err != nil {
		return err
	}

	// text payloads usually arrive with a trailing newline from editors or echo
	switch alpha {
	case format.AlphabetBase64, format.AlphabetURIComponent, format.AlphabetUTF16:
		input = bytes.TrimRight(input, "\r\n")
	}

	text, err := lzs.New().Decode(alpha, input)
	if err != nil {
		return fmt.Errorf("decode %s: %w", alpha, err)
	}
	logger.Debug("decoded", "alphabet", alpha.String(), "in", len(input), "out", len(text))

	_, err = io.WriteString(stdout, text)

	return err
}
