package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/arloliu/lzs"
	"github.com/arloliu/lzs/compress"
	"github.com/arloliu/lzs/format"
)

var statsAlphabets = []format.AlphabetType{
	format.AlphabetBase64,
	format.AlphabetURIComponent,
	format.AlphabetUTF16,
	format.AlphabetBytes,
}

func cmdStats(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs, verbose := newFlagSet("stats", stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	logger := newLogger(stderr, *verbose)

	input, err := readInput(fs.Arg(0), stdin)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "kind\tname\tbytes\tratio\t\n")

	codec := lzs.New()
	for _, alpha := range statsAlphabets {
		out, err := codec.Encode(alpha, string(input))
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "lzs\t%s\t%d\t%s\t\n", alpha, len(out), ratio(len(out), len(input)))
	}

	for _, ct := range compress.Types() {
		stats, err := compress.Measure(ct, input)
		if err != nil {
			// LZString rejects binary input; the other codecs still apply
			logger.Warn("codecSkipped", "codec", ct.String(), "err", err)
			continue
		}
		logger.Debug("measured", "codec", ct.String(),
			"compress", time.Duration(stats.CompressionTimeNs).String(),
			"decompress", time.Duration(stats.DecompressionTimeNs).String())
		fmt.Fprintf(tw, "codec\t%s\t%d\t%s\t\n", ct, stats.CompressedSize, ratio(int(stats.CompressedSize), len(input)))
	}

	return tw.Flush()
}

func ratio(n, of int) string {
	if of == 0 {
		return "-"
	}

	return fmt.Sprintf("%.3f", float64(n)/float64(of))
}
