package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arloliu/lzs/asset"
)

func cmdPack(args []string, stdout, stderr io.Writer) error {
	fs, verbose := newFlagSet("pack", stderr)
	pattern := fs.String("pattern", "**/*.json", "doublestar pattern of assets to pack")
	outDir := fs.String("out", "", "output directory (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	logger := newLogger(stderr, *verbose)

	if *outDir == "" || fs.NArg() != 1 {
		fmt.Fprintln(stderr, "lzs pack: need -out and exactly one root directory")
		return errUsage
	}
	root := fs.Arg(0)

	bundles, err := asset.Pack(os.DirFS(root), *pattern)
	if err != nil {
		return err
	}

	var original, packed int
	for _, b := range bundles {
		dst := filepath.Join(*outDir, filepath.FromSlash(b.Name))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(dst, b.Data, 0o644); err != nil {
			return err
		}

		logger.Debug("packed", "name", b.Name, "original", b.Original, "packed", b.Packed, "sum", fmt.Sprintf("%016x", b.Sum))
		original += b.Original
		packed += b.Packed
	}

	logger.Info("packDone", "root", root, "files", len(bundles), "original", original, "packed", packed)
	fmt.Fprintf(stdout, "%d files, %d -> %d bytes\n", len(bundles), original, packed)

	return nil
}
