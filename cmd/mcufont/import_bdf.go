package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/manmuqingshan/mcufont/internal/importer/bdf"
)

func cmdImportBDF(logger *slog.Logger, args []string) int {
	fs := flag.NewFlagSet("import_bdf", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		logger.Error("usage: import_bdf <bdffile>")
		return 1
	}

	src := fs.Arg(0)
	dest := stripExtension(src) + ".dat"

	in, err := os.Open(src)
	if err != nil {
		logger.Error("could not open source font", "file", src, "err", err)
		return 2
	}
	defer in.Close()

	logger.Info("importing", "src", src, "dest", dest)
	df, err := bdf.Import(in)
	if err != nil {
		logger.Error("import failed", "err", err)
		return 2
	}

	if err := saveDataFile(dest, df); err != nil {
		logger.Error("save failed", "err", err)
		return 2
	}

	logger.Info("done", "glyphs", df.GlyphCount())
	return 0
}
