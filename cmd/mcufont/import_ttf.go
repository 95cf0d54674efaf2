package main

import (
	"flag"
	"log/slog"
	"os"
	"strconv"

	"github.com/manmuqingshan/mcufont/internal/importer/outline"
)

func cmdImportTTF(logger *slog.Logger, args []string) int {
	fs := flag.NewFlagSet("import_ttf", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 2 && fs.NArg() != 3 {
		logger.Error("usage: import_ttf <ttffile> <size> [bw]")
		return 1
	}

	src := fs.Arg(0)
	size, err := strconv.Atoi(fs.Arg(1))
	if err != nil {
		logger.Error("size must be an integer", "err", err)
		return 1
	}
	bw := fs.NArg() == 3 && fs.Arg(2) == "bw"

	suffix := strconv.Itoa(size)
	if bw {
		suffix += "bw"
	}
	dest := stripExtension(src) + suffix + ".dat"

	data, err := os.ReadFile(src)
	if err != nil {
		logger.Error("could not read source font", "file", src, "err", err)
		return 2
	}

	logger.Info("importing", "src", src, "dest", dest, "size", size)
	df, err := outline.Import(data, outline.Options{PixelSize: size, Monochrome: bw})
	if err != nil {
		logger.Error("import failed", "err", err)
		return 2
	}
	if df.GlyphCount() == 0 {
		logger.Error("import produced no glyphs, size may be too small for this font", "size", size)
		return 2
	}

	if err := saveDataFile(dest, df); err != nil {
		logger.Error("save failed", "err", err)
		return 2
	}

	logger.Info("done", "glyphs", df.GlyphCount())
	return 0
}
