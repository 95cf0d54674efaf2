package main

import (
	"flag"
	"fmt"
	"log/slog"

	"github.com/manmuqingshan/mcufont/internal/encoding"
)

func cmdSize(logger *slog.Logger, args []string) int {
	fs := flag.NewFlagSet("size", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		logger.Error("usage: size <datfile>")
		return 1
	}

	df, err := loadDataFile(fs.Arg(0))
	if err != nil {
		logger.Error("load failed", "err", err)
		return 2
	}

	size, err := encoding.EncodedSize(df)
	if err != nil {
		logger.Error("size estimation failed", "err", err)
		return 2
	}

	info := df.FontInfo()
	glyphs := df.GlyphCount()
	uncompressed := glyphs * info.MaxWidth * info.MaxHeight / 2

	fmt.Printf("Glyph count:       %d\n", glyphs)
	fmt.Printf("Glyph bbox:        %dx%d pixels\n", info.MaxWidth, info.MaxHeight)
	fmt.Printf("Uncompressed size: %d bytes\n", uncompressed)
	fmt.Printf("Compressed size:   %d bytes\n", size)
	if glyphs > 0 {
		fmt.Printf("Bytes per glyph:   %d\n", size/glyphs)
	}
	return 0
}
