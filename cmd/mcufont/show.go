package main

import (
	"flag"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/manmuqingshan/mcufont/internal/encoding"
	"github.com/manmuqingshan/mcufont/internal/font"
)

func cmdShowEncoded(logger *slog.Logger, args []string) int {
	fs := flag.NewFlagSet("show_encoded", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		logger.Error("usage: show_encoded <datfile>")
		return 1
	}

	df, err := loadDataFile(fs.Arg(0))
	if err != nil {
		logger.Error("load failed", "err", err)
		return 2
	}

	ef, err := encoding.EncodeFont(df)
	if err != nil {
		logger.Error("encode failed", "err", err)
		return 2
	}

	i := font.DictStart
	for _, d := range ef.RLEDictionary {
		fmt.Printf("Dict RLE %d: % x\n", i, d)
		i++
	}
	for _, d := range ef.RefDictionary {
		fmt.Printf("Dict Ref %d: % x\n", i, d)
		i++
	}
	for gi, g := range ef.Glyphs {
		fmt.Printf("Glyph %d: % x\n", gi, g)
	}

	return 0
}

func cmdShowGlyph(logger *slog.Logger, args []string) int {
	fs := flag.NewFlagSet("show_glyph", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 2 {
		logger.Error(`usage: show_glyph <datfile> <index>|largest`)
		return 1
	}

	df, err := loadDataFile(fs.Arg(0))
	if err != nil {
		logger.Error("load failed", "err", err)
		return 2
	}

	index := 0
	if fs.Arg(1) == "largest" {
		ef, err := encoding.EncodeFont(df)
		if err != nil {
			logger.Error("encode failed", "err", err)
			return 2
		}
		maxLen := 0
		for i, g := range ef.Glyphs {
			if len(g) > maxLen {
				maxLen = len(g)
				index = i
			}
		}
		fmt.Printf("Index %d, length %d\n", index, maxLen)
	} else {
		n, err := strconv.Atoi(fs.Arg(1))
		if err != nil {
			logger.Error(`index must be an integer or "largest"`, "err", err)
			return 1
		}
		index = n
	}

	if index < 0 || index >= df.GlyphCount() {
		logger.Error("no such glyph", "index", index)
		return 2
	}

	fmt.Print(df.GlyphAt(index).Render())
	return 0
}
