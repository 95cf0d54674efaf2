package main

import (
	"flag"
	"log/slog"
	"strconv"
	"strings"
)

func cmdFilter(logger *slog.Logger, args []string) int {
	fs := flag.NewFlagSet("filter", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() < 2 {
		logger.Error("usage: filter <datfile> <range> ...")
		return 1
	}

	src := fs.Arg(0)
	allowed := make(map[rune]bool)
	for _, spec := range fs.Args()[1:] {
		lo, hi, err := parseRange(spec)
		if err != nil {
			logger.Error("invalid range", "range", spec, "err", err)
			return 1
		}
		for c := lo; c <= hi; c++ {
			allowed[c] = true
		}
	}

	df, err := loadDataFile(src)
	if err != nil {
		logger.Error("load failed", "err", err)
		return 2
	}
	before := df.GlyphCount()

	filtered, err := df.Filter(func(c rune) bool { return allowed[c] })
	if err != nil {
		logger.Error("filter failed", "err", err)
		return 2
	}

	logger.Info("filtered", "glyphs_before", before, "glyphs_after", filtered.GlyphCount())

	if err := saveDataFile(src, filtered); err != nil {
		logger.Error("save failed", "err", err)
		return 2
	}
	return 0
}

// parseRange parses a single codepoint ("65" or "0x41") or an inclusive
// range ("65-90"), matching the original CLI's "-" separated range syntax.
func parseRange(spec string) (lo, hi rune, err error) {
	if i := strings.IndexByte(spec, '-'); i > 0 {
		loN, err := strconv.ParseInt(spec[:i], 0, 32)
		if err != nil {
			return 0, 0, err
		}
		hiN, err := strconv.ParseInt(spec[i+1:], 0, 32)
		if err != nil {
			return 0, 0, err
		}
		return rune(loN), rune(hiN), nil
	}
	n, err := strconv.ParseInt(spec, 0, 32)
	if err != nil {
		return 0, 0, err
	}
	return rune(n), rune(n), nil
}
