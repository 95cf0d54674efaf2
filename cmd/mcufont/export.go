package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/manmuqingshan/mcufont/internal/codegen"
)

func cmdExport(logger *slog.Logger, args []string) int {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 2 {
		logger.Error("usage: export <datfile> <basename>")
		return 1
	}

	src, base := fs.Arg(0), fs.Arg(1)
	df, err := loadDataFile(src)
	if err != nil {
		logger.Error("load failed", "err", err)
		return 2
	}

	header, err := codegen.WriteHeader(base, df)
	if err != nil {
		logger.Error("generating header failed", "err", err)
		return 2
	}
	if err := os.WriteFile(base+".h", []byte(header), 0644); err != nil {
		logger.Error("writing header failed", "err", err)
		return 2
	}
	logger.Info("wrote header", "file", base+".h")

	source, err := codegen.WriteSource(base, df)
	if err != nil {
		logger.Error("generating source failed", "err", err)
		return 2
	}
	if err := os.WriteFile(base+".c", []byte(source), 0644); err != nil {
		logger.Error("writing source failed", "err", err)
		return 2
	}
	logger.Info("wrote source", "file", base+".c")

	return 0
}
