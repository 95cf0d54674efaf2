package main

import (
	"flag"
	"log/slog"
	"math/rand"
	"strconv"
	"time"

	"github.com/manmuqingshan/mcufont/internal/encoding"
	"github.com/manmuqingshan/mcufont/internal/optimize"
)

func cmdOptimize(logger *slog.Logger, args []string) int {
	fs := flag.NewFlagSet("optimize", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 && fs.NArg() != 2 {
		logger.Error("usage: optimize <datfile> [limit]")
		return 1
	}

	src := fs.Arg(0)
	limit := 100
	if fs.NArg() == 2 {
		n, err := strconv.Atoi(fs.Arg(1))
		if err != nil {
			logger.Error("limit must be an integer", "err", err)
			return 1
		}
		limit = n
	}

	df, err := loadDataFile(src)
	if err != nil {
		logger.Error("load failed", "err", err)
		return 2
	}

	oldSize, err := encoding.EncodedSize(df)
	if err != nil {
		logger.Error("size estimation failed", "err", err)
		return 2
	}
	logger.Info("starting optimization", "original_size", oldSize, "limit", limit)

	// The iteration count and wall-clock timing live here, in the caller,
	// never inside optimize.Optimize: it performs exactly one mutate/
	// measure/commit-or-discard step per call.
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	start := time.Now()
	for i := 0; limit <= 0 || i < limit; i++ {
		next, accepted := optimize.Optimize(df, rng)
		if accepted {
			df = next
		}

		newSize, err := encoding.EncodedSize(df)
		if err != nil {
			logger.Error("size estimation failed", "err", err)
			return 2
		}

		elapsed := time.Since(start).Minutes()
		bytesPerMin := 0.0
		if elapsed > 0 {
			bytesPerMin = float64(oldSize-newSize) / elapsed
		}
		logger.Info("iteration", "n", i+1, "size", newSize, "accepted", accepted, "bytes_per_min", int(bytesPerMin))

		if err := saveDataFile(src, df); err != nil {
			logger.Error("save failed", "err", err)
			return 2
		}
	}

	return 0
}
