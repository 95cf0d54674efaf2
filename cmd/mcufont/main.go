// Command mcufont imports, optimizes, inspects, and exports bitmap fonts
// compressed for microcontroller use.
package main

import (
	"fmt"
	"log/slog"
	"os"
)

type command func(logger *slog.Logger, args []string) int

var commands = map[string]command{
	"import_ttf":   cmdImportTTF,
	"import_bdf":   cmdImportBDF,
	"export":       cmdExport,
	"filter":       cmdFilter,
	"size":         cmdSize,
	"optimize":     cmdOptimize,
	"show_encoded": cmdShowEncoded,
	"show_glyph":   cmdShowGlyph,
}

const usage = `Usage: mcufont <command> [options] ...
   import_ttf <ttffile> <size> [bw]   Import a .ttf/.otf font into a data file.
   import_bdf <bdffile>               Import a .bdf font into a data file.
   export <datfile> <basename>        Export to .c and .h source code.
   filter <datfile> <range> ...       Remove everything except specified characters.
   size <datfile>                     Check the encoded size of the data file.
   optimize <datfile> [limit]         Perform optimization passes on the data file.
   show_encoded <datfile>             Show the encoded data for debugging.
   show_glyph <datfile> <index>       Show the glyph at index.
`

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	os.Exit(cmd(logger, os.Args[2:]))
}
