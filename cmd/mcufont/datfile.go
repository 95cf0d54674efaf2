package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/manmuqingshan/mcufont/internal/font"
)

func stripExtension(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[:i]
	}
	return name
}

func loadDataFile(path string) (*font.DataFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	defer f.Close()
	return font.Load(f)
}

func saveDataFile(path string, df *font.DataFile) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	defer f.Close()
	return df.Save(f)
}
