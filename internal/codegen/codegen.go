// Package codegen emits a font's encoded form as portable C source: a
// header declaring the font object and a source file defining its backing
// tables, the "target source language" of a microcontroller build (§1).
package codegen

import (
	"bytes"
	"sort"
	"strings"
	"text/template"

	"github.com/manmuqingshan/mcufont/internal/encoding"
	"github.com/manmuqingshan/mcufont/internal/font"
)

type codeEntry struct {
	Code  uint32
	Glyph int
}

type dictTable struct {
	Data    string // comma-separated hex bytes, concatenated across all entries
	Offsets []int
	Lengths []int
	Kinds   []int // 0 = RLE, 1 = REF, in dictionary order (RLE entries first)
}

type glyphTable struct {
	Data    string
	Offsets []int
	Lengths []int
}

type templateData struct {
	Name string
	Hex  string // Name upper-cased, for the include guard

	MaxWidth   int
	MaxHeight  int
	BaselineX  int
	BaselineY  int
	LineHeight int

	Dict   dictTable
	Glyphs glyphTable
	Codes  []codeEntry
}

func buildData(baseName string, f *font.DataFile) (templateData, error) {
	ef, err := encoding.EncodeFont(f)
	if err != nil {
		return templateData{}, err
	}

	info := f.FontInfo()
	d := templateData{
		Name:       baseName,
		Hex:        strings.ToUpper(baseName),
		MaxWidth:   info.MaxWidth,
		MaxHeight:  info.MaxHeight,
		BaselineX:  info.BaselineX,
		BaselineY:  info.BaselineY,
		LineHeight: info.LineHeight,
	}

	var dictBytes []byte
	offset := 0
	for _, e := range ef.RLEDictionary {
		d.Dict.Offsets = append(d.Dict.Offsets, offset)
		d.Dict.Lengths = append(d.Dict.Lengths, len(e))
		d.Dict.Kinds = append(d.Dict.Kinds, 0)
		dictBytes = append(dictBytes, e...)
		offset += len(e)
	}
	for _, e := range ef.RefDictionary {
		d.Dict.Offsets = append(d.Dict.Offsets, offset)
		d.Dict.Lengths = append(d.Dict.Lengths, len(e))
		d.Dict.Kinds = append(d.Dict.Kinds, 1)
		dictBytes = append(dictBytes, e...)
		offset += len(e)
	}
	d.Dict.Data = hexList(dictBytes)

	var glyphBytes []byte
	offset = 0
	for _, g := range ef.Glyphs {
		d.Glyphs.Offsets = append(d.Glyphs.Offsets, offset)
		d.Glyphs.Lengths = append(d.Glyphs.Lengths, len(g))
		glyphBytes = append(glyphBytes, g...)
		offset += len(g)
	}
	d.Glyphs.Data = hexList(glyphBytes)

	for i := 0; i < f.GlyphCount(); i++ {
		for _, c := range f.GlyphAt(i).Codes {
			d.Codes = append(d.Codes, codeEntry{Code: uint32(c), Glyph: i})
		}
	}
	sort.Slice(d.Codes, func(i, j int) bool { return d.Codes[i].Code < d.Codes[j].Code })

	return d, nil
}

func hexList(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = hexByte(v)
	}
	return strings.Join(parts, ", ")
}

func hexByte(b byte) string {
	const digits = "0123456789abcdef"
	return "0x" + string([]byte{digits[b>>4], digits[b&0xf]})
}

// WriteHeader renders the <name>.h declaration of the font object.
func WriteHeader(baseName string, f *font.DataFile) (string, error) {
	d, err := buildData(baseName, f)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := headerTemplate.Execute(&buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteSource renders the <name>.c definition of the font object's
// backing tables.
func WriteSource(baseName string, f *font.DataFile) (string, error) {
	d, err := buildData(baseName, f)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := sourceTemplate.Execute(&buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var headerTemplate = template.Must(template.New("header").Parse(
	`#ifndef MCUFONT_{{.Hex}}_H
#define MCUFONT_{{.Hex}}_H

#include <stdint.h>

#ifndef MCUFONT_FONT_STRUCT_DEFINED
#define MCUFONT_FONT_STRUCT_DEFINED
struct mcufont_font {
    uint8_t max_width;
    uint8_t max_height;
    int8_t baseline_x;
    int8_t baseline_y;
    uint8_t line_height;

    uint16_t dictionary_count;
    const uint8_t *dictionary_data;
    const uint16_t *dictionary_offsets;
    const uint8_t *dictionary_lengths;
    const uint8_t *dictionary_kinds;

    uint16_t glyph_count;
    const uint8_t *glyph_data;
    const uint16_t *glyph_offsets;
    const uint8_t *glyph_lengths;

    uint16_t char_count;
    const uint32_t *char_codes;
    const uint16_t *char_glyphs;
};
#endif

extern const struct mcufont_font {{.Name}};

#endif
`))

var sourceTemplate = template.Must(template.New("source").Parse(
	`#include "{{.Name}}.h"

static const uint8_t {{.Name}}_dictionary_data[] = {
    {{.Dict.Data}}
};

static const uint16_t {{.Name}}_dictionary_offsets[] = {
    {{range .Dict.Offsets}}{{.}}, {{end}}
};

static const uint8_t {{.Name}}_dictionary_lengths[] = {
    {{range .Dict.Lengths}}{{.}}, {{end}}
};

static const uint8_t {{.Name}}_dictionary_kinds[] = {
    {{range .Dict.Kinds}}{{.}}, {{end}}
};

static const uint8_t {{.Name}}_glyph_data[] = {
    {{.Glyphs.Data}}
};

static const uint16_t {{.Name}}_glyph_offsets[] = {
    {{range .Glyphs.Offsets}}{{.}}, {{end}}
};

static const uint8_t {{.Name}}_glyph_lengths[] = {
    {{range .Glyphs.Lengths}}{{.}}, {{end}}
};

static const uint32_t {{.Name}}_char_codes[] = {
    {{range .Codes}}{{.Code}}, {{end}}
};

static const uint16_t {{.Name}}_char_glyphs[] = {
    {{range .Codes}}{{.Glyph}}, {{end}}
};

const struct mcufont_font {{.Name}} = {
    {{.MaxWidth}}, {{.MaxHeight}}, {{.BaselineX}}, {{.BaselineY}}, {{.LineHeight}},
    {{len .Dict.Offsets}}, {{.Name}}_dictionary_data, {{.Name}}_dictionary_offsets,
    {{.Name}}_dictionary_lengths, {{.Name}}_dictionary_kinds,
    {{len .Glyphs.Offsets}}, {{.Name}}_glyph_data, {{.Name}}_glyph_offsets, {{.Name}}_glyph_lengths,
    {{len .Codes}}, {{.Name}}_char_codes, {{.Name}}_char_glyphs,
};
`))
