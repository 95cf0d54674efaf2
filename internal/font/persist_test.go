package font

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func buildRoundTripFont(t *testing.T) *DataFile {
	t.Helper()
	info := FontInfo{
		MaxWidth: 2, MaxHeight: 2,
		BaselineX: 0, BaselineY: 2, LineHeight: 3,
		FontName: "Test Font", Style: "",
	}
	g1, err := NewGlyph(2, 2, []Pixel{0, 15, 15, 0}, 0, 2, []rune{'A'})
	require.NoError(t, err)
	g2, err := NewGlyph(2, 2, []Pixel{15, 15, 15, 15}, 1, 3, []rune{'B', 'C'})
	require.NoError(t, err)

	dict := Dictionary{
		{Kind: RLE, Bytes: []byte{1, 1}},
		{Kind: REF, Bytes: []byte{DictStart, 1}},
	}
	df, err := NewDataFile(info, dict, []Glyph{g1, g2})
	require.NoError(t, err)
	return df
}

func TestSaveLoadRoundTrip(t *testing.T) {
	df := buildRoundTripFont(t)

	var buf strings.Builder
	require.NoError(t, df.Save(&buf))

	loaded, err := Load(strings.NewReader(buf.String()))
	require.NoError(t, err)

	require.Equal(t, df.FontInfo(), loaded.FontInfo())
	require.Empty(t, cmp.Diff(df.Dictionary(), loaded.Dictionary()))
	require.Equal(t, df.GlyphCount(), loaded.GlyphCount())
	for i := 0; i < df.GlyphCount(); i++ {
		require.Empty(t, cmp.Diff(df.GlyphAt(i), loaded.GlyphAt(i)))
	}
}

func TestSaveIsDeterministic(t *testing.T) {
	df := buildRoundTripFont(t)

	var first, second strings.Builder
	require.NoError(t, df.Save(&first))
	require.NoError(t, df.Save(&second))
	require.Equal(t, first.String(), second.String())
}

func TestSaveLoadFixedPoint(t *testing.T) {
	df := buildRoundTripFont(t)

	var buf1 strings.Builder
	require.NoError(t, df.Save(&buf1))
	loaded, err := Load(strings.NewReader(buf1.String()))
	require.NoError(t, err)

	var buf2 strings.Builder
	require.NoError(t, loaded.Save(&buf2))

	require.Equal(t, buf1.String(), buf2.String())
}

func TestLoadQuotesFontNameWithSpaces(t *testing.T) {
	df := buildRoundTripFont(t)
	var buf strings.Builder
	require.NoError(t, df.Save(&buf))
	require.Contains(t, buf.String(), `FontName "Test Font"`)
}

func TestLoadRejectsEmptyFile(t *testing.T) {
	_, err := Load(strings.NewReader(""))
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
}

func TestLoadRejectsMissingVersion(t *testing.T) {
	_, err := Load(strings.NewReader("NotAVersion 1\n"))
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
}

func TestLoadRejectsUnsupportedVersion(t *testing.T) {
	_, err := Load(strings.NewReader("Version 99\n"))
	require.Error(t, err)
}

func TestLoadRejectsMalformedDimensions(t *testing.T) {
	src := "Version 1\n" +
		"FontName x\n" +
		"MaxWidth abc       MaxHeight 2\n" +
		"Baseline 0 2 LineHeight 3\n" +
		"Flags 0\n"
	_, err := Load(strings.NewReader(src))
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
}

func TestLoadRejectsMissingHeaderDirective(t *testing.T) {
	src := "Version 1\n" +
		"FontName x\n" +
		"MaxWidth 2       MaxHeight 2\n" +
		"Flags 0\n" +
		"Glyph 2 2 0 65 00000000\n"
	_, err := Load(strings.NewReader(src))
	require.Error(t, err)
}

func TestLoadRejectsBadGlyphByteCount(t *testing.T) {
	src := "Version 1\n" +
		"FontName x\n" +
		"MaxWidth 2       MaxHeight 2\n" +
		"Baseline 0 2 LineHeight 3\n" +
		"Flags 0\n" +
		"Glyph 2 2 0 65 00\n"
	_, err := Load(strings.NewReader(src))
	require.Error(t, err)
}

func TestLoadAcceptsMonochromeFlag(t *testing.T) {
	src := "Version 1\n" +
		"FontName x\n" +
		"MaxWidth 1       MaxHeight 1\n" +
		"Baseline 0 1 LineHeight 1\n" +
		"Flags 1\n" +
		"Glyph 1 1 1 65 00\n"
	df, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	require.True(t, df.FontInfo().Monochrome)
}

func TestSortedCodes(t *testing.T) {
	codes := map[rune]bool{'c': true, 'a': true, 'b': true}
	require.Equal(t, []rune{'a', 'b', 'c'}, SortedCodes(codes))
}
