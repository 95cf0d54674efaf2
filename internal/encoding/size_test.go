package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/manmuqingshan/mcufont/internal/font"
)

func TestEncodedFontSizeCountsHeaderDictAndGlyphOverhead(t *testing.T) {
	ef := &EncodedFont{
		RLEDictionary: [][]byte{{1, 2}},
		RefDictionary: [][]byte{{3, 4, 5}},
		Glyphs:        [][]byte{{9}, {10, 11}},
	}

	got := EncodedFontSize(ef)
	want := headerOverhead + (1 + 2) + (1 + 3) + (2 + 1) + (2 + 2)
	require.Equal(t, want, got)
}

func TestEncodedSizeMatchesEncodedFontSize(t *testing.T) {
	info := font.FontInfo{MaxWidth: 2, MaxHeight: 1}
	g, err := font.NewGlyph(2, 1, []font.Pixel{0, 0}, 0, 2, []rune{'A'})
	require.NoError(t, err)
	df, err := font.NewDataFile(info, font.InitialDictionary(), []font.Glyph{g})
	require.NoError(t, err)

	size, err := EncodedSize(df)
	require.NoError(t, err)

	ef, err := EncodeFont(df)
	require.NoError(t, err)
	require.Equal(t, EncodedFontSize(ef), size)
}

func TestEncodedSizeIsReproducibleAcrossEqualDataFiles(t *testing.T) {
	info := font.FontInfo{MaxWidth: 1, MaxHeight: 1}
	g, err := font.NewGlyph(1, 1, []font.Pixel{0}, 0, 1, []rune{'A'})
	require.NoError(t, err)
	df1, err := font.NewDataFile(info, nil, []font.Glyph{g})
	require.NoError(t, err)
	df2, err := font.NewDataFile(info, nil, []font.Glyph{g})
	require.NoError(t, err)

	s1, err := EncodedSize(df1)
	require.NoError(t, err)
	s2, err := EncodedSize(df2)
	require.NoError(t, err)
	require.Equal(t, s1, s2)
}

func TestEncodedSizePropagatesOverflow(t *testing.T) {
	info := font.FontInfo{MaxWidth: 1, MaxHeight: 1}
	g, err := font.NewGlyph(1, 1, []font.Pixel{5}, 0, 1, []rune{'A'})
	require.NoError(t, err)
	df, err := font.NewDataFile(info, nil, []font.Glyph{g})
	require.NoError(t, err)

	_, err = EncodedSize(df)
	require.ErrorIs(t, err, ErrOverflow)
}
