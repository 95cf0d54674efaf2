package optimize

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/manmuqingshan/mcufont/internal/font"
)

func buildOptimizeTestFont(t *testing.T) *font.DataFile {
	t.Helper()
	info := font.FontInfo{MaxWidth: 4, MaxHeight: 1}
	pixels := []font.Pixel{0, 0, 0, 0}
	g, err := font.NewGlyph(4, 1, pixels, 0, 4, []rune{'A'})
	require.NoError(t, err)
	dict := font.Dictionary{
		{Kind: font.RLE, Bytes: []byte{2, 2}},
		{Kind: font.RLE, Bytes: []byte{2, 2}},
	}
	df, err := font.NewDataFile(info, dict, []font.Glyph{g})
	require.NoError(t, err)
	return df
}

func TestMutateReplaceProducesValidDictionary(t *testing.T) {
	df := buildOptimizeTestFont(t)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		dict, ok := mutateReplace(df, rng)
		if !ok {
			continue
		}
		_, err := df.WithDictionary(dict)
		require.NoError(t, err)
		return
	}
	t.Fatal("mutateReplace never produced a usable candidate across 50 attempts")
}

func TestFindNeighbourTokenFindsByteBeforeAndAfterOccurrence(t *testing.T) {
	streams := [][]byte{{9, 2, 2, 8}}
	rng := rand.New(rand.NewSource(2))

	seenBefore, seenAfter := false, false
	for i := 0; i < 50; i++ {
		b, ok := findNeighbourToken(streams, []byte{2, 2}, rng)
		require.True(t, ok)
		if b == 9 {
			seenBefore = true
		}
		if b == 8 {
			seenAfter = true
		}
	}
	require.True(t, seenBefore)
	require.True(t, seenAfter)
}

func TestFindNeighbourTokenRejectsEmptyNeedle(t *testing.T) {
	_, ok := findNeighbourToken([][]byte{{1, 2, 3}}, nil, rand.New(rand.NewSource(1)))
	require.False(t, ok)
}

func TestFindNeighbourTokenRejectsNoOccurrence(t *testing.T) {
	_, ok := findNeighbourToken([][]byte{{1, 2, 3}}, []byte{9, 9}, rand.New(rand.NewSource(1)))
	require.False(t, ok)
}

func TestMutateExtendRefusesEntryAtMaxLength(t *testing.T) {
	info := font.FontInfo{MaxWidth: 1, MaxHeight: 1}
	g, err := font.NewGlyph(1, 1, []font.Pixel{0}, 0, 1, []rune{'A'})
	require.NoError(t, err)
	longBytes := make([]byte, maxEntryLen)
	for i := range longBytes {
		longBytes[i] = 1
	}
	dict := font.Dictionary{{Kind: font.RLE, Bytes: longBytes}}
	df, err := font.NewDataFile(info, dict, []font.Glyph{g})
	require.NoError(t, err)

	_, ok := mutateExtend(df, rand.New(rand.NewSource(2)))
	require.False(t, ok)
}

func TestMutateExtendRefusesEmptyDictionary(t *testing.T) {
	info := font.FontInfo{MaxWidth: 1, MaxHeight: 1}
	g, err := font.NewGlyph(1, 1, []font.Pixel{0}, 0, 1, []rune{'A'})
	require.NoError(t, err)
	df, err := font.NewDataFile(info, nil, []font.Glyph{g})
	require.NoError(t, err)

	_, ok := mutateExtend(df, rand.New(rand.NewSource(2)))
	require.False(t, ok)
}

func TestMutateTrimShrinksAnEntryByOneToken(t *testing.T) {
	info := font.FontInfo{MaxWidth: 3, MaxHeight: 1}
	g, err := font.NewGlyph(3, 1, []font.Pixel{0, 0, 0}, 0, 3, []rune{'A'})
	require.NoError(t, err)
	dict := font.Dictionary{{Kind: font.RLE, Bytes: []byte{1, 1, 1}}}
	df, err := font.NewDataFile(info, dict, []font.Glyph{g})
	require.NoError(t, err)

	out, ok := mutateTrim(df, rand.New(rand.NewSource(3)))
	require.True(t, ok)
	require.Len(t, out[0].Bytes, 2)
}

func TestMutateTrimRefusesEntryAtMinimumLength(t *testing.T) {
	info := font.FontInfo{MaxWidth: 1, MaxHeight: 1}
	g, err := font.NewGlyph(1, 1, []font.Pixel{0}, 0, 1, []rune{'A'})
	require.NoError(t, err)
	dict := font.Dictionary{{Kind: font.RLE, Bytes: []byte{1, 1}}}
	df, err := font.NewDataFile(info, dict, []font.Glyph{g})
	require.NoError(t, err)

	_, ok := mutateTrim(df, rand.New(rand.NewSource(4)))
	require.False(t, ok)
}

func TestMutatePromoteAppendsARepeatedWindow(t *testing.T) {
	info := font.FontInfo{MaxWidth: 8, MaxHeight: 1}
	pixels := []font.Pixel{0, 0, 0, 15, 15, 0, 0, 0}
	g1, err := font.NewGlyph(8, 1, pixels, 0, 8, []rune{'A'})
	require.NoError(t, err)
	g2, err := font.NewGlyph(8, 1, pixels, 0, 8, []rune{'B'})
	require.NoError(t, err)
	df, err := font.NewDataFile(info, nil, []font.Glyph{g1, g2})
	require.NoError(t, err)

	dict, ok := mutatePromote(df, rand.New(rand.NewSource(5)))
	require.True(t, ok)
	require.Len(t, dict, 1)
	require.Equal(t, font.REF, dict[0].Kind)
}

func TestMutatePromoteRefusesWhenNoRepeatedWindowExists(t *testing.T) {
	info := font.FontInfo{MaxWidth: 1, MaxHeight: 1}
	g, err := font.NewGlyph(1, 1, []font.Pixel{0}, 0, 1, []rune{'A'})
	require.NoError(t, err)
	df, err := font.NewDataFile(info, nil, []font.Glyph{g})
	require.NoError(t, err)

	_, ok := mutatePromote(df, rand.New(rand.NewSource(6)))
	require.False(t, ok)
}

func TestMutateSwapExchangesSameKindEntries(t *testing.T) {
	info := font.FontInfo{MaxWidth: 1, MaxHeight: 1}
	g, err := font.NewGlyph(1, 1, []font.Pixel{0}, 0, 1, []rune{'A'})
	require.NoError(t, err)
	dict := font.Dictionary{
		{Kind: font.RLE, Bytes: []byte{1, 1}},
		{Kind: font.RLE, Bytes: []byte{2, 2}},
	}
	df, err := font.NewDataFile(info, dict, []font.Glyph{g})
	require.NoError(t, err)

	found := false
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		out, ok := mutateSwap(df, rng)
		if !ok {
			continue
		}
		require.Equal(t, []byte{2, 2}, out[0].Bytes)
		require.Equal(t, []byte{1, 1}, out[1].Bytes)
		found = true
		break
	}
	require.True(t, found, "mutateSwap never produced a swap across 50 attempts")
}

func TestMutateSwapRefusesSingleEntryDictionary(t *testing.T) {
	info := font.FontInfo{MaxWidth: 1, MaxHeight: 1}
	g, err := font.NewGlyph(1, 1, []font.Pixel{0}, 0, 1, []rune{'A'})
	require.NoError(t, err)
	dict := font.Dictionary{{Kind: font.RLE, Bytes: []byte{1, 1}}}
	df, err := font.NewDataFile(info, dict, []font.Glyph{g})
	require.NoError(t, err)

	_, ok := mutateSwap(df, rand.New(rand.NewSource(8)))
	require.False(t, ok)
}

func TestRandSubstringRejectsTooShortSource(t *testing.T) {
	_, ok := randSubstring(rand.New(rand.NewSource(9)), []byte{1})
	require.False(t, ok)
}

func TestRandSubstringStaysWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	src := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	for i := 0; i < 20; i++ {
		out, ok := randSubstring(rng, src)
		require.True(t, ok)
		require.GreaterOrEqual(t, len(out), minEntryLen)
		require.LessOrEqual(t, len(out), maxEntryLen)
	}
}
