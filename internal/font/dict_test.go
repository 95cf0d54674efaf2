package font

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDictionaryValidateAcceptsRLEThenREF(t *testing.T) {
	d := Dictionary{
		{Kind: RLE, Bytes: []byte{1, 2}},
		{Kind: REF, Bytes: []byte{DictStart, 3}},
	}
	require.NoError(t, d.validate())
}

func TestDictionaryValidateRejectsREFBeforeRLE(t *testing.T) {
	d := Dictionary{
		{Kind: REF, Bytes: []byte{1, 2}},
		{Kind: RLE, Bytes: []byte{1, 2}},
	}
	require.ErrorIs(t, d.validate(), ErrDictNotPartitioned)
}

func TestDictionaryValidateRejectsShortEntry(t *testing.T) {
	d := Dictionary{{Kind: RLE, Bytes: []byte{1}}}
	require.ErrorIs(t, d.validate(), ErrDictEntryLength)
}

func TestDictionaryValidateRejectsLongEntry(t *testing.T) {
	d := Dictionary{{Kind: RLE, Bytes: make([]byte, 16)}}
	require.ErrorIs(t, d.validate(), ErrDictEntryLength)
}

func TestDictionaryValidateRejectsOversizedDictionary(t *testing.T) {
	d := make(Dictionary, maxDictEntries+1)
	for i := range d {
		d[i] = DictEntry{Kind: RLE, Bytes: []byte{1, 1}}
	}
	require.ErrorIs(t, d.validate(), ErrDictTooLarge)
}

func TestDictionaryValidateRejectsRLEWithDictReference(t *testing.T) {
	d := Dictionary{
		{Kind: RLE, Bytes: []byte{1, 1}},
		{Kind: RLE, Bytes: []byte{DictStart, 1}},
	}
	require.ErrorIs(t, d.validate(), ErrRLEHasReference)
}

func TestDictionaryValidateRejectsForwardReferenceCycle(t *testing.T) {
	d := Dictionary{
		{Kind: REF, Bytes: []byte{DictStart, 1}},
	}
	require.ErrorIs(t, d.validate(), ErrDictCycle)
}

func TestDictionaryValidateAcceptsStrictlyEarlierReference(t *testing.T) {
	d := Dictionary{
		{Kind: RLE, Bytes: []byte{1, 1}},
		{Kind: REF, Bytes: []byte{DictStart, 1}},
		{Kind: REF, Bytes: []byte{DictStart + 1, 2}},
	}
	require.NoError(t, d.validate())
}

func TestDictRefIndex(t *testing.T) {
	idx, ok := DictRefIndex(byte(DictStart+2), 5)
	require.True(t, ok)
	require.Equal(t, 2, idx)

	_, ok = DictRefIndex(byte(DictStart-1), 5)
	require.False(t, ok)

	_, ok = DictRefIndex(byte(DictStart+5), 5)
	require.False(t, ok)
}

func TestEntryKindString(t *testing.T) {
	require.Equal(t, "rle", RLE.String())
	require.Equal(t, "ref", REF.String())
}

func TestDictionaryCloneIsDeep(t *testing.T) {
	d := Dictionary{{Kind: RLE, Bytes: []byte{1, 2}}}
	clone := d.Clone()
	clone[0].Bytes[0] = 9

	require.Empty(t, cmp.Diff(d, Dictionary{{Kind: RLE, Bytes: []byte{1, 2}}}))
	require.Equal(t, byte(9), clone[0].Bytes[0])
}
