package font

// InitialDictionary returns a small set of known-useful RLE entries to
// seed a freshly imported data file, giving the optimizer a starting
// point (§6: "the data file's dictionary is seeded by an initialization
// routine that places a small set of known-useful short RLE entries").
// Every entry here is exactly two run tokens, since a dictionary entry
// must be 2-15 bytes long and a single run token alone would be only one
// byte.
func InitialDictionary() Dictionary {
	entry := func(a, b byte) DictEntry {
		return DictEntry{Kind: RLE, Bytes: []byte{a, b}}
	}

	return Dictionary{
		entry(2, 2),   // 4 background pixels
		entry(4, 4),   // 8 background pixels
		entry(8, 8),   // 16 background pixels
		entry(17, 17), // 4 foreground pixels (byte 17 = fifteen-run of 2)
		entry(19, 19), // 8 foreground pixels (byte 19 = fifteen-run of 4)
		entry(23, 23), // 16 foreground pixels (byte 23 = fifteen-run of 8, the max)
		entry(1, 16),  // one background then one foreground pixel
		entry(16, 1),  // one foreground then one background pixel
	}
}
