// Package emoji models the emoji side of an on-screen keyboard: single
// emoji values, skin-tone variant expansion, the curated release registry
// that maps emoji sets to minimum platform versions, and the ordered
// categories that back the emoji panels of the keyboard.
//
// Everything in this package is a pure, synchronous query over immutable
// static data. The only shared mutable state is the process-wide memoized
// index of emoji that are unavailable on the current runtime; it is
// computed once and is safe for concurrent readers.
package emoji

import (
	"strings"
	"sync"

	"github.com/forPelevin/gomoji"
	"github.com/rivo/uniseg"
)

// Emoji is a single pictographic character unit, possibly spanning several
// code points (skin-tone modifiers, zero-width joiners, variation
// selectors). Two Emoji values are equal iff their character sequences are
// equal; there is no hidden distinguishing state.
type Emoji struct {
	// Char is the literal character sequence of the emoji.
	Char string
}

// New returns an Emoji for the given character sequence. The sequence is
// not validated: values are constructed from curated literals at registry
// initialization and are immutable afterwards.
func New(char string) Emoji {
	return Emoji{Char: char}
}

// String returns the literal character sequence.
func (e Emoji) String() string {
	return e.Char
}

// UnicodeName returns the emoji's normalized Unicode name, used as the
// searchable text for the emoji. Sequences missing from the gomoji dataset
// (for example glyphs newer than the shipped data) resolve to an empty
// name and are simply never matched by a search.
func (e Emoji) UnicodeName() string {
	return unicodeNameIndex()[normalizeChar(e.Char)]
}

var (
	nameIndexOnce sync.Once
	nameIndex     map[string]string
)

// unicodeNameIndex maps normalized character sequences to lower-cased
// Unicode names. Built once from the gomoji dataset.
func unicodeNameIndex() map[string]string {
	nameIndexOnce.Do(func() {
		all := gomoji.AllEmojis()
		nameIndex = make(map[string]string, len(all))
		for _, g := range all {
			nameIndex[normalizeChar(g.Character)] = searchableName(g.UnicodeName)
		}
	})
	return nameIndex
}

// searchableName lower-cases a Unicode name and strips the "E1.0"-style
// release prefix the upstream dataset carries, so queries match the plain
// name.
func searchableName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	rest, ok := strings.CutPrefix(name, "e")
	if !ok {
		return name
	}
	version, plain, found := strings.Cut(rest, " ")
	if !found || version == "" || strings.Trim(version, "0123456789.") != "" {
		return name
	}
	return plain
}

// normalizeChar strips emoji variation selectors (U+FE0F) so that the
// presented form and the bare form of the same emoji compare equal. The
// curated category data and the gomoji dataset disagree on variation
// selectors for a handful of glyphs; keying every index on the stripped
// form makes lookups insensitive to that.
func normalizeChar(char string) string {
	return strings.ReplaceAll(char, vs16, "")
}

// vs16 is the emoji variation selector.
const vs16 = "️"

// Parse splits a literal string into its component emoji, one per grapheme
// cluster. Joined sequences, flags and skin-toned glyphs each come back as
// a single Emoji.
func Parse(chars string) []Emoji {
	if chars == "" {
		return nil
	}
	var result []Emoji
	g := uniseg.NewGraphemes(chars)
	for g.Next() {
		result = append(result, New(g.Str()))
	}
	return result
}
