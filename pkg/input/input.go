// Package input defines the character rows that back the primary,
// non-emoji typing layout of an on-screen keyboard: per-locale letter
// sets, numeric and symbolic sets with currency slots, case-variant items
// and device-class row differences.
//
// An input set is pure static data. A layout builder consumes its rows to
// produce the actual key grid; rendering and touch handling live
// elsewhere.
package input

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DeviceClass selects the row contents for a device family. Phone and pad
// rows can differ in content, not just sizing: a pad fits more symbols per
// row and rearranges punctuation.
type DeviceClass int

const (
	// DevicePhone selects the compact phone rows.
	DevicePhone DeviceClass = iota

	// DevicePad selects the wider pad rows.
	DevicePad
)

// Casing selects which case variant of each item is presented.
type Casing int

const (
	// CasingAuto presents the neutral variant; the shift state of the
	// surrounding keyboard decides the effective case.
	CasingAuto Casing = iota

	// CasingLowercased presents the lower-cased variant.
	CasingLowercased

	// CasingUppercased presents the upper-cased variant.
	CasingUppercased
)

// Item is one input key's character with its case variants. Casing is a
// pure per-character mapping: selecting a variant never changes how many
// items a row holds.
type Item struct {
	// Neutral is the character as authored in the set definition.
	Neutral string

	// Lowercased is the locale-aware lower-cased form.
	Lowercased string

	// Uppercased is the locale-aware upper-cased form.
	Uppercased string
}

// Characters returns the item's variant for the requested casing.
func (i Item) Characters(c Casing) string {
	switch c {
	case CasingLowercased:
		return i.Lowercased
	case CasingUppercased:
		return i.Uppercased
	default:
		return i.Neutral
	}
}

// Row is one ordered keyboard row of items.
type Row []Item

// Set is one character layout: ordered rows of items per device class,
// tagged with the locale whose casing rules apply. Sets are constructed
// from static literal definitions and are immutable.
type Set struct {
	// Name identifies the set, e.g. "english" or "symbolic".
	Name string

	// Locale drives locale-aware casing of the items.
	Locale language.Tag

	phoneRows []Row
	padRows   []Row
}

// NewSet builds a set from per-device row strings, one item per rune.
// When padRowStrings is nil the pad presents the phone rows.
func NewSet(name string, locale language.Tag, phoneRowStrings, padRowStrings []string) Set {
	s := Set{Name: name, Locale: locale}
	s.phoneRows = buildRows(locale, phoneRowStrings)
	if padRowStrings == nil {
		s.padRows = s.phoneRows
	} else {
		s.padRows = buildRows(locale, padRowStrings)
	}
	return s
}

// Rows returns the ordered rows for the device class.
func (s Set) Rows(device DeviceClass) []Row {
	if device == DevicePad {
		return s.padRows
	}
	return s.phoneRows
}

// CharacterStrings returns one string per row, with every item mapped to
// the requested case variant, for the requested device class. Row count
// and per-row item count are fixed per (set, device) pair.
func (s Set) CharacterStrings(c Casing, device DeviceClass) []string {
	rows := s.Rows(device)
	result := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for _, item := range row {
			b.WriteString(item.Characters(c))
		}
		result[i] = b.String()
	}
	return result
}

// buildRows splits each row string into one item per rune, deriving case
// variants with the locale's casing rules.
func buildRows(locale language.Tag, rowStrings []string) []Row {
	lower := cases.Lower(locale)
	upper := cases.Upper(locale)
	rows := make([]Row, len(rowStrings))
	for i, rowString := range rowStrings {
		var row Row
		for _, r := range rowString {
			row = append(row, newItem(string(r), lower, upper))
		}
		rows[i] = row
	}
	return rows
}

func newItem(char string, lower, upper cases.Caser) Item {
	return Item{
		Neutral:    char,
		Lowercased: lower.String(char),
		Uppercased: upper.String(char),
	}
}
