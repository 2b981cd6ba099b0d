package layout

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"
)

// baseAccents maps a lower-cased base character to its long-press callout
// variants, most common first. The table is shared across latin locales;
// localeAccents reorders or extends it per locale.
var baseAccents = map[string][]string{
	"a": {"à", "á", "â", "ä", "æ", "ã", "å", "ā"},
	"c": {"ç", "ć", "č"},
	"e": {"è", "é", "ê", "ë", "ē", "ė", "ę"},
	"i": {"î", "ï", "í", "ī", "į", "ì"},
	"l": {"ł"},
	"n": {"ñ", "ń"},
	"o": {"ô", "ö", "ò", "ó", "œ", "ø", "ō", "õ"},
	"s": {"ß", "ś", "š"},
	"u": {"û", "ü", "ù", "ú", "ū"},
	"y": {"ÿ"},
	"z": {"ž", "ź", "ż"},
	"-": {"–", "—", "•"},
	"/": {"\\"},
	"$": {"€", "£", "¥", "₩", "₽"},
	"&": {"§"},
	"”": {"„", "“", "”", "«", "»"},
	".": {"…"},
	"?": {"¿"},
	"!": {"¡"},
	"’": {"`", "‘", "’"},
	"%": {"‰"},
	"=": {"≠", "≈"},
}

// localeAccents overrides base entries for locales that favor a different
// ordering or additional variants.
var localeAccents = map[language.Tag]map[string][]string{
	language.French: {
		"a": {"à", "â", "æ", "á", "ä", "ã", "å", "ā"},
		"e": {"é", "è", "ê", "ë", "ē", "ė", "ę"},
		"u": {"ù", "û", "ü", "ú", "ū"},
	},
	language.German: {
		"a": {"ä", "à", "á", "â", "æ", "ã", "å", "ā"},
		"o": {"ö", "ô", "ò", "ó", "œ", "ø", "ō", "õ"},
		"u": {"ü", "û", "ù", "ú", "ū"},
	},
	language.Spanish: {
		"n": {"ñ", "ń"},
		"a": {"á", "à", "â", "ä", "æ", "ã", "å", "ā"},
		"e": {"é", "è", "ê", "ë", "ē", "ė", "ę"},
		"i": {"í", "î", "ï", "ī", "į", "ì"},
		"o": {"ó", "ô", "ö", "ò", "œ", "ø", "ō", "õ"},
		"u": {"ú", "û", "ü", "ù", "ū"},
	},
	language.Swedish: {
		"a": {"å", "ä", "à", "á", "â", "æ", "ã", "ā"},
		"o": {"ö", "ô", "ò", "ó", "œ", "ø", "ō", "õ"},
	},
}

// CalloutActions returns the long-press secondary characters for a base
// character in the given locale, most common variant first. The base
// character itself is not included. Upper-cased bases yield upper-cased
// variants. Characters with no defined variants return an empty slice,
// never an error: a missing callout simply shows no overlay.
func CalloutActions(locale language.Tag, char string) []string {
	lower := strings.ToLower(char)
	accents, ok := accentsFor(locale, lower)
	if !ok {
		return []string{}
	}
	if !isUpper(char) {
		return append([]string{}, accents...)
	}
	result := make([]string, len(accents))
	for i, a := range accents {
		result[i] = strings.ToUpper(a)
	}
	return result
}

func accentsFor(locale language.Tag, lower string) ([]string, bool) {
	if overrides, ok := localeAccents[locale]; ok {
		if accents, ok := overrides[lower]; ok {
			return accents, true
		}
	}
	accents, ok := baseAccents[lower]
	return accents, ok
}

func isUpper(char string) bool {
	for _, r := range char {
		return unicode.IsUpper(r)
	}
	return false
}
