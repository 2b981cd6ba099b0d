package input

import "golang.org/x/text/language"

var (
	localeEnglish = language.English
	localeFrench  = language.French
	localeGerman  = language.German
	localeSpanish = language.Spanish
	localeSwedish = language.Swedish
	localeTurkish = language.Turkish
)

// Azerty returns the French letter set.
func Azerty() Set {
	return NewSet("french", localeFrench, []string{
		"azertyuiop",
		"qsdfghjklm",
		"wxcvbn",
	}, nil)
}

// Qwertz returns the German letter set, with umlauts on the pad rows as
// well as the phone rows.
func Qwertz() Set {
	return NewSet("german", localeGerman, []string{
		"qwertzuiopü",
		"asdfghjklöä",
		"yxcvbnm",
	}, nil)
}

// SpanishQwerty returns the Spanish letter set with ñ.
func SpanishQwerty() Set {
	return NewSet("spanish", localeSpanish, []string{
		"qwertyuiop",
		"asdfghjklñ",
		"zxcvbnm",
	}, nil)
}

// SwedishQwerty returns the Swedish letter set with å ä ö.
func SwedishQwerty() Set {
	return NewSet("swedish", localeSwedish, []string{
		"qwertyuiopå",
		"asdfghjklöä",
		"zxcvbnm",
	}, nil)
}

// TurkishQwerty returns the Turkish Q letter set. Its locale carries the
// dotted/dotless i casing rules: upper-casing "i" yields "İ", lower-casing
// "I" yields "ı".
func TurkishQwerty() Set {
	return NewSet("turkish", localeTurkish, []string{
		"qwertyuıopğü",
		"asdfghjklşi",
		"zxcvbnmöç",
	}, nil)
}

// localeSets lists the built-in letter sets in matcher order. The matcher
// below indexes into this list.
var localeSets = []func() Set{
	Qwerty,
	Azerty,
	Qwertz,
	SpanishQwerty,
	SwedishQwerty,
	TurkishQwerty,
}

var localeMatcher = language.NewMatcher([]language.Tag{
	localeEnglish,
	localeFrench,
	localeGerman,
	localeSpanish,
	localeSwedish,
	localeTurkish,
})

// ForLocale returns the built-in letter set for the locale, matched with
// the standard language matcher so that regional variants ("fr-CA",
// "de-AT") resolve to their base set. Locales with no dedicated set fall
// back to English qwerty.
func ForLocale(tag language.Tag) Set {
	_, index, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return Qwerty()
	}
	return localeSets[index]()
}
