package input

import "golang.org/x/text/cases"

// currencySlot marks the positions in numeric and symbolic row templates
// that are filled with caller-supplied currency symbols. The remaining row
// content is fixed literal data.
const currencySlot = '¤'

// Default currency symbols used when the caller supplies none.
var (
	defaultCurrency   = "$"
	defaultCurrencies = []string{"€", "£", "¥"}
)

// Qwerty returns the standard English letter set. Phone and pad present
// the same three letter rows.
func Qwerty() Set {
	return NewSet("english", localeEnglish, []string{
		"qwertyuiop",
		"asdfghjkl",
		"zxcvbnm",
	}, nil)
}

// Numeric returns the number-and-punctuation set. The currency symbol
// fills the designated slot in the second row; an empty symbol falls back
// to "$". Phone and pad rows differ in content, not just width.
func Numeric(currency string) Set {
	symbols := []string{currency}
	if currency == "" {
		symbols = []string{defaultCurrency}
	}
	return newTemplateSet("numeric", symbols, []string{
		"1234567890",
		"-/:;()¤&@”",
		".,?!’",
	}, []string{
		"1234567890",
		"@#¤&*()’”",
		"%-+=/;:!?",
	})
}

// Symbolic returns the symbol set. The supplied currency symbols fill the
// designated slots in row order; the sequence is cycled when it is shorter
// than the slot count and truncated when longer, so row cardinality is
// always deterministic. An empty sequence falls back to € £ ¥.
func Symbolic(currencies []string) Set {
	if len(currencies) == 0 {
		currencies = defaultCurrencies
	}
	return newTemplateSet("symbolic", currencies, []string{
		"[]{}#%^*+=",
		"_\\|~<>¤¤¤•",
		".,?!’",
	}, []string{
		"1234567890",
		"¤¤¤_^[]{}",
		"§|~…\\<>!?",
	})
}

// newTemplateSet builds a set from row templates whose currency slots are
// filled from the symbol sequence, per device class.
func newTemplateSet(name string, symbols, phoneTemplates, padTemplates []string) Set {
	return Set{
		Name:      name,
		Locale:    localeEnglish,
		phoneRows: buildTemplateRows(phoneTemplates, symbols),
		padRows:   buildTemplateRows(padTemplates, symbols),
	}
}

// buildTemplateRows splits each template into one item per rune, replacing
// slot markers with the next symbol. Symbols cycle when exhausted; a
// multi-character symbol stays a single item so the grid's column count
// never changes.
func buildTemplateRows(templates []string, symbols []string) []Row {
	lower := cases.Lower(localeEnglish)
	upper := cases.Upper(localeEnglish)
	next := 0
	rows := make([]Row, len(templates))
	for i, template := range templates {
		var row Row
		for _, r := range template {
			char := string(r)
			if r == currencySlot {
				char = symbols[next%len(symbols)]
				next++
			}
			row = append(row, newItem(char, lower, upper))
		}
		rows[i] = row
	}
	return rows
}
