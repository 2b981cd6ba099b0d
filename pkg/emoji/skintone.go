package emoji

import "strings"

// Skin-tone modifier code points, ordered light to dark. This ordering is
// the conventional presentation order and is preserved by all variant
// expansions.
var skinToneModifiers = []string{
	"\U0001F3FB", // light
	"\U0001F3FC", // medium-light
	"\U0001F3FD", // medium
	"\U0001F3FE", // medium-dark
	"\U0001F3FF", // dark
}

// Hand sides used to compose cross-tone handshake variants. A matched-tone
// handshake keeps the base glyph; mixed tones join a rightwards and a
// leftwards hand with a ZWJ.
const (
	handshake       = "\U0001F91D"
	rightwardsHand  = "\U0001FAF1"
	leftwardsHand   = "\U0001FAF2"
	zeroWidthJoiner = "‍"
)

// HasSkinToneVariants reports whether the emoji is a base glyph with
// defined skin-tone variants.
func (e Emoji) HasSkinToneVariants() bool {
	key := normalizeChar(e.Char)
	if key == handshake {
		return true
	}
	_, ok := toneCapableBases[key]
	return ok
}

// SkinToneVariants returns the ordered skin-tone variants of the emoji,
// excluding the base glyph itself.
//
// Single-person emoji expand to five variants, one per modifier, light to
// dark. Multi-person emoji (the handshake) expand to all 25 tone pairs as
// distinct entries: matched pairs keep the handshake glyph with the shared
// modifier, mixed pairs join a rightwards and a leftwards hand. Emoji with
// no modifier support return an empty slice.
func (e Emoji) SkinToneVariants() []Emoji {
	key := normalizeChar(e.Char)
	if key == handshake {
		return handshakeVariants()
	}
	if _, ok := toneCapableBases[key]; !ok {
		return nil
	}
	variants := make([]Emoji, 0, len(skinToneModifiers))
	for _, tone := range skinToneModifiers {
		variants = append(variants, New(applyTone(key, tone)))
	}
	return variants
}

// applyTone inserts a skin-tone modifier after the base scalar of the
// emoji. Any variation selector directly after the base scalar is dropped:
// a toned glyph is always presented emoji-style, so the selector is
// redundant and some platforms render it incorrectly.
func applyTone(char, tone string) string {
	runes := []rune(char)
	if len(runes) == 0 {
		return char
	}
	rest := string(runes[1:])
	rest = strings.TrimPrefix(rest, vs16)
	return string(runes[0]) + tone + rest
}

// handshakeVariants builds the 25 tone-pair combinations for the
// handshake, left participant tone varying slowest.
func handshakeVariants() []Emoji {
	variants := make([]Emoji, 0, len(skinToneModifiers)*len(skinToneModifiers))
	for _, left := range skinToneModifiers {
		for _, right := range skinToneModifiers {
			if left == right {
				variants = append(variants, New(handshake+left))
				continue
			}
			variants = append(variants, New(rightwardsHand+left+zeroWidthJoiner+leftwardsHand+right))
		}
	}
	return variants
}

// toneCapableBases is the curated set of single-person base glyphs that
// support skin-tone modifiers. Keys are normalized (variation selectors
// stripped).
var toneCapableBases = toneCapableSet(
	// Hands and gestures.
	"👋", "🤚", "🖐", "✋", "🖖", "🫱", "🫲", "🫳", "🫴", "🫷", "🫸",
	"👌", "🤌", "🤏", "✌", "🤞", "🫰", "🤟", "🤘", "🤙",
	"👈", "👉", "👆", "🖕", "👇", "☝", "🫵",
	"👍", "👎", "✊", "👊", "🤛", "🤜",
	"👏", "🙌", "🫶", "👐", "🤲", "🙏",
	"✍", "💅", "🤳", "💪",
	// Body parts.
	"🦵", "🦶", "👂", "🦻", "👃",
	// People.
	"👶", "🧒", "👦", "👧", "🧑", "👱", "👨", "👩", "🧔", "🧓", "👴", "👵",
	"🥷", "👮", "💂", "🕵", "👷", "🫅", "🤴", "👸", "👳", "👲", "🧕",
	"🤵", "👰", "🫃", "🫄", "🤰", "🤱", "👼", "🎅", "🤶",
	"🦸", "🦹", "🧙", "🧚", "🧛", "🧜", "🧝",
	"💆", "💇", "🚶", "🧍", "🧎", "🏃", "💃", "🕺", "🕴", "🧖", "🧗",
	"🏇", "🏂", "🏌", "🏄", "🚣", "🏊", "⛹", "🏋", "🚴", "🚵", "🤸",
	"🤽", "🤾", "🤹", "🧘", "🛀", "🛌",
)

func toneCapableSet(chars ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(chars))
	for _, c := range chars {
		set[normalizeChar(c)] = struct{}{}
	}
	return set
}
