package emoji

import "sync"

// CategoryKind discriminates the category variants: the eight fixed
// standard categories with static membership, the two dynamic categories
// whose contents are supplied by the caller, and free-form custom
// categories.
type CategoryKind int

const (
	// KindStandard categories carry fixed, curated membership filtered
	// to the host runtime's availability.
	KindStandard CategoryKind = iota

	// KindFrequent is the dynamic most-recently-used category.
	KindFrequent

	// KindFavorites is the dynamic user-pinned category.
	KindFavorites

	// KindCustom categories carry an explicit id, name, icon and
	// membership supplied by the caller.
	KindCustom
)

// Category is one named, ordered grouping of emoji, presented as a single
// keyboard panel. Standard categories resolve their membership from the
// curated data tables, filtered through the version registry so that only
// emoji presentable on the host runtime remain. Dynamic and custom
// categories present exactly the emoji they were given.
type Category struct {
	kind   CategoryKind
	id     string
	name   string
	icon   string
	emojis []Emoji
}

// Standard fixed categories. Their membership and ordering is static data;
// only runtime availability filtering varies between hosts.
var (
	SmileysAndPeople = Category{kind: KindStandard, id: "smileysAndPeople", name: "Smileys & People", icon: "😀"}
	AnimalsAndNature = Category{kind: KindStandard, id: "animalsAndNature", name: "Animals & Nature", icon: "🐻"}
	FoodAndDrink     = Category{kind: KindStandard, id: "foodAndDrink", name: "Food & Drink", icon: "🍔"}
	Activity         = Category{kind: KindStandard, id: "activity", name: "Activity", icon: "⚽️"}
	TravelAndPlaces  = Category{kind: KindStandard, id: "travelAndPlaces", name: "Travel & Places", icon: "🏣"}
	Objects          = Category{kind: KindStandard, id: "objects", name: "Objects", icon: "💡"}
	Symbols          = Category{kind: KindStandard, id: "symbols", name: "Symbols", icon: "💱"}
	Flags            = Category{kind: KindStandard, id: "flags", name: "Flags", icon: "🏳️"}
)

// Frequent returns the dynamic most-recently-used category with the given
// contents. Tracking, capacity and persistence of frequent emoji belong to
// the caller; the category defines only identity and icon.
func Frequent(emojis []Emoji) Category {
	return Category{kind: KindFrequent, id: "frequent", name: "Frequent", icon: "🕓", emojis: emojis}
}

// Favorites returns the dynamic user-pinned category with the given
// contents. Like Frequent, contents are caller-owned.
func Favorites(emojis []Emoji) Category {
	return Category{kind: KindFavorites, id: "favorites", name: "Favorites", icon: "⭐️", emojis: emojis}
}

// Custom returns a category with an explicit id, name, icon and
// membership. The id must be unique within any category list the caller
// assembles; the registry does not enforce uniqueness.
func Custom(id, name, icon string, emojis []Emoji) Category {
	return Category{kind: KindCustom, id: id, name: name, icon: icon, emojis: emojis}
}

// SearchCategory returns a one-off custom category holding the emoji whose
// names match the query, drawn from every standard category. Its id is
// always the literal "search": repeated searches share an identity, so
// callers must not hold two search categories and expect them to be
// distinct.
func SearchCategory(query string) Category {
	return Custom("search", "Search", "🔍", Search(All(), query))
}

// FrequentEmojiProvider is the contract between the keyboard and the
// collaborator that tracks emoji use. Insertion policy, capacity limits
// and persistence are the provider's concern; the keyboard only reads the
// ordered result and reports uses.
type FrequentEmojiProvider interface {
	// Emojis returns the provider's current ordered contents.
	Emojis() []Emoji

	// AddEmoji records one use of the emoji, growing or reordering the
	// tracked set under the provider's own policy.
	AddEmoji(e Emoji)
}

// Kind returns the category variant.
func (c Category) Kind() CategoryKind { return c.kind }

// ID returns the category identifier, unique within a category list.
func (c Category) ID() string { return c.id }

// Name returns the category's display name.
func (c Category) Name() string { return c.name }

// Icon returns the representative glyph used on the category's panel
// switch.
func (c Category) Icon() string { return c.icon }

// Emojis returns the ordered member emoji. For standard categories this is
// the curated membership with runtime-unavailable emoji excluded, resolved
// once per process; dynamic and custom categories return their supplied
// contents as-is.
func (c Category) Emojis() []Emoji {
	if c.kind != KindStandard {
		return c.emojis
	}
	return standardEmojis(c.id)
}

var (
	standardMu    sync.Mutex
	standardCache = map[string][]Emoji{}
)

// standardEmojis resolves and memoizes the availability-filtered
// membership of a standard category. The curated data is a superset across
// all releases; filtering against the host's unavailable index is what
// makes the panel correct for the current runtime.
func standardEmojis(id string) []Emoji {
	standardMu.Lock()
	defer standardMu.Unlock()
	if cached, ok := standardCache[id]; ok {
		return cached
	}
	var result []Emoji
	for _, e := range Parse(standardCategoryChars[id]) {
		if e.IsAvailable() {
			result = append(result, e)
		}
	}
	standardCache[id] = result
	return result
}

// StandardCategories returns the visible category list in presentation
// order: the frequent panel first, then the eight fixed categories. The
// frequent contents are caller-supplied.
func StandardCategories(frequent []Emoji) []Category {
	return []Category{
		Frequent(frequent),
		SmileysAndPeople,
		AnimalsAndNature,
		FoodAndDrink,
		Activity,
		TravelAndPlaces,
		Objects,
		Symbols,
		Flags,
	}
}

// All returns every emoji of every standard category in presentation
// order, runtime-filtered, without duplicates.
func All() []Emoji {
	seen := make(map[string]struct{})
	var result []Emoji
	for _, c := range StandardCategories(nil) {
		for _, e := range c.Emojis() {
			key := normalizeChar(e.Char)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			result = append(result, e)
		}
	}
	return result
}

// CategoryAfter returns the category following the anchor in the given
// list. ok is false when the anchor is absent or last.
func CategoryAfter(list []Category, anchor Category) (Category, bool) {
	for i, c := range list {
		if c.id == anchor.id {
			if i+1 >= len(list) {
				return Category{}, false
			}
			return list[i+1], true
		}
	}
	return Category{}, false
}

// CategoryBefore returns the category preceding the anchor in the given
// list. ok is false when the anchor is absent or first.
func CategoryBefore(list []Category, anchor Category) (Category, bool) {
	for i, c := range list {
		if c.id == anchor.id {
			if i == 0 {
				return Category{}, false
			}
			return list[i-1], true
		}
	}
	return Category{}, false
}

// CategoryWithID returns the category with the given id from the list. ok
// is false when absent.
func CategoryWithID(list []Category, id string) (Category, bool) {
	for _, c := range list {
		if c.id == id {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryWithEmoji returns the first category in the list containing the
// emoji. ok is false when no category contains it.
func CategoryWithEmoji(list []Category, e Emoji) (Category, bool) {
	key := normalizeChar(e.Char)
	for _, c := range list {
		for _, member := range c.Emojis() {
			if normalizeChar(member.Char) == key {
				return c, true
			}
		}
	}
	return Category{}, false
}
