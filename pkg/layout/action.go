// Package layout defines the declarative key grid of an on-screen
// keyboard: actions, item sizes, rows, long-press callout actions, and a
// builder that arranges an input set into the standard alphabetic, numeric
// and symbolic grids. Layouts are pure data consumed by a view layer;
// nothing here renders or handles touches.
package layout

import "fmt"

// ActionKind discriminates what a key does when tapped.
type ActionKind int

const (
	// ActionNone marks a non-interactive placeholder item.
	ActionNone ActionKind = iota

	// ActionCharacter inserts the item's character.
	ActionCharacter

	// ActionSpace inserts a space.
	ActionSpace

	// ActionBackspace deletes backwards.
	ActionBackspace

	// ActionShift toggles the keyboard case.
	ActionShift

	// ActionNewline inserts a line break or performs the return action.
	ActionNewline

	// ActionKeyboardType switches to another keyboard type.
	ActionKeyboardType

	// ActionNextLocale cycles to the next enabled locale.
	ActionNextLocale
)

// KeyboardType names the switchable keyboards.
type KeyboardType int

const (
	// TypeAlphabetic is the letter keyboard.
	TypeAlphabetic KeyboardType = iota

	// TypeNumeric is the number-and-punctuation keyboard.
	TypeNumeric

	// TypeSymbolic is the symbol keyboard.
	TypeSymbolic

	// TypeEmojis is the emoji panel keyboard.
	TypeEmojis
)

// String returns the keyboard type's switch-key label.
func (t KeyboardType) String() string {
	switch t {
	case TypeAlphabetic:
		return "ABC"
	case TypeNumeric:
		return "123"
	case TypeSymbolic:
		return "#+="
	case TypeEmojis:
		return "☺"
	default:
		return fmt.Sprintf("KeyboardType(%d)", int(t))
	}
}

// Action is a tagged variant describing one key's behavior. The Kind
// selects the variant; Char is set for character actions and Target for
// keyboard-type switches.
type Action struct {
	Kind   ActionKind
	Char   string
	Target KeyboardType
}

// Character returns an action that inserts the given character.
func Character(char string) Action {
	return Action{Kind: ActionCharacter, Char: char}
}

// Space returns the space action.
func Space() Action { return Action{Kind: ActionSpace} }

// Backspace returns the backwards-delete action.
func Backspace() Action { return Action{Kind: ActionBackspace} }

// Shift returns the case-toggle action.
func Shift() Action { return Action{Kind: ActionShift} }

// Newline returns the return-key action.
func Newline() Action { return Action{Kind: ActionNewline} }

// SwitchTo returns an action that switches to the given keyboard type.
func SwitchTo(t KeyboardType) Action {
	return Action{Kind: ActionKeyboardType, Target: t}
}

// NextLocale returns the locale-cycling action.
func NextLocale() Action { return Action{Kind: ActionNextLocale} }
