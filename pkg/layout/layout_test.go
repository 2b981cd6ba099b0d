package layout

import (
	"testing"

	"softboard/pkg/input"
)

func TestStandardAlphabeticPhone(t *testing.T) {
	l := Standard(input.Qwerty(), input.DevicePhone, TypeAlphabetic, input.CasingLowercased)

	if len(l.Rows) != 4 {
		t.Fatalf("expected 3 character rows plus the system row, got %d", len(l.Rows))
	}

	// First row is plain characters.
	if got := len(l.Rows[0]); got != 10 {
		t.Errorf("first row has %d items, want 10", got)
	}
	for _, item := range l.Rows[0] {
		if item.Action.Kind != ActionCharacter {
			t.Errorf("first row item kind = %v, want character", item.Action.Kind)
		}
		if item.Size.Width.Kind != WidthInput {
			t.Error("character keys must use the input width")
		}
	}
	if l.Rows[0][0].Action.Char != "q" {
		t.Errorf("first key = %q, want q", l.Rows[0][0].Action.Char)
	}

	// Last character row is flanked by shift and backspace.
	third := l.Rows[2]
	if third[0].Action.Kind != ActionShift {
		t.Error("last character row must start with shift")
	}
	if third[len(third)-1].Action.Kind != ActionBackspace {
		t.Error("last character row must end with backspace")
	}
	if got := len(third); got != 7+2 {
		t.Errorf("flanked row has %d items, want 9", got)
	}
}

func TestStandardBottomRow(t *testing.T) {
	l := Standard(input.Qwerty(), input.DevicePhone, TypeAlphabetic, input.CasingLowercased)
	bottom := l.Rows[len(l.Rows)-1]

	if bottom[0].Action.Kind != ActionKeyboardType || bottom[0].Action.Target != TypeNumeric {
		t.Error("alphabetic bottom row must switch to numeric")
	}
	if bottom[1].Action.Kind != ActionNextLocale {
		t.Error("bottom row must carry the locale key")
	}
	space := bottom[2]
	if space.Action.Kind != ActionSpace || space.Size.Width.Kind != WidthAvailable {
		t.Error("space bar must take the leftover width")
	}
	if bottom[len(bottom)-1].Action.Kind != ActionNewline {
		t.Error("bottom row must end with return")
	}
}

func TestStandardNumericSwitchKeys(t *testing.T) {
	l := Standard(input.Numeric("$"), input.DevicePhone, TypeNumeric, input.CasingLowercased)

	third := l.Rows[2]
	left := third[0].Action
	if left.Kind != ActionKeyboardType || left.Target != TypeSymbolic {
		t.Error("numeric grid must toggle to symbolic on the left edge key")
	}

	bottom := l.Rows[len(l.Rows)-1]
	if bottom[0].Action.Target != TypeAlphabetic {
		t.Error("numeric bottom row must switch back to alphabetic")
	}
}

func TestStandardEmojiTypeHasOnlySystemRow(t *testing.T) {
	l := Standard(input.Qwerty(), input.DevicePhone, TypeEmojis, input.CasingLowercased)
	if len(l.Rows) != 1 {
		t.Fatalf("emoji layout carries only the system row, got %d rows", len(l.Rows))
	}
}

func TestStandardCasingFlowsIntoActions(t *testing.T) {
	l := Standard(input.Qwerty(), input.DevicePhone, TypeAlphabetic, input.CasingUppercased)
	if l.Rows[0][0].Action.Char != "Q" {
		t.Errorf("first key = %q, want Q", l.Rows[0][0].Action.Char)
	}
}

func TestStandardPadHeights(t *testing.T) {
	phone := Standard(input.Qwerty(), input.DevicePhone, TypeAlphabetic, input.CasingAuto)
	pad := Standard(input.Qwerty(), input.DevicePad, TypeAlphabetic, input.CasingAuto)
	if phone.TotalHeight() >= pad.TotalHeight() {
		t.Errorf("pad rows are taller: phone %v, pad %v",
			phone.TotalHeight(), pad.TotalHeight())
	}
}

func TestTotalHeight(t *testing.T) {
	l := Layout{Rows: []Row{
		{{Size: Size{Height: 10}}, {Size: Size{Height: 20}}},
		{{Size: Size{Height: 30}}},
	}}
	if got := l.TotalHeight(); got != 50 {
		t.Errorf("TotalHeight = %v, want 50", got)
	}
}

func TestItemForAction(t *testing.T) {
	l := Standard(input.Qwerty(), input.DevicePhone, TypeAlphabetic, input.CasingAuto)

	if _, ok := l.ItemForAction(ActionShift); !ok {
		t.Error("expected a shift item")
	}
	if _, ok := l.ItemForAction(ActionNone); ok {
		t.Error("expected no placeholder items in the standard layout")
	}
}

func TestKeyboardTypeLabels(t *testing.T) {
	tests := []struct {
		typ  KeyboardType
		want string
	}{
		{TypeAlphabetic, "ABC"},
		{TypeNumeric, "123"},
		{TypeSymbolic, "#+="},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
