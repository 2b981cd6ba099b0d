package input

import (
	"testing"

	"golang.org/x/text/language"
)

func TestQwertyPhoneRows(t *testing.T) {
	got := Qwerty().CharacterStrings(CasingLowercased, DevicePhone)
	want := []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}
	assertRows(t, got, want)
}

func TestQwertyUppercased(t *testing.T) {
	got := Qwerty().CharacterStrings(CasingUppercased, DevicePhone)
	want := []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}
	assertRows(t, got, want)
}

func TestQwertyAutoUsesNeutral(t *testing.T) {
	got := Qwerty().CharacterStrings(CasingAuto, DevicePad)
	want := []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}
	assertRows(t, got, want)
}

func TestNumericPhoneRows(t *testing.T) {
	got := Numeric("$").CharacterStrings(CasingLowercased, DevicePhone)
	want := []string{"1234567890", "-/:;()$&@”", ".,?!’"}
	assertRows(t, got, want)
}

func TestNumericPadRowsDiffer(t *testing.T) {
	set := Numeric("$")
	phone := set.CharacterStrings(CasingLowercased, DevicePhone)
	pad := set.CharacterStrings(CasingLowercased, DevicePad)
	want := []string{"1234567890", "@#$&*()’”", "%-+=/;:!?"}
	assertRows(t, pad, want)
	if phone[1] == pad[1] {
		t.Error("phone and pad second rows must differ in content")
	}
}

func TestNumericEmptyCurrencyFallsBack(t *testing.T) {
	got := Numeric("").CharacterStrings(CasingLowercased, DevicePhone)
	want := []string{"1234567890", "-/:;()$&@”", ".,?!’"}
	assertRows(t, got, want)
}

func TestSymbolicPhoneRows(t *testing.T) {
	got := Symbolic([]string{"A", "B", "C"}).CharacterStrings(CasingLowercased, DevicePhone)
	// Casing applies uniformly to every item, currency symbols included.
	want := []string{"[]{}#%^*+=", "_\\|~<>abc•", ".,?!’"}
	assertRows(t, got, want)
}

func TestSymbolicDefaultCurrencies(t *testing.T) {
	got := Symbolic(nil).CharacterStrings(CasingLowercased, DevicePhone)
	want := []string{"[]{}#%^*+=", "_\\|~<>€£¥•", ".,?!’"}
	assertRows(t, got, want)
}

func TestSymbolicPadRows(t *testing.T) {
	got := Symbolic(nil).CharacterStrings(CasingLowercased, DevicePad)
	want := []string{"1234567890", "€£¥_^[]{}", "§|~…\\<>!?"}
	assertRows(t, got, want)
}

func TestSymbolicSlotPolicy(t *testing.T) {
	tests := []struct {
		name       string
		currencies []string
		wantRow    string
	}{
		{
			name:       "shorter sequence cycles",
			currencies: []string{"€"},
			wantRow:    "_\\|~<>€€€•",
		},
		{
			name:       "two symbols cycle across three slots",
			currencies: []string{"€", "£"},
			wantRow:    "_\\|~<>€£€•",
		},
		{
			name:       "longer sequence truncates",
			currencies: []string{"€", "£", "¥", "₽", "₹"},
			wantRow:    "_\\|~<>€£¥•",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Symbolic(tt.currencies).CharacterStrings(CasingLowercased, DevicePhone)
			if got[1] != tt.wantRow {
				t.Errorf("second row = %q, want %q", got[1], tt.wantRow)
			}
		})
	}
}

func TestCasingPreservesCardinality(t *testing.T) {
	sets := []Set{Qwerty(), Numeric("$"), Symbolic([]string{"€", "£", "¥"}), TurkishQwerty()}
	casings := []Casing{CasingAuto, CasingLowercased, CasingUppercased}
	devices := []DeviceClass{DevicePhone, DevicePad}
	for _, set := range sets {
		for _, device := range devices {
			rows := set.Rows(device)
			for _, casing := range casings {
				strs := set.CharacterStrings(casing, device)
				if len(strs) != len(rows) {
					t.Fatalf("%s: row count changed under casing", set.Name)
				}
				for i, row := range rows {
					for j, item := range row {
						if item.Characters(casing) == "" {
							t.Errorf("%s: row %d item %d has no %v variant",
								set.Name, i, j, casing)
						}
					}
				}
			}
		}
	}
}

func TestItemCharacters(t *testing.T) {
	item := Item{Neutral: "a", Lowercased: "a", Uppercased: "A"}
	if item.Characters(CasingAuto) != "a" {
		t.Error("auto casing must select the neutral variant")
	}
	if item.Characters(CasingLowercased) != "a" {
		t.Error("lowercased variant mismatch")
	}
	if item.Characters(CasingUppercased) != "A" {
		t.Error("uppercased variant mismatch")
	}
}

func TestTurkishCasing(t *testing.T) {
	set := TurkishQwerty()
	lower := set.CharacterStrings(CasingLowercased, DevicePhone)
	upper := set.CharacterStrings(CasingUppercased, DevicePhone)

	if lower[0] != "qwertyuıopğü" {
		t.Errorf("lower row = %q", lower[0])
	}
	// Turkish upper-cases the dotted i to İ and keeps dotless ı as I.
	if upper[1] != "ASDFGHJKLŞİ" {
		t.Errorf("upper row = %q, want %q", upper[1], "ASDFGHJKLŞİ")
	}
	if upper[0] != "QWERTYUIOPĞÜ" {
		t.Errorf("upper row = %q, want %q", upper[0], "QWERTYUIOPĞÜ")
	}
}

func TestForLocale(t *testing.T) {
	tests := []struct {
		name string
		tag  language.Tag
		want string
	}{
		{name: "exact english", tag: language.English, want: "english"},
		{name: "exact french", tag: language.French, want: "french"},
		{name: "regional variant resolves to base", tag: language.MustParse("de-AT"), want: "german"},
		{name: "canadian french", tag: language.MustParse("fr-CA"), want: "french"},
		{name: "unsupported falls back to qwerty", tag: language.Japanese, want: "english"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ForLocale(tt.tag); got.Name != tt.want {
				t.Errorf("ForLocale(%v) = %q, want %q", tt.tag, got.Name, tt.want)
			}
		})
	}
}

func assertRows(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
}
