package layout

import "softboard/pkg/input"

// Row heights in points per device class.
const (
	phoneRowHeight = 54
	padRowHeight   = 64
)

// Edge system keys take a fixed share of the keyboard width so the
// character grid stays centered.
const edgeKeyFraction = 0.125

// Standard builds the key grid for one keyboard type from an input set.
// Character rows come from the set's rows for the device class, with the
// requested casing applied; system keys are arranged the standard way:
// shift and backspace flank the last character row, and the bottom row
// carries the type switch, locale key, space bar and return key.
//
// The emoji panel type has no character grid here; its content is the
// category data, so Standard returns only the bottom system row for it.
func Standard(set input.Set, device input.DeviceClass, typ KeyboardType, casing input.Casing) Layout {
	height := rowHeight(device)

	var rows []Row
	if typ != TypeEmojis {
		rows = characterRows(set, device, casing, height)
		if len(rows) > 0 {
			last := len(rows) - 1
			rows[last] = flankLastRow(rows[last], typ, height)
		}
	}
	rows = append(rows, bottomRow(typ, height))
	return Layout{Rows: rows}
}

func rowHeight(device input.DeviceClass) float64 {
	if device == input.DevicePad {
		return padRowHeight
	}
	return phoneRowHeight
}

// characterRows maps every input item to a character key of input width.
func characterRows(set input.Set, device input.DeviceClass, casing input.Casing, height float64) []Row {
	inputRows := set.Rows(device)
	rows := make([]Row, len(inputRows))
	for i, inputRow := range inputRows {
		row := make(Row, len(inputRow))
		for j, item := range inputRow {
			row[j] = Item{
				Action: Character(item.Characters(casing)),
				Size:   Size{Width: InputWidth(), Height: height},
			}
		}
		rows[i] = row
	}
	return rows
}

// flankLastRow wraps the last character row with the left system key
// (shift on the alphabetic grid, the numeric/symbolic toggle otherwise)
// and backspace.
func flankLastRow(row Row, typ KeyboardType, height float64) Row {
	left := Shift()
	switch typ {
	case TypeNumeric:
		left = SwitchTo(TypeSymbolic)
	case TypeSymbolic:
		left = SwitchTo(TypeNumeric)
	}
	edge := Size{Width: Percentage(edgeKeyFraction), Height: height}
	flanked := make(Row, 0, len(row)+2)
	flanked = append(flanked, Item{Action: left, Size: edge})
	flanked = append(flanked, row...)
	flanked = append(flanked, Item{Action: Backspace(), Size: edge})
	return flanked
}

// bottomRow builds the system row: type switch, locale key, space bar
// taking the leftover width, and return.
func bottomRow(typ KeyboardType, height float64) Row {
	switchTarget := TypeNumeric
	if typ == TypeNumeric || typ == TypeSymbolic {
		switchTarget = TypeAlphabetic
	}
	edge := Size{Width: Percentage(edgeKeyFraction), Height: height}
	return Row{
		{Action: SwitchTo(switchTarget), Size: edge},
		{Action: NextLocale(), Size: edge},
		{Action: Space(), Size: Size{Width: Available(), Height: height}},
		{Action: Newline(), Size: Size{Width: Percentage(2 * edgeKeyFraction), Height: height}},
	}
}
