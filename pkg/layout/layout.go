package layout

// WidthKind selects how an item's width is resolved against the keyboard's
// total width.
type WidthKind int

const (
	// WidthAvailable shares the space left over after all other items
	// on the row have been measured.
	WidthAvailable WidthKind = iota

	// WidthInput is the reference width of one character key; every
	// input item on a grid has the same width so columns align across
	// rows.
	WidthInput

	// WidthPercentage is a fixed fraction of the total keyboard width.
	WidthPercentage

	// WidthPoints is an absolute width in points.
	WidthPoints
)

// Width is an item's horizontal sizing rule.
type Width struct {
	Kind WidthKind

	// Value holds the fraction for WidthPercentage or the points for
	// WidthPoints; unused otherwise.
	Value float64
}

// Available returns the leftover-sharing width.
func Available() Width { return Width{Kind: WidthAvailable} }

// InputWidth returns the reference character-key width.
func InputWidth() Width { return Width{Kind: WidthInput} }

// Percentage returns a fractional width. The fraction is of the total
// keyboard width.
func Percentage(fraction float64) Width {
	return Width{Kind: WidthPercentage, Value: fraction}
}

// Points returns an absolute width.
func Points(points float64) Width {
	return Width{Kind: WidthPoints, Value: points}
}

// Size is an item's sizing rule: a width rule plus a row height in points.
type Size struct {
	Width  Width
	Height float64
}

// Item is one key of the grid: what it does and how much space it takes.
type Item struct {
	Action Action
	Size   Size
}

// Row is one ordered row of layout items.
type Row []Item

// Layout is the full key grid for one keyboard type, device class and
// casing. It is immutable value data; builders return fresh layouts.
type Layout struct {
	Rows []Row
}

// TotalHeight sums the row heights, taking each row's tallest item.
func (l Layout) TotalHeight() float64 {
	var total float64
	for _, row := range l.Rows {
		var rowHeight float64
		for _, item := range row {
			if item.Size.Height > rowHeight {
				rowHeight = item.Size.Height
			}
		}
		total += rowHeight
	}
	return total
}

// ItemForAction returns the first item with the given action kind. ok is
// false when no item matches.
func (l Layout) ItemForAction(kind ActionKind) (Item, bool) {
	for _, row := range l.Rows {
		for _, item := range row {
			if item.Action.Kind == kind {
				return item, true
			}
		}
	}
	return Item{}, false
}
