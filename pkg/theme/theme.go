// Package theme defines the styling data of an on-screen keyboard: colors,
// corner radii and font scaling for key buttons, backgrounds and callout
// overlays. Themes are declarative documents loaded from TOML, JSON or
// YAML files; a view layer resolves them into whatever its rendering stack
// needs. Nothing here draws.
package theme

import (
	"fmt"
	"regexp"
	"strings"
)

// Theme is one named keyboard appearance.
type Theme struct {
	// Name identifies the theme.
	Name string `toml:"name" json:"name" yaml:"name"`

	// Background is the keyboard background color as #RRGGBB or
	// #RRGGBBAA.
	Background string `toml:"background" json:"background" yaml:"background"`

	// KeyButton styles the character keys.
	KeyButton ButtonStyle `toml:"key_button" json:"key_button" yaml:"key_button"`

	// SystemButton styles the system keys (shift, backspace, switches).
	SystemButton ButtonStyle `toml:"system_button" json:"system_button" yaml:"system_button"`

	// Callout styles the long-press overlay.
	Callout CalloutStyle `toml:"callout" json:"callout" yaml:"callout"`

	// FontScale multiplies the base key font size. 1.0 is the standard
	// size.
	FontScale float64 `toml:"font_scale" json:"font_scale" yaml:"font_scale"`
}

// ButtonStyle holds the visual attributes of one button family.
type ButtonStyle struct {
	Background   string  `toml:"background" json:"background" yaml:"background"`
	Foreground   string  `toml:"foreground" json:"foreground" yaml:"foreground"`
	CornerRadius float64 `toml:"corner_radius" json:"corner_radius" yaml:"corner_radius"`
}

// CalloutStyle holds the visual attributes of the long-press overlay.
type CalloutStyle struct {
	Background   string  `toml:"background" json:"background" yaml:"background"`
	Foreground   string  `toml:"foreground" json:"foreground" yaml:"foreground"`
	CornerRadius float64 `toml:"corner_radius" json:"corner_radius" yaml:"corner_radius"`
}

// Default returns the standard light theme. Loaders decode documents over
// a copy of it, so omitted fields keep these values.
func Default() *Theme {
	return &Theme{
		Name:       "standard",
		Background: "#D1D4D9",
		KeyButton: ButtonStyle{
			Background:   "#FFFFFF",
			Foreground:   "#000000",
			CornerRadius: 5,
		},
		SystemButton: ButtonStyle{
			Background:   "#ACB2BB",
			Foreground:   "#000000",
			CornerRadius: 5,
		},
		Callout: CalloutStyle{
			Background:   "#FFFFFF",
			Foreground:   "#000000",
			CornerRadius: 8,
		},
		FontScale: 1.0,
	}
}

// ValidationError is one rejected theme field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("theme: %s: %s", e.Field, e.Message)
}

// ValidationErrors collects every rejected field of a document.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

var colorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// Validate checks the theme's fields and returns every violation at once.
func (t *Theme) Validate() error {
	var errs ValidationErrors

	if strings.TrimSpace(t.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "must not be empty"})
	}
	if t.FontScale <= 0 || t.FontScale > 4 {
		errs = append(errs, ValidationError{
			Field:   "font_scale",
			Message: fmt.Sprintf("must be in (0, 4], got %v", t.FontScale),
		})
	}

	colors := []struct {
		field string
		value string
	}{
		{"background", t.Background},
		{"key_button.background", t.KeyButton.Background},
		{"key_button.foreground", t.KeyButton.Foreground},
		{"system_button.background", t.SystemButton.Background},
		{"system_button.foreground", t.SystemButton.Foreground},
		{"callout.background", t.Callout.Background},
		{"callout.foreground", t.Callout.Foreground},
	}
	for _, c := range colors {
		if !colorPattern.MatchString(c.value) {
			errs = append(errs, ValidationError{
				Field:   c.field,
				Message: fmt.Sprintf("must be #RRGGBB or #RRGGBBAA, got %q", c.value),
			})
		}
	}

	radii := []struct {
		field string
		value float64
	}{
		{"key_button.corner_radius", t.KeyButton.CornerRadius},
		{"system_button.corner_radius", t.SystemButton.CornerRadius},
		{"callout.corner_radius", t.Callout.CornerRadius},
	}
	for _, r := range radii {
		if r.value < 0 {
			errs = append(errs, ValidationError{
				Field:   r.field,
				Message: "must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
