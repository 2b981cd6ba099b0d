package theme

import (
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default theme must validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Theme)
		wantErr string
	}{
		{
			name:    "empty name",
			mutate:  func(th *Theme) { th.Name = "  " },
			wantErr: "name",
		},
		{
			name:    "bad background",
			mutate:  func(th *Theme) { th.Background = "red" },
			wantErr: "background",
		},
		{
			name:    "short hex",
			mutate:  func(th *Theme) { th.KeyButton.Foreground = "#FFF" },
			wantErr: "key_button.foreground",
		},
		{
			name:    "zero font scale",
			mutate:  func(th *Theme) { th.FontScale = 0 },
			wantErr: "font_scale",
		},
		{
			name:    "huge font scale",
			mutate:  func(th *Theme) { th.FontScale = 5 },
			wantErr: "font_scale",
		},
		{
			name:    "negative corner radius",
			mutate:  func(th *Theme) { th.Callout.CornerRadius = -1 },
			wantErr: "callout.corner_radius",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := Default()
			tt.mutate(th)
			err := th.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	th := Default()
	th.Name = ""
	th.Background = "nope"
	th.FontScale = -1

	err := th.Validate()
	errs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(errs) != 3 {
		t.Errorf("expected 3 errors, got %d: %v", len(errs), errs)
	}
}

func TestAlphaChannelAccepted(t *testing.T) {
	th := Default()
	th.Background = "#D1D4D980"
	if err := th.Validate(); err != nil {
		t.Errorf("eight-digit hex must validate: %v", err)
	}
}
