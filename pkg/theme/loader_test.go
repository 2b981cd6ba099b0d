package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTheme(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeTheme(t, "dark.toml", `
name = "dark"
background = "#1C1C1E"

[key_button]
background = "#2C2C2E"
foreground = "#FFFFFF"
corner_radius = 6.0
`)
	th, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if th.Name != "dark" {
		t.Errorf("name = %q, want dark", th.Name)
	}
	if th.KeyButton.Foreground != "#FFFFFF" {
		t.Errorf("key foreground = %q", th.KeyButton.Foreground)
	}
	// Omitted fields keep defaults.
	if th.FontScale != 1.0 {
		t.Errorf("font scale = %v, want the default 1.0", th.FontScale)
	}
	if th.Callout.CornerRadius != 8 {
		t.Errorf("callout radius = %v, want the default 8", th.Callout.CornerRadius)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeTheme(t, "dark.json", `{
  "name": "dark",
  "background": "#1C1C1E",
  "font_scale": 1.2
}`)
	th, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if th.Background != "#1C1C1E" || th.FontScale != 1.2 {
		t.Errorf("unexpected theme: %+v", th)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeTheme(t, "dark.yaml", `
name: dark
background: "#1C1C1E"
system_button:
  background: "#3A3A3C"
  foreground: "#FFFFFF"
  corner_radius: 5
`)
	th, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if th.SystemButton.Background != "#3A3A3C" {
		t.Errorf("system background = %q", th.SystemButton.Background)
	}
}

func TestLoadJSONSchemaRejectsUnknownField(t *testing.T) {
	path := writeTheme(t, "bad.json", `{"name": "x", "shadow": true}`)
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected a schema error for an unknown field")
	}
	if !strings.Contains(err.Error(), "schema") {
		t.Errorf("error should come from the schema check: %v", err)
	}
}

func TestLoadJSONSchemaRejectsBadColor(t *testing.T) {
	path := writeTheme(t, "bad.json", `{"name": "x", "background": "blue"}`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected a schema error for a malformed color")
	}
}

func TestLoadValidatesDecodedTheme(t *testing.T) {
	// TOML has no schema pass, so validation must catch bad values.
	path := writeTheme(t, "bad.toml", `
name = "bad"
background = "blue"
`)
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if _, ok := err.(ValidationErrors); !ok {
		t.Errorf("expected ValidationErrors, got %T: %v", err, err)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeTheme(t, "theme.ini", "name=broken")
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for an unsupported format")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
