package core

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadReaderSettingsMissingFileYieldsDefaults(t *testing.T) {
	s, err := LoadReaderSettings(filepath.Join(t.TempDir(), "settings.yaml"))
	if err != nil {
		t.Fatalf("LoadReaderSettings: %v", err)
	}
	if s != DefaultReaderSettings() {
		t.Errorf("got %+v, want defaults %+v", s, DefaultReaderSettings())
	}
}

func TestReaderSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	want := ReaderSettings{
		FontSize:    22,
		LineSpacing: 2.0,
		PageWidth:   900,
		Theme:       "dark",
	}

	if err := SaveReaderSettings(path, want); err != nil {
		t.Fatalf("SaveReaderSettings: %v", err)
	}
	got, err := LoadReaderSettings(path)
	if err != nil {
		t.Fatalf("LoadReaderSettings: %v", err)
	}
	if got != want {
		t.Errorf("round trip: got %+v, want %+v", got, want)
	}
}

func TestLoadReaderSettingsPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("theme: sepia\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadReaderSettings(path)
	if err != nil {
		t.Fatalf("LoadReaderSettings: %v", err)
	}
	if got.Theme != "sepia" {
		t.Errorf("Theme = %q, want sepia", got.Theme)
	}
	if got.FontSize != DefaultReaderSettings().FontSize {
		t.Errorf("FontSize = %d, want default %d", got.FontSize, DefaultReaderSettings().FontSize)
	}
}

func TestLoadReaderSettingsRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadReaderSettings(path); err == nil {
		t.Error("malformed YAML: want error, got nil")
	}
}
