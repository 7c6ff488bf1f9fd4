package core

import (
	"testing"
	"time"
)

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("SHELF_TEST_STR", "hello")
	if got := GetEnvOrDefault("SHELF_TEST_STR", "fallback"); got != "hello" {
		t.Errorf("set variable: got %q, want %q", got, "hello")
	}
	if got := GetEnvOrDefault("SHELF_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("unset variable: got %q, want %q", got, "fallback")
	}
}

func TestParseIntEnv(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{name: "valid int", value: "42", want: 42},
		{name: "negative int", value: "-7", want: -7},
		{name: "garbage falls back", value: "many", want: 99},
		{name: "empty falls back", value: "", want: 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SHELF_TEST_INT", tt.value)
			if got := ParseIntEnv("SHELF_TEST_INT", 99); got != tt.want {
				t.Errorf("ParseIntEnv(%q) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestParseBoolEnv(t *testing.T) {
	tests := []struct {
		name  string
		value string
		def   bool
		want  bool
	}{
		{name: "true", value: "true", def: false, want: true},
		{name: "one", value: "1", def: false, want: true},
		{name: "yes uppercase", value: "YES", def: false, want: true},
		{name: "on", value: "on", def: false, want: true},
		{name: "false", value: "false", def: true, want: false},
		{name: "zero", value: "0", def: true, want: false},
		{name: "off", value: "off", def: true, want: false},
		{name: "garbage keeps default", value: "maybe", def: true, want: true},
		{name: "empty keeps default", value: "", def: true, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SHELF_TEST_BOOL", tt.value)
			if got := ParseBoolEnv("SHELF_TEST_BOOL", tt.def); got != tt.want {
				t.Errorf("ParseBoolEnv(%q, %v) = %v, want %v", tt.value, tt.def, got, tt.want)
			}
		})
	}
}

func TestParseDurationEnv(t *testing.T) {
	t.Setenv("SHELF_TEST_DUR", "45s")
	if got := ParseDurationEnv("SHELF_TEST_DUR", time.Minute); got != 45*time.Second {
		t.Errorf("ParseDurationEnv = %v, want 45s", got)
	}
	t.Setenv("SHELF_TEST_DUR", "soon")
	if got := ParseDurationEnv("SHELF_TEST_DUR", time.Minute); got != time.Minute {
		t.Errorf("ParseDurationEnv fallback = %v, want 1m", got)
	}
}
