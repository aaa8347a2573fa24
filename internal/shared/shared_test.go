package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeSong(t *testing.T) {
	tc := []struct {
		name  string
		input string
		want  string
	}{
		{name: "already clean", input: "Yesterday", want: "Yesterday"},
		{name: "surrounding whitespace", input: "  Yesterday \t", want: "Yesterday"},
		{name: "interior whitespace kept", input: " Let  It Be ", want: "Let  It Be"},
		{name: "case kept", input: "yEsTeRdAy", want: "yEsTeRdAy"},
		{name: "whitespace only", input: " \n\t ", want: ""},
		{name: "empty", input: "", want: ""},
		{name: "invalid utf-8 replaced", input: " bad\xffsong ", want: "bad\uFFFDsong"},
		{name: "valid multibyte kept", input: "Café", want: "Café"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeSong(tt.input); got != tt.want {
				t.Errorf("NormalizeSong(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGenerateID(t *testing.T) {
	a, b := GenerateID(), GenerateID()
	if a == b {
		t.Errorf("expected distinct ids, got %s twice", a)
	}
	if !IsID(a) {
		t.Errorf("expected %s to be a valid id", a)
	}
	if IsID("not-an-id") {
		t.Error("expected garbage to be rejected")
	}
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tui.log")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	logger.Info("hello", "song", "Yesterday")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if len(content) == 0 {
		t.Error("expected log file to contain output")
	}
}
