package input

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withIO(t *testing.T, in string) *bytes.Buffer {
	t.Helper()

	oldIn, oldOut := stdin, stdout
	var out bytes.Buffer
	stdin = strings.NewReader(in)
	stdout = &out
	t.Cleanup(func() {
		stdin, stdout = oldIn, oldOut
	})
	return &out
}

func TestPrompt(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		def      string
		expected string
	}{
		{"typed value", "paper-card\n", "", "paper-card"},
		{"trims whitespace", "  paper-card  \n", "", "paper-card"},
		{"empty uses default", "\n", "my-element", "my-element"},
		{"eof uses default", "", "my-element", "my-element"},
		{"no trailing newline", "paper-card", "", "paper-card"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := withIO(t, tt.in)
			assert.Equal(t, tt.expected, Prompt("Element name", tt.def))
			assert.Contains(t, out.String(), "Element name")
		})
	}
}

func TestPrompt_ShowsDefault(t *testing.T) {
	out := withIO(t, "\n")
	Prompt("Element name", "my-element")
	assert.Contains(t, out.String(), "(my-element)")
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		in         string
		defaultYes bool
		expected   bool
	}{
		{"y\n", false, true},
		{"YES\n", false, true},
		{"n\n", true, false},
		{"\n", true, true},
		{"\n", false, false},
		{"", true, true},
		{"maybe\n", true, false},
	}

	for _, tt := range tests {
		withIO(t, tt.in)
		assert.Equal(t, tt.expected, Confirm("Continue?", tt.defaultYes), "input %q", tt.in)
	}
}

func TestIsInteractive_NonFile(t *testing.T) {
	withIO(t, "")
	assert.False(t, IsInteractive())

	stdin = io.MultiReader()
	assert.False(t, IsInteractive())
}
