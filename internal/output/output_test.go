package output

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

// captureOutput captures stdout during test execution
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestSuccess(t *testing.T) {
	out := captureOutput(func() {
		Success("Created my-element")
	})

	assert.Contains(t, out, "✨")
	assert.Contains(t, out, "Created my-element")
}

func TestError(t *testing.T) {
	out := captureOutput(func() {
		Error("Error message")
	})

	assert.Contains(t, out, "❌")
	assert.Contains(t, out, "Error message")
}

func TestWarn(t *testing.T) {
	out := captureOutput(func() {
		Warn("Careful")
	})

	assert.Contains(t, out, "⚠️")
	assert.Contains(t, out, "Careful")
}

func TestStep(t *testing.T) {
	out := captureOutput(func() {
		Step("cd my-element")
	})

	assert.Contains(t, out, "   cd my-element")
}

func TestVerbose(t *testing.T) {
	defer SetVerbose(false)

	SetVerbose(false)
	out := captureOutput(func() {
		Verbose("hidden")
	})
	assert.Empty(t, out)

	SetVerbose(true)
	out = captureOutput(func() {
		Verbose("shown")
	})
	assert.Contains(t, out, "shown")
}

func TestSetupLogging(t *testing.T) {
	defer SetupLogging(false)

	SetupLogging(true)
	assert.Equal(t, log.DebugLevel, Logger.GetLevel())
	assert.True(t, IsVerbose())

	SetupLogging(false)
	assert.Equal(t, log.InfoLevel, Logger.GetLevel())
	assert.False(t, IsVerbose())
}
