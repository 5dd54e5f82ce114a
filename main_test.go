package main

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// ============================================================================
// Console portfolio mode
// ============================================================================

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything it printed.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stdout = w
	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		done <- buf.String()
	}()
	fn()
	w.Close()
	os.Stdout = old
	return <-done
}

func TestRunPortfolioMode_PrintsEachPropertyOnce(t *testing.T) {
	config, err := LoadDefaultConfig()
	if err != nil {
		t.Fatalf("LoadDefaultConfig: %v", err)
	}
	properties := config.PropertyInputs()
	if len(properties) == 0 {
		t.Fatal("default config has no properties")
	}

	out := captureStdout(t, func() {
		runPortfolioMode(config, config.BuildAssumptions(), false, false)
	})

	// Each configured property prints exactly one "▸ name" block.
	if got, want := strings.Count(out, "▸ "), len(properties); got != want {
		t.Errorf("property blocks printed %d times, want %d", got, want)
	}
	if got := strings.Count(out, "PORTAFOLIO"); got != 1 {
		t.Errorf("totals block printed %d times, want 1", got)
	}
}
