package logger

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"
)

// reset restores logger defaults after a test.
func reset() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestVerboseToggle(t *testing.T) {
	defer reset()

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose off by default")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose on after SetVerbose(true)")
	}
}

func TestMessagesSuppressedWhenNotVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("request payload: %s", "{}")
	Info("parsed %d data points", 12)
	Warn("no volume data found in response")
	Section("Theme Volume")

	if buf.Len() > 0 {
		t.Errorf("expected no output when verbose is disabled, got %q", buf.String())
	}
}

func TestMessageFormats(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("matched timestamp layout %q", "date")
	Info("parsed %d data points", 12)
	Warn("no volume data found in response")
	Section("Theme Volume")

	out := buf.String()
	for _, want := range []string{
		"[DEBUG] matched timestamp layout \"date\"\n",
		"[INFO] parsed 12 data points\n",
		"[WARN] no volume data found in response\n",
		"\n=== Theme Volume ===\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q, got %q", want, out)
		}
	}
}

func TestConcurrentUse(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			Debug("fetching page %d", n)
			IsVerbose()
		}(i)
	}
	wg.Wait()
	// Passes if the race detector stays quiet.
}
