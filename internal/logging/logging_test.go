package logging

import (
	"bytes"
	"log"
	"os"
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{Level(42), "unknown(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
			}
		})
	}
}

func TestSetVerbose(t *testing.T) {
	mu.Lock()
	saved := currentLevel
	currentLevel = LevelInfo
	mu.Unlock()
	defer func() {
		mu.Lock()
		currentLevel = saved
		mu.Unlock()
	}()

	SetVerbose(false)
	if got := GetLevel(); got != LevelInfo {
		t.Errorf("SetVerbose(false) changed level to %v", got)
	}

	SetVerbose(true)
	if got := GetLevel(); got != LevelDebug {
		t.Errorf("SetVerbose(true): level = %v, want debug", got)
	}

	// Verbose must not raise the level back up.
	SetVerbose(true)
	if got := GetLevel(); got != LevelDebug {
		t.Errorf("second SetVerbose(true): level = %v, want debug", got)
	}
}

func TestLevelFiltering(t *testing.T) {
	mu.Lock()
	saved := currentLevel
	currentLevel = LevelWarn
	mu.Unlock()
	defer func() {
		mu.Lock()
		currentLevel = saved
		mu.Unlock()
	}()

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	Debug("hidden debug")
	Info("hidden info")
	Warn("visible warning")

	out := buf.String()
	if bytes.Contains([]byte(out), []byte("hidden")) {
		t.Errorf("messages below level were logged: %q", out)
	}
	if !bytes.Contains([]byte(out), []byte("visible warning")) {
		t.Errorf("warning was filtered out: %q", out)
	}
}
