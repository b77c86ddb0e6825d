package encoder

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/misakazip/h265-converter/internal/planner"
)

// writeStub creates an executable shell script standing in for ffmpeg.
func writeStub(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stub encoder not supported on windows")
	}
	path := filepath.Join(t.TempDir(), "fake-ffmpeg")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func testJob() planner.Job {
	return planner.Job{
		Input:  filepath.Join("in", "movie.mov"),
		Output: filepath.Join("out", "movie.mp4"),
		Options: planner.EncodeOptions{
			Quality:  26,
			Preset:   "slow",
			JobLimit: 4,
		},
	}
}

func TestBuildArgs(t *testing.T) {
	enc := New()
	args := enc.BuildArgs(testJob())

	joined := strings.Join(args, " ")
	for _, want := range []string{
		"-i " + filepath.Join("in", "movie.mov"),
		"-c:v libx265",
		"-crf 26",
		"-preset slow",
		"-c:a copy",
		"-tag:v hvc1",
		"-n",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("args missing %q: %s", want, joined)
		}
	}

	if args[len(args)-1] != filepath.Join("out", "movie.mp4") {
		t.Errorf("last arg = %q, want output path", args[len(args)-1])
	}
}

func TestCheckMissingBinary(t *testing.T) {
	enc := &Encoder{Binary: "definitely-not-a-real-encoder-binary"}
	err := enc.Check()
	if err == nil {
		t.Fatal("Check() with missing binary: expected error, got nil")
	}
	if !strings.Contains(err.Error(), "install ffmpeg") {
		t.Errorf("Check() error lacks remediation hint: %v", err)
	}
}

func TestEncodeSuccess(t *testing.T) {
	enc := &Encoder{Binary: writeStub(t, "exit 0")}

	result := enc.Encode(context.Background(), testJob())

	if result.Failed() {
		t.Fatalf("Encode() failed: %v", result.Err)
	}
	if result.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", result.ExitCode)
	}
	if result.Elapsed <= 0 {
		t.Errorf("Elapsed = %v, want > 0", result.Elapsed)
	}
}

func TestEncodeFailure(t *testing.T) {
	enc := &Encoder{Binary: writeStub(t, "echo 'conversion failed: bad stream' >&2; exit 2")}

	result := enc.Encode(context.Background(), testJob())

	if !result.Failed() {
		t.Fatal("Encode() succeeded, want failure")
	}
	if result.ExitCode != 2 {
		t.Errorf("ExitCode = %d, want 2", result.ExitCode)
	}
	if !strings.Contains(result.Stderr, "conversion failed: bad stream") {
		t.Errorf("Stderr = %q, want encoder output surfaced", result.Stderr)
	}
}

func TestEncodeIgnoresCancellationByDefault(t *testing.T) {
	enc := &Encoder{Binary: writeStub(t, "exit 0")}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := enc.Encode(ctx, testJob())
	if result.Failed() {
		t.Errorf("Encode() with cancelled ctx and default policy failed: %v", result.Err)
	}
}

func TestEncodeKillOnInterrupt(t *testing.T) {
	enc := &Encoder{
		Binary:          writeStub(t, "sleep 10"),
		KillOnInterrupt: true,
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := enc.Encode(ctx, testJob())
	if !result.Failed() {
		t.Error("Encode() with cancelled ctx and kill policy succeeded, want failure")
	}
}

func TestTail(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"Empty", "", 3, ""},
		{"Short", "a\nb", 3, "a\nb"},
		{"Truncated", "a\nb\nc\nd", 2, "c\nd"},
		{"TrailingNewline", "a\nb\n", 2, "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tail(tt.in, tt.n); got != tt.want {
				t.Errorf("tail(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
		})
	}
}
