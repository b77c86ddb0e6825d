package main

import (
	"strings"
	"testing"

	"github.com/misakazip/h265-converter/internal/config"
)

func TestRootCommandFlagDefaults(t *testing.T) {
	cmd := newRootCmd()

	tests := []struct {
		flag string
		want string
	}{
		{"output", config.DefaultOutputDir},
		{"quality", "28"},
		{"preset", "medium"},
		{"verbose", "false"},
		{"kill-on-interrupt", "false"},
		{"metrics-addr", ""},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			f := cmd.Flags().Lookup(tt.flag)
			if f == nil {
				t.Fatalf("flag --%s not registered", tt.flag)
			}
			if f.DefValue != tt.want {
				t.Errorf("flag --%s default = %q, want %q", tt.flag, f.DefValue, tt.want)
			}
		})
	}
}

func TestRootCommandRejectsExtraArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"dir-one", "dir-two"})

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() with two positional args: expected error")
	}
}

func TestVersionFlag(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--version"})

	if err := cmd.Execute(); err != nil {
		t.Errorf("Execute() with --version: %v", err)
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := config.Config{
		InputDir:  "./videos",
		OutputDir: "./converted",
		JobLimit:  0,
		Quality:   28,
		Preset:    "medium",
	}

	err := run(cfg)
	if err == nil {
		t.Fatal("run() with zero job limit: expected error")
	}
	if !strings.Contains(err.Error(), "job limit") {
		t.Errorf("run() error = %q, want job limit validation failure", err)
	}
}
