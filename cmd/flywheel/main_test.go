package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestStart_ScreenFailureFlushesLog(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	logFile := filepath.Join(t.TempDir(), "flywheel.log")
	if err := flag.Set("log", logFile); err != nil {
		t.Fatalf("set log flag: %v", err)
	}
	t.Cleanup(func() { _ = flag.Set("log", "") })

	code := start(func() (tcell.Screen, error) {
		return nil, errors.New("no terminal")
	})
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	for _, want := range []string{"terminal host stopped", "no terminal"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("expected %q in log output, got %q", want, content)
		}
	}
}
