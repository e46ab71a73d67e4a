package session

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script stubs require a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "agent.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func TestExecutorSuccess(t *testing.T) {
	script := writeScript(t, "exit 0\n")
	run := NewExecutor(script, false)

	code, err := run(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
}

func TestExecutorNonZeroExitIsNotAnError(t *testing.T) {
	script := writeScript(t, "exit 3\n")
	run := NewExecutor(script, false)

	code, err := run(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("non-zero exit should not be an error: %v", err)
	}
	if code != 3 {
		t.Fatalf("expected exit 3, got %d", code)
	}
}

func TestExecutorRunsInWorkDir(t *testing.T) {
	workDir := t.TempDir()
	script := writeScript(t, "pwd > marker.txt\n")
	run := NewExecutor(script, false)

	code, err := run(context.Background(), workDir)
	if err != nil || code != 0 {
		t.Fatalf("run: code=%d err=%v", code, err)
	}
	if _, err := os.Stat(filepath.Join(workDir, "marker.txt")); err != nil {
		t.Fatalf("expected marker in workDir: %v", err)
	}
}

func TestExecutorLaunchFailure(t *testing.T) {
	run := NewExecutor("autogoals-no-such-agent-command", false)

	code, err := run(context.Background(), t.TempDir())
	if err == nil {
		t.Fatal("expected launch error")
	}
	if code != -1 {
		t.Fatalf("expected -1 exit code on launch failure, got %d", code)
	}
}
