package e2e

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"
)

const runTimeout = 30 * time.Second

// transcript is the captured output of one CLI run.
type transcript struct {
	Stdout string
	Stderr string
}

// runCLI executes SIMPLEINV_CMD with args appended, e.g.
// SIMPLEINV_CMD="go run ./cmd/simpleinv". The test is skipped when unset.
func runCLI(t *testing.T, env map[string]string, args ...string) (transcript, error) {
	t.Helper()

	cmdStr := os.Getenv("SIMPLEINV_CMD")
	if cmdStr == "" {
		t.Skip("SIMPLEINV_CMD not set; skipping end-to-end run")
	}

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	line := cmdStr
	for _, a := range args {
		line += " " + a
	}
	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", line)
	cmd.Env = os.Environ()
	for k, v := range env {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return transcript{Stdout: stdout.String(), Stderr: stderr.String()}, err
}
