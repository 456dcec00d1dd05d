// Package hooks runs user-configured shell commands around space
// lifecycle events.
package hooks

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/garymjr/spaces/internal/log"
)

// Lifecycle phases with configurable hooks.
const (
	PhasePostCreate = "postCreate"
	PhasePreRemove  = "preRemove"
	PhasePostRemove = "postRemove"
)

// RunAll executes each hook command with `sh -c` in cwd, with env
// added on top of the process environment. Every hook runs even when
// an earlier one fails; failures are counted and reported together.
func RunAll(ctx context.Context, phase, cwd string, env map[string]string, commands []string) error {
	if len(commands) == 0 {
		return nil
	}

	l := log.FromContext(ctx)
	l.Step("Running %s hooks...", phase)

	extra := make([]string, 0, len(env))
	for k, v := range env {
		extra = append(extra, k+"="+v)
	}

	failed := 0
	for i, command := range commands {
		if strings.TrimSpace(command) == "" {
			continue
		}
		l.Infof("Hook %d: %s", i+1, command)

		cmd := exec.CommandContext(ctx, "sh", "-c", command)
		cmd.Dir = cwd
		cmd.Env = append(os.Environ(), extra...)
		cmd.Stdout = l.Writer()
		cmd.Stderr = l.Writer()

		if err := cmd.Run(); err != nil {
			failed++
			l.Errorf("Hook %d failed: %v", i+1, err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d hook(s) failed", failed)
	}
	return nil
}
