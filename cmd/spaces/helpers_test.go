package main

import (
	"testing"

	"github.com/garymjr/spaces/internal/config"
)

func TestHookEnv(t *testing.T) {
	t.Parallel()

	env := hookEnv("/repo", "/clones/space-x", "x", "feature-x")
	want := map[string]string{
		"REPO_ROOT":  "/repo",
		"CLONE_PATH": "/clones/space-x",
		"SPACE":      "x",
		"BRANCH":     "feature-x",
	}
	for k, v := range want {
		if env[k] != v {
			t.Errorf("env[%q] = %q, want %q", k, env[k], v)
		}
	}
}

func TestHookEnv_OmitsEmptyBranch(t *testing.T) {
	t.Parallel()

	env := hookEnv("/repo", "/clones/space-x", "x", "")
	if _, ok := env["BRANCH"]; ok {
		t.Error("BRANCH should be absent when the branch is unknown")
	}
}

func TestScopeFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		flags scopeFlags
		want  config.Scope
	}{
		{"default is auto", scopeFlags{}, config.ScopeAuto},
		{"local", scopeFlags{local: true}, config.ScopeLocal},
		{"global", scopeFlags{global: true}, config.ScopeGlobal},
		{"system", scopeFlags{system: true}, config.ScopeSystem},
	}
	for _, tt := range tests {
		if got := tt.flags.scope(); got != tt.want {
			t.Errorf("%s: scope() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestTrimOutput(t *testing.T) {
	t.Parallel()

	if got := trimOutput([]byte("git version 2.47.0\n")); got != "git version 2.47.0" {
		t.Errorf("trimOutput = %q", got)
	}
}
