package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/garymjr/spaces/internal/cmd"
)

// SettingsFileName is the tracked per-repository settings file,
// written in git-config syntax and versioned alongside the code.
const SettingsFileName = ".spacesrc"

// SettingsFilePath returns the location of the per-repository settings
// file for a repo root.
func SettingsFilePath(repoRoot string) string {
	return filepath.Join(repoRoot, SettingsFileName)
}

// gitStore reads and writes configuration through git config.
type gitStore struct {
	repoRoot string
}

// NewGitStore returns a Store backed by git config for the repository
// at repoRoot.
func NewGitStore(repoRoot string) Store {
	return &gitStore{repoRoot: repoRoot}
}

func (s *gitStore) configArgs(scope Scope, rest ...string) []string {
	args := []string{"-C", s.repoRoot, "config"}
	if flag := scope.Flag(); flag != "" {
		args = append(args, flag)
	}
	return append(args, rest...)
}

// outputOpt runs git and degrades any failure or empty output to
// ok=false. Config lookups must stay resilient to a missing or
// malformed config store.
func (s *gitStore) outputOpt(ctx context.Context, args []string) (string, bool) {
	out, err := cmd.OutputContext(ctx, "", "git", args...)
	if err != nil {
		return "", false
	}
	text := strings.TrimSpace(string(out))
	if text == "" {
		return "", false
	}
	return text, true
}

func (s *gitStore) Get(ctx context.Context, key string, scope Scope) (string, bool) {
	return s.outputOpt(ctx, s.configArgs(scope, "--get", key))
}

func (s *gitStore) GetAll(ctx context.Context, key string, scope Scope) []string {
	out, ok := s.outputOpt(ctx, s.configArgs(scope, "--get-all", key))
	if !ok {
		return nil
	}
	return strings.Split(out, "\n")
}

func (s *gitStore) FileGetAll(ctx context.Context, key string) []string {
	file := SettingsFilePath(s.repoRoot)
	if _, err := os.Stat(file); err != nil {
		return nil
	}
	args := []string{"-C", s.repoRoot, "config", "-f", file, "--get-all", key}
	out, ok := s.outputOpt(ctx, args)
	if !ok {
		return nil
	}
	return strings.Split(out, "\n")
}

func (s *gitStore) Set(ctx context.Context, key, value string, scope Scope) error {
	return cmd.RunContext(ctx, "", "git", s.configArgs(scope, key, value)...)
}

func (s *gitStore) Add(ctx context.Context, key, value string, scope Scope) error {
	return cmd.RunContext(ctx, "", "git", s.configArgs(scope, "--add", key, value)...)
}

func (s *gitStore) UnsetAll(ctx context.Context, key string, scope Scope) error {
	// git exits non-zero when the key was not set; that is not an error.
	_ = cmd.RunContext(ctx, "", "git", s.configArgs(scope, "--unset-all", key)...)
	return nil
}

func prefixRegexp(prefix string) string {
	return "^" + strings.ReplaceAll(prefix, ".", `\.`)
}

func (s *gitStore) ListByPrefix(ctx context.Context, prefix string, scope Scope) []string {
	out, ok := s.outputOpt(ctx, s.configArgs(scope, "--get-regexp", prefixRegexp(prefix)))
	if !ok {
		return nil
	}
	return strings.Split(out, "\n")
}

func (s *gitStore) FileListByPrefix(ctx context.Context, prefix string) []string {
	file := SettingsFilePath(s.repoRoot)
	if _, err := os.Stat(file); err != nil {
		return nil
	}
	args := []string{"-C", s.repoRoot, "config", "-f", file, "--get-regexp", prefixRegexp(prefix)}
	out, ok := s.outputOpt(ctx, args)
	if !ok {
		return nil
	}
	return strings.Split(out, "\n")
}
