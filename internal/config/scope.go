package config

import "errors"

// Scope identifies a configuration storage tier.
type Scope int

const (
	// ScopeAuto is the derived composite of all scopes. Reads merge
	// every tier; writes resolve to ScopeLocal first.
	ScopeAuto Scope = iota
	// ScopeLocal is the untracked per-clone git config.
	ScopeLocal
	// ScopeGlobal is the per-user git config.
	ScopeGlobal
	// ScopeSystem is the per-machine git config. Never written.
	ScopeSystem
)

// ErrSystemScopeReadOnly is returned by write operations targeting the
// system scope.
var ErrSystemScopeReadOnly = errors.New("--system not supported for write operations")

// String returns the scope name as used in user-facing messages.
func (s Scope) String() string {
	switch s {
	case ScopeLocal:
		return "local"
	case ScopeGlobal:
		return "global"
	case ScopeSystem:
		return "system"
	default:
		return "auto"
	}
}

// Flag returns the git config scope flag, or "" for the auto scope
// (git merges all scopes when none is given).
func (s Scope) Flag() string {
	switch s {
	case ScopeLocal:
		return "--local"
	case ScopeGlobal:
		return "--global"
	case ScopeSystem:
		return "--system"
	default:
		return ""
	}
}

// resolveWrite maps the auto scope to local for mutation.
func (s Scope) resolveWrite() Scope {
	if s == ScopeAuto {
		return ScopeLocal
	}
	return s
}
