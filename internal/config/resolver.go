package config

import (
	"context"
	"os"
)

// Resolver layers the four configuration scopes, the per-repository
// settings file, environment variables, and the user defaults file
// into the lookup rules the rest of spaces depends on.
type Resolver struct {
	store Store
	user  *UserConfig
}

// NewResolver creates a Resolver over the given store. user may be nil
// when no user defaults file exists.
func NewResolver(store Store, user *UserConfig) *Resolver {
	return &Resolver{store: store, user: user}
}

// GetAll returns every value for key in scope.
//
// For the auto scope it accumulates local, settings-file, global, and
// system values in that order, deduplicating by exact string equality
// while preserving first-seen order. The traversal order is fixed so
// that pattern listings and dry-run reports stay reproducible.
func (r *Resolver) GetAll(ctx context.Context, key string, scope Scope) []string {
	if scope != ScopeAuto {
		return r.store.GetAll(ctx, key, scope)
	}

	seen := make(map[string]bool)
	var out []string
	appendUnique := func(values []string) {
		for _, v := range values {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}

	appendUnique(r.store.GetAll(ctx, key, ScopeLocal))
	appendUnique(r.store.FileGetAll(ctx, key))
	appendUnique(r.store.GetAll(ctx, key, ScopeGlobal))
	appendUnique(r.store.GetAll(ctx, key, ScopeSystem))
	return out
}

// GetDefault returns the effective single value for key, trying in
// order: the local scope, the per-repository settings file (under
// fileKey when non-empty, otherwise key), the merged auto scope, the
// environment variable envName, the user defaults file, and finally
// the literal fallback. The first non-empty value wins; with a
// non-empty fallback the result is never empty.
func (r *Resolver) GetDefault(ctx context.Context, key, envName, fallback, fileKey string) string {
	if value, ok := r.store.Get(ctx, key, ScopeLocal); ok {
		return value
	}

	lookup := key
	if fileKey != "" {
		lookup = fileKey
	}
	if values := r.store.FileGetAll(ctx, lookup); len(values) > 0 && values[0] != "" {
		return values[0]
	}

	if value, ok := r.store.Get(ctx, key, ScopeAuto); ok {
		return value
	}

	if envName != "" {
		if value := os.Getenv(envName); value != "" {
			return value
		}
	}

	if r.user != nil {
		if value := r.user.Default(key); value != "" {
			return value
		}
	}

	return fallback
}

// Set replaces all values for key. The auto scope resolves to local;
// the system scope is rejected.
func (r *Resolver) Set(ctx context.Context, key, value string, scope Scope) (Scope, error) {
	if scope == ScopeSystem {
		return scope, ErrSystemScopeReadOnly
	}
	resolved := scope.resolveWrite()
	return resolved, r.store.Set(ctx, key, value, resolved)
}

// Add appends a value to key. Scope rules match Set.
func (r *Resolver) Add(ctx context.Context, key, value string, scope Scope) (Scope, error) {
	if scope == ScopeSystem {
		return scope, ErrSystemScopeReadOnly
	}
	resolved := scope.resolveWrite()
	return resolved, r.store.Add(ctx, key, value, resolved)
}

// Unset removes every value for key. Scope rules match Set; a key that
// was never set is not an error.
func (r *Resolver) Unset(ctx context.Context, key string, scope Scope) (Scope, error) {
	if scope == ScopeSystem {
		return scope, ErrSystemScopeReadOnly
	}
	resolved := scope.resolveWrite()
	return resolved, r.store.UnsetAll(ctx, key, resolved)
}

// List returns "key value [source]" lines for every key under the
// spaces namespace in scope. In the auto scope a line already emitted
// by a narrower source is not repeated, and each line carries a
// bracketed label naming where it came from.
func (r *Resolver) List(ctx context.Context, scope Scope) []string {
	if scope != ScopeAuto {
		return r.store.ListByPrefix(ctx, Namespace, scope)
	}

	seen := make(map[string]bool)
	var out []string
	appendLabeled := func(lines []string, label string) {
		for _, line := range lines {
			if !seen[line] {
				seen[line] = true
				out = append(out, line+" ["+label+"]")
			}
		}
	}

	appendLabeled(r.store.ListByPrefix(ctx, Namespace, ScopeLocal), "local")
	appendLabeled(r.store.FileListByPrefix(ctx, Namespace), SettingsFileName)
	appendLabeled(r.store.ListByPrefix(ctx, Namespace, ScopeGlobal), "global")
	appendLabeled(r.store.ListByPrefix(ctx, Namespace, ScopeSystem), "system")
	return out
}
