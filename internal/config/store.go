package config

import "context"

// Store is the key/value backend behind the resolver. The concrete
// implementation shells out to git config; tests use an in-memory fake.
//
// Lookups never fail: a missing key, a missing scope, or an
// infrastructural error all read as empty. Only writes report errors.
type Store interface {
	// Get returns the single effective value for key in scope.
	// ScopeAuto reads the merged git view (system < global < local).
	Get(ctx context.Context, key string, scope Scope) (string, bool)

	// GetAll returns every value for key in one concrete scope.
	GetAll(ctx context.Context, key string, scope Scope) []string

	// FileGetAll returns every value for key from the tracked
	// per-repository settings file.
	FileGetAll(ctx context.Context, key string) []string

	// Set replaces all values for key in scope with value.
	Set(ctx context.Context, key, value string, scope Scope) error

	// Add appends value to key in scope.
	Add(ctx context.Context, key, value string, scope Scope) error

	// UnsetAll removes every value for key in scope. Removing a key
	// that is not set is not an error.
	UnsetAll(ctx context.Context, key string, scope Scope) error

	// ListByPrefix returns "key value" lines for all keys under prefix
	// in one concrete scope.
	ListByPrefix(ctx context.Context, prefix string, scope Scope) []string

	// FileListByPrefix returns "key value" lines for all keys under
	// prefix in the per-repository settings file.
	FileListByPrefix(ctx context.Context, prefix string) []string
}
