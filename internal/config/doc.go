// Package config resolves spaces settings across four scopes: the
// repository-local git config, the tracked .spacesrc file at the repo
// root, the per-user global config, and the per-machine system config.
//
// Reads are layered: single-value lookups take the first non-empty
// answer in narrowing order, while multi-value lookups accumulate
// across every scope with first-seen-order deduplication. Writes go to
// a single concrete scope; the system scope is read-only.
//
// The concrete store shells out to git config, but the resolver only
// depends on the Store interface so tests can substitute an in-memory
// implementation.
package config
