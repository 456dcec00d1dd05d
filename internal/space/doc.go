// Package space resolves user-supplied identifiers to concrete space
// clones and owns the destructive operations on them.
//
// The identifier "1" always names the main repository. Any other
// identifier goes through the same name sanitization used at creation
// time, so the name a user typed at 'spaces new' resolves back to the
// same on-disk clone later.
package space
