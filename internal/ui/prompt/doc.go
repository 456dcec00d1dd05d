// Package prompt provides small interactive terminal prompts.
//
// All prompts render to stderr so stdout stays clean for piping
// (e.g., cd $(spaces go) works correctly). Each prompt result carries
// a Cancelled flag; callers treat cancellation as a no-op, not an
// error.
package prompt
