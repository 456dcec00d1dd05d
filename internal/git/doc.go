// Package git wraps the git CLI behind argv-level helpers.
//
// Every function shells out and reports success or failure via the
// process exit status. Lookups that callers treat as best-effort
// return an ok bool instead of an error.
package git
