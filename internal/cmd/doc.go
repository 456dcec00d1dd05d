// Package cmd provides helpers for executing external commands with
// proper error handling. Stderr is captured and becomes the error
// message on non-zero exit.
package cmd
