// Package log provides context-aware diagnostic logging for spaces.
// All diagnostics go to stderr; primary data output belongs to the
// output package.
package log

import (
	"context"
	"fmt"
	"io"
	"strings"
)

type ctxKey struct{}

// Logger writes step/info/warn/error diagnostics and, in verbose mode,
// echoes external commands as they run.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
}

// New creates a new logger.
func New(out io.Writer, verbose, quiet bool) *Logger {
	return &Logger{out: out, verbose: verbose, quiet: quiet}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard}
}

// Step announces the start of a multi-part operation.
func (l *Logger) Step(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, "==> "+format+"\n", args...)
}

// Infof reports a completed action.
func (l *Logger) Infof(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, "[OK] "+format+"\n", args...)
}

// Warnf reports a recoverable problem.
func (l *Logger) Warnf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, "[!] "+format+"\n", args...)
}

// Errorf reports a failure. Errors print even in quiet mode.
func (l *Logger) Errorf(format string, args ...any) {
	fmt.Fprintf(l.out, "[x] "+format+"\n", args...)
}

// Printf writes unprefixed diagnostic output.
func (l *Logger) Printf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, format, args...)
}

// Command logs an external command execution.
// Only prints when verbose mode is enabled.
func (l *Logger) Command(name string, args ...string) {
	if l.verbose && !l.quiet {
		fmt.Fprintf(l.out, "$ %s %s\n", name, strings.Join(args, " "))
	}
}

// Verbose returns true if verbose mode is enabled.
func (l *Logger) Verbose() bool {
	return l.verbose
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}
