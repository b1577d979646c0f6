package strutils

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// TraceLevel controls whether failures are logged before they are reported.
type TraceLevel int

const (
	// TraceSilent reports failures without logging (default).
	TraceSilent TraceLevel = iota
	// TraceWarn logs a warning for every failure before the handler runs.
	TraceWarn
)

func (l TraceLevel) String() string {
	switch l {
	case TraceSilent:
		return "silent"
	case TraceWarn:
		return "warn"
	default:
		return fmt.Sprintf("TraceLevel(%d)", int(l))
	}
}

// ParseTraceLevel maps "silent" (or "") and "warn" to a TraceLevel.
func ParseTraceLevel(s string) (TraceLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "silent", "none":
		return TraceSilent, nil
	case "warn", "warning":
		return TraceWarn, nil
	default:
		return TraceSilent, fmt.Errorf("strutils: unknown trace level %q", s)
	}
}

// Handler is notified with the code of every failure. It cannot make a
// failure recoverable; it only changes who hears about it first.
type Handler func(Code)

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// SetTraceLevel sets the trace level for subsequent failures.
func (c *Context) SetTraceLevel(l TraceLevel) {
	c.opts.trace = l
}

// TraceLevel returns the current trace level.
func (c *Context) TraceLevel() TraceLevel {
	return c.opts.trace
}

// SetHandler installs fn as the failure handler. nil restores the default.
func (c *Context) SetHandler(fn Handler) {
	c.opts.handler = fn
}

// fail builds the error for op, runs the reporting chain and either returns
// the error or panics with it.
func (c *Context) fail(op string, code Code, cause error) error {
	err := &Error{Code: code, Op: op, cause: cause}
	if c.opts.trace == TraceWarn {
		c.opts.logger.LogAttrs(context.Background(), slog.LevelWarn, "strutils failure",
			slog.String("op", op),
			slog.Int("code", int(code)),
			slog.String("reason", code.String()),
			slog.String("epoch", c.epoch.String()),
		)
	}
	if c.opts.handler != nil {
		c.opts.handler(code)
	}
	if c.opts.panicOnError {
		panic(err)
	}
	return err
}
