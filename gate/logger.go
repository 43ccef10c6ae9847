package gate

import "log"

// Logger is the small sink debug probes write to. It mirrors the
// shape callers already have from their own logging stack instead of
// pulling a structured-logging framework into a reusable library.
type Logger interface {
	Debugf(format string, args ...interface{})
}

// NopLogger discards every message. It is the zero-value default used
// whenever a caller does not wire in a Logger of their own.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...interface{}) {}

// PrintfLogger adapts any Printf-shaped function with no results
// (log.Printf, testing.T.Logf, ...) into a Logger.
type PrintfLogger func(format string, args ...interface{})

func (f PrintfLogger) Debugf(format string, args ...interface{}) {
	f(format, args...)
}

var _ Logger = NopLogger{}
var _ Logger = PrintfLogger(log.Printf)
