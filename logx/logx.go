// Package logx carries the process-wide logger used for diagnostic output.
// The default is slog; callers can swap in their own sink with SetLogger.
package logx

import (
	"log/slog"
	"sync/atomic"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type nop struct{}

func (nop) Debug(string, ...any) {}
func (nop) Info(string, ...any)  {}
func (nop) Warn(string, ...any)  {}
func (nop) Error(string, ...any) {}

// holder gives atomic.Value a single concrete type to store, whatever the
// dynamic type of the logger inside.
type holder struct{ l Logger }

var current atomic.Value

func init() {
	current.Store(holder{slog.Default()})
}

func L() Logger {
	return current.Load().(holder).l
}

func SetLogger(l Logger) {
	if l == nil {
		l = nop{}
	}
	current.Store(holder{l})
}
