package logger

import (
	"fmt"
	"log/slog"
	"os"
)

// Logger wraps slog with the package/function context baked in so call
// sites can log and return errors in one statement.
type Logger struct {
	log      *slog.Logger
	pkg      string
	file     string
	function string
}

func New(pkg string) Logger {
	return Logger{
		log: slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})),
		pkg: pkg,
	}
}

func (l Logger) Function(function string) Logger {
	l.function = function
	return l
}

func (l Logger) File(file string) Logger {
	l.file = file
	return l
}

func (l Logger) With(args ...any) Logger {
	l.log = l.log.With(args...)
	return l
}

func (l Logger) attrs(args []any) []any {
	out := []any{"package", l.pkg}
	if l.file != "" {
		out = append(out, "file", l.file)
	}
	if l.function != "" {
		out = append(out, "function", l.function)
	}
	return append(out, args...)
}

func (l Logger) Info(msg string, args ...any) {
	l.log.Info(msg, l.attrs(args)...)
}

func (l Logger) Warn(msg string, args ...any) {
	l.log.Warn(msg, l.attrs(args)...)
}

func (l Logger) Debug(msg string, args ...any) {
	l.log.Debug(msg, l.attrs(args)...)
}

// Er logs an error without returning it.
func (l Logger) Er(msg string, err error, args ...any) {
	l.log.Error(msg, l.attrs(append(args, "error", err))...)
}

// ErMsg logs an error message without an underlying error.
func (l Logger) ErMsg(msg string, args ...any) {
	l.log.Error(msg, l.attrs(args)...)
}

// Err logs the error and returns it wrapped with the message.
func (l Logger) Err(msg string, err error, args ...any) error {
	l.log.Error(msg, l.attrs(append(args, "error", err))...)
	return fmt.Errorf("%s: %w", msg, err)
}

// Error logs and returns a new error built from the message.
func (l Logger) Error(msg string, args ...any) error {
	l.log.Error(msg, l.attrs(args)...)
	return fmt.Errorf("%s", msg)
}

// ErrMsg is Error without structured attributes.
func (l Logger) ErrMsg(msg string) error {
	l.log.Error(msg, l.attrs(nil)...)
	return fmt.Errorf("%s", msg)
}
