// Package logging configures the slog logger used by the strhelp command.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
)

const (
	defaultLevel      = slog.LevelWarn
	defaultAddSource  = false
	defaultIsJSON     = false
	defaultSetDefault = true
)

// Options holds configuration for the logger.
type Options struct {
	Level      slog.Level
	AddSource  bool
	IsJSON     bool
	SetDefault bool
	Output     io.Writer
}

// Option configures a logger built by New.
type Option func(*Options)

// New builds a text or JSON logger writing to stderr unless WithOutput says otherwise.
func New(opts ...Option) *slog.Logger {
	o := &Options{
		Level:      defaultLevel,
		AddSource:  defaultAddSource,
		IsJSON:     defaultIsJSON,
		SetDefault: defaultSetDefault,
		Output:     os.Stderr,
	}
	for _, opt := range opts {
		opt(o)
	}

	ho := &slog.HandlerOptions{AddSource: o.AddSource, Level: o.Level}

	var h slog.Handler = slog.NewTextHandler(o.Output, ho)
	if o.IsJSON {
		h = slog.NewJSONHandler(o.Output, ho)
	}

	logger := slog.New(h)
	if o.SetDefault {
		slog.SetDefault(logger)
	}
	return logger
}

// ParseLevel accepts the slog level names ("debug", "info", "warn", "error").
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(s))
	return l, err
}

// WithLevel sets the level by name. An unparsable name is reported and
// falls back to warn.
func WithLevel(level string) Option {
	return func(o *Options) {
		l, err := ParseLevel(level)
		if err != nil {
			slog.Default().Warn("failed to parse log level",
				slog.String("input", level),
				slog.String("default", defaultLevel.String()),
				slog.Any("error", err),
			)
			l = defaultLevel
		}
		o.Level = l
	}
}

func WithAddSource(addSource bool) Option {
	return func(o *Options) { o.AddSource = addSource }
}

func WithIsJSON(isJSON bool) Option {
	return func(o *Options) { o.IsJSON = isJSON }
}

func WithSetDefault(setDefault bool) Option {
	return func(o *Options) { o.SetDefault = setDefault }
}

func WithOutput(w io.Writer) Option {
	return func(o *Options) { o.Output = w }
}

type ctxLogger struct{}

// ContextWithLogger stores l in ctx.
func ContextWithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLogger{}, l)
}

// L returns the logger stored in ctx, or slog.Default.
func L(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxLogger{}).(*slog.Logger); ok {
			return l
		}
	}
	return slog.Default()
}

// ErrAttr creates an error attribute. Handles nil errors.
func ErrAttr(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.String("error", err.Error())
}
