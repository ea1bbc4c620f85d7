package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Format selects the slog handler.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Option configures New.
type Option func(*options)

type options struct {
	level          slog.Level
	format         Format
	output         io.Writer
	attrs          []slog.Attr
	handlerOptions *slog.HandlerOptions
	extractors     []ContextExtractor
}

// New builds a logger. Without options it writes JSON at info level to stdout.
// Records pass through a ContextHandler, so extractors registered with
// WithContextExtractors or WithContextValue apply to every *Context call.
func New(opts ...Option) *slog.Logger {
	o := &options{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}
	return slog.New(NewContextHandler(o.handler(), o.extractors...))
}

func (o *options) handler() slog.Handler {
	ho := o.handlerOptions
	if ho == nil {
		ho = &slog.HandlerOptions{Level: o.level}
	}

	var h slog.Handler
	switch o.format {
	case FormatText:
		h = slog.NewTextHandler(o.output, ho)
	default:
		h = slog.NewJSONHandler(o.output, ho)
	}
	if len(o.attrs) > 0 {
		h = h.WithAttrs(o.attrs)
	}
	return h
}

// SetAsDefault installs l as the slog default logger.
func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func WithLevel(l slog.Level) Option {
	return func(o *options) { o.level = l }
}

// WithFormat sets the output format. It panics on anything but FormatJSON or
// FormatText; use ParseFormat for values read from configuration.
func WithFormat(f Format) Option {
	if _, err := ParseFormat(string(f)); err != nil {
		panic(err)
	}
	return func(o *options) { o.format = f }
}

func WithTextFormatter() Option {
	return func(o *options) { o.format = FormatText }
}

func WithJSONFormatter() Option {
	return func(o *options) { o.format = FormatJSON }
}

// WithOutput sets the destination. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithHandlerOptions replaces the handler options, including the level set
// by WithLevel. Nil is ignored.
func WithHandlerOptions(ho *slog.HandlerOptions) Option {
	return func(o *options) {
		if ho != nil {
			o.handlerOptions = ho
		}
	}
}

// WithAttr adds attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs...)
	}
}

// WithContextExtractors registers extractors run for every record. Nil
// extractors are skipped.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) {
		for _, ex := range extractors {
			if ex != nil {
				o.extractors = append(o.extractors, ex)
			}
		}
	}
}

// WithContextValue logs ctx.Value(key) under name whenever it is set.
func WithContextValue(name string, key any) Option {
	return func(o *options) {
		if name == "" || key == nil {
			return
		}
		o.extractors = append(o.extractors, func(ctx context.Context) (slog.Attr, bool) {
			if v := ctx.Value(key); v != nil {
				return slog.Any(name, v), true
			}
			return slog.Attr{}, false
		})
	}
}

// WithDevelopment logs text at debug level tagged with service and env.
func WithDevelopment(service string) Option {
	return withEnvironmentDefaults(Development, service, slog.LevelDebug, FormatText)
}

// WithStaging logs JSON at info level tagged with service and env.
func WithStaging(service string) Option {
	return withEnvironmentDefaults(Staging, service, slog.LevelInfo, FormatJSON)
}

// WithProduction logs JSON at info level tagged with service and env.
func WithProduction(service string) Option {
	return withEnvironmentDefaults(Production, service, slog.LevelInfo, FormatJSON)
}

// WithEnvironment picks the defaults for an APP_ENV value, see ParseEnvironment.
// Options after it can still change the level or format.
func WithEnvironment(env string, service string) Option {
	switch ParseEnvironment(env) {
	case Production:
		return WithProduction(service)
	case Staging:
		return WithStaging(service)
	default:
		return WithDevelopment(service)
	}
}

// withEnvironmentDefaults is a no-op without a service name.
func withEnvironmentDefaults(env Environment, service string, level slog.Level, format Format) Option {
	return func(o *options) {
		if service == "" {
			return
		}
		o.level = level
		o.format = format
		o.attrs = append(o.attrs,
			slog.String("service", service),
			slog.String("env", string(env)),
		)
	}
}

// ParseFormat validates a LOG_FORMAT style value. Matching is exact.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatJSON, FormatText:
		return f, nil
	default:
		return "", fmt.Errorf("invalid log format %q: must be %q or %q", s, FormatJSON, FormatText)
	}
}
