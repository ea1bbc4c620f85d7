package notify

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/notifykit/pkg/i18n"
	"github.com/dmitrymomot/notifykit/pkg/logger"
	"github.com/dmitrymomot/notifykit/pkg/validator"
)

// Target receives the notifications produced by failing rules.
type Target interface {
	AddNotification(field, message string)
}

// Validatable is satisfied by a pointer to a struct that is also a Target,
// which lets For infer T from the argument.
type Validatable[T any] interface {
	*T
	Target
}

// Option configures an Evaluator.
type Option func(*settings)

type settings struct {
	ctx      context.Context
	lang     string
	messages *Messages
	logger   *slog.Logger
	namer    FieldNamer
}

// WithLanguage selects the message language. Codes are matched loosely
// ("pt_br" selects "pt-BR"); unknown languages fall back to English.
func WithLanguage(lang string) Option {
	return func(s *settings) {
		if lang != "" {
			s.lang = lang
		}
	}
}

// WithMessages replaces the bundled message catalogue.
func WithMessages(m *Messages) Option {
	return func(s *settings) {
		if m != nil {
			s.messages = m
		}
	}
}

// WithLogger logs every recorded notification at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithFieldNamer controls the field name recorded on notifications.
func WithFieldNamer(n FieldNamer) Option {
	return func(s *settings) {
		if n != nil {
			s.namer = n
		}
	}
}

// WithContext passes ctx to the logger and, when ctx carries a locale set with
// i18n.SetLocale, uses it as the message language. A later WithLanguage
// overrides the language.
func WithContext(ctx context.Context) Option {
	return func(s *settings) {
		if ctx == nil {
			return
		}
		s.ctx = ctx
		if lang, ok := i18n.LocaleFromContext(ctx); ok {
			s.lang = lang
		}
	}
}

// Evaluator runs rules against the members of one target and records a
// notification for each failing rule. Every rule is evaluated; there is no
// short-circuit. An Evaluator is not safe for concurrent use.
type Evaluator[T any] struct {
	target   *T
	sink     Target
	ctx      context.Context
	lang     string
	messages *Messages
	logger   *slog.Logger
	namer    FieldNamer
	failures int
}

// For returns an Evaluator bound to target. It panics with ErrNilTarget if
// target is nil.
//
//	notify.For(c).
//		IfNullOrEmpty(func(c *Customer) *string { return &c.Name }).
//		IfNotEmail(func(c *Customer) *string { return &c.Email }, "Email is invalid")
func For[T any, P Validatable[T]](target P, opts ...Option) *Evaluator[T] {
	ptr := (*T)(target)
	if ptr == nil {
		panic(ErrNilTarget)
	}

	s := settings{
		ctx:    context.Background(),
		lang:   i18n.DefaultLanguage,
		logger: logger.Discard(),
		namer:  GoFieldNamer,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.messages == nil {
		s.messages = DefaultMessages()
	}

	return &Evaluator[T]{
		target:   ptr,
		sink:     target,
		ctx:      s.ctx,
		lang:     s.messages.Match(s.lang),
		messages: s.messages,
		logger:   s.logger.With(logger.Component("notify")),
		namer:    s.namer,
	}
}

// Check evaluates rules in order against the target.
func (e *Evaluator[T]) Check(rules ...Rule[T]) *Evaluator[T] {
	for _, r := range rules {
		if r != nil {
			r(e)
		}
	}
	return e
}

// IsValid reports whether no rule evaluated by this Evaluator has failed.
// Notifications the target held before For was called are not considered.
func (e *Evaluator[T]) IsValid() bool {
	return e.failures == 0
}

// Failures returns the number of notifications this Evaluator recorded.
func (e *Evaluator[T]) Failures() int {
	return e.failures
}

// Language returns the catalogue language used for messages.
func (e *Evaluator[T]) Language() string {
	return e.lang
}

// apply records a notification when r fails. A non-empty custom message is
// used verbatim.
func (e *Evaluator[T]) apply(r validator.Rule, custom string) {
	if r.Passes() {
		return
	}

	msg := custom
	if msg == "" {
		msg = e.messages.Render(e.lang, r.Error)
	}

	e.sink.AddNotification(r.Error.Field, msg)
	e.failures++
	e.logger.DebugContext(e.ctx, "notification added",
		logger.Field(r.Error.Field),
		logger.RuleKey(r.Error.TranslationKey),
		logger.Language(e.lang),
	)
}
