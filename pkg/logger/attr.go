package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records the name of a validated member under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// RuleKey records the translation key of a failed rule under the key "rule".
// If key is empty, it returns an empty Attr.
func RuleKey(key string) slog.Attr {
	if key == "" {
		return slog.Attr{}
	}
	return slog.String("rule", key)
}

// Language records a message language under the key "lang".
func Language(lang string) slog.Attr {
	return slog.String("lang", lang)
}

// Source records an input file name under the key "source".
func Source(name string) slog.Attr {
	return slog.String("source", name)
}

// Record records the position of an item within a batch under the key "record".
func Record(index int) slog.Attr {
	return slog.Int("record", index)
}

// Count records a counter under the given key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}
