package notification

import (
	"errors"
	"fmt"
	"strings"
)

// Notification is a single recorded validation failure.
type Notification struct {
	Field   string `json:"field" yaml:"field"`
	Message string `json:"message" yaml:"message"`
}

// New creates a notification for the given field.
func New(field, message string) Notification {
	return Notification{Field: field, Message: message}
}

func (n Notification) String() string {
	return fmt.Sprintf("%s: %s", n.Field, n.Message)
}

// Notifications is an ordered list of notifications. It implements error so a
// failed validation pass can be returned from functions with error results.
type Notifications []Notification

func (ns Notifications) Error() string {
	if len(ns) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ns))
	for _, n := range ns {
		parts = append(parts, n.String())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ns *Notifications) Add(n Notification) {
	*ns = append(*ns, n)
}

// Has reports whether at least one notification was recorded for field.
func (ns Notifications) Has(field string) bool {
	for _, n := range ns {
		if n.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field in insertion order.
func (ns Notifications) Get(field string) []string {
	var messages []string
	for _, n := range ns {
		if n.Field == field {
			messages = append(messages, n.Message)
		}
	}
	return messages
}

// Fields returns the distinct field names in order of first appearance.
func (ns Notifications) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, n := range ns {
		if !seen[n.Field] {
			fields = append(fields, n.Field)
			seen[n.Field] = true
		}
	}
	return fields
}

// ByField groups messages by field name.
func (ns Notifications) ByField() map[string][]string {
	grouped := make(map[string][]string, len(ns))
	for _, n := range ns {
		grouped[n.Field] = append(grouped[n.Field], n.Message)
	}
	return grouped
}

func (ns Notifications) IsEmpty() bool {
	return len(ns) == 0
}

// Extract returns the Notifications carried by err, or nil.
func Extract(err error) Notifications {
	if err == nil {
		return nil
	}

	var list Notifications
	if errors.As(err, &list) {
		return list
	}

	return nil
}

func IsNotifications(err error) bool {
	if err == nil {
		return false
	}

	var list Notifications
	return errors.As(err, &list)
}
