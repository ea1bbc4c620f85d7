package notification

// Notifiable is the embeddable base for validatable objects. The zero value is
// ready to use and valid.
type Notifiable struct {
	notifications Notifications
}

// AddNotification appends a notification for field.
func (n *Notifiable) AddNotification(field, message string) {
	n.notifications.Add(New(field, message))
}

// AddNotifications appends several notifications at once, typically copied
// from a nested object's own list.
func (n *Notifiable) AddNotifications(list ...Notification) {
	n.notifications = append(n.notifications, list...)
}

// Notifications returns a copy of the recorded notifications.
func (n *Notifiable) Notifications() Notifications {
	if len(n.notifications) == 0 {
		return nil
	}
	out := make(Notifications, len(n.notifications))
	copy(out, n.notifications)
	return out
}

// IsValid reports whether no notification has been recorded.
func (n *Notifiable) IsValid() bool {
	return len(n.notifications) == 0
}

// Err returns the recorded notifications as an error, or nil when valid.
func (n *Notifiable) Err() error {
	if n.IsValid() {
		return nil
	}
	return n.Notifications()
}

// Clear drops every recorded notification so the object can be validated again.
func (n *Notifiable) Clear() {
	n.notifications = nil
}
