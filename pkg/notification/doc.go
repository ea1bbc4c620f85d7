// Package notification holds the result side of the notification pattern: the
// Notification value recorded for a failed check, the Notifications list with
// field-oriented query helpers, and Notifiable, a small base type that domain
// objects embed to collect notifications during a validation pass.
//
// # Usage
//
//	type Customer struct {
//	    notification.Notifiable
//	    Name string
//	}
//
//	c := &Customer{}
//	c.AddNotification("Name", "Name is required")
//	if !c.IsValid() {
//	    for _, n := range c.Notifications() {
//	        fmt.Println(n.Field, n.Message)
//	    }
//	}
//
// Notifications implements error, so a failed pass can be returned as an error
// and recovered later with Extract:
//
//	if err := c.Err(); err != nil {
//	    if list := notification.Extract(err); list != nil {
//	        // inspect per-field messages
//	    }
//	}
//
// # Concurrency
//
// Notifiable is not synchronized. A target validated from several goroutines
// must be guarded by the caller.
package notification
