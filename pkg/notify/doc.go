// Package notify evaluates chains of rules against the members of a struct
// and records a notification for every rule that fails.
//
// An Evaluator is bound to one target that implements Target, usually a
// struct embedding notification.Notifiable. Members are addressed with
// selectors returning the address of a field; the field name recorded on the
// notification is recovered from that address, so it always follows the
// struct definition:
//
//	type Customer struct {
//		notification.Notifiable
//		Name  string
//		Email string
//		Age   int
//	}
//
//	func (c *Customer) Validate() bool {
//		notify.For(c).
//			IfNullOrEmptyOrInvalidLength(func(c *Customer) *string { return &c.Name }, 3, 80).
//			IfNotEmail(func(c *Customer) *string { return &c.Email }).
//			Check(notify.IfNotRange(func(c *Customer) *int { return &c.Age }, 18, 120))
//		return c.IsValid()
//	}
//
// Every rule in a chain is evaluated. A failing rule adds exactly one
// notification whose message is the custom message passed to the rule, or
// otherwise the catalogue template for the rule in the evaluator language.
// The bundled catalogue covers English and Brazilian Portuguese; see
// DefaultMessages, LoadMessages and WithLanguage.
//
// A selector that does not return the address of a field of the target is a
// programming error and panics with ErrInvalidSelector.
package notify
