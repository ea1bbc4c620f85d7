// Package notifykit is a fluent validation helper built on the notification
// pattern: rules are chained against the members of an object and every
// failing rule records a field name and a message on that object instead of
// returning an error.
//
//	type Customer struct {
//		notification.Notifiable
//		Name     string
//		Document string
//	}
//
//	c := &Customer{Name: "Al", Document: "111.444.777-30"}
//	notify.For(c, notify.WithLanguage("pt-BR")).
//		IfNullOrEmptyOrInvalidLength(func(c *Customer) *string { return &c.Name }, 3, 80).
//		IfNotCpf(func(c *Customer) *string { return &c.Document })
//
//	for _, n := range c.Notifications() {
//		fmt.Println(n.Field, n.Message)
//	}
//
// Packages:
//
//   - pkg/notify: the rule evaluator, selector based field resolution and
//     the localized message catalogue.
//   - pkg/notification: the Notification list and the embeddable Notifiable.
//   - pkg/validator: the stateless rule catalogue and the CPF, CNPJ, email,
//     URL and GUID predicates.
//   - pkg/i18n: YAML and JSON translations with %{name} placeholders.
//   - pkg/logger, pkg/config, pkg/sanitizer: logging, environment
//     configuration and input normalisation.
//
// The notifycheck command validates customer batches read from YAML or JSON.
package notifykit
