// Package validator is the catalogue of domain checks used by the notify
// evaluator: string emptiness and length bounds, e-mail and URL shapes,
// numeric and comparator-based ordering, GUIDs, collections, optional values
// and the CPF/CNPJ modulo-11 checksums.
//
// Every check is a constructor returning a Rule: a Check function that reports
// whether the value is acceptable plus a ValidationError carrying the field,
// an English default message, a translation key and the rule parameters.
// Rules are plain values with no shared state; Apply evaluates a batch of them
// without short-circuiting and returns ValidationErrors for the failures.
//
//	err := validator.Apply(
//	    validator.NotEmpty("Name", c.Name),
//	    validator.CPF("Document", c.Document),
//	    validator.InClosedRange("Age", c.Age, 18, 120),
//	)
//
// Values of kinds that are not ordered by the language (time.Time,
// decimal.Decimal) use the *Func variants with a three-way comparator:
//
//	validator.InClosedRangeFunc("BirthDate", c.BirthDate, from, to, time.Time.Compare)
//
// The pure predicates IsEmail, IsURL, IsGUID, IsCPF and IsCNPJ are exported for
// callers that only need a boolean.
package validator
