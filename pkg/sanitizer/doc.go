// Package sanitizer contains the small string normalisation helpers applied to
// user input before it is validated or logged: trimming, character removal,
// digit extraction and the formatting and masking of Brazilian CPF/CNPJ
// document numbers.
//
// Helpers are plain func(string) string values, so they can be chained with
// Apply or stored as reusable pipelines with Compose:
//
//	normalize := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.RemoveSeparators,
//	)
//	digits := normalize(" 111.444.777-35 ") // "11144477735"
//
// The package is stateless and safe for concurrent use.
package sanitizer
