// Package customer is a sample validatable domain object: a customer
// registration record checked with notify, plus batch decoding of records
// from YAML or JSON files.
package customer

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/notifykit/pkg/notification"
	"github.com/dmitrymomot/notifykit/pkg/notify"
	"github.com/dmitrymomot/notifykit/pkg/sanitizer"
	"github.com/dmitrymomot/notifykit/pkg/validator"
)

// Registration limits.
const (
	NameMinLength = 3
	NameMaxLength = 80
	MinAge        = 18
	MaxAge        = 130
	MaxScore      = 10.0
)

// MaxCreditLimit is the highest credit limit a new customer can request.
var MaxCreditLimit = decimal.NewFromInt(50_000)

// Customer is a registration record. Field names reported in notifications
// are the json/yaml keys.
type Customer struct {
	notification.Notifiable `json:"-" yaml:"-"`

	Name            string          `json:"name" yaml:"name"`
	Email           string          `json:"email" yaml:"email"`
	Website         string          `json:"website,omitempty" yaml:"website,omitempty"`
	Document        string          `json:"document" yaml:"document"`
	CompanyDocument string          `json:"company_document,omitempty" yaml:"company_document,omitempty"`
	ExternalID      string          `json:"external_id" yaml:"external_id"`
	Age             int             `json:"age" yaml:"age"`
	Score           float64         `json:"score" yaml:"score"`
	CreditLimit     decimal.Decimal `json:"credit_limit" yaml:"credit_limit"`
	BirthDate       time.Time       `json:"birth_date" yaml:"birth_date"`
	Tags            []string        `json:"tags" yaml:"tags"`
	AcceptedTerms   bool            `json:"accepted_terms" yaml:"accepted_terms"`
}

func name(c *Customer) *string                 { return &c.Name }
func email(c *Customer) *string                { return &c.Email }
func website(c *Customer) *string              { return &c.Website }
func document(c *Customer) *string             { return &c.Document }
func companyDocument(c *Customer) *string      { return &c.CompanyDocument }
func externalID(c *Customer) *string           { return &c.ExternalID }
func age(c *Customer) *int                     { return &c.Age }
func score(c *Customer) *float64               { return &c.Score }
func creditLimit(c *Customer) *decimal.Decimal { return &c.CreditLimit }
func birthDate(c *Customer) *time.Time         { return &c.BirthDate }
func tags(c *Customer) *[]string               { return &c.Tags }
func acceptedTerms(c *Customer) *bool          { return &c.AcceptedTerms }

// Normalize cleans user input before validation: whitespace in the name is
// collapsed, the email is lowercased, valid documents get their canonical
// mask, and the other text fields are trimmed.
func (c *Customer) Normalize() {
	c.Name = sanitizer.Apply(c.Name, sanitizer.RemoveControlChars, sanitizer.NormalizeWhitespace)
	c.Email = sanitizer.TrimToLower(c.Email)
	c.Website = sanitizer.Trim(c.Website)
	c.Document = canonical(sanitizer.Trim(c.Document), validator.FormatCPF)
	c.CompanyDocument = canonical(sanitizer.Trim(c.CompanyDocument), validator.FormatCNPJ)
	c.ExternalID = sanitizer.Trim(c.ExternalID)
	for i, tag := range c.Tags {
		c.Tags[i] = sanitizer.TrimToLower(tag)
	}
}

// canonical returns the formatted document, or doc unchanged when it is not valid.
func canonical(doc string, format func(string) (string, error)) string {
	if formatted, err := format(doc); err == nil {
		return formatted
	}
	return doc
}

// Validate checks the record against the current time. See ValidateAt.
func (c *Customer) Validate(opts ...notify.Option) bool {
	return c.ValidateAt(time.Now(), opts...)
}

// ValidateAt replaces previous notifications with the result of a fresh
// validation pass and reports whether the record is valid. now bounds the
// birth date. Notifications use json field names unless opts set another
// FieldNamer.
func (c *Customer) ValidateAt(now time.Time, opts ...notify.Option) bool {
	c.Clear()

	opts = append([]notify.Option{notify.WithFieldNamer(notify.JSONFieldNamer)}, opts...)
	e := notify.For(c, opts...).
		IfNullOrEmptyOrInvalidLength(name, NameMinLength, NameMaxLength).
		IfNotEmail(email).
		IfNotCpf(document).
		IfNotGuid(externalID).
		IfNotRange(age, MinAge, MaxAge).
		IfZeroTime(birthDate).
		IfDateGreaterOrEqualsThan(birthDate, now).
		IfFalse(acceptedTerms).
		Check(
			notify.IfNotRange(score, 0, MaxScore),
			notify.IfNotRangeFunc(creditLimit, decimal.Zero, MaxCreditLimit, decimal.Decimal.Cmp),
			notify.IfCollectionIsNullOrEmpty(tags),
		)

	if c.Website != "" {
		e.IfNotUrl(website)
	}
	if c.CompanyDocument != "" {
		e.IfNotCnpj(companyDocument)
	}

	return e.IsValid()
}
