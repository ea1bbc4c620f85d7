package customer_test

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/internal/customer"
	"github.com/dmitrymomot/notifykit/pkg/notify"
)

var now = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

func validCustomer() *customer.Customer {
	return &customer.Customer{
		Name:          "Maria Silva",
		Email:         "maria@example.com",
		Website:       "https://maria.example.com",
		Document:      "111.444.777-35",
		ExternalID:    "f47ac10b-58cc-4372-a567-0e02b2c3d479",
		Age:           30,
		Score:         7.5,
		CreditLimit:   decimal.RequireFromString("1500.50"),
		BirthDate:     time.Date(1994, time.May, 17, 0, 0, 0, 0, time.UTC),
		Tags:          []string{"retail"},
		AcceptedTerms: true,
	}
}

func TestValidateAt(t *testing.T) {
	t.Run("valid record", func(t *testing.T) {
		c := validCustomer()
		assert.True(t, c.ValidateAt(now))
		assert.True(t, c.IsValid())
		assert.Empty(t, c.Notifications())
	})

	t.Run("optional fields are checked only when present", func(t *testing.T) {
		c := validCustomer()
		c.Website = ""
		c.CompanyDocument = ""
		assert.True(t, c.ValidateAt(now))

		c.Website = "ftp://files"
		c.CompanyDocument = "11.444.777/0001-60"
		assert.False(t, c.ValidateAt(now))
		assert.Equal(t, []string{"website", "company_document"}, c.Notifications().Fields())
	})

	t.Run("every failing rule is reported under its json name", func(t *testing.T) {
		c := &customer.Customer{
			Name:        "Al",
			Email:       "not-an-email",
			Document:    "111.444.777-30",
			ExternalID:  "not-a-guid",
			Age:         12,
			Score:       11,
			CreditLimit: decimal.NewFromInt(60_000),
		}

		assert.False(t, c.ValidateAt(now))
		list := c.Notifications()
		assert.Equal(t, []string{
			"name", "email", "document", "external_id", "age",
			"birth_date", "accepted_terms", "score", "credit_limit", "tags",
		}, list.Fields())
		assert.Equal(t, []string{"name is required and must be between 3 and 80 characters long"}, list.Get("name"))
		assert.Equal(t, []string{"age must be between 18 and 130"}, list.Get("age"))
		assert.Equal(t, []string{"birth_date must be set"}, list.Get("birth_date"))
		assert.Equal(t, []string{"credit_limit must be between 0 and 50000"}, list.Get("credit_limit"))
	})

	t.Run("birth date in the future", func(t *testing.T) {
		c := validCustomer()
		c.BirthDate = now.Add(24 * time.Hour)
		assert.False(t, c.ValidateAt(now))
		assert.Equal(t, []string{"birth_date"}, c.Notifications().Fields())
	})

	t.Run("revalidation replaces notifications", func(t *testing.T) {
		c := validCustomer()
		c.Email = ""
		require.False(t, c.ValidateAt(now))
		require.Len(t, c.Notifications(), 1)

		assert.False(t, c.ValidateAt(now))
		assert.Len(t, c.Notifications(), 1)

		c.Email = "maria@example.com"
		assert.True(t, c.ValidateAt(now))
		assert.Empty(t, c.Notifications())
	})

	t.Run("options reach the evaluator", func(t *testing.T) {
		c := validCustomer()
		c.AcceptedTerms = false

		assert.False(t, c.ValidateAt(now, notify.WithLanguage("pt-BR"), notify.WithFieldNamer(notify.GoFieldNamer)))
		n := c.Notifications()
		require.Len(t, n, 1)
		assert.Equal(t, "AcceptedTerms", n[0].Field)
		assert.NotEqual(t, "AcceptedTerms must be true", n[0].Message)
	})

	t.Run("logger receives notifications", func(t *testing.T) {
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		c := validCustomer()
		c.Tags = nil
		assert.False(t, c.ValidateAt(now, notify.WithLogger(log)))
		assert.Contains(t, buf.String(), "field=tags")
	})
}

func TestValidate(t *testing.T) {
	c := validCustomer()
	assert.True(t, c.Validate())

	c.BirthDate = time.Now().Add(time.Hour)
	assert.False(t, c.Validate())
}

func TestNormalize(t *testing.T) {
	c := &customer.Customer{
		Name:            "  Maria \t da\n Silva\x00 ",
		Email:           "  Maria@Example.COM ",
		Website:         " https://maria.example.com ",
		Document:        " 11144477735 ",
		CompanyDocument: "11.444.777/0001-60",
		ExternalID:      " f47ac10b-58cc-4372-a567-0e02b2c3d479\n",
		Tags:            []string{" Retail ", "VIP"},
	}

	c.Normalize()
	assert.Equal(t, "Maria da Silva", c.Name)
	assert.Equal(t, "maria@example.com", c.Email)
	assert.Equal(t, "https://maria.example.com", c.Website)
	assert.Equal(t, "111.444.777-35", c.Document)
	assert.Equal(t, "11.444.777/0001-60", c.CompanyDocument, "invalid documents are left as typed")
	assert.Equal(t, "f47ac10b-58cc-4372-a567-0e02b2c3d479", c.ExternalID)
	assert.Equal(t, []string{"retail", "vip"}, c.Tags)
}
