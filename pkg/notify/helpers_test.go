package notify_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/pkg/notification"
	"github.com/dmitrymomot/notifykit/pkg/notify"
)

type address struct {
	Street string
	Zip    string `json:"zip_code"`
}

type account struct {
	notification.Notifiable

	Name       string `json:"name"`
	Email      string
	Website    string
	Document   string
	Company    string
	ExternalID string `json:"external_id,omitempty"`
	Ignored    string `json:"-"`
	Age        int
	Level      uint8
	Score      float64
	Balance    decimal.Decimal
	BirthDate  time.Time
	Tags       []string
	Active     bool
	ReferrerID *int
	Address    address
	nickname   string
}

func validAccount() *account {
	ref := 7
	return &account{
		Name:       "Maria Silva",
		Email:      "maria@example.com",
		Website:    "https://www.example.com",
		Document:   "111.444.777-35",
		Company:    "11.444.777/0001-61",
		ExternalID: "f47ac10b-58cc-4372-a567-0e02b2c3d479",
		Age:        30,
		Level:      3,
		Score:      7.5,
		Balance:    decimal.RequireFromString("1500.25"),
		BirthDate:  time.Date(1994, time.May, 17, 0, 0, 0, 0, time.UTC),
		Tags:       []string{"vip"},
		Active:     true,
		ReferrerID: &ref,
		Address:    address{Street: "Rua A, 10", Zip: "01000-000"},
		nickname:   "mari",
	}
}

func name(a *account) *string       { return &a.Name }
func email(a *account) *string      { return &a.Email }
func website(a *account) *string    { return &a.Website }
func document(a *account) *string   { return &a.Document }
func company(a *account) *string    { return &a.Company }
func externalID(a *account) *string { return &a.ExternalID }
func age(a *account) *int           { return &a.Age }
func active(a *account) *bool       { return &a.Active }
func street(a *account) *string     { return &a.Address.Street }

// single asserts that exactly one notification was recorded and returns it.
func single(t *testing.T, a *account) notification.Notification {
	t.Helper()
	list := a.Notifications()
	require.Len(t, list, 1, "notifications: %v", list)
	return list[0]
}

func assertInvalidSelector(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value must be an error, got %T", r)
		assert.ErrorIs(t, err, notify.ErrInvalidSelector)
	}()
	fn()
}
