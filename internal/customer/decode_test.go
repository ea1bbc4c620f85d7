package customer_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/internal/customer"
)

const yamlBatch = `
- name: Maria Silva
  email: maria@example.com
  document: 111.444.777-35
  external_id: f47ac10b-58cc-4372-a567-0e02b2c3d479
  age: 30
  score: 7.5
  credit_limit: 1500.50
  birth_date: 1994-05-17
  tags: [retail]
  accepted_terms: true
- name: Al
  email: al@
  document: 111.444.777-30
  company_document: "11.444.777/0001-61"
  external_id: nope
  age: 12
  credit_limit: "99999"
`

const jsonBatch = `[
  {
    "name": "Maria Silva",
    "email": "maria@example.com",
    "document": "111.444.777-35",
    "external_id": "f47ac10b-58cc-4372-a567-0e02b2c3d479",
    "age": 30,
    "score": 7.5,
    "credit_limit": "1500.50",
    "birth_date": "1994-05-17T00:00:00Z",
    "tags": ["retail"],
    "accepted_terms": true
  }
]`

func TestDecode_YAML(t *testing.T) {
	list, err := customer.Decode(strings.NewReader(yamlBatch), customer.FormatYAML)
	require.NoError(t, err)
	require.Len(t, list, 2)

	first := list[0]
	assert.Equal(t, "Maria Silva", first.Name)
	assert.True(t, decimal.RequireFromString("1500.50").Equal(first.CreditLimit))
	assert.Equal(t, time.Date(1994, time.May, 17, 0, 0, 0, 0, time.UTC), first.BirthDate)
	assert.Equal(t, []string{"retail"}, first.Tags)
	assert.True(t, first.AcceptedTerms)

	second := list[1]
	assert.Equal(t, "11.444.777/0001-61", second.CompanyDocument)
	assert.True(t, decimal.NewFromInt(99999).Equal(second.CreditLimit))
	assert.True(t, second.BirthDate.IsZero())
}

func TestDecode_JSON(t *testing.T) {
	list, err := customer.Decode(strings.NewReader(jsonBatch), customer.FormatJSON)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "maria@example.com", list[0].Email)
	assert.True(t, decimal.RequireFromString("1500.5").Equal(list[0].CreditLimit))
	assert.True(t, list[0].ValidateAt(now))
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format customer.Format
		want   error
	}{
		{"empty yaml", "", customer.FormatYAML, customer.ErrEmptyBatch},
		{"empty yaml list", "[]", customer.FormatYAML, customer.ErrEmptyBatch},
		{"empty json", "  ", customer.FormatJSON, customer.ErrEmptyBatch},
		{"empty json list", "[]", customer.FormatJSON, customer.ErrEmptyBatch},
		{"unknown yaml key", "- nmae: typo\n", customer.FormatYAML, customer.ErrDecodeBatch},
		{"unknown json key", `[{"nmae": "typo"}]`, customer.FormatJSON, customer.ErrDecodeBatch},
		{"bad decimal", "- credit_limit: lots\n", customer.FormatYAML, customer.ErrDecodeBatch},
		{"not a list", "name: Maria\n", customer.FormatYAML, customer.ErrDecodeBatch},
		{"null record", "[null]", customer.FormatJSON, customer.ErrDecodeBatch},
		{"unknown format", "[]", customer.Format("toml"), customer.ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := customer.Decode(strings.NewReader(tt.input), tt.format)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, list)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]customer.Format{
		"batch.yaml": customer.FormatYAML,
		"batch.YML":  customer.FormatYAML,
		"dir/a.json": customer.FormatJSON,
	} {
		got, err := customer.FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := customer.FormatFromPath("batch.csv")
	assert.ErrorIs(t, err, customer.ErrUnsupportedFormat)
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "customers.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlBatch), 0o600))

	list, err := customer.DecodeFile(path)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = customer.DecodeFile(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, customer.ErrReadBatch)

	_, err = customer.DecodeFile(filepath.Join(dir, "customers.txt"))
	assert.ErrorIs(t, err, customer.ErrUnsupportedFormat)
}
