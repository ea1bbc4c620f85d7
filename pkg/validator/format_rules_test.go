package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/notifykit/pkg/validator"
)

func TestIsEmail(t *testing.T) {
	valid := []string{
		"john@example.com",
		"john.doe@example.com",
		"john-doe+tag@mail.example.com.br",
		"o'connor@example.ie",
		"user_1@sub-domain.example.org",
		"josé@exemplo.com",
		"joão.silva@empresa.com.br",
		"ana@açaí.com.br",
	}
	for _, email := range valid {
		assert.True(t, validator.IsEmail(email), "should be valid: %s", email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"john@",
		"@example.com",
		"john@example",
		"john doe@example.com",
		"john..doe@example.com",
		".john@example.com",
		"josé@exemplo",
		"joão silva@empresa.com.br",
	}
	for _, email := range invalid {
		assert.False(t, validator.IsEmail(email), "should be invalid: %s", email)
	}
}

func TestIsURL(t *testing.T) {
	valid := []string{
		"http://example.com",
		"https://example.com",
		"https://www.example.com",
		"http://www.example.com.br/path/to?q=1#frag",
		"https://api.example.io:8443/v1",
		"https://my-site.example.co",
	}
	for _, u := range valid {
		assert.True(t, validator.IsURL(u), "should be valid: %s", u)
	}

	invalid := []string{
		"",
		"example.com",
		"www.example.com",
		"ftp://example.com",
		"https://Example.com",
		"https://localhost",
		"https://example.c",
		"https://example.com:123456",
	}
	for _, u := range invalid {
		assert.False(t, validator.IsURL(u), "should be invalid: %s", u)
	}
}

func TestEmailAndURLRules(t *testing.T) {
	rule := validator.Email("Email", "nope")
	assert.False(t, rule.Passes())
	assert.Equal(t, validator.KeyNotEmail, rule.Error.TranslationKey)

	rule = validator.URL("Website", "nope")
	assert.False(t, rule.Passes())
	assert.Equal(t, validator.KeyNotURL, rule.Error.TranslationKey)
}
