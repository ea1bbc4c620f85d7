package validator_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/notifykit/pkg/validator"
)

func TestIsGUID(t *testing.T) {
	t.Parallel()

	t.Run("valid GUIDs", func(t *testing.T) {
		valid := []string{
			"550e8400-e29b-41d4-a716-446655440000",
			"6BA7B810-9DAD-11D1-80B4-00C04FD430C8",
			"00000000-0000-0000-0000-000000000000",
			"{550e8400-e29b-41d4-a716-446655440000}",
			"550e8400e29b41d4a716446655440000",
			" 550e8400-e29b-41d4-a716-446655440000 ",
			"urn:uuid:550e8400-e29b-41d4-a716-446655440000",
			uuid.NewString(),
		}
		for _, s := range valid {
			assert.True(t, validator.IsGUID(s), "GUID should be valid: %q", s)
		}
	})

	t.Run("invalid GUIDs", func(t *testing.T) {
		invalid := []string{
			"",
			"   ",
			"not-a-guid",
			"550e8400-e29b-41d4-a716-44665544000",
			"550e8400-e29b-41d4-a716-44665544000g",
			"550e8400-e29b-41d4-a716",
			"{0x550e8400,0xe29b,0x41d4,{0xa7,0x16,0x44,0x66,0x55,0x44,0x00,0x00}}",
		}
		for _, s := range invalid {
			assert.False(t, validator.IsGUID(s), "GUID should be invalid: %q", s)
		}
	})
}

func TestGUIDRule(t *testing.T) {
	rule := validator.GUID("ExternalID", "not-a-guid")
	assert.False(t, rule.Passes())
	assert.Equal(t, validator.KeyNotGUID, rule.Error.TranslationKey)

	assert.True(t, validator.GUID("ExternalID", "550e8400-e29b-41d4-a716-446655440000").Passes())
}

func TestUUIDVersion(t *testing.T) {
	assert.True(t, validator.UUIDVersion("ID", "550e8400-e29b-41d4-a716-446655440000", 4).Passes())
	assert.False(t, validator.UUIDVersion("ID", "6ba7b810-9dad-11d1-80b4-00c04fd430c8", 4).Passes())
	assert.True(t, validator.UUIDVersion("ID", "6ba7b810-9dad-11d1-80b4-00c04fd430c8", 1).Passes())
	assert.False(t, validator.UUIDVersion("ID", "garbage", 4).Passes())

	rule := validator.UUIDVersion("ID", "garbage", 7)
	assert.Equal(t, map[string]any{"field": "ID", "version": 7}, rule.Error.TranslationValues)
}
