package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/notifykit/pkg/sanitizer"
)

func TestTrim(t *testing.T) {
	assert.Equal(t, "hello", sanitizer.Trim("  hello\t\n"))
	assert.Equal(t, "", sanitizer.Trim("   "))
}

func TestRemoveChars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		chars    string
		expected string
	}{
		{"removes listed chars", "a.b-c/d", ".-", "abc/d"},
		{"no chars is a no-op", "a.b", "", "a.b"},
		{"removes multibyte runes", "ação", "ç", "aão"},
		{"empty input", "", ".-", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.RemoveChars(tt.input, tt.chars))
		})
	}
}

func TestKeepDigits(t *testing.T) {
	assert.Equal(t, "11144477735", sanitizer.KeepDigits("111.444.777-35"))
	assert.Equal(t, "", sanitizer.KeepDigits("abc"))
	assert.Equal(t, "", sanitizer.KeepDigits("١٢"), "non ASCII digits are dropped")
}

func TestIsDigits(t *testing.T) {
	assert.True(t, sanitizer.IsDigits("0123456789"))
	assert.False(t, sanitizer.IsDigits(""))
	assert.False(t, sanitizer.IsDigits("12a"))
	assert.False(t, sanitizer.IsDigits("١"))
}

func TestRemoveControlChars(t *testing.T) {
	assert.Equal(t, "ab\tc\n", sanitizer.RemoveControlChars("a\x00b\tc\n\x1b"))
}

func TestTrimToLower(t *testing.T) {
	assert.Equal(t, "ana@example.com", sanitizer.TrimToLower("  Ana@Example.COM "))
}

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "Ana Maria Souza", sanitizer.NormalizeWhitespace("  Ana \t Maria\n\nSouza "))
	assert.Equal(t, "", sanitizer.NormalizeWhitespace(" \t "))
}
