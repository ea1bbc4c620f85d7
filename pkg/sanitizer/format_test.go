package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/notifykit/pkg/sanitizer"
)

func TestNormalizeDocuments(t *testing.T) {
	t.Run("cpf keeps slashes", func(t *testing.T) {
		assert.Equal(t, "11144477735", sanitizer.NormalizeCPF(" 111.444.777-35 "))
		assert.Equal(t, "111/44477735", sanitizer.NormalizeCPF("111/444.777-35"))
	})

	t.Run("cnpj removes slashes", func(t *testing.T) {
		assert.Equal(t, "11444777000161", sanitizer.NormalizeCNPJ("11.444.777/0001-61"))
	})

	t.Run("inner spaces are kept", func(t *testing.T) {
		assert.Equal(t, "111 44477735", sanitizer.NormalizeCPF("111 444.777-35"))
	})
}

func TestFormatCPF(t *testing.T) {
	assert.Equal(t, "111.444.777-35", sanitizer.FormatCPF("11144477735"))
	assert.Equal(t, "111.444.777-35", sanitizer.FormatCPF("111.444.777-35"))
	assert.Equal(t, "1234", sanitizer.FormatCPF("1234"), "preserves invalid input")
	assert.Equal(t, "1114447773x", sanitizer.FormatCPF("1114447773x"))
}

func TestFormatCNPJ(t *testing.T) {
	assert.Equal(t, "11.444.777/0001-61", sanitizer.FormatCNPJ("11444777000161"))
	assert.Equal(t, "114447770001", sanitizer.FormatCNPJ("114447770001"), "preserves invalid input")
}

func TestMaskDocument(t *testing.T) {
	assert.Equal(t, "*********35", sanitizer.MaskDocument("111.444.777-35"))
	assert.Equal(t, "************61", sanitizer.MaskDocument("11.444.777/0001-61"))
	assert.Equal(t, "**", sanitizer.MaskDocument("12"))
	assert.Equal(t, "", sanitizer.MaskDocument(""))
}

func TestMaskString(t *testing.T) {
	assert.Equal(t, "****5678", sanitizer.MaskString("12345678", 4))
	assert.Equal(t, "abc", sanitizer.MaskString("abc", 5))
	assert.Equal(t, "***", sanitizer.MaskString("abc", 0))
	assert.Equal(t, "**ão", sanitizer.MaskString("ação", 2))
}
