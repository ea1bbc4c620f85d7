package validator

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/notifykit/pkg/sanitizer"
)

const (
	cpfLength  = 11
	cnpjLength = 14
)

// Modulo-11 weight vectors for the first and second check digits.
var (
	cpfWeights1  = []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	cpfWeights2  = []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// IsCPF reports whether s is a valid CPF (Brazilian individual taxpayer ID).
// Dots and hyphens are ignored, so both "111.444.777-35" and "11144477735"
// are accepted.
func IsCPF(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	return validChecksum(sanitizer.NormalizeCPF(s), cpfLength, cpfWeights1, cpfWeights2)
}

// IsCNPJ reports whether s is a valid CNPJ (Brazilian company ID).
// Dots, hyphens and slashes are ignored.
func IsCNPJ(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	return validChecksum(sanitizer.NormalizeCNPJ(s), cnpjLength, cnpjWeights1, cnpjWeights2)
}

// CPF validates the check digits of a CPF.
func CPF(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsCPF(value)
		},
		Error: newError(field, KeyNotCPF,
			fmt.Sprintf("%s must be a valid CPF", field), nil),
	}
}

// CNPJ validates the check digits of a CNPJ.
func CNPJ(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsCNPJ(value)
		},
		Error: newError(field, KeyNotCNPJ,
			fmt.Sprintf("%s must be a valid CNPJ", field), nil),
	}
}

// FormatCPF returns the canonical "000.000.000-00" mask of a valid CPF.
func FormatCPF(s string) (string, error) {
	if !IsCPF(s) {
		return "", fmt.Errorf("%w: CPF %q", ErrInvalidDocument, s)
	}
	return sanitizer.FormatCPF(s), nil
}

// FormatCNPJ returns the canonical "00.000.000/0000-00" mask of a valid CNPJ.
func FormatCNPJ(s string) (string, error) {
	if !IsCNPJ(s) {
		return "", fmt.Errorf("%w: CNPJ %q", ErrInvalidDocument, s)
	}
	return sanitizer.FormatCNPJ(s), nil
}

// validChecksum checks a digit string of the given length whose last two
// digits are modulo-11 check digits computed with w1 and w2.
func validChecksum(s string, length int, w1, w2 []int) bool {
	if len(s) != length {
		return false
	}

	digits := make([]int, length)
	for i := 0; i < length; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return false
		}
		digits[i] = int(c - '0')
	}

	if mod11(digits, w1) != digits[len(w1)] {
		return false
	}
	return mod11(digits, w2) == digits[len(w2)]
}

func mod11(digits, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += digits[i] * w
	}
	if r := sum % 11; r >= 2 {
		return 11 - r
	}
	return 0
}
