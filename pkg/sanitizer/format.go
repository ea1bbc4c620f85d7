package sanitizer

import "strings"

const (
	cpfSeparators  = ".-"
	cnpjSeparators = ".-/"
)

// RemoveSeparators strips the punctuation used in CPF and CNPJ masks.
func RemoveSeparators(s string) string {
	return RemoveChars(s, cnpjSeparators)
}

var (
	normalizeCPF  = Compose(Trim, Strip(cpfSeparators))
	normalizeCNPJ = Compose(Trim, Strip(cnpjSeparators))
)

// NormalizeCPF trims the value and removes the "." and "-" mask characters.
// Other characters are kept so that malformed input stays detectable.
func NormalizeCPF(cpf string) string {
	return normalizeCPF(cpf)
}

// NormalizeCNPJ trims the value and removes the ".", "-" and "/" mask characters.
func NormalizeCNPJ(cnpj string) string {
	return normalizeCNPJ(cnpj)
}

// FormatCPF renders an 11-digit CPF as "000.000.000-00"; preserves the input
// when it does not normalise to 11 digits.
func FormatCPF(cpf string) string {
	digits := NormalizeCPF(cpf)
	if len(digits) != 11 || !IsDigits(digits) {
		return cpf
	}
	return digits[0:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:11]
}

// FormatCNPJ renders a 14-digit CNPJ as "00.000.000/0000-00"; preserves the
// input when it does not normalise to 14 digits.
func FormatCNPJ(cnpj string) string {
	digits := NormalizeCNPJ(cnpj)
	if len(digits) != 14 || !IsDigits(digits) {
		return cnpj
	}
	return digits[0:2] + "." + digits[2:5] + "." + digits[5:8] + "/" + digits[8:12] + "-" + digits[12:14]
}

// MaskDocument hides every digit of a CPF or CNPJ except the last two check
// digits so the value can be written to logs.
func MaskDocument(doc string) string {
	digits := KeepDigits(doc)
	if len(digits) <= 2 {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-2) + digits[len(digits)-2:]
}

// MaskString hides all but the last visibleChars runes of s.
func MaskString(s string, visibleChars int) string {
	runes := []rune(s)
	if visibleChars <= 0 {
		return strings.Repeat("*", len(runes))
	}
	if len(runes) <= visibleChars {
		return s
	}
	return strings.Repeat("*", len(runes)-visibleChars) + string(runes[len(runes)-visibleChars:])
}
