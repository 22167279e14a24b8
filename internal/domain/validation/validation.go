package validation

import (
	"regexp"
	"strings"
)

var (
	nonDigit = regexp.MustCompile(`\D`)
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// allSameDigit reports whether every byte of s equals its first byte.
// Documents like "11111111111" pass the check-digit math but are not
// assignable, so both validators reject them up front.
func allSameDigit(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return len(s) > 0
}

// Digits strips every non-digit character.
func Digits(s string) string {
	return nonDigit.ReplaceAllString(s, "")
}

// IsValidCPF runs the official check-digit algorithm over a masked or
// unmasked CPF.
func IsValidCPF(cpf string) bool {
	cpf = Digits(cpf)
	if len(cpf) != 11 || allSameDigit(cpf) {
		return false
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(cpf[i]-'0') * (10 - i)
	}
	check := 11 - sum%11
	if check >= 10 {
		check = 0
	}
	if check != int(cpf[9]-'0') {
		return false
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(cpf[i]-'0') * (11 - i)
	}
	check = 11 - sum%11
	if check >= 10 {
		check = 0
	}
	return check == int(cpf[10]-'0')
}

// IsValidCNPJ runs the check-digit algorithm over a masked or unmasked CNPJ.
func IsValidCNPJ(cnpj string) bool {
	cnpj = Digits(cnpj)
	if len(cnpj) != 14 || allSameDigit(cnpj) {
		return false
	}

	if cnpjCheckDigit(cnpj, 12) != int(cnpj[12]-'0') {
		return false
	}
	return cnpjCheckDigit(cnpj, 13) == int(cnpj[13]-'0')
}

func cnpjCheckDigit(cnpj string, size int) int {
	pos := size - 7
	sum := 0
	for i := 0; i < size; i++ {
		sum += int(cnpj[i]-'0') * pos
		pos--
		if pos < 2 {
			pos = 9
		}
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

// IsValidEmail matches a basic address pattern; deliverability is not checked.
func IsValidEmail(email string) bool {
	return emailRe.MatchString(strings.TrimSpace(email))
}

// IsValidPhone accepts Brazilian landline/mobile numbers: 10 or 11 digits
// after normalization.
func IsValidPhone(phone string) bool {
	n := len(Digits(phone))
	return n >= 10 && n <= 11
}
