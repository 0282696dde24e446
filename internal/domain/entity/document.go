package entity

import "unicode/utf8"

const (
	cpfLength  = 11
	cnpjLength = 14
)

var cnpjWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

// IsValidCPF reports whether cpf is an 11-digit individual taxpayer id with
// correct check digits. Sequences of a single repeated digit are rejected.
func IsValidCPF(cpf string) bool {
	digits, ok := parseDigits(cpf, cpfLength)
	if !ok || allSame(digits) {
		return false
	}

	for pos := 9; pos < cpfLength; pos++ {
		sum := 0
		for i := range pos {
			sum += digits[i] * (pos + 1 - i)
		}
		if checkDigit(sum) != digits[pos] {
			return false
		}
	}

	return true
}

// IsValidCNPJ reports whether cnpj is a 14-digit company id with correct
// check digits.
func IsValidCNPJ(cnpj string) bool {
	digits, ok := parseDigits(cnpj, cnpjLength)
	if !ok || allSame(digits) {
		return false
	}

	for pos := 12; pos < cnpjLength; pos++ {
		weights := cnpjWeights[cnpjLength-1-pos:]
		sum := 0
		for i := range pos {
			sum += digits[i] * weights[i]
		}
		if checkDigit(sum) != digits[pos] {
			return false
		}
	}

	return true
}

func checkDigit(sum int) int {
	rest := sum % 11
	if rest < 2 {
		return 0
	}

	return 11 - rest
}

func parseDigits(s string, length int) ([]int, bool) {
	if len(s) != length {
		return nil, false
	}

	digits := make([]int, length)
	for i := range length {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, false
		}
		digits[i] = int(c - '0')
	}

	return digits, true
}

func allSame(digits []int) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}

	return true
}

// lengthBetween reports whether s has between minLen and maxLen characters.
func lengthBetween(s string, minLen, maxLen int) bool {
	n := utf8.RuneCountInString(s)

	return n >= minLen && n <= maxLen
}
