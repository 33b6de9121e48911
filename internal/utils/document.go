package utils

import (
	"regexp"
)

const (
	cpfLength  = 11
	cnpjLength = 14

	DocumentTypeCPF     = "CPF"
	DocumentTypeCNPJ    = "CNPJ"
	DocumentTypeInvalid = "INVALID"
)

var nonDigitRegex = regexp.MustCompile(`\D`)

// CleanDigits removes all non-numeric characters
func CleanDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// IsValidCPF validates a CPF using the Módulo 11 algorithm
func IsValidCPF(cpf string) bool {
	digits, ok := toDigits(CleanDigits(cpf), cpfLength)
	if !ok {
		return false
	}

	if cpfCheckDigit(digits[:9], 10) != digits[9] {
		return false
	}
	return cpfCheckDigit(digits[:10], 11) == digits[10]
}

// IsValidCNPJ validates a CNPJ using the Módulo 11 algorithm
func IsValidCNPJ(cnpj string) bool {
	digits, ok := toDigits(CleanDigits(cnpj), cnpjLength)
	if !ok {
		return false
	}

	if cnpjCheckDigit(digits[:12]) != digits[12] {
		return false
	}
	return cnpjCheckDigit(digits[:13]) == digits[13]
}

// IsValidDocument dispatches to the CPF or CNPJ validator based on the digit count
func IsValidDocument(document string) bool {
	cleaned := CleanDigits(document)
	switch len(cleaned) {
	case cpfLength:
		return IsValidCPF(cleaned)
	case cnpjLength:
		return IsValidCNPJ(cleaned)
	default:
		return false
	}
}

// DocumentType returns CPF, CNPJ or INVALID for the given document
func DocumentType(document string) string {
	if !IsValidDocument(document) {
		return DocumentTypeInvalid
	}
	if len(CleanDigits(document)) == cpfLength {
		return DocumentTypeCPF
	}
	return DocumentTypeCNPJ
}

// toDigits converts a cleaned string into its digits. Wrong lengths and
// placeholder sequences such as 000.000.000-00 are rejected.
func toDigits(cleaned string, length int) ([]int, bool) {
	if len(cleaned) != length || isAllSameDigit(cleaned) {
		return nil, false
	}

	digits := make([]int, length)
	for i := 0; i < length; i++ {
		digits[i] = int(cleaned[i] - '0')
	}
	return digits, true
}

// isAllSameDigit checks if all digits in the string are the same
func isAllSameDigit(s string) bool {
	if len(s) == 0 {
		return false
	}

	first := s[0]
	for i := 1; i < len(s); i++ {
		if s[i] != first {
			return false
		}
	}
	return true
}

// cpfCheckDigit weights the digits from startWeight down to 2
func cpfCheckDigit(digits []int, startWeight int) int {
	sum := 0
	for i, digit := range digits {
		sum += digit * (startWeight - i)
	}

	result := 11 - sum%11
	if result >= 10 {
		return 0
	}
	return result
}

// cnpjCheckDigit applies the cyclic 2..9 weights, read right to left
func cnpjCheckDigit(digits []int) int {
	sum := 0
	weight := len(digits) - 7
	for _, digit := range digits {
		sum += digit * weight
		weight--
		if weight < 2 {
			weight = 9
		}
	}

	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

// FormatCNPJ formats CNPJ with dots, slash and dash (XX.XXX.XXX/XXXX-XX)
func FormatCNPJ(cnpj string) string {
	cleaned := CleanDigits(cnpj)
	if len(cleaned) != cnpjLength {
		return cnpj // Return original if invalid length
	}

	return cleaned[:2] + "." + cleaned[2:5] + "." + cleaned[5:8] + "/" + cleaned[8:12] + "-" + cleaned[12:14]
}

// FormatCPF formats CPF with dots and dash (XXX.XXX.XXX-XX)
func FormatCPF(cpf string) string {
	cleaned := CleanDigits(cpf)
	if len(cleaned) != cpfLength {
		return cpf
	}

	return cleaned[:3] + "." + cleaned[3:6] + "." + cleaned[6:9] + "-" + cleaned[9:11]
}

// FormatDocument formats a CPF or CNPJ according to its length
func FormatDocument(document string) string {
	switch len(CleanDigits(document)) {
	case cpfLength:
		return FormatCPF(document)
	case cnpjLength:
		return FormatCNPJ(document)
	default:
		return document
	}
}

// DocumentInfo holds information about a CPF or CNPJ
type DocumentInfo struct {
	Original  string `json:"original" example:"11.222.333/0001-81"`
	Cleaned   string `json:"cleaned" example:"11222333000181"`
	Formatted string `json:"formatted,omitempty" example:"11.222.333/0001-81"`
	Type      string `json:"type" example:"CNPJ"`
	Valid     bool   `json:"valid" example:"true"`
}

// AnalyzeDocument analyzes a document string and returns detailed information
func AnalyzeDocument(document string) DocumentInfo {
	cleaned := CleanDigits(document)
	docType := DocumentType(cleaned)
	valid := docType != DocumentTypeInvalid

	formatted := ""
	if valid {
		formatted = FormatDocument(cleaned)
	}

	return DocumentInfo{
		Original:  document,
		Cleaned:   cleaned,
		Formatted: formatted,
		Type:      docType,
		Valid:     valid,
	}
}
