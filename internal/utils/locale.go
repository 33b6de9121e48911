package utils

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// ParseCurrency converts a Brazilian formatted amount ("R$ 1.234,56") into a
// decimal. Empty or unparseable input yields zero.
func ParseCurrency(raw string) decimal.Decimal {
	s := strings.ReplaceAll(raw, "R$", "")
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if s == "" {
		return decimal.Zero
	}

	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)

	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return value
}

// ParseCurrencyFloat is ParseCurrency as a float64
func ParseCurrencyFloat(raw string) float64 {
	return ParseCurrency(raw).InexactFloat64()
}

// FormatBRL formats a decimal as a Brazilian amount, e.g. 1234.5 -> "1.234,50"
func FormatBRL(value decimal.Decimal) string {
	fixed := value.Abs().StringFixed(2)
	intPart, fracPart := fixed[:len(fixed)-3], fixed[len(fixed)-2:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	sign := ""
	if value.IsNegative() {
		sign = "-"
	}
	return sign + b.String() + "," + fracPart
}

// ExtractCode returns the code part of a "<code> - <label>" selection
func ExtractCode(labeled string) string {
	if labeled == "" {
		return ""
	}
	code, _, _ := strings.Cut(labeled, " - ")
	return strings.TrimSpace(code)
}

// NormalizeText lowercases, strips diacritics and collapses whitespace
func NormalizeText(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(func(r rune) bool {
		return unicode.Is(unicode.Mn, r)
	}), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}
	result = strings.ToLower(result)
	result = whitespaceRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}
