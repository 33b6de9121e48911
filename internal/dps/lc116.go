package dps

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nexconsult/nfse-api/internal/utils"
)

var (
	lc116Canonical = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{2}$`)
	lc116Item      = regexp.MustCompile(`^\d{2}\.\d{2}$`)
	nonCodeChars   = regexp.MustCompile(`[^\d.]`)
)

// NormalizeLC116 converts a service code typed as "0102", "01.02", "010203"
// or "01.02.03" into the canonical DD.DD.DD form.
func NormalizeLC116(raw string) (string, error) {
	cleaned := nonCodeChars.ReplaceAllString(strings.TrimSpace(raw), "")

	switch {
	case lc116Canonical.MatchString(cleaned):
		return cleaned, nil
	case lc116Item.MatchString(cleaned):
		return cleaned + ".00", nil
	}

	digits := utils.CleanDigits(cleaned)
	switch len(digits) {
	case 4:
		return digits[:2] + "." + digits[2:4] + ".00", nil
	case 6:
		return digits[:2] + "." + digits[2:4] + "." + digits[4:6], nil
	}

	return "", newValidationError(ErrInvalidServiceCode, "codigoServico",
		fmt.Sprintf("invalid LC116 service code %q: use the 00.00.00 format", strings.TrimSpace(raw)))
}

// NormalizeNBS keeps only the digits of an optional NBS selection
func NormalizeNBS(raw string) string {
	return utils.CleanDigits(utils.ExtractCode(raw))
}
