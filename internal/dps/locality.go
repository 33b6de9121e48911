package dps

import (
	"fmt"
	"strings"

	"github.com/nexconsult/nfse-api/internal/utils"
)

// LocalityInput is what the user typed to identify where the service was rendered.
type LocalityInput struct {
	Code string `json:"codigoMunicipio,omitempty" example:"3550308"`
	City string `json:"municipio,omitempty" example:"São Paulo"`
}

// IsEmpty reports whether neither a code nor a city name was provided
func (l LocalityInput) IsEmpty() bool {
	return strings.TrimSpace(l.Code) == "" && strings.TrimSpace(l.City) == ""
}

// LocalityDirectory maps a city name to its 7-digit IBGE code.
type LocalityDirectory interface {
	Lookup(city string) (code string, ok bool)
}

// StaticDirectory is an in-memory LocalityDirectory keyed by normalized name.
type StaticDirectory map[string]string

// NewStaticDirectory builds a directory, normalizing the given names
func NewStaticDirectory(entries map[string]string) StaticDirectory {
	dir := make(StaticDirectory, len(entries))
	for name, code := range entries {
		dir[utils.NormalizeText(name)] = code
	}
	return dir
}

// Lookup implements LocalityDirectory
func (d StaticDirectory) Lookup(city string) (string, bool) {
	code, ok := d[utils.NormalizeText(city)]
	return code, ok && code != ""
}

// DefaultDirectory covers the capitals and large cities the dashboard serves.
var DefaultDirectory = NewStaticDirectory(map[string]string{
	"São Paulo":      "3550308",
	"Rio de Janeiro": "3304557",
	"Belo Horizonte": "3106200",
	"Curitiba":       "4106902",
	"Porto Alegre":   "4314902",
	"Brasília":       "5300108",
	"Salvador":       "2927408",
	"Fortaleza":      "2304400",
	"Recife":         "2611606",
	"Florianópolis":  "4205407",
	"Campinas":       "3509502",
	"Goiânia":        "5208707",
})

// localityCodeLength is the size of an IBGE municipality code
const localityCodeLength = 7

// ResolveLocalityCode returns the explicit code when present, otherwise the
// directory entry for the city name. It never guesses a code.
func ResolveLocalityCode(in LocalityInput, dir LocalityDirectory) (string, error) {
	if code := utils.CleanDigits(strings.TrimSpace(in.Code)); code != "" {
		if len(code) != localityCodeLength {
			return "", newValidationError(ErrUnresolvedLocality, "codigoMunicipio",
				fmt.Sprintf("municipality code %q must have 7 digits; please re-enter your postal code (CEP)", code))
		}
		return code, nil
	}

	if city := strings.TrimSpace(in.City); city != "" && dir != nil {
		if code, ok := dir.Lookup(city); ok {
			return code, nil
		}
	}

	return "", newValidationError(ErrUnresolvedLocality, "codigoMunicipio",
		"could not determine the municipality code of the service; please re-enter your postal code (CEP)")
}
