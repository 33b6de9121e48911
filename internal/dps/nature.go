package dps

import "github.com/nexconsult/nfse-api/internal/utils"

// Operation nature codes
const (
	NatureTaxedInMunicipality  = "1"
	NatureTaxedOutMunicipality = "2"
	NatureExempt               = "3"
)

var natureByLabel = map[string]string{
	"tributacao no municipio":      NatureTaxedInMunicipality,
	"tributacao fora do municipio": NatureTaxedOutMunicipality,
	"isento":                       NatureExempt,
	"isenta":                       NatureExempt,
	NatureTaxedInMunicipality:      NatureTaxedInMunicipality,
	NatureTaxedOutMunicipality:     NatureTaxedOutMunicipality,
	NatureExempt:                   NatureExempt,
}

// OperationNatureCode maps the label picked in the form to its code.
// Unknown or empty labels fall back to taxation in the municipality.
func OperationNatureCode(label string) string {
	if code, ok := natureByLabel[utils.NormalizeText(label)]; ok {
		return code
	}
	return NatureTaxedInMunicipality
}
