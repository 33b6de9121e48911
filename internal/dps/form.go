package dps

// Form is the invoice data entered on the emission screen. Amounts are kept
// exactly as typed (Brazilian format) and parsed by the Builder.
type Form struct {
	ServiceCode      string
	NBSCode          string
	Description      string
	ServiceValue     string
	PIS              string
	COFINS           string
	INSS             string
	IR               string
	CSLL             string
	ISSWithheld      bool
	ISSWithheldValue string
	Counterpart      Counterpart
	OperationNature  string
	CompetenceDate   string
	Locality         LocalityInput
}

// Counterpart is either a RegisteredCounterpart or a ManualCounterpart.
type Counterpart interface {
	counterpart()
}

// RegisteredCounterpart is a client picked from the company's client list.
type RegisteredCounterpart struct {
	ID       string
	Document string
}

// ManualCounterpart is a client typed in for a single invoice.
type ManualCounterpart struct {
	Name     string
	Document string
	Locality LocalityInput
}

func (RegisteredCounterpart) counterpart() {}
func (ManualCounterpart) counterpart()     {}

// CompanyProfile is the issuer registration stored for the tenant.
type CompanyProfile struct {
	CNPJ                  string
	TaxRegime             string
	MunicipalRegistration string
}

// DefaultTaxRegime is used when the profile has no regime configured
const DefaultTaxRegime = "1"
