package dps

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Money is a monetary amount serialized as a JSON number with two decimals.
type Money struct {
	decimal.Decimal
}

// NewMoney wraps a decimal, rounded to cents
func NewMoney(d decimal.Decimal) Money {
	return Money{d.Round(2)}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.StringFixed(2)), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	return m.Decimal.UnmarshalJSON(data)
}

// NormalizedDPS is the declaration handed to the NFS-e submission path.
type NormalizedDPS struct {
	EmittedAt       time.Time `json:"dhEmi"`
	CompetenceAt    time.Time `json:"dCompet"`
	OperationNature string    `json:"natOp"`
	Service         Service   `json:"serv"`
	Values          Values    `json:"valores"`
	Provider        Provider  `json:"prest"`
	Taker           Taker     `json:"toma"`
}

// Service classification of the declaration
type Service struct {
	LC116       string `json:"cTribNac"`
	NBS         string `json:"cNBS,omitempty"`
	Description string `json:"xDescServ,omitempty"`
}

// Values holds the gross, withheld and net amounts
type Values struct {
	Gross    Money    `json:"vServ"`
	Net      Money    `json:"vLiq"`
	Withheld Withheld `json:"trib"`
}

// Withheld lists the per-tax withheld amounts. ISS is zero unless ISSWithheld.
type Withheld struct {
	PIS         Money `json:"vPIS"`
	COFINS      Money `json:"vCOFINS"`
	INSS        Money `json:"vRetCP"`
	IR          Money `json:"vRetIRRF"`
	CSLL        Money `json:"vRetCSLL"`
	ISS         Money `json:"vISSRet"`
	ISSWithheld bool  `json:"tpRetISSQN"`
}

// Total returns the sum of every amount deducted from the gross value
func (w Withheld) Total() decimal.Decimal {
	return decimal.Sum(w.PIS.Decimal, w.COFINS.Decimal, w.INSS.Decimal, w.IR.Decimal, w.CSLL.Decimal, w.ISS.Decimal)
}

// Provider is the issuer block
type Provider struct {
	CNPJ                  string `json:"CNPJ"`
	TaxRegime             string `json:"regTrib"`
	MunicipalRegistration string `json:"IM"`
}

// Taker is the counterpart block
type Taker struct {
	CNPJ         string `json:"CNPJ,omitempty"`
	CPF          string `json:"CPF,omitempty"`
	Name         string `json:"xNome,omitempty"`
	LocalityCode string `json:"cMun"`
}

// Document returns whichever of CNPJ or CPF is set
func (t Taker) Document() string {
	if t.CNPJ != "" {
		return t.CNPJ
	}
	return t.CPF
}

// Envelope is the body expected by the fiscal API
type Envelope struct {
	InfDPS *NormalizedDPS `json:"infDPS"`
}

// Wrap returns the DPS inside its submission envelope
func (d *NormalizedDPS) Wrap() Envelope {
	return Envelope{InfDPS: d}
}

// JSON encodes the submission envelope
func (d *NormalizedDPS) JSON() ([]byte, error) {
	return json.Marshal(d.Wrap())
}
