package models

import (
	"github.com/nexconsult/nfse-api/internal/dps"
)

// Client selection modes of the emission form
const (
	ClientModeRegistered = "registered"
	ClientModeManual     = "manual"
)

// InvoiceFormRequest is the emission form as posted by the dashboard.
// Amounts use the Brazilian format ("1.234,56").
type InvoiceFormRequest struct {
	CodigoServico    string `json:"codigoServico" example:"01.02 - Programação"`
	CodigoNBS        string `json:"codigoNbs,omitempty" example:"1.1502.10.00 - Desenvolvimento de software"`
	Descricao        string `json:"descricao,omitempty" example:"Desenvolvimento de sistema sob encomenda"`
	ValorServicos    string `json:"valorServicos" example:"1.000,00"`
	ValorPIS         string `json:"valorPis,omitempty" example:"6,50"`
	ValorCOFINS      string `json:"valorCofins,omitempty" example:"30,00"`
	ValorINSS        string `json:"valorInss,omitempty" example:"0,00"`
	ValorIR          string `json:"valorIr,omitempty" example:"15,00"`
	ValorCSLL        string `json:"valorCsll,omitempty" example:"10,00"`
	ISSRetido        bool   `json:"issRetido" example:"false"`
	ISSRetidoValor   string `json:"issRetidoValor,omitempty" example:"0,00"`
	ClientMode       string `json:"clientMode" binding:"omitempty,oneof=registered manual" example:"manual"`
	ClienteID        string `json:"clienteId,omitempty" example:"c1f0a6e2"`
	ClienteDocumento string `json:"clienteDocumento" example:"11.444.777/0001-61"`
	ClienteNome      string `json:"clienteNome,omitempty" example:"ACME Ltda"`

	// Where a manually entered client is located; overrides the form locality
	ClienteCodigoMunicipio string `json:"clienteCodigoMunicipio,omitempty" example:"2611606"`
	ClienteMunicipio       string `json:"clienteMunicipio,omitempty" example:"Recife"`

	NaturezaOperacao string `json:"naturezaOperacao,omitempty" example:"Tributação no município"`
	DataCompetencia  string `json:"dataCompetencia,omitempty" example:"2024-05-01"`

	dps.LocalityInput
}

// ToForm converts the request into the builder input. The counterpart
// name and locality are only used for manually entered clients.
func (r InvoiceFormRequest) ToForm() dps.Form {
	var counterpart dps.Counterpart
	if r.ClientMode == ClientModeManual {
		counterpart = dps.ManualCounterpart{
			Name:     r.ClienteNome,
			Document: r.ClienteDocumento,
			Locality: dps.LocalityInput{
				Code: r.ClienteCodigoMunicipio,
				City: r.ClienteMunicipio,
			},
		}
	} else {
		counterpart = dps.RegisteredCounterpart{
			ID:       r.ClienteID,
			Document: r.ClienteDocumento,
		}
	}

	return dps.Form{
		ServiceCode:      r.CodigoServico,
		NBSCode:          r.CodigoNBS,
		Description:      r.Descricao,
		ServiceValue:     r.ValorServicos,
		PIS:              r.ValorPIS,
		COFINS:           r.ValorCOFINS,
		INSS:             r.ValorINSS,
		IR:               r.ValorIR,
		CSLL:             r.ValorCSLL,
		ISSWithheld:      r.ISSRetido,
		ISSWithheldValue: r.ISSRetidoValor,
		Counterpart:      counterpart,
		OperationNature:  r.NaturezaOperacao,
		CompetenceDate:   r.DataCompetencia,
		Locality:         r.LocalityInput,
	}
}

// ProfileInput is the issuer registration sent inline with a build request
type ProfileInput struct {
	CNPJ               string `json:"cnpj" example:"11.222.333/0001-81"`
	RegimeTributario   string `json:"regimeTributario,omitempty" example:"1"`
	InscricaoMunicipal string `json:"inscricaoMunicipal" example:"1234567"`
}

// ToProfile converts the input into the builder profile
func (p ProfileInput) ToProfile() dps.CompanyProfile {
	return dps.CompanyProfile{
		CNPJ:                  p.CNPJ,
		TaxRegime:             p.RegimeTributario,
		MunicipalRegistration: p.InscricaoMunicipal,
	}
}

// BuildDPSRequest carries both the form and the issuer profile
type BuildDPSRequest struct {
	Form    InvoiceFormRequest `json:"form" binding:"required"`
	Profile ProfileInput       `json:"profile" binding:"required"`
}

// BuildDPSResponse is the DPS envelope plus a human-readable summary
type BuildDPSResponse struct {
	InfDPS  *dps.NormalizedDPS `json:"infDPS"`
	Summary DPSSummary         `json:"summary"`
}

// DPSSummary shows the computed amounts in Brazilian format
type DPSSummary struct {
	ValorServicos string `json:"valorServicos" example:"1.000,00"`
	ValorRetido   string `json:"valorRetido" example:"61,50"`
	ValorLiquido  string `json:"valorLiquido" example:"938,50"`
	Tomador       string `json:"tomador" example:"11.444.777/0001-61"`
}
