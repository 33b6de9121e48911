package models

import (
	"time"

	"github.com/nexconsult/nfse-api/internal/dps"
)

// CompanyProfile is the issuer registration persisted per tenant
type CompanyProfile struct {
	CNPJ               string    `bson:"_id" json:"cnpj" example:"11222333000181"`
	RazaoSocial        string    `bson:"razao_social" json:"razaoSocial,omitempty" example:"EMPRESA EXEMPLO LTDA"`
	RegimeTributario   string    `bson:"regime_tributario" json:"regimeTributario" example:"1"`
	InscricaoMunicipal string    `bson:"inscricao_municipal" json:"inscricaoMunicipal" example:"1234567"`
	CodigoMunicipio    string    `bson:"codigo_municipio,omitempty" json:"codigoMunicipio,omitempty" example:"3550308"`
	UpdatedAt          time.Time `bson:"updated_at" json:"updatedAt"`
}

// ToProfile converts the stored registration into the builder profile
func (p *CompanyProfile) ToProfile() dps.CompanyProfile {
	return dps.CompanyProfile{
		CNPJ:                  p.CNPJ,
		TaxRegime:             p.RegimeTributario,
		MunicipalRegistration: p.InscricaoMunicipal,
	}
}

// ProfileRequest is the body of PUT /companies/{cnpj}/profile
type ProfileRequest struct {
	RazaoSocial        string `json:"razaoSocial" example:"EMPRESA EXEMPLO LTDA"`
	RegimeTributario   string `json:"regimeTributario" binding:"omitempty,oneof=1 2 3 4 5 6" example:"1"`
	InscricaoMunicipal string `json:"inscricaoMunicipal" binding:"required" example:"1234567"`
	CodigoMunicipio    string `json:"codigoMunicipio,omitempty" example:"3550308"`
}
