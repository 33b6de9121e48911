package dps

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/nexconsult/nfse-api/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const competenceLayout = "2006-01-02"

// Builder turns a Form and a CompanyProfile into a NormalizedDPS.
// It holds no mutable state and is safe for concurrent use.
type Builder struct {
	clock     func() time.Time
	directory LocalityDirectory
	location  *time.Location
	logger    logrus.FieldLogger
}

// Option configures a Builder
type Option func(*Builder)

// WithClock sets the source of the emission timestamp
func WithClock(clock func() time.Time) Option {
	return func(b *Builder) {
		if clock != nil {
			b.clock = clock
		}
	}
}

// WithDirectory sets the city name fallback used to resolve locality codes
func WithDirectory(dir LocalityDirectory) Option {
	return func(b *Builder) {
		if dir != nil {
			b.directory = dir
		}
	}
}

// WithLocation sets the time zone competence dates are interpreted in
func WithLocation(loc *time.Location) Option {
	return func(b *Builder) {
		if loc != nil {
			b.location = loc
		}
	}
}

// WithLogger sets the logger used for diagnostics
func WithLogger(logger logrus.FieldLogger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBuilder creates a Builder. Without options it uses the system clock,
// DefaultDirectory, the local time zone and a discarding logger.
func NewBuilder(opts ...Option) *Builder {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	b := &Builder{
		clock:     time.Now,
		directory: DefaultDirectory,
		location:  time.Local,
		logger:    discard,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build validates the form against the profile and assembles the DPS.
// The first rule violation is returned as a *ValidationError. Besides the
// required-field checks, a negative withheld amount or withholdings larger
// than the service value (negative net) fail with ErrInvalidMonetaryValue.
func (b *Builder) Build(form Form, profile CompanyProfile) (*NormalizedDPS, error) {
	lc116, err := NormalizeLC116(utils.ExtractCode(form.ServiceCode))
	if err != nil {
		return nil, err
	}
	nbs := NormalizeNBS(form.NBSCode)

	taker, takerLocality := resolveCounterpart(form.Counterpart)

	now := b.clock().In(b.location)
	competence, err := b.competence(form.CompetenceDate, now)
	if err != nil {
		return nil, err
	}

	if takerLocality.IsEmpty() {
		takerLocality = form.Locality
	}
	taker.LocalityCode, err = ResolveLocalityCode(takerLocality, b.directory)
	if err != nil {
		return nil, err
	}

	gross := utils.ParseCurrency(form.ServiceValue).Round(2)
	withheld := Withheld{
		PIS:         NewMoney(utils.ParseCurrency(form.PIS)),
		COFINS:      NewMoney(utils.ParseCurrency(form.COFINS)),
		INSS:        NewMoney(utils.ParseCurrency(form.INSS)),
		IR:          NewMoney(utils.ParseCurrency(form.IR)),
		CSLL:        NewMoney(utils.ParseCurrency(form.CSLL)),
		ISS:         NewMoney(decimal.Zero),
		ISSWithheld: form.ISSWithheld,
	}
	issValue := utils.ParseCurrency(form.ISSWithheldValue)
	if form.ISSWithheld {
		withheld.ISS = NewMoney(issValue)
	}

	provider, err := resolveProvider(profile)
	if err != nil {
		return nil, err
	}

	nature := OperationNatureCode(form.OperationNature)

	if !gross.IsPositive() {
		return nil, newValidationError(ErrInvalidMonetaryValue, "valorServicos",
			"service value must be greater than zero")
	}
	if err := checkWithheld(withheld); err != nil {
		return nil, err
	}
	if nature == "" {
		return nil, newValidationError(ErrMissingOperationNature, "naturezaOperacao",
			"operation nature is required")
	}
	document := taker.Document()
	if document == "" {
		return nil, newValidationError(ErrMissingCounterpartDocument, "clienteDocumento",
			"enter the counterpart's document (CPF or CNPJ)")
	}
	if !utils.IsValidDocument(document) {
		return nil, newValidationError(ErrInvalidCounterpartDocument, "clienteDocumento",
			fmt.Sprintf("counterpart document %s is not a valid CPF or CNPJ", utils.FormatDocument(document)))
	}

	net := gross.Sub(withheld.Total())
	if net.IsNegative() {
		return nil, newValidationError(ErrInvalidMonetaryValue, "valorServicos",
			fmt.Sprintf("withheld taxes (R$ %s) exceed the service value (R$ %s)",
				utils.FormatBRL(withheld.Total()), utils.FormatBRL(gross)))
	}

	result := &NormalizedDPS{
		EmittedAt:       now,
		CompetenceAt:    competence,
		OperationNature: nature,
		Service: Service{
			LC116:       lc116,
			NBS:         nbs,
			Description: strings.TrimSpace(form.Description),
		},
		Values: Values{
			Gross:    NewMoney(gross),
			Net:      NewMoney(net),
			Withheld: withheld,
		},
		Provider: provider,
		Taker:    taker,
	}

	b.logger.WithFields(logrus.Fields{
		"lc116":        lc116,
		"nbs":          nbs,
		"nature":       nature,
		"locality":     taker.LocalityCode,
		"gross":        utils.FormatBRL(gross),
		"net":          utils.FormatBRL(net),
		"iss_withheld": form.ISSWithheld,
		"iss_ignored":  !form.ISSWithheld && !issValue.IsZero(),
	}).Debug("DPS payload built")

	return result, nil
}

// checkWithheld rejects negative withheld amounts
func checkWithheld(w Withheld) error {
	amounts := []struct {
		field string
		value Money
	}{
		{"valorPis", w.PIS},
		{"valorCofins", w.COFINS},
		{"valorInss", w.INSS},
		{"valorIr", w.IR},
		{"valorCsll", w.CSLL},
		{"issRetidoValor", w.ISS},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			return newValidationError(ErrInvalidMonetaryValue, a.field,
				fmt.Sprintf("withheld amount %s must not be negative", a.field))
		}
	}
	return nil
}

// competence interprets a YYYY-MM-DD date at local midnight
func (b *Builder) competence(date string, now time.Time) (time.Time, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return now, nil
	}

	competence, err := time.ParseInLocation(competenceLayout, date, b.location)
	if err != nil {
		return time.Time{}, newValidationError(ErrInvalidCompetenceDate, "dataCompetencia",
			fmt.Sprintf("invalid competence date %q: expected YYYY-MM-DD", date))
	}
	return competence, nil
}

// resolveCounterpart extracts the taker document, name and locality. Names
// are only taken from manually entered counterparts.
func resolveCounterpart(c Counterpart) (Taker, LocalityInput) {
	var (
		taker    Taker
		document string
		locality LocalityInput
	)

	switch cp := c.(type) {
	case RegisteredCounterpart:
		document = utils.CleanDigits(cp.Document)
	case *RegisteredCounterpart:
		if cp != nil {
			document = utils.CleanDigits(cp.Document)
		}
	case ManualCounterpart:
		document = utils.CleanDigits(cp.Document)
		taker.Name = strings.TrimSpace(cp.Name)
		locality = cp.Locality
	case *ManualCounterpart:
		if cp != nil {
			document = utils.CleanDigits(cp.Document)
			taker.Name = strings.TrimSpace(cp.Name)
			locality = cp.Locality
		}
	}

	if len(document) == 11 {
		taker.CPF = document
	} else {
		taker.CNPJ = document
	}
	return taker, locality
}

func resolveProvider(profile CompanyProfile) (Provider, error) {
	cnpj := utils.CleanDigits(profile.CNPJ)
	if len(cnpj) != 14 {
		return Provider{}, newValidationError(ErrInvalidProviderRegistration, "cnpj",
			"provider CNPJ invalid or not registered")
	}

	registration := strings.TrimSpace(profile.MunicipalRegistration)
	if registration == "" {
		return Provider{}, newValidationError(ErrInvalidProviderRegistration, "inscricaoMunicipal",
			"provider municipal registration not found")
	}

	regime := strings.TrimSpace(profile.TaxRegime)
	if regime == "" {
		regime = DefaultTaxRegime
	}

	return Provider{
		CNPJ:                  cnpj,
		TaxRegime:             regime,
		MunicipalRegistration: registration,
	}, nil
}
