package dps

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

var (
	brt        = time.FixedZone("BRT", -3*60*60)
	fixedClock = func() time.Time { return time.Date(2024, 5, 10, 16, 30, 0, 0, time.UTC) }
)

func validForm() Form {
	return Form{
		ServiceCode:     "01.02 - Programação",
		NBSCode:         "1.1502.10.00 - Desenvolvimento de software",
		Description:     " Desenvolvimento de sistema ",
		ServiceValue:    "1.000,00",
		Counterpart:     ManualCounterpart{Name: " ACME Ltda ", Document: "11.444.777/0001-61"},
		OperationNature: "Tributação no município",
		CompetenceDate:  "2024-05-01",
		Locality:        LocalityInput{City: "São Paulo"},
	}
}

func validProfile() CompanyProfile {
	return CompanyProfile{
		CNPJ:                  "11.222.333/0001-81",
		MunicipalRegistration: "1234567",
	}
}

func newTestBuilder() *Builder {
	return NewBuilder(WithClock(fixedClock), WithLocation(brt))
}

func requireMoney(t *testing.T, field string, got Money, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Fatalf("%s = %s, want %s", field, got.StringFixed(2), want)
	}
}

func TestBuild_HappyPath(t *testing.T) {
	result, err := newTestBuilder().Build(validForm(), validProfile())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	requireMoney(t, "gross", result.Values.Gross, "1000.00")
	requireMoney(t, "net", result.Values.Net, "1000.00")

	if result.OperationNature != "1" {
		t.Errorf("nature = %q, want 1", result.OperationNature)
	}
	if result.Service.LC116 != "01.02.00" {
		t.Errorf("lc116 = %q, want 01.02.00", result.Service.LC116)
	}
	if result.Service.NBS != "115021000" {
		t.Errorf("nbs = %q, want 115021000", result.Service.NBS)
	}
	if result.Service.Description != "Desenvolvimento de sistema" {
		t.Errorf("description = %q", result.Service.Description)
	}
	if result.Provider.CNPJ != "11222333000181" || result.Provider.TaxRegime != DefaultTaxRegime || result.Provider.MunicipalRegistration != "1234567" {
		t.Errorf("unexpected provider: %+v", result.Provider)
	}
	if result.Taker.CNPJ != "11444777000161" || result.Taker.CPF != "" || result.Taker.Name != "ACME Ltda" {
		t.Errorf("unexpected taker: %+v", result.Taker)
	}
	if result.Taker.LocalityCode != "3550308" {
		t.Errorf("locality = %q, want 3550308", result.Taker.LocalityCode)
	}
	if !result.EmittedAt.Equal(fixedClock()) {
		t.Errorf("emitted at %v, want %v", result.EmittedAt, fixedClock())
	}
	if want := time.Date(2024, 5, 1, 0, 0, 0, 0, brt); !result.CompetenceAt.Equal(want) {
		t.Errorf("competence = %v, want %v", result.CompetenceAt, want)
	}
}

func TestBuild_WithholdingArithmetic(t *testing.T) {
	form := validForm()
	form.ServiceValue = "R$ 10.000,00"
	form.PIS = "65,00"
	form.COFINS = "300,00"
	form.INSS = "1.100,00"
	form.IR = "150,00"
	form.CSLL = "100,00"
	form.ISSWithheld = true
	form.ISSWithheldValue = "500,00"

	result, err := newTestBuilder().Build(form, validProfile())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	requireMoney(t, "iss", result.Values.Withheld.ISS, "500")
	requireMoney(t, "net", result.Values.Net, "7785.00")
	if !result.Values.Withheld.ISSWithheld {
		t.Error("expected ISS withheld flag to be carried")
	}
}

func TestBuild_ISSCountedOnlyWhenFlagged(t *testing.T) {
	form := validForm()
	form.ISSWithheld = false
	form.ISSWithheldValue = "50,00"

	hookLogger, hook := test.NewNullLogger()
	hookLogger.SetLevel(logrus.DebugLevel)

	builder := NewBuilder(WithClock(fixedClock), WithLocation(brt), WithLogger(hookLogger))
	result, err := builder.Build(form, validProfile())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	requireMoney(t, "net", result.Values.Net, "1000.00")
	requireMoney(t, "iss", result.Values.Withheld.ISS, "0")

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("expected a debug entry")
	}
	if entry.Data["iss_ignored"] != true {
		t.Errorf("iss_ignored = %v, want true", entry.Data["iss_ignored"])
	}
	if entry.Data["lc116"] != "01.02.00" {
		t.Errorf("lc116 field = %v", entry.Data["lc116"])
	}
}

func TestBuild_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Form, *CompanyProfile)
		kind    error
		message string
	}{
		{
			name:    "zero value",
			mutate:  func(f *Form, _ *CompanyProfile) { f.ServiceValue = "0,00" },
			kind:    ErrInvalidMonetaryValue,
			message: "greater than zero",
		},
		{
			name:    "empty value",
			mutate:  func(f *Form, _ *CompanyProfile) { f.ServiceValue = "" },
			kind:    ErrInvalidMonetaryValue,
			message: "greater than zero",
		},
		{
			name: "withholdings above gross",
			mutate: func(f *Form, _ *CompanyProfile) {
				f.ServiceValue = "100,00"
				f.INSS = "150,00"
			},
			kind:    ErrInvalidMonetaryValue,
			message: "exceed",
		},
		{
			name:    "negative withheld amount",
			mutate:  func(f *Form, _ *CompanyProfile) { f.PIS = "-500,00" },
			kind:    ErrInvalidMonetaryValue,
			message: "valorPis must not be negative",
		},
		{
			name: "negative withheld ISS",
			mutate: func(f *Form, _ *CompanyProfile) {
				f.ISSWithheld = true
				f.ISSWithheldValue = "-10,00"
			},
			kind:    ErrInvalidMonetaryValue,
			message: "issRetidoValor must not be negative",
		},
		{
			name:    "short explicit locality code",
			mutate:  func(f *Form, _ *CompanyProfile) { f.Locality = LocalityInput{Code: "12"} },
			kind:    ErrUnresolvedLocality,
			message: "7 digits",
		},
		{
			name:    "bad service code",
			mutate:  func(f *Form, _ *CompanyProfile) { f.ServiceCode = "12 - Algo" },
			kind:    ErrInvalidServiceCode,
			message: "00.00.00",
		},
		{
			name:    "missing service code",
			mutate:  func(f *Form, _ *CompanyProfile) { f.ServiceCode = "" },
			kind:    ErrInvalidServiceCode,
			message: "00.00.00",
		},
		{
			name: "unresolved locality",
			mutate: func(f *Form, _ *CompanyProfile) {
				f.Locality = LocalityInput{City: "Lugar Nenhum"}
			},
			kind:    ErrUnresolvedLocality,
			message: "CEP",
		},
		{
			name:    "short provider cnpj",
			mutate:  func(_ *Form, p *CompanyProfile) { p.CNPJ = "1122233300018" },
			kind:    ErrInvalidProviderRegistration,
			message: "provider CNPJ invalid or not registered",
		},
		{
			name:    "missing municipal registration",
			mutate:  func(_ *Form, p *CompanyProfile) { p.MunicipalRegistration = "  " },
			kind:    ErrInvalidProviderRegistration,
			message: "provider municipal registration not found",
		},
		{
			name: "missing counterpart document",
			mutate: func(f *Form, _ *CompanyProfile) {
				f.Counterpart = RegisteredCounterpart{ID: "client-1"}
			},
			kind:    ErrMissingCounterpartDocument,
			message: "counterpart's document",
		},
		{
			name:    "nil counterpart",
			mutate:  func(f *Form, _ *CompanyProfile) { f.Counterpart = nil },
			kind:    ErrMissingCounterpartDocument,
			message: "counterpart's document",
		},
		{
			name: "invalid counterpart checksum",
			mutate: func(f *Form, _ *CompanyProfile) {
				f.Counterpart = ManualCounterpart{Name: "X", Document: "111.111.111-11"}
			},
			kind:    ErrInvalidCounterpartDocument,
			message: "not a valid CPF or CNPJ",
		},
		{
			name:    "malformed competence date",
			mutate:  func(f *Form, _ *CompanyProfile) { f.CompetenceDate = "01/05/2024" },
			kind:    ErrInvalidCompetenceDate,
			message: "YYYY-MM-DD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form, profile := validForm(), validProfile()
			tt.mutate(&form, &profile)

			result, err := newTestBuilder().Build(form, profile)
			if result != nil {
				t.Fatalf("expected no result, got %+v", result)
			}
			if !errors.Is(err, tt.kind) {
				t.Fatalf("error = %v, want kind %v", err, tt.kind)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Fatalf("error %q does not mention %q", err.Error(), tt.message)
			}
		})
	}
}

func TestBuild_ZeroValueFailsRegardlessOfOtherFields(t *testing.T) {
	form := validForm()
	form.ServiceValue = "0,00"
	form.ISSWithheld = true
	form.ISSWithheldValue = "10,00"
	form.OperationNature = "Isenta"

	_, err := newTestBuilder().Build(form, validProfile())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Code() != "INVALID_MONETARY_VALUE" || verr.Field != "valorServicos" {
		t.Fatalf("unexpected error: %+v", verr)
	}
}

func TestBuild_RegisteredCounterpartUsesFormLocality(t *testing.T) {
	form := validForm()
	form.Counterpart = RegisteredCounterpart{ID: "42", Document: "529.982.247-25"}
	form.Locality = LocalityInput{Code: "4106902"}

	result, err := newTestBuilder().Build(form, validProfile())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if result.Taker.CPF != "52998224725" || result.Taker.CNPJ != "" {
		t.Errorf("unexpected taker documents: %+v", result.Taker)
	}
	if result.Taker.Name != "" {
		t.Errorf("registered counterpart must not carry a name, got %q", result.Taker.Name)
	}
	if result.Taker.LocalityCode != "4106902" {
		t.Errorf("locality = %q, want 4106902", result.Taker.LocalityCode)
	}
}

func TestBuild_ManualCounterpartLocalityWins(t *testing.T) {
	form := validForm()
	form.Counterpart = &ManualCounterpart{
		Name:     "Maria",
		Document: "52998224725",
		Locality: LocalityInput{City: "Recife"},
	}

	result, err := newTestBuilder().Build(form, validProfile())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if result.Taker.LocalityCode != "2611606" {
		t.Errorf("locality = %q, want 2611606", result.Taker.LocalityCode)
	}
}

func TestBuild_DefaultsCompetenceToNow(t *testing.T) {
	form := validForm()
	form.CompetenceDate = ""
	profile := validProfile()
	profile.TaxRegime = "3"

	result, err := newTestBuilder().Build(form, profile)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if !result.CompetenceAt.Equal(fixedClock()) {
		t.Errorf("competence = %v, want %v", result.CompetenceAt, fixedClock())
	}
	if result.Provider.TaxRegime != "3" {
		t.Errorf("tax regime = %q, want 3", result.Provider.TaxRegime)
	}
}

func TestBuild_ConcurrentUse(t *testing.T) {
	builder := newTestBuilder()

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := builder.Build(validForm(), validProfile()); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent Build error: %v", err)
	}
}

func TestNormalizedDPS_JSONEnvelope(t *testing.T) {
	form := validForm()
	form.PIS = "6,50"

	result, err := newTestBuilder().Build(form, validProfile())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	data, err := result.JSON()
	if err != nil {
		t.Fatalf("JSON error: %v", err)
	}

	var decoded map[string]map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	inf, ok := decoded["infDPS"]
	if !ok {
		t.Fatalf("missing infDPS envelope: %s", data)
	}
	if inf["natOp"] != "1" {
		t.Errorf("natOp = %v", inf["natOp"])
	}

	values := inf["valores"].(map[string]any)
	if values["vLiq"] != 993.5 {
		t.Errorf("vLiq = %v, want 993.5", values["vLiq"])
	}
	if !strings.Contains(string(data), `"vServ":1000.00`) {
		t.Errorf("expected two-decimal gross value in %s", data)
	}
}
