package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nexconsult/nfse-api/internal/dps"
	"github.com/nexconsult/nfse-api/internal/metrics"
	"github.com/nexconsult/nfse-api/internal/models"
	"github.com/nexconsult/nfse-api/internal/store"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

const providerCNPJ = "11.222.333/0001-81"

type countingStore struct {
	*store.Memory
	gets int
}

func (s *countingStore) GetProfile(ctx context.Context, cnpj string) (*models.CompanyProfile, error) {
	s.gets++
	return s.Memory.GetProfile(ctx, cnpj)
}

type testDeps struct {
	store    *countingStore
	metrics  *metrics.Registry
	profiles *ProfileService
	dps      *DPSService
}

func newTestDeps() testDeps {
	reg := metrics.NewRegistry()
	st := &countingStore{Memory: store.NewMemory()}
	cache := NewCacheService(nil, time.Minute, quietLogger())
	profiles := NewProfileService(st, cache, reg, quietLogger())

	clock := func() time.Time { return time.Date(2024, 5, 10, 16, 30, 0, 0, time.UTC) }
	builder := dps.NewBuilder(dps.WithClock(clock), dps.WithLocation(time.UTC))

	return testDeps{
		store:    st,
		metrics:  reg,
		profiles: profiles,
		dps:      NewDPSService(builder, dps.DefaultDirectory, profiles, reg, quietLogger()),
	}
}

func sampleForm() dps.Form {
	return dps.Form{
		ServiceCode:     "0102",
		ServiceValue:    "1.500,00",
		PIS:             "9,75",
		Counterpart:     dps.RegisteredCounterpart{ID: "42", Document: "529.982.247-25"},
		OperationNature: "Isento",
		Locality:        dps.LocalityInput{City: "Curitiba"},
	}
}

func TestProfileServiceCachesReads(t *testing.T) {
	ctx := context.Background()
	d := newTestDeps()

	saved, err := d.profiles.Save(ctx, providerCNPJ, models.ProfileRequest{InscricaoMunicipal: " 998877 "})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.CNPJ != "11222333000181" || saved.RegimeTributario != dps.DefaultTaxRegime || saved.InscricaoMunicipal != "998877" {
		t.Fatalf("saved profile: %+v", saved)
	}

	for i := 0; i < 3; i++ {
		if _, err := d.profiles.Get(ctx, "11222333000181"); err != nil {
			t.Fatalf("Get #%d: %v", i, err)
		}
	}
	if d.store.gets != 0 {
		t.Fatalf("store reads: got=%d want=0 (Save warms the cache)", d.store.gets)
	}
	if got := testutil.ToFloat64(d.metrics.CacheLookups.WithLabelValues("hit")); got != 3 {
		t.Fatalf("cache hits: got=%v want=3", got)
	}
}

func TestProfileServiceErrors(t *testing.T) {
	ctx := context.Background()
	d := newTestDeps()

	if _, err := d.profiles.Get(ctx, "11222333000182"); !errors.Is(err, ErrInvalidCNPJ) {
		t.Fatalf("Get invalid cnpj: got=%v want ErrInvalidCNPJ", err)
	}
	if _, err := d.profiles.Get(ctx, providerCNPJ); !IsNotFound(err) {
		t.Fatalf("Get unknown cnpj: got=%v want ErrProfileNotFound", err)
	}
	if err := d.profiles.Delete(ctx, providerCNPJ); !IsNotFound(err) {
		t.Fatalf("Delete unknown cnpj: got=%v want ErrProfileNotFound", err)
	}

	_, _ = d.profiles.Save(ctx, providerCNPJ, models.ProfileRequest{InscricaoMunicipal: "1"})
	if err := d.profiles.Delete(ctx, providerCNPJ); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := d.profiles.Get(ctx, providerCNPJ); !IsNotFound(err) {
		t.Fatalf("Get after delete: got=%v want ErrProfileNotFound", err)
	}
}

func TestDPSServiceBuildForCompany(t *testing.T) {
	ctx := context.Background()
	d := newTestDeps()

	if _, err := d.dps.BuildForCompany(ctx, providerCNPJ, sampleForm()); !IsNotFound(err) {
		t.Fatalf("build without profile: got=%v want ErrProfileNotFound", err)
	}

	_, err := d.profiles.Save(ctx, providerCNPJ, models.ProfileRequest{
		RegimeTributario:   "3",
		InscricaoMunicipal: "1234567",
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	payload, err := d.dps.BuildForCompany(ctx, providerCNPJ, sampleForm())
	if err != nil {
		t.Fatalf("BuildForCompany: %v", err)
	}
	if payload.Provider.TaxRegime != "3" || payload.Provider.MunicipalRegistration != "1234567" {
		t.Fatalf("provider: %+v", payload.Provider)
	}
	if payload.Taker.CPF != "52998224725" || payload.Taker.LocalityCode != "4106902" {
		t.Fatalf("taker: %+v", payload.Taker)
	}
	if payload.OperationNature != dps.NatureExempt {
		t.Fatalf("nature: got=%q want=%q", payload.OperationNature, dps.NatureExempt)
	}
	if payload.Values.Net.StringFixed(2) != "1490.25" {
		t.Fatalf("net: got=%s want=1490.25", payload.Values.Net.StringFixed(2))
	}
	if got := testutil.ToFloat64(d.metrics.DPSBuilt); got != 1 {
		t.Fatalf("dps built: got=%v want=1", got)
	}
}

func TestDPSServiceBuildForCompanyUsesProfileLocality(t *testing.T) {
	ctx := context.Background()
	d := newTestDeps()

	_, err := d.profiles.Save(ctx, providerCNPJ, models.ProfileRequest{
		InscricaoMunicipal: "1234567",
		CodigoMunicipio:    "4106902",
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	form := sampleForm()
	form.Locality = dps.LocalityInput{}

	payload, err := d.dps.BuildForCompany(ctx, providerCNPJ, form)
	if err != nil {
		t.Fatalf("BuildForCompany: %v", err)
	}
	if payload.Taker.LocalityCode != "4106902" {
		t.Fatalf("locality: got=%q want=4106902", payload.Taker.LocalityCode)
	}

	// an explicit form locality still wins over the stored one
	form.Locality = dps.LocalityInput{City: "Recife"}
	payload, err = d.dps.BuildForCompany(ctx, providerCNPJ, form)
	if err != nil {
		t.Fatalf("BuildForCompany with form locality: %v", err)
	}
	if payload.Taker.LocalityCode != "2611606" {
		t.Fatalf("locality: got=%q want=2611606", payload.Taker.LocalityCode)
	}
}

func TestDPSServiceCountsRejections(t *testing.T) {
	d := newTestDeps()
	form := sampleForm()
	form.ServiceValue = "0,00"

	_, err := d.dps.Build(context.Background(), form, dps.CompanyProfile{CNPJ: providerCNPJ, MunicipalRegistration: "1"})
	if !errors.Is(err, dps.ErrInvalidMonetaryValue) {
		t.Fatalf("Build: got=%v want ErrInvalidMonetaryValue", err)
	}
	if got := testutil.ToFloat64(d.metrics.DPSRejected.WithLabelValues("INVALID_MONETARY_VALUE")); got != 1 {
		t.Fatalf("rejections: got=%v want=1", got)
	}
}

func TestDPSServiceCatalog(t *testing.T) {
	d := newTestDeps()

	code, err := d.dps.NormalizeServiceCode("17.01 - Assessoria")
	if err != nil || code != "17.01.00" {
		t.Fatalf("NormalizeServiceCode: got=%q err=%v want 17.01.00", code, err)
	}
	if _, err := d.dps.NormalizeServiceCode("abc"); !errors.Is(err, dps.ErrInvalidServiceCode) {
		t.Fatalf("NormalizeServiceCode(abc): got=%v want ErrInvalidServiceCode", err)
	}

	loc, err := d.dps.ResolveLocality(dps.LocalityInput{City: "  GOIÂNIA "})
	if err != nil || loc != "5208707" {
		t.Fatalf("ResolveLocality: got=%q err=%v want 5208707", loc, err)
	}
}

func TestDocumentServiceBatch(t *testing.T) {
	reg := metrics.NewRegistry()
	s := NewDocumentService(reg)

	resp := s.ValidateBatch([]string{"529.982.247-25", "11222333000181", "11111111111", "123"})
	if resp.Total != 4 || resp.Valid != 2 || resp.Invalid != 2 {
		t.Fatalf("batch counts: total=%d valid=%d invalid=%d", resp.Total, resp.Valid, resp.Invalid)
	}
	if resp.Results[1].Formatted != "11.222.333/0001-81" {
		t.Fatalf("formatted: got=%q", resp.Results[1].Formatted)
	}
	if got := testutil.ToFloat64(reg.DocumentValidations.WithLabelValues("CPF", "true")); got != 1 {
		t.Fatalf("valid CPF counter: got=%v want=1", got)
	}
}
