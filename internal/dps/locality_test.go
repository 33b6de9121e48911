package dps

import (
	"errors"
	"testing"
)

type mapDirectory map[string]string

func (m mapDirectory) Lookup(city string) (string, bool) {
	code, ok := m[city]
	return code, ok
}

func TestResolveLocalityCode(t *testing.T) {
	tests := []struct {
		name  string
		input LocalityInput
		want  string
	}{
		{"explicit code", LocalityInput{Code: " 3550308 "}, "3550308"},
		{"explicit code wins over city", LocalityInput{Code: "4106902", City: "São Paulo"}, "4106902"},
		{"city fallback", LocalityInput{City: "São Paulo"}, "3550308"},
		{"city without accents", LocalityInput{City: "  SAO PAULO "}, "3550308"},
		{"city with accents", LocalityInput{City: "Florianópolis"}, "4205407"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveLocalityCode(tt.input, DefaultDirectory)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveLocalityCode_Unresolved(t *testing.T) {
	inputs := []LocalityInput{
		{},
		{City: "Cidade Inexistente"},
		{Code: "   "},
		{Code: "12"},
		{Code: "35503080", City: "São Paulo"},
	}

	for _, in := range inputs {
		code, err := ResolveLocalityCode(in, DefaultDirectory)
		if !errors.Is(err, ErrUnresolvedLocality) {
			t.Errorf("ResolveLocalityCode(%+v) = %q, %v; want ErrUnresolvedLocality", in, code, err)
		}
	}

	if _, err := ResolveLocalityCode(LocalityInput{City: "São Paulo"}, nil); !errors.Is(err, ErrUnresolvedLocality) {
		t.Fatalf("nil directory: got %v, want ErrUnresolvedLocality", err)
	}
}

func TestResolveLocalityCode_CustomDirectory(t *testing.T) {
	dir := mapDirectory{"Ouro Preto": "3146107"}

	got, err := ResolveLocalityCode(LocalityInput{City: "Ouro Preto"}, dir)
	if err != nil || got != "3146107" {
		t.Fatalf("got %q, %v; want 3146107", got, err)
	}
}

func TestStaticDirectory_EmptyCodeIsMiss(t *testing.T) {
	dir := NewStaticDirectory(map[string]string{"Nowhere": ""})
	if _, ok := dir.Lookup("nowhere"); ok {
		t.Fatal("expected empty code to be reported as a miss")
	}
}

func TestOperationNatureCode(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Tributação no município", "1"},
		{"tributacao no municipio", "1"},
		{"Tributação fora do município", "2"},
		{"Isento", "3"},
		{"Isenta", "3"},
		{"2", "2"},
		{"", "1"},
		{"Imune", "1"},
	}

	for _, tt := range tests {
		if got := OperationNatureCode(tt.label); got != tt.want {
			t.Errorf("OperationNatureCode(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}
