package utils

import (
	"strings"
	"testing"
)

func TestIsValidCPF(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid digits", "52998224725", true},
		{"valid masked", "529.982.247-25", true},
		{"another valid", "111.444.777-35", true},
		{"wrong first check digit", "52998224715", false},
		{"wrong second check digit", "52998224726", false},
		{"too short", "5299822472", false},
		{"too long", "529982247250", false},
		{"empty", "", false},
		{"letters only", "abcdefghijk", false},
		{"cnpj length", "11222333000181", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidCPF(tt.input); got != tt.want {
				t.Fatalf("IsValidCPF(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidCPF_RejectsRepeatedDigits(t *testing.T) {
	for d := '0'; d <= '9'; d++ {
		input := strings.Repeat(string(d), 11)
		if IsValidCPF(input) {
			t.Errorf("IsValidCPF(%q) = true, want false", input)
		}
	}
}

func TestIsValidCPF_SingleDigitMutation(t *testing.T) {
	const valid = "52998224725"
	for i := 0; i < len(valid); i++ {
		for d := byte('0'); d <= '9'; d++ {
			if d == valid[i] {
				continue
			}
			mutated := valid[:i] + string(d) + valid[i+1:]
			if IsValidCPF(mutated) {
				t.Errorf("IsValidCPF(%q) = true after mutating position %d", mutated, i)
			}
		}
	}
}

func TestIsValidCNPJ(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid digits", "11222333000181", true},
		{"valid masked", "11.222.333/0001-81", true},
		{"another valid", "11.444.777/0001-61", true},
		{"wrong first check digit", "11222333000171", false},
		{"wrong second check digit", "11222333000182", false},
		{"too short", "1122233300018", false},
		{"empty", "", false},
		{"cpf length", "52998224725", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidCNPJ(tt.input); got != tt.want {
				t.Fatalf("IsValidCNPJ(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidCNPJ_RejectsRepeatedDigits(t *testing.T) {
	for d := '0'; d <= '9'; d++ {
		input := strings.Repeat(string(d), 14)
		if IsValidCNPJ(input) {
			t.Errorf("IsValidCNPJ(%q) = true, want false", input)
		}
	}
}

func TestIsValidCNPJ_SingleDigitMutation(t *testing.T) {
	const valid = "11222333000181"
	for i := 0; i < len(valid); i++ {
		for d := byte('0'); d <= '9'; d++ {
			if d == valid[i] {
				continue
			}
			mutated := valid[:i] + string(d) + valid[i+1:]
			if IsValidCNPJ(mutated) {
				t.Errorf("IsValidCNPJ(%q) = true after mutating position %d", mutated, i)
			}
		}
	}
}

func TestIsValidDocument(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"529.982.247-25", true},
		{"11.222.333/0001-81", true},
		{"123", false},
		{"1234567890123", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidDocument(tt.input); got != tt.want {
			t.Errorf("IsValidDocument(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestAnalyzeDocument(t *testing.T) {
	info := AnalyzeDocument("52998224725")
	if !info.Valid || info.Type != DocumentTypeCPF || info.Formatted != "529.982.247-25" {
		t.Fatalf("unexpected CPF info: %+v", info)
	}

	info = AnalyzeDocument("11222333000181")
	if !info.Valid || info.Type != DocumentTypeCNPJ || info.Formatted != "11.222.333/0001-81" {
		t.Fatalf("unexpected CNPJ info: %+v", info)
	}

	info = AnalyzeDocument("000.000.000-00")
	if info.Valid || info.Type != DocumentTypeInvalid || info.Formatted != "" || info.Cleaned != "00000000000" {
		t.Fatalf("unexpected invalid info: %+v", info)
	}
}
