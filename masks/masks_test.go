// ABOUTME: Tests for input masks
// ABOUTME: Covers round-trip laws, partial input and currency edge cases
package masks

import "testing"

func TestMaskDateProgressive(t *testing.T) {
	cases := map[string]string{
		"":           "",
		"1":          "1",
		"12":         "12",
		"123":        "12/3",
		"1203":       "12/03",
		"12032":      "12/03/2",
		"12032024":   "12/03/2024",
		"120320249":  "12/03/2024",
		"12/03/2024": "12/03/2024",
	}
	for in, want := range cases {
		if got := MaskDate(in); got != want {
			t.Errorf("MaskDate(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMaskDateRoundTrip(t *testing.T) {
	inputs := []string{"", "1", "12", "123", "1203", "12032", "120320", "1203202", "12032024"}
	for _, d := range inputs {
		if got := Unmask(MaskDate(d)); got != d {
			t.Errorf("Unmask(MaskDate(%q)) = %q, want %q", d, got, d)
		}
	}
}

func TestMaskCellphone(t *testing.T) {
	cases := map[string]string{
		"":             "",
		"85":           "85",
		"859":          "(85) 9",
		"859888":       "(85) 9888",
		"8598887":      "(85) 98887",
		"8598887766":   "(85) 9888-7766",
		"85988877665":  "(85) 98887-7665",
		"859888776655": "(85) 98887-7665",
	}
	for in, want := range cases {
		if got := MaskCellphone(in); got != want {
			t.Errorf("MaskCellphone(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMaskCellphoneRoundTrip(t *testing.T) {
	for _, d := range []string{"", "8", "85", "859", "85988", "8598887", "8598887766", "85988877665"} {
		if got := Unmask(MaskCellphone(d)); got != d {
			t.Errorf("Unmask(MaskCellphone(%q)) = %q, want %q", d, got, d)
		}
	}
}

func TestMaskPhoneNoHyphenBelowTen(t *testing.T) {
	if got := MaskPhone("85988877"); got != "(85) 988877" {
		t.Errorf("MaskPhone short = %q", got)
	}
	if got := MaskPhone("8532215544"); got != "(85) 3221-5544" {
		t.Errorf("MaskPhone landline = %q", got)
	}
}

func TestMaskCPF(t *testing.T) {
	cases := map[string]string{
		"123":            "123",
		"1234":           "123.4",
		"1234567":        "123.456.7",
		"1234567890":     "123.456.789-0",
		"12345678901":    "123.456.789-01",
		"123456789012":   "123.456.789-01",
		"123.456.789-01": "123.456.789-01",
	}
	for in, want := range cases {
		if got := MaskCPF(in); got != want {
			t.Errorf("MaskCPF(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMaskCNPJ(t *testing.T) {
	cases := map[string]string{
		"12":                 "12",
		"123":                "12.3",
		"123456":             "12.345.6",
		"123456789":          "12.345.678/9",
		"1234567890123":      "12.345.678/9012-3",
		"12345678901234":     "12.345.678/9012-34",
		"123456789012345":    "12.345.678/9012-34",
		"12.345.678/9012-34": "12.345.678/9012-34",
	}
	for in, want := range cases {
		if got := MaskCNPJ(in); got != want {
			t.Errorf("MaskCNPJ(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	cases := map[string]string{
		"":            "",
		"abc":         "",
		"0":           "R$ 0,00",
		"5":           "R$ 0,05",
		"50":          "R$ 0,50",
		"150075":      "R$ 1.500,75",
		"123456789":   "R$ 1.234.567,89",
		"R$ 1.500,75": "R$ 1.500,75",
	}
	for in, want := range cases {
		if got := FormatCurrency(in); got != want {
			t.Errorf("FormatCurrency(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMasksNeverPanicOnGarbage(t *testing.T) {
	garbage := []string{"", "///", "abc!@#", "999999999999999999999999", "12/ab/20xx"}
	for _, in := range garbage {
		_ = MaskDate(in)
		_ = MaskCellphone(in)
		_ = MaskPhone(in)
		_ = MaskCPF(in)
		_ = MaskCNPJ(in)
		_ = FormatCurrency(in)
	}
}
