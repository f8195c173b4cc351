// ABOUTME: Tests for BR date parsing and months-in-contract derivation
// ABOUTME: Covers inclusive boundaries, inverted ranges and garbage input
package masks

import "testing"

func TestParseBRDate(t *testing.T) {
	valid := []string{"01/01/2024", "29/02/2024", "31/12/1999"}
	for _, s := range valid {
		if _, ok := ParseBRDate(s); !ok {
			t.Errorf("ParseBRDate(%q) should parse", s)
		}
	}

	invalid := []string{"", "12/03", "12/03/", "00/01/2024", "01/00/2024", "01/01/0",
		"32/01/2024", "29/02/2023", "aa/bb/cccc", "01-01-2024", "1/1/2024/5"}
	for _, s := range invalid {
		if _, ok := ParseBRDate(s); ok {
			t.Errorf("ParseBRDate(%q) should not parse", s)
		}
	}
}

func TestMonthsInContract(t *testing.T) {
	cases := []struct {
		start, end, want string
	}{
		{"01/01/2024", "01/01/2024", "1"},  // same month, inclusive
		{"01/01/2024", "01/03/2024", "3"},  // Jan..Mar
		{"01/01/2024", "31/12/2023", ""},   // end before start
		{"15/11/2023", "10/02/2024", "4"},  // year boundary
		{"01/01/2024", "01/01/2026", "25"}, // multi-year
		{"", "01/01/2024", ""},
		{"01/01/2024", "12/03", ""}, // partial input while typing
	}
	for _, c := range cases {
		if got := MonthsInContract(c.start, c.end); got != c.want {
			t.Errorf("MonthsInContract(%q, %q) = %q, want %q", c.start, c.end, got, c.want)
		}
	}
}
