// ABOUTME: Input masks for Brazilian back-office fields
// ABOUTME: Date, phone, CPF, CNPJ and BRL currency formatting plus Unmask
package masks

import (
	"strings"
)

// Digits strips everything that is not a decimal digit. This is what gets
// sent to backends that expect raw values.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Unmask is the outbound counterpart of every mask in this package:
// Unmask(MaskX(d)) == d holds for digit-only input within each cap.
func Unmask(s string) string {
	return Digits(s)
}

// MaskDate formats typed input as DD/MM/YYYY. Partial input is a valid
// intermediate state: separators appear only once enough digits exist.
func MaskDate(s string) string {
	d := Digits(s)
	if len(d) > 8 {
		d = d[:8]
	}
	switch {
	case len(d) >= 5:
		return d[:2] + "/" + d[2:4] + "/" + d[4:]
	case len(d) >= 3:
		return d[:2] + "/" + d[2:]
	default:
		return d
	}
}

// maskBRPhone applies the (DD) XXXXX-XXXX shape. The hyphen only appears once
// a full local number exists (10+ digits); shorter input stays
// partially parenthesized, which is intentional while the user is typing.
func maskBRPhone(d string) string {
	if len(d) <= 2 {
		return d
	}
	rest := d[2:]
	if len(d) >= 10 {
		cut := len(rest) - 4
		rest = rest[:cut] + "-" + rest[cut:]
	}
	return "(" + d[:2] + ") " + rest
}

// MaskCellphone formats an 11-digit Brazilian cellphone, truncating overflow.
func MaskCellphone(s string) string {
	d := Digits(s)
	if len(d) > 11 {
		d = d[:11]
	}
	return maskBRPhone(d)
}

// MaskPhone is the uncapped phone variant used where landlines are accepted.
func MaskPhone(s string) string {
	return maskBRPhone(Digits(s))
}

// MaskCPF formats 000.000.000-00, stopping at whichever separator the input
// has reached.
func MaskCPF(s string) string {
	d := Digits(s)
	if len(d) > 11 {
		d = d[:11]
	}
	switch {
	case len(d) > 9:
		return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
	case len(d) > 6:
		return d[:3] + "." + d[3:6] + "." + d[6:]
	case len(d) > 3:
		return d[:3] + "." + d[3:]
	default:
		return d
	}
}

// MaskCNPJ formats 00.000.000/0000-00 with the same progressive behavior.
func MaskCNPJ(s string) string {
	d := Digits(s)
	if len(d) > 14 {
		d = d[:14]
	}
	switch {
	case len(d) > 12:
		return d[:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:]
	case len(d) > 8:
		return d[:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:]
	case len(d) > 5:
		return d[:2] + "." + d[2:5] + "." + d[5:]
	case len(d) > 2:
		return d[:2] + "." + d[2:]
	default:
		return d
	}
}

// FormatCurrency treats the digits of the input as integer cents and renders
// them as pt-BR currency ("R$ 1.500,75"). Empty digits yield an empty string,
// not "R$ 0,00". Idempotent: re-formatting formatted output is a no-op.
func FormatCurrency(s string) string {
	d := strings.TrimLeft(Digits(s), "0")
	if Digits(s) == "" {
		return ""
	}
	for len(d) < 3 {
		d = "0" + d
	}
	intPart := d[:len(d)-2]
	cents := d[len(d)-2:]

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}
	return "R$ " + grouped.String() + "," + cents
}
