// ABOUTME: Tests for the CSV export
// ABOUTME: Verifies semicolon separation, header and accent preservation
package reports

import (
	"strings"
	"testing"

	"imovia/models"
)

func TestWriteCSV(t *testing.T) {
	items := []models.PropertyListItem{
		{
			ID: "p1", Name: "Casa Aldeota", Type: "Casa",
			Description:            "Rua Silva Paulet, 120",
			CurrentTenant:          "João Silva",
			CurrentRentValue:       "R$ 1.500,00",
			CurrentContractEndDate: "01/03/2027",
			Status:                 models.PropertyRented,
			IptuStatus:             models.IptuPaid,
		},
		{ID: "p2", Name: "Galpão Messejana", Type: "Galpão", Status: models.PropertyAvailable},
	}

	var buf strings.Builder
	if err := WriteCSV(&buf, items); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "Imóvel;Tipo;Endereço;Inquilino;Valor Mensal;Fim Contrato;Status;Status IPTU" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if lines[1] != "Casa Aldeota;Casa;Rua Silva Paulet, 120;João Silva;R$ 1.500,00;01/03/2027;Alugado;Pago" {
		t.Errorf("unexpected row: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "Galpão Messejana;Galpão;") {
		t.Errorf("unexpected second row: %q", lines[2])
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf strings.Builder
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	if got := strings.TrimRight(buf.String(), "\n"); strings.Count(got, "\n") != 0 {
		t.Errorf("expected header only, got %q", got)
	}
}
