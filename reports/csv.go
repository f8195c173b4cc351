// ABOUTME: CSV export of the property list
// ABOUTME: Semicolon-separated so pt-BR Excel opens it without an import wizard
package reports

import (
	"encoding/csv"
	"fmt"
	"io"

	"imovia/models"
)

var csvHeader = []string{
	"Imóvel", "Tipo", "Endereço", "Inquilino", "Valor Mensal",
	"Fim Contrato", "Status", "Status IPTU",
}

// WriteCSV renders the property list as semicolon-separated CSV. Values are
// written as displayed; money stays in its BRL string form.
func WriteCSV(w io.Writer, items []models.PropertyListItem) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, p := range items {
		row := []string{
			p.Name,
			p.Type,
			p.Description,
			p.CurrentTenant,
			p.CurrentRentValue,
			p.CurrentContractEndDate,
			p.Status,
			p.IptuStatus,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", p.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
