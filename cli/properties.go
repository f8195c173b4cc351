// ABOUTME: Property CLI commands
// ABOUTME: Listing, creation, update and removal against the backend
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"imovia/api"
	"imovia/masks"
)

// ListPropertiesCommand lists properties, optionally filtered.
func ListPropertiesCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("list-properties", flag.ExitOnError)
	query := fs.String("query", "", "Filter by name, type or tenant")
	_ = fs.Parse(args)

	items, err := client.ListProperties(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list properties: %w", err)
	}

	if *query != "" {
		q := strings.ToLower(*query)
		filtered := items[:0]
		for _, p := range items {
			haystack := strings.ToLower(p.Name + " " + p.Type + " " + p.CurrentTenant)
			if strings.Contains(haystack, q) {
				filtered = append(filtered, p)
			}
		}
		items = filtered
	}

	if len(items) == 0 {
		fmt.Println("Nenhum imóvel encontrado")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "IMÓVEL\tTIPO\tINQUILINO\tVALOR\tFIM CONTRATO\tSTATUS\tID")
	_, _ = fmt.Fprintln(w, "------\t----\t---------\t-----\t------------\t------\t--")

	for _, p := range items {
		tenant := p.CurrentTenant
		if tenant == "" {
			tenant = "-"
		}
		value := p.CurrentRentValue
		if value == "" {
			value = "-"
		}
		end := p.CurrentContractEndDate
		if end == "" {
			end = "-"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.Name, p.Type, tenant, value, end, p.Status, p.ID)
	}
	return w.Flush()
}

// AddPropertyCommand registers a property.
func AddPropertyCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("add-property", flag.ExitOnError)
	payload, parse := propertyFlags(fs)
	_ = fs.Parse(args)
	parse()

	if payload.Name == "" {
		return fmt.Errorf("--name is required")
	}

	created, err := client.CreateProperty(context.Background(), *payload)
	if err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}

	fmt.Printf("✓ Imóvel criado: %s (ID: %s)\n", created.Name, created.ID)
	return nil
}

// UpdatePropertyCommand replaces an existing property's fields.
func UpdatePropertyCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("update-property", flag.ExitOnError)
	id := fs.String("id", "", "Property ID (required)")
	payload, parse := propertyFlags(fs)
	_ = fs.Parse(args)
	parse()

	if *id == "" {
		return fmt.Errorf("--id is required")
	}

	updated, err := client.UpdateProperty(context.Background(), *id, *payload)
	if err != nil {
		return fmt.Errorf("failed to update property: %w", err)
	}

	fmt.Printf("✓ Imóvel atualizado: %s\n", updated.Name)
	return nil
}

// DeletePropertyCommand removes a property.
func DeletePropertyCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("delete-property", flag.ExitOnError)
	id := fs.String("id", "", "Property ID (required)")
	confirm := fs.Bool("confirm", false, "Skip confirmation prompt")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("--id is required")
	}

	if !*confirm {
		fmt.Printf("Excluir o imóvel %s? (s/N): ", *id)
		var response string
		_, _ = fmt.Scanln(&response)
		if strings.ToLower(response) != "s" {
			fmt.Println("Cancelado")
			return nil
		}
	}

	if err := client.DeleteProperty(context.Background(), *id); err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}

	fmt.Println("✓ Imóvel excluído")
	return nil
}

// propertyFlags registers the shared create/update flags. The returned
// closure runs after Parse and applies the display masks, so the CLI accepts
// bare digits the same way the TUI fields do.
func propertyFlags(fs *flag.FlagSet) (*api.PropertyPayload, func()) {
	payload := &api.PropertyPayload{}

	name := fs.String("name", "", "Property name")
	ptype := fs.String("type", "Casa", "Property type (Casa, Comercial, Galpão, Salas, Terreno, Outro)")
	description := fs.String("address", "", "Street address")
	status := fs.String("status", "Disponível", "Property status (Disponível, Alugado, Manutenção)")
	matricula := fs.String("matricula", "", "Registry number")
	cagece := fs.String("cagece", "", "Water utility code")
	enel := fs.String("enel", "", "Power utility code")
	renovation := fs.String("last-renovation", "", "Last renovation date (DD/MM/YYYY)")
	iptu := fs.String("iptu", "Pago", "IPTU status (Pago, Pendente, Isento)")
	notes := fs.String("notes", "", "Free-form notes")
	lat := fs.Float64("lat", 0, "Latitude")
	lng := fs.Float64("lng", 0, "Longitude")

	return payload, func() {
		payload.Name = *name
		payload.Type = *ptype
		payload.Description = *description
		payload.Status = *status
		payload.Matricula = *matricula
		payload.Cagece = *cagece
		payload.Enel = *enel
		payload.LastRenovation = masks.MaskDate(*renovation)
		payload.IptuStatus = *iptu
		payload.Notes = *notes
		payload.Lat = *lat
		payload.Lng = *lng
	}
}
