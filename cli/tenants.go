// ABOUTME: Tenant CLI commands
// ABOUTME: Listing and per-tenant contract history
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"imovia/api"
)

// ListTenantsCommand lists the registered tenants.
func ListTenantsCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("list-tenants", flag.ExitOnError)
	_ = fs.Parse(args)

	tenants, err := client.ListTenants(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list tenants: %w", err)
	}

	if len(tenants) == 0 {
		fmt.Println("Nenhum inquilino cadastrado")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NOME\tID")
	_, _ = fmt.Fprintln(w, "----\t--")
	for _, t := range tenants {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", t.Name, t.ID)
	}
	return w.Flush()
}

// TenantContractsCommand prints every contract a tenant has held.
func TenantContractsCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("tenant-contracts", flag.ExitOnError)
	id := fs.String("id", "", "Tenant ID (required)")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("--id is required")
	}

	history, err := client.ListTenantContracts(context.Background(), *id)
	if err != nil {
		return fmt.Errorf("failed to load tenant contracts: %w", err)
	}

	if len(history) == 0 {
		fmt.Println("Sem contratos para este inquilino")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "PERÍODO\tVALOR\tSTATUS\tID")
	_, _ = fmt.Fprintln(w, "-------\t-----\t------\t--")
	for _, c := range history {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Period(), c.RentValue, c.Status, c.ID)
	}
	return w.Flush()
}
