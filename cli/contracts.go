// ABOUTME: Contract CLI commands
// ABOUTME: History listing, creation and termination
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"imovia/api"
	"imovia/masks"
)

// ListContractsCommand prints the contract history of a property.
func ListContractsCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("list-contracts", flag.ExitOnError)
	propertyID := fs.String("property", "", "Property ID (required)")
	_ = fs.Parse(args)

	if *propertyID == "" {
		return fmt.Errorf("--property is required")
	}

	history, err := client.ListContractHistory(context.Background(), *propertyID)
	if err != nil {
		return fmt.Errorf("failed to load contract history: %w", err)
	}

	if len(history) == 0 {
		fmt.Println("Nenhum contrato para este imóvel")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "INQUILINO\tINÍCIO\tFIM\tVALOR\tSTATUS\tID")
	_, _ = fmt.Fprintln(w, "---------\t------\t---\t-----\t------\t--")

	for _, c := range history {
		end := c.EndDate
		if end == "" {
			end = "Atual"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			c.TenantName, c.StartDate, end, c.RentValue, c.Status, c.ID)
	}
	return w.Flush()
}

// CreateContractCommand links a tenant to a property.
func CreateContractCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("create-contract", flag.ExitOnError)
	propertyID := fs.String("property", "", "Property ID (required)")
	tenantID := fs.String("tenant", "", "Tenant ID (required)")
	rent := fs.String("rent", "", "Monthly rent (digits or formatted)")
	condo := fs.String("condo", "", "Condo fee")
	deposit := fs.String("deposit", "", "Deposit value")
	day := fs.String("day", "05", "Payment day (05, 10, 15, 20, 25)")
	start := fs.String("start", "", "Start date (DD/MM/YYYY, required)")
	end := fs.String("end", "", "End date (DD/MM/YYYY)")
	notes := fs.String("notes", "", "Free-form notes")
	_ = fs.Parse(args)

	if *propertyID == "" || *tenantID == "" {
		return fmt.Errorf("--property and --tenant are required")
	}
	if *start == "" {
		return fmt.Errorf("--start is required")
	}

	startDate := masks.MaskDate(*start)
	endDate := masks.MaskDate(*end)

	payload := api.ContractPayload{
		PropertyID:       *propertyID,
		TenantID:         *tenantID,
		RentValue:        masks.FormatCurrency(*rent),
		CondoValue:       masks.FormatCurrency(*condo),
		DepositValue:     masks.FormatCurrency(*deposit),
		PaymentDay:       *day,
		StartDate:        startDate,
		EndDate:          endDate,
		Notes:            *notes,
		MonthsInContract: masks.MonthsInContract(startDate, endDate),
	}

	created, err := client.CreateContract(context.Background(), payload)
	if err != nil {
		if errors.Is(err, api.ErrConflict) {
			return fmt.Errorf("já existe um contrato ativo para este imóvel")
		}
		return fmt.Errorf("failed to create contract: %w", err)
	}

	fmt.Printf("✓ Contrato criado: %s (ID: %s)\n", created.TenantName, created.ID)
	fmt.Printf("  Período: %s\n", created.Period())
	if payload.MonthsInContract != "" {
		fmt.Printf("  Duração: %s meses\n", payload.MonthsInContract)
	}
	return nil
}

// TerminateContractCommand ends a contract.
func TerminateContractCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("terminate-contract", flag.ExitOnError)
	id := fs.String("id", "", "Contract ID (required)")
	reason := fs.String("reason", "", "Termination reason")
	end := fs.String("end", "", "Effective end date (DD/MM/YYYY)")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("--id is required")
	}

	terminated, err := client.TerminateContract(context.Background(), *id, *reason, masks.MaskDate(*end))
	if err != nil {
		return fmt.Errorf("failed to terminate contract: %w", err)
	}

	fmt.Printf("✓ Contrato encerrado (status: %s)\n", terminated.Status)
	return nil
}
