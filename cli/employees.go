// ABOUTME: Employee CLI commands
// ABOUTME: Staff listing, creation and update with masked documents
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"imovia/api"
	"imovia/masks"
	"imovia/models"
)

// ListEmployeesCommand lists staff records.
func ListEmployeesCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("list-employees", flag.ExitOnError)
	_ = fs.Parse(args)

	employees, err := client.ListEmployees(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}

	if len(employees) == 0 {
		fmt.Println("Nenhum funcionário cadastrado")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NOME\tCARGO\tE-MAIL\tTELEFONE\tID")
	_, _ = fmt.Fprintln(w, "----\t-----\t------\t--------\t--")
	for _, e := range employees {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.Name, e.Role, e.Email, e.Phone, e.ID)
	}
	return w.Flush()
}

// AddEmployeeCommand registers a staff record.
func AddEmployeeCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("add-employee", flag.ExitOnError)
	record, parse := employeeFlags(fs)
	_ = fs.Parse(args)
	parse()

	if record.Name == "" || record.Email == "" {
		return fmt.Errorf("--name and --email are required")
	}
	if record.Password == "" {
		return fmt.Errorf("--password is required for a new employee")
	}

	created, err := client.CreateEmployee(context.Background(), *record)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}

	fmt.Printf("✓ Funcionário criado: %s (ID: %s)\n", created.Name, created.ID)
	return nil
}

// UpdateEmployeeCommand replaces a staff record. An empty password keeps the
// stored one.
func UpdateEmployeeCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("update-employee", flag.ExitOnError)
	id := fs.String("id", "", "Employee ID (required)")
	record, parse := employeeFlags(fs)
	_ = fs.Parse(args)
	parse()

	if *id == "" {
		return fmt.Errorf("--id is required")
	}
	record.ID = *id

	updated, err := client.UpdateEmployee(context.Background(), *id, *record)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}

	fmt.Printf("✓ Funcionário atualizado: %s\n", updated.Name)
	return nil
}

func employeeFlags(fs *flag.FlagSet) (*models.Employee, func()) {
	record := &models.Employee{}

	name := fs.String("name", "", "Full name")
	cpf := fs.String("cpf", "", "CPF (digits or formatted)")
	email := fs.String("email", "", "E-mail")
	role := fs.String("role", "", "Job title")
	phone := fs.String("phone", "", "Phone (digits or formatted)")
	location := fs.String("location", "", "City")
	birth := fs.String("birth", "", "Birth date (DD/MM/YYYY)")
	pix := fs.String("pix", "", "PIX key")
	social := fs.String("social", "", "Social links")
	salary := fs.String("salary", "", "Salary (digits or formatted)")
	password := fs.String("password", "", "Login password")

	return record, func() {
		record.Name = *name
		record.CPF = masks.MaskCPF(*cpf)
		record.Email = *email
		record.Role = *role
		record.Phone = masks.MaskCellphone(*phone)
		record.Location = *location
		record.BirthDate = masks.MaskDate(*birth)
		record.PixKey = *pix
		record.SocialLinks = *social
		record.Salary = masks.FormatCurrency(*salary)
		record.Password = *password
	}
}
