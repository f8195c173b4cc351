// ABOUTME: Report CLI commands
// ABOUTME: Exports the property list as semicolon-separated CSV
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"imovia/api"
	"imovia/reports"
)

// ExportCommand writes the property list as CSV to a file or stdout.
func ExportCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	output := fs.String("output", "", "Output file (default: stdout)")
	_ = fs.Parse(args)

	items, err := client.ListProperties(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list properties: %w", err)
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	if err := reports.WriteCSV(out, items); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}

	if *output != "" {
		fmt.Printf("✓ %d imóveis exportados para %s\n", len(items), *output)
	}
	return nil
}
