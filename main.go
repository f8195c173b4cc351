// ABOUTME: Entry point for the Imovia back-office client
// ABOUTME: Routes to the TUI, the CLI subcommands or the MCP server
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"imovia/api"
	"imovia/cache"
	"imovia/cli"
	"imovia/config"
	"imovia/geo"
	"imovia/logging"
	"imovia/tui"
)

const version = "0.1.0"

func main() {
	showVersion := flag.Bool("version", false, "Show version and exit")
	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("imovia version %s\n", version)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	logger, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		// Diagnostics are best-effort; the client still works without them.
		logger = logging.Nop()
	}
	defer func() { _ = logger.Sync() }()

	session := api.NewSession(cfg.SessionPath)
	client := api.NewClient(cfg.APIBaseURL, session, logger)

	args := flag.Args()
	if len(args) == 0 {
		runTUI(cfg, client, logger)
		return
	}

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "tui":
		runTUI(cfg, client, logger)

	case "mcp":
		if err := cli.MCPCommand(client); err != nil {
			log.Fatalf("MCP server failed: %v", err)
		}

	case "login":
		if err := cli.LoginCommand(client, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}
	case "logout":
		if err := cli.LogoutCommand(client); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "properties":
		runSubcommand(client, commandArgs, map[string]func(*api.Client, []string) error{
			"list":   cli.ListPropertiesCommand,
			"add":    cli.AddPropertyCommand,
			"update": cli.UpdatePropertyCommand,
			"delete": cli.DeletePropertyCommand,
		})

	case "contracts":
		runSubcommand(client, commandArgs, map[string]func(*api.Client, []string) error{
			"list":      cli.ListContractsCommand,
			"create":    cli.CreateContractCommand,
			"terminate": cli.TerminateContractCommand,
		})

	case "tenants":
		runSubcommand(client, commandArgs, map[string]func(*api.Client, []string) error{
			"list":      cli.ListTenantsCommand,
			"contracts": cli.TenantContractsCommand,
		})

	case "employees":
		runSubcommand(client, commandArgs, map[string]func(*api.Client, []string) error{
			"list":   cli.ListEmployeesCommand,
			"add":    cli.AddEmployeeCommand,
			"update": cli.UpdateEmployeeCommand,
		})

	case "export":
		if err := cli.ExportCommand(client, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runSubcommand(client *api.Client, args []string, commands map[string]func(*api.Client, []string) error) {
	if len(args) == 0 {
		fmt.Println("Error: a subcommand is required")
		printUsage()
		os.Exit(1)
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Printf("Unknown subcommand: %s\n\n", args[0])
		printUsage()
		os.Exit(1)
	}
	if err := cmd(client, args[1:]); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func runTUI(cfg *config.Config, client *api.Client, logger *zap.Logger) {
	snapshot, err := cache.Open(cfg.CachePath)
	if err != nil {
		// The cache only feeds the offline list; run without it.
		logger.Warn("failed to open snapshot cache", zap.Error(err))
		snapshot = nil
	} else {
		defer func() { _ = snapshot.Close() }()
	}

	geocoder := geo.NewGeocoder(cfg.GeocoderURL)
	model := tui.NewModel(*cfg, client, geocoder, snapshot, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("TUI failed: %v", err)
	}
}

func printUsage() {
	fmt.Println(`imovia - painel administrativo de imóveis

Usage:
  imovia                      Start the interactive TUI
  imovia tui                  Start the interactive TUI
  imovia mcp                  Start the MCP server on stdio

  imovia login --email <e-mail>
  imovia logout

  imovia properties list [--query <text>]
  imovia properties add --name <name> [flags]
  imovia properties update --id <id> [flags]
  imovia properties delete --id <id> [--confirm]

  imovia contracts list --property <id>
  imovia contracts create --property <id> --tenant <id> --start <date> [flags]
  imovia contracts terminate --id <id> [--reason <text>] [--end <date>]

  imovia tenants list
  imovia tenants contracts --id <id>

  imovia employees list
  imovia employees add --name <name> --email <e-mail> --password <pass> [flags]
  imovia employees update --id <id> [flags]

  imovia export [--output <file.csv>]

Flags:
  --version                   Show version and exit

Environment:
  IMOVIA_API_URL              Backend base URL (required)
  IMOVIA_GEOCODER_URL         Nominatim endpoint (optional)
  IMOVIA_CONFIG               YAML config file path (optional)`)
}
