// ABOUTME: MCP server subcommand
// ABOUTME: Exposes read-only back-office queries over stdio
package cli

import (
	"context"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"imovia/api"
	"imovia/handlers"
)

// MCPCommand starts the MCP server on stdio.
func MCPCommand(client *api.Client) error {
	log.Println("Starting Imovia MCP server...")

	propertyHandlers := handlers.NewPropertyHandlers(client)
	tenantHandlers := handlers.NewTenantHandlers(client)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "imovia",
		Version: "0.1.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_properties",
		Description: "Search managed properties by name, type, tenant or status",
	}, propertyHandlers.FindProperties)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_contract_history",
		Description: "List every contract ever linked to a property",
	}, propertyHandlers.GetContractHistory)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_tenants",
		Description: "List registered tenants eligible for contract linking",
	}, tenantHandlers.ListTenants)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_tenant_contracts",
		Description: "List every contract a tenant has held",
	}, tenantHandlers.GetTenantContracts)

	return server.Run(context.Background(), &mcp.StdioTransport{})
}
