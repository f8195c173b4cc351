// ABOUTME: Tenant MCP tool handlers
// ABOUTME: Implements list_tenants and get_tenant_contracts tools
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"imovia/api"
)

type TenantHandlers struct {
	client *api.Client
}

func NewTenantHandlers(client *api.Client) *TenantHandlers {
	return &TenantHandlers{client: client}
}

type ListTenantsInput struct{}

type TenantOutput struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ListTenantsOutput struct {
	Tenants []TenantOutput `json:"tenants"`
}

func (h *TenantHandlers) ListTenants(ctx context.Context, request *mcp.CallToolRequest, input ListTenantsInput) (*mcp.CallToolResult, ListTenantsOutput, error) {
	tenants, err := h.client.ListTenants(ctx)
	if err != nil {
		return nil, ListTenantsOutput{}, fmt.Errorf("failed to list tenants: %w", err)
	}

	out := ListTenantsOutput{}
	for _, t := range tenants {
		out.Tenants = append(out.Tenants, TenantOutput{ID: t.ID, Name: t.Name})
	}
	return nil, out, nil
}

type TenantContractsInput struct {
	TenantID string `json:"tenant_id" jsonschema:"Tenant ID (required)"`
}

func (h *TenantHandlers) GetTenantContracts(ctx context.Context, request *mcp.CallToolRequest, input TenantContractsInput) (*mcp.CallToolResult, ContractHistoryOutput, error) {
	if input.TenantID == "" {
		return nil, ContractHistoryOutput{}, fmt.Errorf("tenant_id is required")
	}

	history, err := h.client.ListTenantContracts(ctx, input.TenantID)
	if err != nil {
		return nil, ContractHistoryOutput{}, fmt.Errorf("failed to load tenant contracts: %w", err)
	}

	out := ContractHistoryOutput{}
	for _, c := range history {
		out.Contracts = append(out.Contracts, ContractOutput{
			ID:         c.ID,
			TenantName: c.TenantName,
			StartDate:  c.StartDate,
			EndDate:    c.EndDate,
			RentValue:  c.RentValue,
			Status:     c.Status,
			Active:     c.Active(),
		})
	}
	return nil, out, nil
}
