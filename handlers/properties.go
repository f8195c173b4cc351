// ABOUTME: Property MCP tool handlers
// ABOUTME: Implements find_properties and get_contract_history tools
package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"imovia/api"
	"imovia/models"
)

type PropertyHandlers struct {
	client *api.Client
}

func NewPropertyHandlers(client *api.Client) *PropertyHandlers {
	return &PropertyHandlers{client: client}
}

type FindPropertiesInput struct {
	Query  string `json:"query,omitempty" jsonschema:"Search query (matches name, type and tenant)"`
	Status string `json:"status,omitempty" jsonschema:"Filter by status (Disponível, Alugado, Manutenção)"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Maximum number of results (default 20)"`
}

type PropertyOutput struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	Status          string  `json:"status"`
	Tenant          string  `json:"tenant,omitempty"`
	RentValue       string  `json:"rent_value,omitempty"`
	ContractEndDate string  `json:"contract_end_date,omitempty"`
	IptuStatus      string  `json:"iptu_status,omitempty"`
	Lat             float64 `json:"lat,omitempty"`
	Lng             float64 `json:"lng,omitempty"`
}

type FindPropertiesOutput struct {
	Properties []PropertyOutput `json:"properties"`
}

func (h *PropertyHandlers) FindProperties(ctx context.Context, request *mcp.CallToolRequest, input FindPropertiesInput) (*mcp.CallToolResult, FindPropertiesOutput, error) {
	items, err := h.client.ListProperties(ctx)
	if err != nil {
		return nil, FindPropertiesOutput{}, fmt.Errorf("failed to list properties: %w", err)
	}

	limit := input.Limit
	if limit == 0 {
		limit = 20
	}
	query := strings.ToLower(input.Query)

	out := FindPropertiesOutput{}
	for _, p := range items {
		if input.Status != "" && p.Status != input.Status {
			continue
		}
		if query != "" {
			haystack := strings.ToLower(p.Name + " " + p.Type + " " + p.CurrentTenant)
			if !strings.Contains(haystack, query) {
				continue
			}
		}
		out.Properties = append(out.Properties, propertyToOutput(p))
		if len(out.Properties) >= limit {
			break
		}
	}
	return nil, out, nil
}

type ContractHistoryInput struct {
	PropertyID string `json:"property_id" jsonschema:"Property ID (required)"`
}

type ContractOutput struct {
	ID         string `json:"id"`
	TenantName string `json:"tenant_name"`
	StartDate  string `json:"start_date,omitempty"`
	EndDate    string `json:"end_date,omitempty"`
	RentValue  string `json:"rent_value"`
	Status     string `json:"status"`
	Active     bool   `json:"active"`
}

type ContractHistoryOutput struct {
	Contracts []ContractOutput `json:"contracts"`
}

func (h *PropertyHandlers) GetContractHistory(ctx context.Context, request *mcp.CallToolRequest, input ContractHistoryInput) (*mcp.CallToolResult, ContractHistoryOutput, error) {
	if input.PropertyID == "" {
		return nil, ContractHistoryOutput{}, fmt.Errorf("property_id is required")
	}

	history, err := h.client.ListContractHistory(ctx, input.PropertyID)
	if err != nil {
		return nil, ContractHistoryOutput{}, fmt.Errorf("failed to load contract history: %w", err)
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

func propertyToOutput(p models.PropertyListItem) PropertyOutput {
	return PropertyOutput{
		ID:              p.ID,
		Name:            p.Name,
		Type:            p.Type,
		Status:          p.Status,
		Tenant:          p.CurrentTenant,
		RentValue:       p.CurrentRentValue,
		ContractEndDate: p.CurrentContractEndDate,
		IptuStatus:      p.IptuStatus,
		Lat:             p.Lat,
		Lng:             p.Lng,
	}
}
