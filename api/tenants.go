// ABOUTME: Tenant endpoints
// ABOUTME: Listing for the contract-linking dropdown and per-tenant history
package api

import (
	"context"
	"net/http"
	"net/url"

	"imovia/models"
)

// ListTenants loads the id/name pairs eligible for contract linking.
func (c *Client) ListTenants(ctx context.Context) ([]models.TenantRef, error) {
	var out []models.TenantRef
	if err := c.do(ctx, http.MethodGet, "/tenants", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListTenantContracts loads every contract a tenant has held, for the
// master-detail tenants screen.
func (c *Client) ListTenantContracts(ctx context.Context, tenantID string) ([]models.ContractHistoryItem, error) {
	var out []models.ContractHistoryItem
	path := "/tenants/" + url.PathEscape(tenantID) + "/contracts"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
