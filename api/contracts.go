// ABOUTME: Contract endpoints
// ABOUTME: History per property, creation with 409 mapping, termination
package api

import (
	"context"
	"net/http"
	"net/url"

	"imovia/models"
)

// ContractPayload is the body for POST /contracts. MonthsInContract is
// informational; the backend recomputes whatever it considers authoritative.
type ContractPayload struct {
	PropertyID       string `json:"propertyId"`
	TenantID         string `json:"tenantId"`
	RentValue        string `json:"rentValue"`
	PaymentDay       string `json:"paymentDay"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate,omitempty"`
	Notes            string `json:"notes,omitempty"`
	CondoValue       string `json:"condoValue,omitempty"`
	DepositValue     string `json:"depositValue,omitempty"`
	IptuStatus       string `json:"iptuStatus,omitempty"`
	MonthsInContract string `json:"monthsInContract,omitempty"`
}

// ListContractHistory loads all contracts ever linked to a property, newest
// state first per the backend's ordering.
func (c *Client) ListContractHistory(ctx context.Context, propertyID string) ([]models.ContractHistoryItem, error) {
	var out []models.ContractHistoryItem
	path := "/properties/" + url.PathEscape(propertyID) + "/contracts"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateContract links a tenant to a property. Returns ErrConflict when the
// property already has an active contract; that is the only signal the
// backend gives about the one-active-contract invariant.
func (c *Client) CreateContract(ctx context.Context, payload ContractPayload) (*models.Contract, error) {
	var out models.Contract
	if err := c.do(ctx, http.MethodPost, "/contracts", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TerminateContract ends a contract, optionally recording a reason and an
// effective end date.
func (c *Client) TerminateContract(ctx context.Context, id, reason, endDate string) (*models.Contract, error) {
	q := url.Values{}
	if reason != "" {
		q.Set("reason", reason)
	}
	if endDate != "" {
		q.Set("endDate", endDate)
	}
	path := "/contracts/" + url.PathEscape(id) + "/terminate"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var out models.Contract
	if err := c.do(ctx, http.MethodPost, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
