// ABOUTME: Property endpoints
// ABOUTME: List, detail, create, update and delete against /properties
package api

import (
	"context"
	"net/http"
	"net/url"

	"imovia/models"
)

// PropertyPayload is the property-only body for create and update. Tenant
// and contract fields are deliberately absent: contracts are created through
// the dedicated linking flow, never alongside a property save.
type PropertyPayload struct {
	Name           string  `json:"name"`
	Type           string  `json:"propertyType"`
	Description    string  `json:"description"`
	Matricula      string  `json:"matricula"`
	Cagece         string  `json:"cagece"`
	Enel           string  `json:"enel"`
	LastRenovation string  `json:"lastRenovation"`
	Status         string  `json:"propertyStatus"`
	IptuStatus     string  `json:"iptuStatus"`
	Notes          string  `json:"notes"`
	Lat            float64 `json:"lat"`
	Lng            float64 `json:"lng"`
}

// ListProperties loads the full property list for the current user.
func (c *Client) ListProperties(ctx context.Context) ([]models.PropertyListItem, error) {
	var out []models.PropertyListItem
	if err := c.do(ctx, http.MethodGet, "/properties", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProperty loads the full record including snapshot tenant fields.
func (c *Client) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	var out models.Property
	if err := c.do(ctx, http.MethodGet, "/properties/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProperty registers a new property.
func (c *Client) CreateProperty(ctx context.Context, payload PropertyPayload) (*models.Property, error) {
	var out models.Property
	if err := c.do(ctx, http.MethodPost, "/properties", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProperty replaces an existing property's fields.
func (c *Client) UpdateProperty(ctx context.Context, id string, payload PropertyPayload) (*models.Property, error) {
	var out models.Property
	if err := c.do(ctx, http.MethodPut, "/properties/"+url.PathEscape(id), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProperty removes a property. There is no local derived state to
// reconcile; callers re-fetch the list afterwards.
func (c *Client) DeleteProperty(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/properties/"+url.PathEscape(id), nil, nil)
}
