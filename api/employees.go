// ABOUTME: Employee endpoints
// ABOUTME: Staff record listing, creation and update
package api

import (
	"context"
	"net/http"
	"net/url"

	"imovia/models"
)

// ListEmployees loads all staff records. Salaries come back as stored;
// masking them is a display concern.
func (c *Client) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var out []models.Employee
	if err := c.do(ctx, http.MethodGet, "/employees", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateEmployee registers a staff record.
func (c *Client) CreateEmployee(ctx context.Context, emp models.Employee) (*models.Employee, error) {
	var out models.Employee
	if err := c.do(ctx, http.MethodPost, "/employees", emp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateEmployee replaces a staff record. An empty Password field is omitted
// from the body, leaving the stored password untouched.
func (c *Client) UpdateEmployee(ctx context.Context, id string, emp models.Employee) (*models.Employee, error) {
	var out models.Employee
	if err := c.do(ctx, http.MethodPut, "/employees/"+url.PathEscape(id), emp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
