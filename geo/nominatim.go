// ABOUTME: Reverse-geocoding client for the Nominatim HTTP API
// ABOUTME: Resolves a clicked map coordinate into a short street address
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// FallbackAddress is shown when reverse geocoding fails or returns nothing;
// the picked coordinate is still usable for registration.
const FallbackAddress = "Local selecionado"

type reverseResponse struct {
	Address struct {
		Road        string `json:"road"`
		HouseNumber string `json:"house_number"`
	} `json:"address"`
}

// Geocoder resolves coordinates against a Nominatim-compatible endpoint.
type Geocoder struct {
	baseURL    string
	httpClient *http.Client
}

// NewGeocoder creates a Geocoder for the given base URL
// (e.g. https://nominatim.openstreetmap.org).
func NewGeocoder(baseURL string) *Geocoder {
	return &Geocoder{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// ReverseGeocode returns a "road, number" label for the coordinate. The
// number falls back to "S/N" when the provider has none. Callers treat any
// error as non-fatal and substitute FallbackAddress.
func (g *Geocoder) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("addressdetails", "1")
	q.Set("zoom", "18")
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build reverse geocode request: %w", err)
	}
	req.Header.Set("User-Agent", "imovia-backoffice")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("reverse geocode request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reverse geocode returned status %d", resp.StatusCode)
	}

	var decoded reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode reverse geocode response: %w", err)
	}

	if decoded.Address.Road == "" {
		return FallbackAddress, nil
	}
	number := decoded.Address.HouseNumber
	if number == "" {
		number = "S/N"
	}
	return decoded.Address.Road + ", " + number, nil
}
