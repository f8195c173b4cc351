// ABOUTME: Tests for the reverse-geocoding client
// ABOUTME: Uses httptest to exercise address formatting and failure paths
package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestReverseGeocodeFormatsRoadAndNumber(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reverse" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("zoom") != "18" {
			t.Errorf("expected zoom=18, got %s", r.URL.Query().Get("zoom"))
		}
		_, _ = w.Write([]byte(`{"address":{"road":"Rua das Flores","house_number":"120"}}`))
	}))
	defer srv.Close()

	got, err := NewGeocoder(srv.URL).ReverseGeocode(context.Background(), -3.73, -38.52)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Rua das Flores, 120" {
		t.Errorf("got %q", got)
	}
}

func TestReverseGeocodeMissingNumber(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"address":{"road":"Av. Beira Mar"}}`))
	}))
	defer srv.Close()

	got, err := NewGeocoder(srv.URL).ReverseGeocode(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Av. Beira Mar, S/N" {
		t.Errorf("got %q", got)
	}
}

func TestReverseGeocodeFallbacks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	got, err := NewGeocoder(srv.URL).ReverseGeocode(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != FallbackAddress {
		t.Errorf("got %q, want fallback", got)
	}

	srvErr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srvErr.Close()

	if _, err := NewGeocoder(srvErr.URL).ReverseGeocode(context.Background(), 0, 0); err == nil {
		t.Error("expected error on 502")
	}
}
