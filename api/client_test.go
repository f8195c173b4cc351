// ABOUTME: Tests for the backend client
// ABOUTME: Token attachment, error taxonomy and endpoint shapes via httptest
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imovia/logging"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	session := NewSession(filepath.Join(t.TempDir(), "session.json"))
	return NewClient(srv.URL, session, logging.Nop()), srv
}

func TestTokenAttachedToRequests(t *testing.T) {
	var gotAuth, gotReqID string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`[]`))
	}))
	require.NoError(t, client.session.Save("tok-123"))

	_, err := client.ListProperties(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Len(t, gotReqID, 26, "request id should be a ULID")
}

func TestConflictAndGenericErrorsAreDistinct(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/contracts" {
			w.WriteHeader(http.StatusConflict)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.CreateContract(context.Background(), ContractPayload{PropertyID: "p1", TenantID: "t1"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = client.ListProperties(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.NotErrorIs(t, err, ErrConflict)
}

func TestUnauthorizedSentinel(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := client.ListTenants(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLoginPersistsToken(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/authenticate", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin", body["username"])
		_, _ = w.Write([]byte(`{"token":"abc"}`))
	}))

	require.NoError(t, client.Login(context.Background(), "admin", "secret"))
	assert.True(t, client.LoggedIn())

	// A fresh session from the same path sees the persisted token.
	reloaded := NewSession(client.session.path)
	assert.Equal(t, "abc", reloaded.Token())

	require.NoError(t, client.Logout())
	assert.False(t, client.LoggedIn())
}

func TestPropertyPayloadHasNoTenantFields(t *testing.T) {
	// The wire body for a property save must never carry tenant or contract
	// fields, regardless of what the in-memory draft holds.
	var captured map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(`{"id":"p1"}`))
	}))

	_, err := client.CreateProperty(context.Background(), PropertyPayload{
		Name: "Rua A, 10", Type: "Casa", Status: "Disponível", IptuStatus: "Pago",
		Lat: -3.73, Lng: -38.52,
	})
	require.NoError(t, err)

	for _, forbidden := range []string{"clientName", "clientPhone", "tenantId", "rentValue",
		"cpf", "tenantCpf", "startDate", "endDate", "paymentDay"} {
		_, present := captured[forbidden]
		assert.False(t, present, "property payload must not contain %q", forbidden)
	}
	assert.Equal(t, "Rua A, 10", captured["name"])
}

func TestTerminateContractQueryParams(t *testing.T) {
	var gotPath, gotReason, gotEnd string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotReason = r.URL.Query().Get("reason")
		gotEnd = r.URL.Query().Get("endDate")
		_, _ = w.Write([]byte(`{"id":"c1","status":"FINISHED"}`))
	}))

	contract, err := client.TerminateContract(context.Background(), "c1", "venda do imóvel", "31/01/2026")
	require.NoError(t, err)
	assert.Equal(t, "/contracts/c1/terminate", gotPath)
	assert.Equal(t, "venda do imóvel", gotReason)
	assert.Equal(t, "31/01/2026", gotEnd)
	assert.Equal(t, "FINISHED", contract.Status)
}

func TestNetworkFailureWrapped(t *testing.T) {
	session := NewSession(filepath.Join(t.TempDir(), "session.json"))
	client := NewClient("http://127.0.0.1:1", session, logging.Nop())

	_, err := client.ListProperties(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConflict)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "transport failure is not an APIError")
}
