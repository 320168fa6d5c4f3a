package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mingle-backend/internal/dto"
)

func newServer(t *testing.T, mux *http.ServeMux) *Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return New(srv.URL + "/api")
}

func TestCreateAndGetProfile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/profiles", func(w http.ResponseWriter, r *http.Request) {
		var req dto.ProfileRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(dto.ProfileResponse{ID: "id1", Name: req.Name, Skills: req.Skills})
	})
	mux.HandleFunc("GET /api/profiles/{id}", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(dto.ProfileResponse{ID: r.PathValue("id"), Name: "Ada"})
	})
	c := newServer(t, mux)

	created, err := c.CreateProfile(context.Background(), dto.ProfileRequest{Name: "Ada", Skills: []string{"Rust"}})
	require.NoError(t, err)
	assert.Equal(t, "id1", created.ID)
	assert.Equal(t, []string{"Rust"}, created.Skills)

	got, err := c.GetProfile(context.Background(), "id1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)
}

func TestErrorBodyBecomesAPIError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/network", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"userId query param required","code":"validation_error"}`))
	})
	c := newServer(t, mux)

	_, err := c.GetNetwork(context.Background(), "")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "validation_error", apiErr.Code)
	assert.Equal(t, "userId query param required", apiErr.Error())
}

func TestNonJSONErrorKeepsStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/outreach/rank", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})
	c := newServer(t, mux)

	_, err := c.RankContacts(context.Background(), dto.RankRequest{})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "request failed with status 502", apiErr.Error())
}

func TestNetworkCallsSendOwner(t *testing.T) {
	var saved dto.NetworkSaveRequest
	var removedOwner, removedID string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/network", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&saved)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"status":"saved"}`))
	})
	mux.HandleFunc("DELETE /api/network/{profileId}", func(w http.ResponseWriter, r *http.Request) {
		removedOwner = r.URL.Query().Get("userId")
		removedID = r.PathValue("profileId")
		w.Write([]byte(`{"status":"removed"}`))
	})
	c := newServer(t, mux)

	require.NoError(t, c.SaveContact(context.Background(), "u1", "p1"))
	assert.Equal(t, dto.NetworkSaveRequest{UserID: "u1", ProfileID: "p1"}, saved)

	require.NoError(t, c.RemoveContact(context.Background(), "u1", "p1"))
	assert.Equal(t, "u1", removedOwner)
	assert.Equal(t, "p1", removedID)
}
