package postcard_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanHagen77/dwella-app-sub003/internal/postcard"
	"github.com/RyanHagen77/dwella-app-sub003/internal/verification"
)

func TestClient_SendCode(t *testing.T) {
	homeID := uuid.New()
	req := verification.PostcardRequest{
		HomeID:       homeID,
		AddressLine1: "12 Maple Street",
		City:         "Portland",
		State:        "OR",
		PostalCode:   "97201",
		Code:         "123456",
	}

	t.Run("Success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/postcards", r.URL.Path)
			assert.Equal(t, "Bearer provider-token", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var payload map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, homeID.String(), payload["home_id"])
			assert.Equal(t, "12 Maple Street", payload["address_line1"])
			assert.Contains(t, payload["message"], "123456")

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]string{"id": "psc_abc123"})
		}))
		defer srv.Close()

		client := postcard.NewClient(srv.URL, "provider-token")

		id, err := client.SendCode(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "psc_abc123", id)
	})

	t.Run("ProviderError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client := postcard.NewClient(srv.URL, "provider-token")

		_, err := client.SendCode(context.Background(), req)
		assert.Error(t, err)
	})

	t.Run("MissingMailingID", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{})
		}))
		defer srv.Close()

		client := postcard.NewClient(srv.URL, "provider-token")

		_, err := client.SendCode(context.Background(), req)
		assert.Error(t, err)
	})
}
