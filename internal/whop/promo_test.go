// internal/whop/promo_test.go
package whop

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"go_5_challenge_hub/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func promoTestConfig(baseURL, apiKey, fallbackKey string) *config.Config {
	cfg := &config.Config{}
	cfg.Whop.APIBaseURL = baseURL
	cfg.Whop.APIKey = apiKey
	cfg.Whop.FallbackAPIKey = fallbackKey
	return cfg
}

func TestPromoClient_CreatePromoCode_FallbackKey(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, config.PromoCodesEndpoint, r.URL.Path)

		// The primary key is rejected; only the fallback key works.
		if r.Header.Get("Authorization") != "Bearer fallback-key" {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		var req CreatePromoRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "LAUNCH20", req.Code)
		assert.Equal(t, "percentage", req.PromoType)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(PromoCode{ID: "promo_1", Code: req.Code, DiscountPercent: req.DiscountPercent})
	}))
	defer server.Close()

	client := NewPromoClient(promoTestConfig(server.URL, "primary-key", "fallback-key"))
	promo, err := client.CreatePromoCode(context.Background(), CreatePromoRequest{
		Code:            "LAUNCH20",
		DiscountPercent: 20,
		PromoType:       "percentage",
	})

	require.NoError(t, err)
	assert.Equal(t, "promo_1", promo.ID)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls), "expected one failed primary attempt and one fallback attempt")
}

func TestPromoClient_CreatePromoCode_PrimaryKeySucceeds(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "Bearer primary-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(PromoCode{ID: "promo_1", Code: "LAUNCH20"})
	}))
	defer server.Close()

	client := NewPromoClient(promoTestConfig(server.URL, "primary-key", "fallback-key"))
	promo, err := client.CreatePromoCode(context.Background(), CreatePromoRequest{Code: "LAUNCH20"})

	require.NoError(t, err)
	assert.Equal(t, "promo_1", promo.ID)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "no fallback attempt when the primary key works")
}

func TestPromoClient_CreatePromoCode_NoFallbackConfigured(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewPromoClient(promoTestConfig(server.URL, "primary-key", ""))
	promo, err := client.CreatePromoCode(context.Background(), CreatePromoRequest{Code: "LAUNCH20"})

	require.Error(t, err)
	assert.Nil(t, promo)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "no retry without a fallback key")
}

func TestPromoClient_DeletePromoCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, config.PromoCodesEndpoint+"/promo_1", r.URL.Path)
		assert.Equal(t, "Bearer primary-key", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewPromoClient(promoTestConfig(server.URL, "primary-key", ""))
	err := client.DeletePromoCode(context.Background(), "promo_1")
	assert.NoError(t, err)
}
