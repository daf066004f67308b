//go:generate mockery --name PromoClient --output ./mocks --outpkg mocks --case=underscore
package whop

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go_5_challenge_hub/internal/config"
	"go_5_challenge_hub/internal/middleware"
)

// PromoCode is a promo code managed on the platform.
type PromoCode struct {
	ID              string `json:"id"`
	Code            string `json:"code"`
	DiscountPercent int    `json:"amount_off"`
}

type CreatePromoRequest struct {
	Code            string `json:"code"`
	DiscountPercent int    `json:"amount_off"`
	PromoType       string `json:"promo_type"`
	ProductID       string `json:"plan_id,omitempty"`
}

// PromoClient manages promo codes through the platform v2 REST endpoint.
type PromoClient interface {
	CreatePromoCode(ctx context.Context, req CreatePromoRequest) (*PromoCode, error)
	DeletePromoCode(ctx context.Context, promoID string) error
}

type restPromoClient struct {
	endpoint    string
	apiKey      string
	fallbackKey string
	http        *http.Client
}

// NewPromoClient builds the promo-code client. When a fallback API key is
// configured, creation is retried once with it after a failure with the
// primary key. This is the only application-level retry in the system.
func NewPromoClient(cfg *config.Config) PromoClient {
	return &restPromoClient{
		endpoint:    cfg.Whop.APIBaseURL + config.PromoCodesEndpoint,
		apiKey:      cfg.Whop.APIKey,
		fallbackKey: cfg.Whop.FallbackAPIKey,
		http:        &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *restPromoClient) CreatePromoCode(ctx context.Context, req CreatePromoRequest) (*PromoCode, error) {
	logger := middleware.GetLogger(ctx)

	promo, err := c.create(ctx, req, c.apiKey)
	if err == nil {
		return promo, nil
	}
	if c.fallbackKey == "" {
		return nil, err
	}

	logger.Warn("Promo code creation failed with primary key, retrying with fallback key",
		"code", req.Code,
		"error", err,
	)
	return c.create(ctx, req, c.fallbackKey)
}

func (c *restPromoClient) create(ctx context.Context, promoReq CreatePromoRequest, key string) (*PromoCode, error) {
	buf, err := json.Marshal(promoReq)
	if err != nil {
		return nil, fmt.Errorf("whop.CreatePromoCode: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("whop.CreatePromoCode: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("whop.CreatePromoCode: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("whop.CreatePromoCode: status %d: %s", resp.StatusCode, string(body))
	}

	var promo PromoCode
	if err := json.NewDecoder(resp.Body).Decode(&promo); err != nil {
		return nil, fmt.Errorf("whop.CreatePromoCode: decode: %w", err)
	}
	return &promo, nil
}

func (c *restPromoClient) DeletePromoCode(ctx context.Context, promoID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.endpoint+"/"+promoID, nil)
	if err != nil {
		return fmt.Errorf("whop.DeletePromoCode: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("whop.DeletePromoCode: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("whop.DeletePromoCode: status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
