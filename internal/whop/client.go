//go:generate mockery --name Client --output ./mocks --outpkg mocks --case=underscore
// Package whop wraps the platform API this app is embedded in. The client is
// injected wherever it is needed; nothing in this package is a singleton.
package whop

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"go_5_challenge_hub/internal/config"
	"go_5_challenge_hub/internal/middleware"
	"go_5_challenge_hub/internal/model"
)

// AccessResult is the access oracle's answer for one (user, resource) pair.
type AccessResult struct {
	HasAccess   bool              `json:"has_access"`
	AccessLevel model.AccessLevel `json:"access_level"`
}

// Charge is a platform charge opened for a user.
type Charge struct {
	ID          string `json:"id"`
	CheckoutURL string `json:"checkout_url"`
}

type ChargeRequest struct {
	WhopUserID  string            `json:"user_id"`
	AmountCents int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Metadata    map[string]string `json:"metadata"`
}

// Receipt is one settled payment as reported by the platform.
type Receipt struct {
	ID          string    `json:"id"`
	WhopUserID  string    `json:"user_id"`
	AmountCents int64     `json:"final_amount"`
	PaidAt      time.Time `json:"paid_at"`
}

type PushNotification struct {
	WhopUserID string `json:"user_id"`
	Title      string `json:"title"`
	Body       string `json:"body"`
}

// Client is the surface of the platform SDK this app relies on. It is a
// remote, possibly-failing collaborator; callers decide what a failure means.
type Client interface {
	VerifyUserToken(ctx context.Context, token string) (whopUserID string, err error)
	CheckCompanyAccess(ctx context.Context, whopUserID, companyID string) (*AccessResult, error)
	CheckExperienceAccess(ctx context.Context, whopUserID, experienceID string) (*AccessResult, error)
	CreateCharge(ctx context.Context, req ChargeRequest) (*Charge, error)
	ListReceipts(ctx context.Context, companyID string) ([]Receipt, error)
	SendPushNotification(ctx context.Context, n PushNotification) error
}

type apiClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient builds the real API client, or a stub when no API key is
// configured (local development).
func NewClient(cfg *config.Config) Client {
	if cfg.Whop.APIKey == "" {
		slog.Default().Warn("No Whop API key configured, using stub client")
		return &StubClient{}
	}
	return &apiClient{
		baseURL: cfg.Whop.APIBaseURL,
		apiKey:  cfg.Whop.APIKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *apiClient) VerifyUserToken(ctx context.Context, token string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v5/me", nil)
	if err != nil {
		return "", fmt.Errorf("whop.VerifyUserToken: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	var out struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, req, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c *apiClient) CheckCompanyAccess(ctx context.Context, whopUserID, companyID string) (*AccessResult, error) {
	return c.checkAccess(ctx, whopUserID, companyID)
}

func (c *apiClient) CheckExperienceAccess(ctx context.Context, whopUserID, experienceID string) (*AccessResult, error) {
	return c.checkAccess(ctx, whopUserID, experienceID)
}

func (c *apiClient) checkAccess(ctx context.Context, whopUserID, resourceID string) (*AccessResult, error) {
	body := map[string]string{"user_id": whopUserID, "resource_id": resourceID}
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/api/v5/app/access_checks", body)
	if err != nil {
		return nil, fmt.Errorf("whop.checkAccess: %w", err)
	}

	var out AccessResult
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *apiClient) CreateCharge(ctx context.Context, chargeReq ChargeRequest) (*Charge, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/api/v5/app/payments", chargeReq)
	if err != nil {
		return nil, fmt.Errorf("whop.CreateCharge: %w", err)
	}

	var out Charge
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *apiClient) ListReceipts(ctx context.Context, companyID string) ([]Receipt, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/v5/company/receipts?company_id="+companyID, nil)
	if err != nil {
		return nil, fmt.Errorf("whop.ListReceipts: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	var out struct {
		Data []Receipt `json:"data"`
	}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *apiClient) SendPushNotification(ctx context.Context, n PushNotification) error {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/api/v5/app/notifications", n)
	if err != nil {
		return fmt.Errorf("whop.SendPushNotification: %w", err)
	}
	return c.do(ctx, req, nil)
}

func (c *apiClient) newJSONRequest(ctx context.Context, method, path string, payload interface{}) (*http.Request, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *apiClient) do(ctx context.Context, req *http.Request, out interface{}) error {
	logger := middleware.GetLogger(ctx)

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Error("Whop API request failed", "method", req.Method, "url", req.URL.Path, "error", err)
		return fmt.Errorf("whop: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.Warn("Whop API returned non-2xx",
			"method", req.Method,
			"url", req.URL.Path,
			"status", resp.StatusCode,
		)
		return fmt.Errorf("whop: %s %s: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, string(body))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("whop: decode %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}
