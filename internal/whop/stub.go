package whop

import (
	"context"

	"go_5_challenge_hub/internal/middleware"
	"go_5_challenge_hub/internal/model"
)

// StubClient is the development client used when no API key is configured.
// It grants admin access to everything and logs instead of calling out.
type StubClient struct{}

func (s *StubClient) VerifyUserToken(ctx context.Context, token string) (string, error) {
	middleware.GetLogger(ctx).Debug("[STUB] VerifyUserToken", "token_len", len(token))
	return "user_stub", nil
}

func (s *StubClient) CheckCompanyAccess(ctx context.Context, whopUserID, companyID string) (*AccessResult, error) {
	middleware.GetLogger(ctx).Debug("[STUB] CheckCompanyAccess", "user", whopUserID, "company", companyID)
	return &AccessResult{HasAccess: true, AccessLevel: model.AccessLevelAdmin}, nil
}

func (s *StubClient) CheckExperienceAccess(ctx context.Context, whopUserID, experienceID string) (*AccessResult, error) {
	middleware.GetLogger(ctx).Debug("[STUB] CheckExperienceAccess", "user", whopUserID, "experience", experienceID)
	return &AccessResult{HasAccess: true, AccessLevel: model.AccessLevelAdmin}, nil
}

func (s *StubClient) CreateCharge(ctx context.Context, req ChargeRequest) (*Charge, error) {
	middleware.GetLogger(ctx).Info("[STUB] CreateCharge", "user", req.WhopUserID, "amount", req.AmountCents)
	return &Charge{ID: "ch_stub", CheckoutURL: "https://example.test/checkout/ch_stub"}, nil
}

func (s *StubClient) ListReceipts(ctx context.Context, companyID string) ([]Receipt, error) {
	middleware.GetLogger(ctx).Debug("[STUB] ListReceipts", "company", companyID)
	return nil, nil
}

func (s *StubClient) SendPushNotification(ctx context.Context, n PushNotification) error {
	middleware.GetLogger(ctx).Info("[STUB] SendPushNotification", "user", n.WhopUserID, "title", n.Title)
	return nil
}
