// internal/service/payment_service_test.go
package service

import (
	"context"
	"testing"

	"go_5_challenge_hub/internal/model"
	repomocks "go_5_challenge_hub/internal/repository/mocks"
	svcmocks "go_5_challenge_hub/internal/service/mocks"
	"go_5_challenge_hub/internal/whop"
	whopmocks "go_5_challenge_hub/internal/whop/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBPayment() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

type paymentMocks struct {
	tenantRepo     *repomocks.TenantRepository
	challengeRepo  *repomocks.ChallengeRepository
	enrollmentRepo *repomocks.EnrollmentRepository
	paymentRepo    *repomocks.PaymentRepository
	whopClient     *whopmocks.Client
	notifier       *svcmocks.NotificationService
}

func newPaymentMocks() *paymentMocks {
	return &paymentMocks{
		tenantRepo:     new(repomocks.TenantRepository),
		challengeRepo:  new(repomocks.ChallengeRepository),
		enrollmentRepo: new(repomocks.EnrollmentRepository),
		paymentRepo:    new(repomocks.PaymentRepository),
		whopClient:     new(whopmocks.Client),
		notifier:       new(svcmocks.NotificationService),
	}
}

func (m *paymentMocks) assertExpectations(t *testing.T) {
	m.tenantRepo.AssertExpectations(t)
	m.challengeRepo.AssertExpectations(t)
	m.enrollmentRepo.AssertExpectations(t)
	m.paymentRepo.AssertExpectations(t)
	m.whopClient.AssertExpectations(t)
	m.notifier.AssertExpectations(t)
}

func Test_paymentService_CreateCharge(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBPayment()

	tenantID := uuid.New()
	userID := uuid.New()
	challengeID := uuid.New()
	companyID := "biz_ABC"
	identity := &model.IdentityContext{
		TenantID:      tenantID,
		UserID:        userID,
		WhopUserID:    "user_123",
		WhopCompanyID: companyID,
		Role:          model.ResolvedMember,
		Capabilities:  model.CapabilitiesForRole(model.ResolvedMember),
	}
	req := &model.CreateChargeRequest{ChallengeID: challengeID}

	paidChallenge := func() *model.Challenge {
		return &model.Challenge{
			ChallengeID:   challengeID,
			TenantID:      tenantID,
			WhopCompanyID: &companyID,
			Title:         "30 day shipping streak",
			Status:        model.ChallengeActive,
			EntryFeeCents: 500,
		}
	}

	tests := []struct {
		name      string
		setupMock func(m *paymentMocks)
		wantErr   error
		wantCode  string
	}{
		{
			name: "charge opened and pending payment booked",
			setupMock: func(m *paymentMocks) {
				m.challengeRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, companyID, challengeID).
					Return(paidChallenge(), nil).Once()
				m.enrollmentRepo.On("FindByChallengeAndUser", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, challengeID, userID).
					Return(nil, model.ErrNotFound).Once()
				m.whopClient.On("CreateCharge", ctx, mock.MatchedBy(func(cr whop.ChargeRequest) bool {
					return cr.WhopUserID == "user_123" &&
						cr.AmountCents == 500 &&
						cr.Metadata["entityType"] == "challenge" &&
						cr.Metadata["challengeId"] == challengeID.String()
				})).Return(&whop.Charge{ID: "ch_1", CheckoutURL: "https://whop.com/checkout/ch_1"}, nil).Once()
				m.enrollmentRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Enrollment")).
					Run(func(args mock.Arguments) {
						e := args.Get(2).(*model.Enrollment)
						assert.Equal(t, model.EnrollmentPendingPayment, e.Status)
					}).Return(nil).Once()
				m.paymentRepo.On("CreatePending", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.PendingPayment")).
					Run(func(args mock.Arguments) {
						p := args.Get(2).(*model.PendingPayment)
						assert.Equal(t, "ch_1", p.WhopChargeID)
						assert.Equal(t, int64(500), p.AmountCents)
						assert.Equal(t, model.PaymentPending, p.Status)
					}).Return(nil).Once()
			},
		},
		{
			name: "free challenge has nothing to charge",
			setupMock: func(m *paymentMocks) {
				free := paidChallenge()
				free.EntryFeeCents = 0
				m.challengeRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, companyID, challengeID).
					Return(free, nil).Once()
			},
			wantErr:  model.ErrInvalidInput,
			wantCode: "CHALLENGE_IS_FREE",
		},
		{
			name: "already active enrollment cannot be charged again",
			setupMock: func(m *paymentMocks) {
				m.challengeRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, companyID, challengeID).
					Return(paidChallenge(), nil).Once()
				m.enrollmentRepo.On("FindByChallengeAndUser", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, challengeID, userID).
					Return(&model.Enrollment{EnrollmentID: uuid.New(), Status: model.EnrollmentActive}, nil).Once()
			},
			wantErr: model.ErrConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newPaymentMocks()
			tc.setupMock(m)

			svc := NewPaymentService(db, m.tenantRepo, m.challengeRepo, m.enrollmentRepo, m.paymentRepo, m.whopClient, m.notifier)
			got, err := svc.CreateCharge(ctx, identity, req)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				if tc.wantCode != "" {
					var appErr *model.AppError
					if assert.ErrorAs(t, err, &appErr) {
						assert.Equal(t, tc.wantCode, appErr.Detail.Code)
					}
				}
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, "ch_1", got.ChargeID)
				assert.Equal(t, "https://whop.com/checkout/ch_1", got.CheckoutURL)
				assert.Equal(t, int64(500), got.AmountCents)
			}

			m.assertExpectations(t)
		})
	}
}

func Test_paymentService_HandlePaymentSucceeded(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBPayment()

	tenantID := uuid.New()
	userID := uuid.New()
	challengeID := uuid.New()
	creatorID := uuid.New()
	enrollmentID := uuid.New()
	companyID := "biz_ABC"
	chargeID := "ch_1"

	payload := func() *model.PaymentWebhookPayload {
		return &model.PaymentWebhookPayload{
			Action: "payment.succeeded",
			Data: model.PaymentWebhookData{
				ID:          chargeID,
				FinalAmount: 5.00,
				UserID:      "user_123",
				Metadata:    model.PaymentWebhookMetadata{EntityType: "challenge", ChallengeID: challengeID.String()},
			},
		}
	}

	pending := func() *model.PendingPayment {
		return &model.PendingPayment{
			PaymentID:    uuid.New(),
			TenantID:     tenantID,
			WhopChargeID: chargeID,
			UserID:       userID,
			ChallengeID:  challengeID,
			AmountCents:  500,
			Status:       model.PaymentPending,
		}
	}

	tenant := &model.Tenant{TenantID: tenantID, Name: companyID, WhopCompanyID: &companyID}
	challenge := &model.Challenge{
		ChallengeID:     challengeID,
		TenantID:        tenantID,
		WhopCompanyID:   &companyID,
		Title:           "30 day shipping streak",
		Status:          model.ChallengeActive,
		EntryFeeCents:   500,
		CreatedByUserID: creatorID,
	}

	// expectSettlement wires the happy-path transaction expectations with the
	// given settled amount.
	expectSettlement := func(m *paymentMocks, p *model.PendingPayment, wantCents int64) {
		m.tenantRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
			Return(tenant, nil).Once()
		m.challengeRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, companyID, challengeID).
			Return(challenge, nil).Once()
		m.paymentRepo.On("CreateCompleted", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.CompletedPayment")).
			Run(func(args mock.Arguments) {
				completed := args.Get(2).(*model.CompletedPayment)
				assert.Equal(t, chargeID, completed.WhopChargeID)
				assert.Equal(t, wantCents, completed.AmountCents)
				assert.Equal(t, "user_123", completed.WhopUserID)
			}).Return(nil).Once()
		m.paymentRepo.On("UpdatePendingStatus", ctx, mock.AnythingOfType("*gorm.DB"), p.PaymentID, model.PaymentCompleted).
			Return(nil).Once()
		m.enrollmentRepo.On("FindByChallengeAndUser", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, challengeID, userID).
			Return(&model.Enrollment{EnrollmentID: enrollmentID, TenantID: tenantID, ChallengeID: challengeID, UserID: userID, Status: model.EnrollmentPendingPayment}, nil).Once()
		m.enrollmentRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, enrollmentID,
			map[string]interface{}{"status": model.EnrollmentActive}).
			Return(nil).Once()
		m.paymentRepo.On("CreateRevenueShare", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.RevenueShare")).
			Run(func(args mock.Arguments) {
				share := args.Get(2).(*model.RevenueShare)
				assert.Equal(t, creatorID, share.UserID)
				assert.Equal(t, wantCents, share.AmountCents)
				assert.Equal(t, "entry_fee", share.Reason)
			}).Return(nil).Once()
		m.notifier.On("NotifyPayment", ctx, tenantID, challenge.Title, wantCents).Once()
		m.notifier.On("NotifyEnrollment", ctx, tenantID, "user_123", challenge.Title).Once()
	}

	tests := []struct {
		name      string
		payload   *model.PaymentWebhookPayload
		setupMock func(m *paymentMocks)
		wantErr   error
	}{
		{
			name:    "settles the pending payment and activates the enrollment",
			payload: payload(),
			setupMock: func(m *paymentMocks) {
				p := pending()
				m.paymentRepo.On("FindCompletedByChargeID", ctx, mock.AnythingOfType("*gorm.DB"), chargeID).
					Return(nil, model.ErrNotFound).Once()
				m.paymentRepo.On("FindPendingByChargeID", ctx, mock.AnythingOfType("*gorm.DB"), chargeID).
					Return(p, nil).Once()
				expectSettlement(m, p, 500)
			},
		},
		{
			name: "discounted settlement overrides the opened amount",
			payload: func() *model.PaymentWebhookPayload {
				pl := payload()
				pl.Data.FinalAmount = 4.00
				return pl
			}(),
			setupMock: func(m *paymentMocks) {
				p := pending()
				m.paymentRepo.On("FindCompletedByChargeID", ctx, mock.AnythingOfType("*gorm.DB"), chargeID).
					Return(nil, model.ErrNotFound).Once()
				m.paymentRepo.On("FindPendingByChargeID", ctx, mock.AnythingOfType("*gorm.DB"), chargeID).
					Return(p, nil).Once()
				expectSettlement(m, p, 400)
			},
		},
		{
			name:    "redelivered webhook is a no-op",
			payload: payload(),
			setupMock: func(m *paymentMocks) {
				m.paymentRepo.On("FindCompletedByChargeID", ctx, mock.AnythingOfType("*gorm.DB"), chargeID).
					Return(&model.CompletedPayment{WhopChargeID: chargeID}, nil).Once()
			},
		},
		{
			name:    "concurrent delivery losing the insert race is a no-op",
			payload: payload(),
			setupMock: func(m *paymentMocks) {
				p := pending()
				m.paymentRepo.On("FindCompletedByChargeID", ctx, mock.AnythingOfType("*gorm.DB"), chargeID).
					Return(nil, model.ErrNotFound).Once()
				m.paymentRepo.On("FindPendingByChargeID", ctx, mock.AnythingOfType("*gorm.DB"), chargeID).
					Return(p, nil).Once()
				m.tenantRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
					Return(tenant, nil).Once()
				m.challengeRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, companyID, challengeID).
					Return(challenge, nil).Once()
				m.paymentRepo.On("CreateCompleted", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.CompletedPayment")).
					Return(model.ErrConflict).Once()
			},
		},
		{
			name:    "unknown charge is acknowledged without writes",
			payload: payload(),
			setupMock: func(m *paymentMocks) {
				m.paymentRepo.On("FindCompletedByChargeID", ctx, mock.AnythingOfType("*gorm.DB"), chargeID).
					Return(nil, model.ErrNotFound).Once()
				m.paymentRepo.On("FindPendingByChargeID", ctx, mock.AnythingOfType("*gorm.DB"), chargeID).
					Return(nil, model.ErrNotFound).Once()
			},
		},
		{
			name: "foreign actions are ignored",
			payload: &model.PaymentWebhookPayload{
				Action: "membership.went_valid",
				Data:   model.PaymentWebhookData{ID: chargeID},
			},
			setupMock: func(m *paymentMocks) {},
		},
		{
			name: "foreign entity types are ignored",
			payload: &model.PaymentWebhookPayload{
				Action: "payment.succeeded",
				Data: model.PaymentWebhookData{
					ID:       chargeID,
					Metadata: model.PaymentWebhookMetadata{EntityType: "subscription"},
				},
			},
			setupMock: func(m *paymentMocks) {},
		},
		{
			name: "missing charge id is invalid",
			payload: &model.PaymentWebhookPayload{
				Action: "payment.succeeded",
				Data: model.PaymentWebhookData{
					Metadata: model.PaymentWebhookMetadata{EntityType: "challenge"},
				},
			},
			setupMock: func(m *paymentMocks) {},
			wantErr:   model.ErrInvalidInput,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newPaymentMocks()
			tc.setupMock(m)

			svc := NewPaymentService(db, m.tenantRepo, m.challengeRepo, m.enrollmentRepo, m.paymentRepo, m.whopClient, m.notifier)
			err := svc.HandlePaymentSucceeded(ctx, tc.payload)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}

			m.assertExpectations(t)
		})
	}
}
