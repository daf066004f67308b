// internal/service/challenge_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"go_5_challenge_hub/internal/config"
	"go_5_challenge_hub/internal/model"
	repomocks "go_5_challenge_hub/internal/repository/mocks"
	svcmocks "go_5_challenge_hub/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBChallenge() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func testChallengeConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.FreePlanMonthlyChallenges = 3
	return cfg
}

func testIdentity(tenantID, userID uuid.UUID, companyID string) *model.IdentityContext {
	return &model.IdentityContext{
		TenantID:      tenantID,
		UserID:        userID,
		WhopUserID:    "user_123",
		WhopCompanyID: companyID,
		Role:          model.ResolvedAdmin,
		AccessLevel:   model.AccessLevelAdmin,
		Capabilities:  model.CapabilitiesForRole(model.ResolvedAdmin),
	}
}

func Test_challengeService_CreateChallenge(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBChallenge()

	tenantID := uuid.New()
	userID := uuid.New()
	identity := testIdentity(tenantID, userID, "biz_ABC")

	validReq := &model.CreateChallengeRequest{
		Title:           "30 day shipping streak",
		StartsAt:        time.Now().Add(time.Hour),
		EndsAt:          time.Now().Add(30 * 24 * time.Hour),
		EntryFeeCents:   500,
		RewardPoolCents: 10000,
		MaxParticipants: 100,
	}

	proUntil := time.Now().Add(30 * 24 * time.Hour)

	tests := []struct {
		name      string
		setupMock func(challengeRepo *repomocks.ChallengeRepository, subRepo *repomocks.SubscriptionRepository)
		wantErr   error
		wantCode  string
	}{
		{
			name: "free plan under the cap creates and counts usage",
			setupMock: func(challengeRepo *repomocks.ChallengeRepository, subRepo *repomocks.SubscriptionRepository) {
				subRepo.On("FindByTenant", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
					Return(nil, model.ErrNotFound).Once()
				subRepo.On("FindUsage", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, mock.AnythingOfType("string")).
					Return(&model.MonthlyUsage{TenantID: tenantID, ChallengesCreated: 2}, nil).Once()
				challengeRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Challenge")).
					Run(func(args mock.Arguments) {
						created := args.Get(2).(*model.Challenge)
						assert.Equal(t, tenantID, created.TenantID)
						// The company id comes from the resolved tenant, never
						// from request input.
						require.NotNil(t, created.WhopCompanyID)
						assert.Equal(t, "biz_ABC", *created.WhopCompanyID)
						assert.Equal(t, model.ChallengeDraft, created.Status)
						assert.Equal(t, userID, created.CreatedByUserID)
						assert.NotEqual(t, uuid.Nil, created.ChallengeID)
					}).Return(nil).Once()
				subRepo.On("IncrementUsage", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, time.Now().UTC().Format("2006-01")).
					Return(nil).Once()
			},
		},
		{
			name: "free plan at the cap is rejected",
			setupMock: func(challengeRepo *repomocks.ChallengeRepository, subRepo *repomocks.SubscriptionRepository) {
				subRepo.On("FindByTenant", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
					Return(nil, model.ErrNotFound).Once()
				subRepo.On("FindUsage", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, mock.AnythingOfType("string")).
					Return(&model.MonthlyUsage{TenantID: tenantID, ChallengesCreated: 3}, nil).Once()
			},
			wantErr:  model.ErrForbidden,
			wantCode: "PLAN_LIMIT_REACHED",
		},
		{
			name: "active pro subscription is uncapped",
			setupMock: func(challengeRepo *repomocks.ChallengeRepository, subRepo *repomocks.SubscriptionRepository) {
				subRepo.On("FindByTenant", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
					Return(&model.WhopSubscription{TenantID: tenantID, Plan: model.PlanPro, ValidUntil: &proUntil}, nil).Once()
				challengeRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Challenge")).
					Return(nil).Once()
				subRepo.On("IncrementUsage", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, mock.AnythingOfType("string")).
					Return(nil).Once()
			},
		},
		{
			name: "no usage row yet counts as zero",
			setupMock: func(challengeRepo *repomocks.ChallengeRepository, subRepo *repomocks.SubscriptionRepository) {
				subRepo.On("FindByTenant", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
					Return(nil, model.ErrNotFound).Once()
				subRepo.On("FindUsage", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, mock.AnythingOfType("string")).
					Return(nil, model.ErrNotFound).Once()
				challengeRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Challenge")).
					Return(nil).Once()
				subRepo.On("IncrementUsage", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, mock.AnythingOfType("string")).
					Return(nil).Once()
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			challengeRepo := new(repomocks.ChallengeRepository)
			enrollmentRepo := new(repomocks.EnrollmentRepository)
			paymentRepo := new(repomocks.PaymentRepository)
			subRepo := new(repomocks.SubscriptionRepository)
			userRepo := new(repomocks.UserRepository)
			notifier := new(svcmocks.NotificationService)
			tc.setupMock(challengeRepo, subRepo)

			svc := NewChallengeService(db, challengeRepo, enrollmentRepo, paymentRepo, subRepo, userRepo, notifier, testChallengeConfig())
			got, err := svc.CreateChallenge(ctx, identity, validReq)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				var appErr *model.AppError
				if assert.ErrorAs(t, err, &appErr) {
					assert.Equal(t, tc.wantCode, appErr.Detail.Code)
				}
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, validReq.Title, got.Title)
			}

			challengeRepo.AssertExpectations(t)
			subRepo.AssertExpectations(t)
		})
	}
}

func Test_challengeService_SelectWinners(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBChallenge()

	tenantID := uuid.New()
	userID := uuid.New()
	identity := testIdentity(tenantID, userID, "biz_ABC")
	challengeID := uuid.New()

	activeChallenge := func() *model.Challenge {
		companyID := "biz_ABC"
		return &model.Challenge{
			ChallengeID:     challengeID,
			TenantID:        tenantID,
			WhopCompanyID:   &companyID,
			Title:           "30 day shipping streak",
			Status:          model.ChallengeActive,
			RewardPoolCents: 10000,
			CreatedByUserID: userID,
		}
	}

	winnerA := uuid.New()
	winnerB := uuid.New()
	userA := uuid.New()
	userB := uuid.New()

	tests := []struct {
		name      string
		req       *model.SelectWinnersRequest
		setupMock func(challengeRepo *repomocks.ChallengeRepository, enrollmentRepo *repomocks.EnrollmentRepository, paymentRepo *repomocks.PaymentRepository, userRepo *repomocks.UserRepository, notifier *svcmocks.NotificationService)
		wantErr   error
		wantCode  string
	}{
		{
			name: "two winners split the pool evenly",
			req:  &model.SelectWinnersRequest{EnrollmentIDs: []uuid.UUID{winnerA, winnerB}},
			setupMock: func(challengeRepo *repomocks.ChallengeRepository, enrollmentRepo *repomocks.EnrollmentRepository, paymentRepo *repomocks.PaymentRepository, userRepo *repomocks.UserRepository, notifier *svcmocks.NotificationService) {
				challengeRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, "biz_ABC", challengeID).
					Return(activeChallenge(), nil).Once()
				enrollmentRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, winnerA).
					Return(&model.Enrollment{EnrollmentID: winnerA, TenantID: tenantID, ChallengeID: challengeID, UserID: userA, Status: model.EnrollmentActive}, nil).Once()
				enrollmentRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, winnerB).
					Return(&model.Enrollment{EnrollmentID: winnerB, TenantID: tenantID, ChallengeID: challengeID, UserID: userB, Status: model.EnrollmentActive}, nil).Once()
				enrollmentRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, winnerA,
					map[string]interface{}{"status": model.EnrollmentWinner, "reward_granted": true}).
					Return(nil).Once()
				enrollmentRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, winnerB,
					map[string]interface{}{"status": model.EnrollmentWinner, "reward_granted": true}).
					Return(nil).Once()
				paymentRepo.On("CreateRevenueShare", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.RevenueShare")).
					Run(func(args mock.Arguments) {
						share := args.Get(2).(*model.RevenueShare)
						assert.Equal(t, int64(5000), share.AmountCents)
						assert.Equal(t, "reward", share.Reason)
					}).Return(nil).Twice()
				challengeRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, "biz_ABC", challengeID,
					map[string]interface{}{"status": model.ChallengeCompleted}).
					Return(nil).Once()
				userRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, userA).
					Return(&model.User{UserID: userA, WhopUserID: "user_a"}, nil).Once()
				userRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, userB).
					Return(&model.User{UserID: userB, WhopUserID: "user_b"}, nil).Once()
				notifier.On("NotifyWinner", ctx, tenantID, "user_a", "30 day shipping streak").Once()
				notifier.On("NotifyWinner", ctx, tenantID, "user_b", "30 day shipping streak").Once()
			},
		},
		{
			name: "draft challenge cannot have winners",
			req:  &model.SelectWinnersRequest{EnrollmentIDs: []uuid.UUID{winnerA}},
			setupMock: func(challengeRepo *repomocks.ChallengeRepository, enrollmentRepo *repomocks.EnrollmentRepository, paymentRepo *repomocks.PaymentRepository, userRepo *repomocks.UserRepository, notifier *svcmocks.NotificationService) {
				draft := activeChallenge()
				draft.Status = model.ChallengeDraft
				challengeRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, "biz_ABC", challengeID).
					Return(draft, nil).Once()
			},
			wantErr:  model.ErrInvalidInput,
			wantCode: "CHALLENGE_NOT_STARTED",
		},
		{
			name: "enrollment of another challenge is rejected",
			req:  &model.SelectWinnersRequest{EnrollmentIDs: []uuid.UUID{winnerA}},
			setupMock: func(challengeRepo *repomocks.ChallengeRepository, enrollmentRepo *repomocks.EnrollmentRepository, paymentRepo *repomocks.PaymentRepository, userRepo *repomocks.UserRepository, notifier *svcmocks.NotificationService) {
				challengeRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, "biz_ABC", challengeID).
					Return(activeChallenge(), nil).Once()
				enrollmentRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, winnerA).
					Return(&model.Enrollment{EnrollmentID: winnerA, TenantID: tenantID, ChallengeID: uuid.New(), UserID: userA}, nil).Once()
			},
			wantErr:  model.ErrInvalidInput,
			wantCode: "ENROLLMENT_MISMATCH",
		},
		{
			name: "selecting the same winner twice does not double the payout",
			req:  &model.SelectWinnersRequest{EnrollmentIDs: []uuid.UUID{winnerA}},
			setupMock: func(challengeRepo *repomocks.ChallengeRepository, enrollmentRepo *repomocks.EnrollmentRepository, paymentRepo *repomocks.PaymentRepository, userRepo *repomocks.UserRepository, notifier *svcmocks.NotificationService) {
				challengeRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, "biz_ABC", challengeID).
					Return(activeChallenge(), nil).Once()
				enrollmentRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, winnerA).
					Return(&model.Enrollment{EnrollmentID: winnerA, TenantID: tenantID, ChallengeID: challengeID, UserID: userA, RewardGranted: true}, nil).Once()
			},
			wantErr: model.ErrConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			challengeRepo := new(repomocks.ChallengeRepository)
			enrollmentRepo := new(repomocks.EnrollmentRepository)
			paymentRepo := new(repomocks.PaymentRepository)
			subRepo := new(repomocks.SubscriptionRepository)
			userRepo := new(repomocks.UserRepository)
			notifier := new(svcmocks.NotificationService)
			tc.setupMock(challengeRepo, enrollmentRepo, paymentRepo, userRepo, notifier)

			svc := NewChallengeService(db, challengeRepo, enrollmentRepo, paymentRepo, subRepo, userRepo, notifier, testChallengeConfig())
			err := svc.SelectWinners(ctx, identity, challengeID, tc.req)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				if tc.wantCode != "" {
					var appErr *model.AppError
					if assert.ErrorAs(t, err, &appErr) {
						assert.Equal(t, tc.wantCode, appErr.Detail.Code)
					}
				}
			} else {
				require.NoError(t, err)
			}

			challengeRepo.AssertExpectations(t)
			enrollmentRepo.AssertExpectations(t)
			paymentRepo.AssertExpectations(t)
			notifier.AssertExpectations(t)
		})
	}
}
