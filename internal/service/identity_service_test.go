// internal/service/identity_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"go_5_challenge_hub/internal/config"
	"go_5_challenge_hub/internal/model"
	repomocks "go_5_challenge_hub/internal/repository/mocks"
	whopmocks "go_5_challenge_hub/internal/whop/mocks"

	"go_5_challenge_hub/internal/whop"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBIdentity() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func testIdentityConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Whop.Domain = "whop.com"
	return cfg
}

func Test_identityService_Resolve(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBIdentity()

	companyID := "biz_ABC"
	tenantID := uuid.New()
	userID := uuid.New()
	tenant := &model.Tenant{TenantID: tenantID, Name: companyID, WhopCompanyID: &companyID}
	memberUser := func() *model.User {
		return &model.User{
			UserID:        userID,
			TenantID:      tenantID,
			WhopUserID:    "user_123",
			WhopCompanyID: &companyID,
			Role:          model.RoleMember,
		}
	}

	ext := model.ExtractedIdentity{UserID: "user_123", CompanyID: companyID}

	tests := []struct {
		name      string
		ext       model.ExtractedIdentity
		setupMock func(tenantRepo *repomocks.TenantRepository, userRepo *repomocks.UserRepository, whopClient *whopmocks.Client)
		wantErr   error
		wantRole  model.ResolvedRole
	}{
		{
			name: "existing tenant and member, company oracle says customer",
			ext:  ext,
			setupMock: func(tenantRepo *repomocks.TenantRepository, userRepo *repomocks.UserRepository, whopClient *whopmocks.Client) {
				tenantRepo.On("FindByCompanyID", ctx, mock.AnythingOfType("*gorm.DB"), companyID).
					Return(tenant, nil).Once()
				userRepo.On("FindByWhopUserID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, "user_123").
					Return(memberUser(), nil).Once()
				whopClient.On("CheckCompanyAccess", ctx, "user_123", companyID).
					Return(&whop.AccessResult{HasAccess: true, AccessLevel: model.AccessLevelCustomer}, nil).Once()
			},
			wantRole: model.ResolvedMember,
		},
		{
			name: "company oracle says admin, role is persisted",
			ext:  ext,
			setupMock: func(tenantRepo *repomocks.TenantRepository, userRepo *repomocks.UserRepository, whopClient *whopmocks.Client) {
				tenantRepo.On("FindByCompanyID", ctx, mock.AnythingOfType("*gorm.DB"), companyID).
					Return(tenant, nil).Once()
				userRepo.On("FindByWhopUserID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, "user_123").
					Return(memberUser(), nil).Once()
				whopClient.On("CheckCompanyAccess", ctx, "user_123", companyID).
					Return(&whop.AccessResult{HasAccess: true, AccessLevel: model.AccessLevelAdmin}, nil).Once()
				userRepo.On("UpdateRole", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, userID, model.RoleAdmin).
					Return(nil).Once()
			},
			wantRole: model.ResolvedAdmin,
		},
		{
			name: "locally stored admin flag skips the oracle",
			ext:  ext,
			setupMock: func(tenantRepo *repomocks.TenantRepository, userRepo *repomocks.UserRepository, whopClient *whopmocks.Client) {
				admin := memberUser()
				admin.Role = model.RoleAdmin
				tenantRepo.On("FindByCompanyID", ctx, mock.AnythingOfType("*gorm.DB"), companyID).
					Return(tenant, nil).Once()
				userRepo.On("FindByWhopUserID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, "user_123").
					Return(admin, nil).Once()
				// No CheckCompanyAccess / CheckExperienceAccess expectations.
			},
			wantRole: model.ResolvedAdmin,
		},
		{
			name: "experience check answers without company check",
			ext:  model.ExtractedIdentity{UserID: "user_123", CompanyID: companyID, ExperienceID: "exp_9"},
			setupMock: func(tenantRepo *repomocks.TenantRepository, userRepo *repomocks.UserRepository, whopClient *whopmocks.Client) {
				tenantRepo.On("FindByCompanyID", ctx, mock.AnythingOfType("*gorm.DB"), companyID).
					Return(tenant, nil).Once()
				userRepo.On("FindByWhopUserID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, "user_123").
					Return(memberUser(), nil).Once()
				whopClient.On("CheckExperienceAccess", ctx, "user_123", "exp_9").
					Return(&whop.AccessResult{HasAccess: true, AccessLevel: model.AccessLevelCustomer}, nil).Once()
			},
			wantRole: model.ResolvedMember,
		},
		{
			name: "experience check failure falls through to company check",
			ext:  model.ExtractedIdentity{UserID: "user_123", CompanyID: companyID, ExperienceID: "exp_9"},
			setupMock: func(tenantRepo *repomocks.TenantRepository, userRepo *repomocks.UserRepository, whopClient *whopmocks.Client) {
				tenantRepo.On("FindByCompanyID", ctx, mock.AnythingOfType("*gorm.DB"), companyID).
					Return(tenant, nil).Once()
				userRepo.On("FindByWhopUserID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, "user_123").
					Return(memberUser(), nil).Once()
				whopClient.On("CheckExperienceAccess", ctx, "user_123", "exp_9").
					Return(nil, errors.New("experience oracle down")).Once()
				whopClient.On("CheckCompanyAccess", ctx, "user_123", companyID).
					Return(&whop.AccessResult{HasAccess: true, AccessLevel: model.AccessLevelCustomer}, nil).Once()
			},
			wantRole: model.ResolvedMember,
		},
		{
			name: "oracle down with dashboard referer degrades to admin",
			ext: model.ExtractedIdentity{
				UserID:    "user_123",
				CompanyID: companyID,
				Referer:   "https://whop.com/dashboard/biz_ABC/apps/",
			},
			setupMock: func(tenantRepo *repomocks.TenantRepository, userRepo *repomocks.UserRepository, whopClient *whopmocks.Client) {
				tenantRepo.On("FindByCompanyID", ctx, mock.AnythingOfType("*gorm.DB"), companyID).
					Return(tenant, nil).Once()
				userRepo.On("FindByWhopUserID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, "user_123").
					Return(memberUser(), nil).Once()
				whopClient.On("CheckCompanyAccess", ctx, "user_123", companyID).
					Return(nil, errors.New("oracle down")).Once()
				userRepo.On("UpdateRole", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, userID, model.RoleAdmin).
					Return(nil).Once()
			},
			wantRole: model.ResolvedAdmin,
		},
		{
			name: "oracle down without dashboard referer degrades to guest",
			ext:  model.ExtractedIdentity{UserID: "user_123", CompanyID: companyID, Referer: "https://example.com/"},
			setupMock: func(tenantRepo *repomocks.TenantRepository, userRepo *repomocks.UserRepository, whopClient *whopmocks.Client) {
				tenantRepo.On("FindByCompanyID", ctx, mock.AnythingOfType("*gorm.DB"), companyID).
					Return(tenant, nil).Once()
				userRepo.On("FindByWhopUserID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, "user_123").
					Return(memberUser(), nil).Once()
				whopClient.On("CheckCompanyAccess", ctx, "user_123", companyID).
					Return(nil, errors.New("oracle down")).Once()
				// Guests are never written back.
			},
			wantRole: model.ResolvedGuest,
		},
		{
			name: "no access answer means guest",
			ext:  ext,
			setupMock: func(tenantRepo *repomocks.TenantRepository, userRepo *repomocks.UserRepository, whopClient *whopmocks.Client) {
				tenantRepo.On("FindByCompanyID", ctx, mock.AnythingOfType("*gorm.DB"), companyID).
					Return(tenant, nil).Once()
				userRepo.On("FindByWhopUserID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, "user_123").
					Return(memberUser(), nil).Once()
				whopClient.On("CheckCompanyAccess", ctx, "user_123", companyID).
					Return(&whop.AccessResult{HasAccess: false, AccessLevel: model.AccessLevelNone}, nil).Once()
			},
			wantRole: model.ResolvedGuest,
		},
		{
			name: "unseen tenant is provisioned on first contact",
			ext:  ext,
			setupMock: func(tenantRepo *repomocks.TenantRepository, userRepo *repomocks.UserRepository, whopClient *whopmocks.Client) {
				tenantRepo.On("FindByCompanyID", ctx, mock.AnythingOfType("*gorm.DB"), companyID).
					Return(nil, model.ErrNotFound).Once()
				tenantRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Tenant")).
					Run(func(args mock.Arguments) {
						created := args.Get(2).(*model.Tenant)
						assert.Equal(t, companyID, created.Name)
						require.NotNil(t, created.WhopCompanyID)
						assert.Equal(t, companyID, *created.WhopCompanyID)
					}).Return(nil).Once()
				userRepo.On("FindByWhopUserID", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("uuid.UUID"), "user_123").
					Return(nil, model.ErrNotFound).Once()
				userRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.User")).
					Run(func(args mock.Arguments) {
						created := args.Get(2).(*model.User)
						assert.Equal(t, model.RoleMember, created.Role)
						require.NotNil(t, created.WhopCompanyID)
						assert.Equal(t, companyID, *created.WhopCompanyID)
					}).Return(nil).Once()
				whopClient.On("CheckCompanyAccess", ctx, "user_123", companyID).
					Return(&whop.AccessResult{HasAccess: true, AccessLevel: model.AccessLevelCustomer}, nil).Once()
			},
			wantRole: model.ResolvedMember,
		},
		{
			name: "lost provisioning race re-queries the winner row",
			ext:  ext,
			setupMock: func(tenantRepo *repomocks.TenantRepository, userRepo *repomocks.UserRepository, whopClient *whopmocks.Client) {
				tenantRepo.On("FindByCompanyID", ctx, mock.AnythingOfType("*gorm.DB"), companyID).
					Return(nil, model.ErrNotFound).Once()
				tenantRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Tenant")).
					Return(model.ErrConflict).Once()
				tenantRepo.On("FindByCompanyID", ctx, mock.AnythingOfType("*gorm.DB"), companyID).
					Return(tenant, nil).Once()
				userRepo.On("FindByWhopUserID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, "user_123").
					Return(nil, model.ErrNotFound).Once()
				userRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.User")).
					Return(model.ErrConflict).Once()
				userRepo.On("FindByWhopUserID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, "user_123").
					Return(memberUser(), nil).Once()
				whopClient.On("CheckCompanyAccess", ctx, "user_123", companyID).
					Return(&whop.AccessResult{HasAccess: true, AccessLevel: model.AccessLevelCustomer}, nil).Once()
			},
			wantRole: model.ResolvedMember,
		},
		{
			name: "token verification failure is unauthenticated",
			ext:  model.ExtractedIdentity{CompanyID: companyID, UserToken: "bad-token"},
			setupMock: func(tenantRepo *repomocks.TenantRepository, userRepo *repomocks.UserRepository, whopClient *whopmocks.Client) {
				whopClient.On("VerifyUserToken", ctx, "bad-token").
					Return("", errors.New("invalid token")).Once()
			},
			wantErr: model.ErrUnauthorized,
		},
		{
			name: "user id from verified token",
			ext:  model.ExtractedIdentity{CompanyID: companyID, UserToken: "good-token"},
			setupMock: func(tenantRepo *repomocks.TenantRepository, userRepo *repomocks.UserRepository, whopClient *whopmocks.Client) {
				whopClient.On("VerifyUserToken", ctx, "good-token").
					Return("user_123", nil).Once()
				tenantRepo.On("FindByCompanyID", ctx, mock.AnythingOfType("*gorm.DB"), companyID).
					Return(tenant, nil).Once()
				userRepo.On("FindByWhopUserID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, "user_123").
					Return(memberUser(), nil).Once()
				whopClient.On("CheckCompanyAccess", ctx, "user_123", companyID).
					Return(&whop.AccessResult{HasAccess: true, AccessLevel: model.AccessLevelCustomer}, nil).Once()
			},
			wantRole: model.ResolvedMember,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tenantRepo := new(repomocks.TenantRepository)
			userRepo := new(repomocks.UserRepository)
			whopClient := new(whopmocks.Client)
			tc.setupMock(tenantRepo, userRepo, whopClient)

			svc := NewIdentityService(db, tenantRepo, userRepo, whopClient, testIdentityConfig())
			got, err := svc.Resolve(ctx, tc.ext)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, tc.wantRole, got.Role)
				assert.Equal(t, companyID, got.WhopCompanyID)
				assert.Equal(t, "user_123", got.WhopUserID)
				assert.Equal(t, model.CapabilitiesForRole(tc.wantRole), got.Capabilities)
			}

			tenantRepo.AssertExpectations(t)
			userRepo.AssertExpectations(t)
			whopClient.AssertExpectations(t)
		})
	}
}
