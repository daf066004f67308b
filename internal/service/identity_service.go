//go:generate mockery --name IdentityService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"strings"

	"go_5_challenge_hub/internal/config"
	"go_5_challenge_hub/internal/middleware"
	"go_5_challenge_hub/internal/model"
	"go_5_challenge_hub/internal/repository"
	"go_5_challenge_hub/internal/whop"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IdentityService resolves an extracted request identity into a tenant and a
// role. It satisfies middleware.IdentityResolver.
type IdentityService interface {
	Resolve(ctx context.Context, ext model.ExtractedIdentity) (*model.IdentityContext, error)
}

type identityService struct {
	db         *gorm.DB
	tenantRepo repository.TenantRepository
	userRepo   repository.UserRepository
	whopClient whop.Client
	cfg        *config.Config
}

func NewIdentityService(db *gorm.DB, tenantRepo repository.TenantRepository, userRepo repository.UserRepository, whopClient whop.Client, cfg *config.Config) IdentityService {
	return &identityService{
		db:         db,
		tenantRepo: tenantRepo,
		userRepo:   userRepo,
		whopClient: whopClient,
		cfg:        cfg,
	}
}

func (s *identityService) Resolve(ctx context.Context, ext model.ExtractedIdentity) (*model.IdentityContext, error) {
	logger := middleware.GetLogger(ctx)

	whopUserID := ext.UserID
	if whopUserID == "" {
		// No explicit user id header; the token is the remaining source.
		id, err := s.whopClient.VerifyUserToken(ctx, ext.UserToken)
		if err != nil {
			logger.Warn("User token verification failed", "error", err)
			return nil, model.NewAppError(
				"UNAUTHENTICATED",
				"The user token could not be verified.",
				"",
				model.ErrUnauthorized,
			)
		}
		whopUserID = id
	}

	tenant, err := s.ensureTenant(ctx, ext.CompanyID)
	if err != nil {
		return nil, err
	}

	user, err := s.ensureUser(ctx, tenant, whopUserID, ext.ExperienceID)
	if err != nil {
		return nil, err
	}

	role, accessLevel := s.deriveRole(ctx, user, ext)

	// The stored role flag follows the derived role so the local-admin fast
	// path works on the next request. Guests are never written back.
	if role == model.ResolvedAdmin && user.Role != model.RoleAdmin {
		if err := s.userRepo.UpdateRole(ctx, s.db, tenant.TenantID, user.UserID, model.RoleAdmin); err != nil {
			logger.Warn("Failed to persist admin role", "user_id", user.UserID.String(), "error", err)
		}
	} else if role == model.ResolvedMember && user.Role == model.RoleAdmin {
		if err := s.userRepo.UpdateRole(ctx, s.db, tenant.TenantID, user.UserID, model.RoleMember); err != nil {
			logger.Warn("Failed to persist member role", "user_id", user.UserID.String(), "error", err)
		}
	}

	companyID := ""
	if tenant.WhopCompanyID != nil {
		companyID = *tenant.WhopCompanyID
	}

	return &model.IdentityContext{
		TenantID:         tenant.TenantID,
		UserID:           user.UserID,
		WhopUserID:       whopUserID,
		WhopCompanyID:    companyID,
		WhopExperienceID: ext.ExperienceID,
		Role:             role,
		AccessLevel:      accessLevel,
		Capabilities:     model.CapabilitiesForRole(role),
	}, nil
}

// ensureTenant finds the tenant for a company id, creating it on first
// contact. A create that loses the race against a concurrent first request
// surfaces as ErrConflict; the winner's row is then re-queried.
func (s *identityService) ensureTenant(ctx context.Context, companyID string) (*model.Tenant, error) {
	logger := middleware.GetLogger(ctx)

	tenant, err := s.tenantRepo.FindByCompanyID(ctx, s.db, companyID)
	if err == nil {
		return tenant, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, model.ErrInternalServer
	}

	newTenant := &model.Tenant{
		TenantID:      uuid.New(),
		Name:          companyID,
		WhopCompanyID: &companyID,
	}
	err = s.tenantRepo.Create(ctx, s.db, newTenant)
	if err == nil {
		logger.Info("Provisioned new tenant", "tenant_id", newTenant.TenantID.String(), "whop_company_id", companyID)
		return newTenant, nil
	}
	if errors.Is(err, model.ErrConflict) {
		tenant, err = s.tenantRepo.FindByCompanyID(ctx, s.db, companyID)
		if err != nil {
			logger.Error("Tenant vanished after conflict on create", "whop_company_id", companyID, "error", err)
			return nil, model.ErrInternalServer
		}
		return tenant, nil
	}

	logger.Error("Failed to provision tenant", "whop_company_id", companyID, "error", err)
	return nil, model.ErrInternalServer
}

// ensureUser finds or creates the user row inside the tenant. The same
// conflict/re-query dance as for tenants covers concurrent first requests of
// one user.
func (s *identityService) ensureUser(ctx context.Context, tenant *model.Tenant, whopUserID, experienceID string) (*model.User, error) {
	logger := middleware.GetLogger(ctx)

	user, err := s.userRepo.FindByWhopUserID(ctx, s.db, tenant.TenantID, whopUserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, model.ErrInternalServer
	}

	newUser := &model.User{
		UserID:        uuid.New(),
		TenantID:      tenant.TenantID,
		WhopUserID:    whopUserID,
		WhopCompanyID: tenant.WhopCompanyID,
		Role:          model.RoleMember,
	}
	if experienceID != "" {
		newUser.WhopExperienceID = &experienceID
	}
	err = s.userRepo.Create(ctx, s.db, newUser)
	if err == nil {
		return newUser, nil
	}
	if errors.Is(err, model.ErrConflict) {
		user, err = s.userRepo.FindByWhopUserID(ctx, s.db, tenant.TenantID, whopUserID)
		if err != nil {
			logger.Error("User vanished after conflict on create", "whop_user_id", whopUserID, "error", err)
			return nil, model.ErrInternalServer
		}
		return user, nil
	}

	logger.Error("Failed to create user", "whop_user_id", whopUserID, "error", err)
	return nil, model.ErrInternalServer
}

// deriveRole decides the request role. Order matters: a locally stored admin
// flag short-circuits the oracle entirely, then the experience check runs
// before the company check, and an oracle outage degrades to admin only for
// requests that demonstrably come from the platform dashboard.
func (s *identityService) deriveRole(ctx context.Context, user *model.User, ext model.ExtractedIdentity) (model.ResolvedRole, model.AccessLevel) {
	logger := middleware.GetLogger(ctx)

	if user.Role == model.RoleAdmin {
		return model.ResolvedAdmin, model.AccessLevelAdmin
	}

	var (
		result    *whop.AccessResult
		oracleErr error
	)
	if ext.ExperienceID != "" {
		result, oracleErr = s.whopClient.CheckExperienceAccess(ctx, user.WhopUserID, ext.ExperienceID)
	}
	if result == nil {
		// No experience to check, or the experience check failed; the
		// company check is the second opinion either way.
		result, oracleErr = s.whopClient.CheckCompanyAccess(ctx, user.WhopUserID, ext.CompanyID)
	}

	if oracleErr != nil {
		// Oracle down. A request whose referer is the platform dashboard is
		// assumed to be the installing creator; everyone else is a guest.
		if strings.Contains(ext.Referer, s.cfg.Whop.Domain) {
			logger.Warn("Access oracle unavailable, granting admin from dashboard referer",
				"whop_user_id", user.WhopUserID,
				"error", oracleErr,
			)
			return model.ResolvedAdmin, model.AccessLevelAdmin
		}
		logger.Warn("Access oracle unavailable, treating user as guest",
			"whop_user_id", user.WhopUserID,
			"error", oracleErr,
		)
		return model.ResolvedGuest, model.AccessLevelNone
	}

	if !result.HasAccess {
		return model.ResolvedGuest, model.AccessLevelNone
	}
	switch result.AccessLevel {
	case model.AccessLevelAdmin:
		return model.ResolvedAdmin, model.AccessLevelAdmin
	case model.AccessLevelCustomer:
		return model.ResolvedMember, model.AccessLevelCustomer
	default:
		return model.ResolvedGuest, model.AccessLevelNone
	}
}
