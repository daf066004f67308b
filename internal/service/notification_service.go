//go:generate mockery --name NotificationService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"fmt"

	"go_5_challenge_hub/internal/config"
	"go_5_challenge_hub/internal/middleware"
	"go_5_challenge_hub/internal/model"
	"go_5_challenge_hub/internal/repository"
	"go_5_challenge_hub/internal/whop"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationService fans one event out to the in-app feed, the platform
// push channel and the operator mailbox. Delivery is best effort: a failed
// push or mail is logged and dropped, it never fails the triggering request.
type NotificationService interface {
	NotifyEnrollment(ctx context.Context, tenantID uuid.UUID, whopUserID, challengeTitle string)
	NotifyWinner(ctx context.Context, tenantID uuid.UUID, whopUserID, challengeTitle string)
	NotifyPayment(ctx context.Context, tenantID uuid.UUID, challengeTitle string, amountCents int64)
	List(ctx context.Context, tenantID uuid.UUID, limit int) ([]*model.InternalNotification, error)
	MarkRead(ctx context.Context, tenantID, notificationID uuid.UUID) error
}

type notificationService struct {
	db               *gorm.DB
	notificationRepo repository.NotificationRepository
	whopClient       whop.Client
	mailer           Mailer
	cfg              *config.Config
}

func NewNotificationService(db *gorm.DB, notificationRepo repository.NotificationRepository, whopClient whop.Client, mailer Mailer, cfg *config.Config) NotificationService {
	return &notificationService{
		db:               db,
		notificationRepo: notificationRepo,
		whopClient:       whopClient,
		mailer:           mailer,
		cfg:              cfg,
	}
}

func (s *notificationService) NotifyEnrollment(ctx context.Context, tenantID uuid.UUID, whopUserID, challengeTitle string) {
	subject := "New enrollment"
	body := fmt.Sprintf("A member joined the challenge %q.", challengeTitle)
	s.record(ctx, tenantID, model.NotificationEnrollment, subject, body)
	s.push(ctx, whopUserID, "You're in!", fmt.Sprintf("You joined %q. Good luck!", challengeTitle))
}

func (s *notificationService) NotifyWinner(ctx context.Context, tenantID uuid.UUID, whopUserID, challengeTitle string) {
	subject := "Winner selected"
	body := fmt.Sprintf("A winner was selected for the challenge %q.", challengeTitle)
	s.record(ctx, tenantID, model.NotificationWinnerSelected, subject, body)
	s.push(ctx, whopUserID, "You won!", fmt.Sprintf("You were selected as a winner of %q.", challengeTitle))
	s.mail(ctx, subject, body)
}

func (s *notificationService) NotifyPayment(ctx context.Context, tenantID uuid.UUID, challengeTitle string, amountCents int64) {
	subject := "Payment received"
	body := fmt.Sprintf("An entry fee of %d cents was paid for the challenge %q.", amountCents, challengeTitle)
	s.record(ctx, tenantID, model.NotificationPayment, subject, body)
	s.mail(ctx, subject, body)
}

func (s *notificationService) List(ctx context.Context, tenantID uuid.UUID, limit int) ([]*model.InternalNotification, error) {
	return s.notificationRepo.ListByTenant(ctx, s.db, tenantID, limit)
}

func (s *notificationService) MarkRead(ctx context.Context, tenantID, notificationID uuid.UUID) error {
	return s.notificationRepo.MarkRead(ctx, s.db, tenantID, notificationID)
}

func (s *notificationService) record(ctx context.Context, tenantID uuid.UUID, kind, subject, body string) {
	logger := middleware.GetLogger(ctx)
	n := &model.InternalNotification{
		NotificationID: uuid.New(),
		TenantID:       tenantID,
		Kind:           kind,
		Subject:        subject,
		Body:           body,
	}
	if err := s.notificationRepo.Create(ctx, s.db, n); err != nil {
		logger.Error("Failed to record internal notification", "kind", kind, "error", err)
	}
}

func (s *notificationService) push(ctx context.Context, whopUserID, title, body string) {
	logger := middleware.GetLogger(ctx)
	if whopUserID == "" {
		return
	}
	err := s.whopClient.SendPushNotification(ctx, whop.PushNotification{
		WhopUserID: whopUserID,
		Title:      title,
		Body:       body,
	})
	if err != nil {
		logger.Warn("Failed to send push notification", "whop_user_id", whopUserID, "error", err)
	}
}

func (s *notificationService) mail(ctx context.Context, subject, body string) {
	logger := middleware.GetLogger(ctx)
	if s.cfg.Mailer.From == "" {
		return
	}
	if err := s.mailer.Send(ctx, s.cfg.Mailer.From, subject, body); err != nil {
		logger.Warn("Failed to send notification mail", "subject", subject, "error", err)
	}
}
