package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/domain/service"
	"portfolio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type contactService struct {
	contactRepo repository.ContactRepository
	publisher   service.EventPublisher
	notifier    service.NotificationService
	recorder    service.ActivityRecorder
	logger      *slog.Logger
}

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	ContactRepo repository.ContactRepository
	Publisher   service.EventPublisher
	Notifier    service.NotificationService
	Recorder    service.ActivityRecorder
	Logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		contactRepo: params.ContactRepo,
		publisher:   params.Publisher,
		notifier:    params.Notifier,
		recorder:    params.Recorder,
		logger:      params.Logger,
	}
}

func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *contactService) Submit(ctx context.Context, input *usecase.ContactInput) (*entity.ContactMessage, error) {
	msg := &entity.ContactMessage{
		Name:    strings.TrimSpace(input.Name),
		Email:   entity.NormalizeEmail(input.Email),
		Message: strings.TrimSpace(input.Message),
	}

	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Name, email, and message are required.")
	}
	if utf8.RuneCountInString(msg.Message) > entity.MaxContactMessageLength {
		return nil, domainerrors.ErrValidationFailed.WithMessagef("Message cannot exceed %d characters", entity.MaxContactMessageLength)
	}

	if err := srv.contactRepo.Create(ctx, msg); err != nil {
		return nil, errors.Wrap(err, "failed to save contact message")
	}

	srv.log(ctx).Info("Contact message received", slog.Any("messageID", msg.ID))
	srv.recorder.ContactReceived(ctx)

	attributes := map[string]string{
		"message_id": msg.ID.String(),
		"name":       msg.Name,
		"email":      msg.Email,
	}
	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventContactReceived, attributes)

	if err := srv.notifier.NotifyAdmins(ctx, "New contact message", "From "+msg.Name, attributes); err != nil {
		srv.log(ctx).Warn("Failed to notify admins", slog.Any("error", err))
	}

	return msg, nil
}

func (srv *contactService) List(ctx context.Context) ([]*entity.ContactMessage, error) {
	messages, err := srv.contactRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contact messages")
	}

	return messages, nil
}

func (srv *contactService) MarkRead(ctx context.Context, id string) (*entity.ContactMessage, error) {
	messageID, err := uuid.Parse(id)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Invalid contact message ID")
	}

	msg, err := srv.contactRepo.MarkRead(ctx, messageID)
	if err != nil {
		if errors.Is(err, repository.ErrContactMessageNotFound) {
			return nil, domainerrors.ErrNotFound.WithMessage("Contact message not found")
		}

		return nil, errors.Wrap(err, "failed to mark contact message read")
	}

	return msg, nil
}
