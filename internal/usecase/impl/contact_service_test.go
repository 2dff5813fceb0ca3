package impl

import (
	"context"
	"strings"
	"testing"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/domain/service"
	mockRepo "portfolio/internal/mocks/repository"
	mockSvc "portfolio/internal/mocks/service"
	"portfolio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type contactServiceFixtures struct {
	service     usecase.ContactUsecase
	contactRepo *mockRepo.MockContactRepository
	publisher   *mockSvc.MockEventPublisher
	notifier    *mockSvc.MockNotificationService
	recorder    *mockSvc.MockActivityRecorder
}

func createTestContactService(t *testing.T) contactServiceFixtures {
	fx := contactServiceFixtures{
		contactRepo: mockRepo.NewMockContactRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		notifier:    mockSvc.NewMockNotificationService(t),
		recorder:    mockSvc.NewMockActivityRecorder(t),
	}
	fx.service = NewContactService(ContactServiceParams{
		ContactRepo: fx.contactRepo,
		Publisher:   fx.publisher,
		Notifier:    fx.notifier,
		Recorder:    fx.recorder,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func TestContactService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("stores, publishes and notifies", func(t *testing.T) {
		fx := createTestContactService(t)
		id := uuid.New()

		fx.contactRepo.EXPECT().Create(ctx, mock.Anything).RunAndReturn(func(_ context.Context, msg *entity.ContactMessage) error {
			msg.ID = id

			return nil
		})
		fx.recorder.EXPECT().ContactReceived(ctx).Return()
		fx.publisher.EXPECT().Publish(ctx, mock.MatchedBy(func(e *service.DomainEvent) bool {
			return e.Type == service.EventContactReceived && e.Attributes["message_id"] == id.String()
		})).Return(nil)
		fx.notifier.EXPECT().NotifyAdmins(ctx, "New contact message", "From Ada", mock.Anything).
			Return(errors.New("fcm unavailable"))

		msg, err := fx.service.Submit(ctx, &usecase.ContactInput{Name: "Ada", Email: "ADA@x.com", Message: "Hello"})
		require.NoError(t, err)
		assert.Equal(t, "ada@x.com", msg.Email)
		assert.False(t, msg.Read)
	})

	t.Run("required fields", func(t *testing.T) {
		fx := createTestContactService(t)

		_, err := fx.service.Submit(ctx, &usecase.ContactInput{Name: "Ada", Message: "Hello"})
		requireAppError(t, err, domainerrors.ErrValidationFailed, "Name, email, and message are required.")
	})

	t.Run("message length", func(t *testing.T) {
		fx := createTestContactService(t)

		_, err := fx.service.Submit(ctx, &usecase.ContactInput{
			Name:    "Ada",
			Email:   "ada@x.com",
			Message: strings.Repeat("m", entity.MaxContactMessageLength+1),
		})
		requireAppError(t, err, domainerrors.ErrValidationFailed, "Message cannot exceed 1000 characters")
	})
}

func TestContactService_MarkRead(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("marks", func(t *testing.T) {
		fx := createTestContactService(t)

		fx.contactRepo.EXPECT().MarkRead(ctx, id).Return(&entity.ContactMessage{ID: id, Read: true}, nil)

		msg, err := fx.service.MarkRead(ctx, id.String())
		require.NoError(t, err)
		assert.True(t, msg.Read)
	})

	t.Run("unknown", func(t *testing.T) {
		fx := createTestContactService(t)

		fx.contactRepo.EXPECT().MarkRead(ctx, id).Return(nil, repository.ErrContactMessageNotFound)

		_, err := fx.service.MarkRead(ctx, id.String())
		requireAppError(t, err, domainerrors.ErrNotFound, "Contact message not found")
	})

	t.Run("malformed id", func(t *testing.T) {
		fx := createTestContactService(t)

		_, err := fx.service.MarkRead(ctx, "xyz")
		requireAppError(t, err, domainerrors.ErrValidationFailed, "Invalid contact message ID")
	})
}
