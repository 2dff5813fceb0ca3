package database

import (
	"context"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/errors"
	"portfolio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a GORM-backed ContactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

func (repo *contactRepository) Create(ctx context.Context, msg *entity.ContactMessage) error {
	row := &model.ContactMessageModel{
		ID:      msg.ID,
		Name:    msg.Name,
		Email:   msg.Email,
		Message: msg.Message,
		Read:    msg.Read,
	}
	if row.ID == uuid.Nil {
		row.ID = newID()
	}

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store contact message")
	}

	msg.ID = row.ID
	msg.CreatedAt = row.CreatedAt
	msg.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *contactRepository) List(ctx context.Context) ([]*entity.ContactMessage, error) {
	var rows []*model.ContactMessageModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list contact messages")
	}

	messages := make([]*entity.ContactMessage, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, toContactDomain(row))
	}

	return messages, nil
}

func (repo *contactRepository) MarkRead(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ContactMessageModel{}).
		Where("id = ?", id).
		Update("read", true)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark contact message read")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrContactMessageNotFound
	}

	var row model.ContactMessageModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload contact message")
	}

	return toContactDomain(&row), nil
}

func toContactDomain(data *model.ContactMessageModel) *entity.ContactMessage {
	return &entity.ContactMessage{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Message:   data.Message,
		Read:      data.Read,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
