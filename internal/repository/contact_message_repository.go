package repository

import (
	"context"

	"app/internal/domain/model"
)

type ContactMessageRepository interface {
	Create(ctx context.Context, m model.ContactMessage) error
	//新しい順
	ListAll(ctx context.Context) ([]model.ContactMessage, error)
	DeleteByID(ctx context.Context, id int64) error
}
