package repository

import (
	"context"

	"app/internal/domain/model"
)

type CommentRepository interface {
	Create(ctx context.Context, c model.Comment) error
	//新しい順でlimit件
	ListLatest(ctx context.Context, limit int) ([]model.Comment, error)
	//管理画面用。全件新しい順
	ListAll(ctx context.Context) ([]model.Comment, error)
	DeleteByID(ctx context.Context, id int64) error
}
