package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 香水の永続化（保存・取得）だけを約束。
type PerfumeRepository interface {
	//公開中（is_active=true）を新しい順で返す
	ListActive(ctx context.Context) ([]model.Perfume, error)
	//管理画面用。非公開も含め新しい順で返す
	ListAll(ctx context.Context) ([]model.Perfume, error)
	FindByID(ctx context.Context, id int64) (model.Perfume, error)

	Create(ctx context.Context, p model.Perfume) (model.Perfume, error)
	Update(ctx context.Context, p model.Perfume) error
	SetActive(ctx context.Context, id int64, isActive bool) error
	SoftDelete(ctx context.Context, id int64) error
}
