package repository

import (
	"app/internal/domain/model"
	"context"
)

// 管理ユーザーの保存・取得を約束
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	//メールからユーザーを一件取得する。無ければ(nil, nil)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	//最終ログイン更新など
	Update(ctx context.Context, user *model.User) error
}
