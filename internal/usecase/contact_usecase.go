package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ContactUsecase struct {
	messages repo.ContactMessageRepository
}

func NewContactUsecase(messages repo.ContactMessageRepository) *ContactUsecase {
	return &ContactUsecase{messages: messages}
}

type ContactInput struct {
	Name    string
	Email   string
	Message string
}

// Send は問い合わせを保存する。全項目必須。
func (u *ContactUsecase) Send(ctx context.Context, in ContactInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)

	if in.Name == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Email == "" {
		return NewHTTPError(http.StatusBadRequest, "email required")
	}
	if in.Message == "" {
		return NewHTTPError(http.StatusBadRequest, "message required")
	}

	err := u.messages.Create(ctx, model.ContactMessage{
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// List は管理画面用。新しい順。
func (u *ContactUsecase) List(ctx context.Context) ([]model.ContactMessage, error) {
	msgs, err := u.messages.ListAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return msgs, nil
}

func (u *ContactUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.messages.DeleteByID(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
