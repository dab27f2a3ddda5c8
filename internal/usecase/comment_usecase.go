package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 店頭に出すクチコミの件数
const publicCommentLimit = 50

type CommentUsecase struct {
	comments repo.CommentRepository
}

func NewCommentUsecase(comments repo.CommentRepository) *CommentUsecase {
	return &CommentUsecase{comments: comments}
}

type CommentInput struct {
	Name    string
	Message string
	Rating  *int
}

// List は店頭用。新しい順で50件まで。
func (u *CommentUsecase) List(ctx context.Context) ([]model.Comment, error) {
	comments, err := u.comments.ListLatest(ctx, publicCommentLimit)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return comments, nil
}

func (u *CommentUsecase) Add(ctx context.Context, in CommentInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Message = strings.TrimSpace(in.Message)

	if in.Name == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Message == "" {
		return NewHTTPError(http.StatusBadRequest, "message required")
	}
	if in.Rating != nil && (*in.Rating < 1 || *in.Rating > 5) {
		return NewHTTPError(http.StatusBadRequest, "rating must be 1-5")
	}

	err := u.comments.Create(ctx, model.Comment{
		Name:      in.Name,
		Message:   in.Message,
		Rating:    in.Rating,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// AdminList はモデレーション用。全件新しい順。
func (u *CommentUsecase) AdminList(ctx context.Context) ([]model.Comment, error) {
	comments, err := u.comments.ListAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return comments, nil
}

func (u *CommentUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.comments.DeleteByID(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
