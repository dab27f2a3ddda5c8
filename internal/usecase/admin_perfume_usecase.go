package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type AdminPerfumeUsecase struct {
	perfumeRepo repo.PerfumeRepository
}

// DI
func NewAdminPerfumeUsecase(perfumeRepo repo.PerfumeRepository) *AdminPerfumeUsecase {
	return &AdminPerfumeUsecase{perfumeRepo: perfumeRepo}
}

type AdminPerfumeInput struct {
	Brand       string
	Name        string
	Category    string
	Price       float64
	Description string
	ImageURL    string
	NotesTop    []string
	NotesMiddle []string
	NotesBase   []string
}

// 管理画面の一覧用。公開フラグと日時も返す。
type AdminPerfumeView struct {
	PerfumeView
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// List は非公開も含めて新しい順で返す。
func (u *AdminPerfumeUsecase) List(ctx context.Context) ([]AdminPerfumeView, error) {
	items, err := u.perfumeRepo.ListAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	views := make([]AdminPerfumeView, 0, len(items))
	for _, p := range items {
		views = append(views, AdminPerfumeView{
			PerfumeView: toPerfumeView(p),
			IsActive:    p.IsActive,
			CreatedAt:   p.CreatedAt,
			UpdatedAt:   p.UpdatedAt,
		})
	}
	return views, nil
}

func (u *AdminPerfumeUsecase) Create(ctx context.Context, in AdminPerfumeInput) (int64, error) {
	p, err := u.validate(in)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	p.IsActive = true
	p.CreatedAt = now
	p.UpdatedAt = now

	created, err := u.perfumeRepo.Create(ctx, p)
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created.ID, nil
}

func (u *AdminPerfumeUsecase) Update(ctx context.Context, id int64, in AdminPerfumeInput) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	p, err := u.validate(in)
	if err != nil {
		return err
	}
	p.ID = id
	p.UpdatedAt = time.Now()

	err = u.perfumeRepo.Update(ctx, p)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// SetActive は店頭への公開/非公開の切替。
func (u *AdminPerfumeUsecase) SetActive(ctx context.Context, id int64, isActive bool) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.perfumeRepo.SetActive(ctx, id, isActive)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *AdminPerfumeUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.perfumeRepo.SoftDelete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 入力検証とDB行への変換。カテゴリは保存表記、notesはカンマ区切りに畳む。
func (u *AdminPerfumeUsecase) validate(in AdminPerfumeInput) (model.Perfume, error) {
	if strings.TrimSpace(in.Brand) == "" {
		return model.Perfume{}, NewHTTPError(http.StatusBadRequest, "brand required")
	}
	if strings.TrimSpace(in.Name) == "" {
		return model.Perfume{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Price < 0 {
		return model.Perfume{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	cat, ok := model.ParseCategory(in.Category)
	if !ok {
		return model.Perfume{}, NewHTTPError(http.StatusBadRequest, "invalid category")
	}

	return model.Perfume{
		Brand:       strings.TrimSpace(in.Brand),
		Name:        strings.TrimSpace(in.Name),
		Category:    cat.Storage(),
		Price:       in.Price,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		NotesTop:    joinNotes(in.NotesTop),
		NotesMiddle: joinNotes(in.NotesMiddle),
		NotesBase:   joinNotes(in.NotesBase),
	}, nil
}

func joinNotes(notes []string) string {
	trimmed := make([]string, 0, len(notes))
	for _, n := range notes {
		n = strings.TrimSpace(n)
		if n != "" {
			trimmed = append(trimmed, n)
		}
	}
	return strings.Join(trimmed, ", ")
}
