package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	"app/internal/domain/seed"
	repo "app/internal/repository"
)

// CatalogUsecase は店頭カタログの取得と絞り込み。
// DBが落ちていても空でも同梱リストで店頭を空にしない。
type CatalogUsecase struct {
	perfumeRepo repo.PerfumeRepository
}

func NewCatalogUsecase(perfumeRepo repo.PerfumeRepository) *CatalogUsecase {
	return &CatalogUsecase{perfumeRepo: perfumeRepo}
}

type PerfumeNotes struct {
	Top    []string `json:"top"`
	Middle []string `json:"middle"`
	Base   []string `json:"base"`
}

// PerfumeView はAPIに出す形。カテゴリは小文字、notesは分割済み。
type PerfumeView struct {
	ID          int64        `json:"id"`
	Brand       string       `json:"brand"`
	Name        string       `json:"name"`
	Category    string       `json:"category"`
	Price       float64      `json:"price"`
	Notes       PerfumeNotes `json:"notes"`
	Description string       `json:"description"`
	ImageURL    string       `json:"image_url"`
}

// List は公開中の香水を新しい順で返す。
// categoryは"all"か men/women/unisex。取得失敗・0件のときは同梱リストに切り替える。
func (u *CatalogUsecase) List(ctx context.Context, category string) ([]PerfumeView, error) {
	if category == "" {
		category = model.CategoryAll
	}
	if category != model.CategoryAll {
		if _, ok := model.ParseCategory(category); !ok {
			return nil, NewHTTPError(http.StatusBadRequest, "invalid category")
		}
	}

	items, err := u.perfumeRepo.ListActive(ctx)
	if err != nil || len(items) == 0 {
		//フォールバック（店頭を空にしない）
		items = seed.Perfumes()
	}

	views := make([]PerfumeView, 0, len(items))
	for _, p := range items {
		v := toPerfumeView(p)
		if category != model.CategoryAll && v.Category != category {
			continue
		}
		views = append(views, v)
	}
	return views, nil
}

// Get は公開カタログから1件返す。
// Listと同じ並び・同じフォールバックから引くので、一覧に出ている物は必ず引ける。
func (u *CatalogUsecase) Get(ctx context.Context, id int64) (PerfumeView, error) {
	if id <= 0 {
		return PerfumeView{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	views, err := u.List(ctx, model.CategoryAll)
	if err != nil {
		return PerfumeView{}, err
	}
	for _, v := range views {
		if v.ID == id {
			return v, nil
		}
	}
	return PerfumeView{}, NewHTTPError(http.StatusNotFound, "not found")
}

func toPerfumeView(p model.Perfume) PerfumeView {
	return PerfumeView{
		ID:       p.ID,
		Brand:    p.Brand,
		Name:     p.Name,
		Category: string(model.CategoryFromStorage(p.Category)),
		Price:    p.Price,
		Notes: PerfumeNotes{
			Top:    splitNotes(p.NotesTop),
			Middle: splitNotes(p.NotesMiddle),
			Base:   splitNotes(p.NotesBase),
		},
		Description: p.Description,
		ImageURL:    p.ImageURL,
	}
}

// カンマ区切りのnotesカラムを分割してトリムする。空要素は捨てる。
func splitNotes(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
