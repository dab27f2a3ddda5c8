package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type PerfumeGormRepository struct {
	db *gorm.DB
}

// DI
func NewPerfumeGormRepository(db *gorm.DB) *PerfumeGormRepository {
	return &PerfumeGormRepository{db: db}
}

// 公開中の香水を新しい順で返す。
func (r *PerfumeGormRepository) ListActive(ctx context.Context) ([]model.Perfume, error) {
	var perfumes []model.Perfume
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at desc").Order("id desc").
		Find(&perfumes).Error
	if err != nil {
		return nil, err
	}
	return perfumes, nil
}

// 管理画面用。非公開も含めて新しい順。
func (r *PerfumeGormRepository) ListAll(ctx context.Context) ([]model.Perfume, error) {
	var perfumes []model.Perfume
	err := r.db.WithContext(ctx).
		Order("created_at desc").Order("id desc").
		Find(&perfumes).Error
	if err != nil {
		return nil, err
	}
	return perfumes, nil
}

func (r *PerfumeGormRepository) FindByID(ctx context.Context, id int64) (model.Perfume, error) {
	var p model.Perfume
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Perfume{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Perfume{}, err
	}
	return p, nil
}

func (r *PerfumeGormRepository) Create(ctx context.Context, p model.Perfume) (model.Perfume, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Perfume{}, err
	}
	return p, nil
}

func (r *PerfumeGormRepository) Update(ctx context.Context, p model.Perfume) error {
	res := r.db.WithContext(ctx).Model(&model.Perfume{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"brand":        p.Brand,
		"name":         p.Name,
		"category":     p.Category,
		"price":        p.Price,
		"description":  p.Description,
		"image_url":    p.ImageURL,
		"notes_top":    p.NotesTop,
		"notes_middle": p.NotesMiddle,
		"notes_base":   p.NotesBase,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 公開/非公開の切替
func (r *PerfumeGormRepository) SetActive(ctx context.Context, id int64, isActive bool) error {
	res := r.db.WithContext(ctx).Model(&model.Perfume{}).
		Where("id = ?", id).
		Update("is_active", isActive)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *PerfumeGormRepository) SoftDelete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Perfume{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
