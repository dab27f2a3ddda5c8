package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks（衝突回避の命名）
// =====================

type CatPerfumeRepoMock struct{ mock.Mock }

func (m *CatPerfumeRepoMock) ListActive(ctx context.Context) ([]model.Perfume, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Perfume)
	return items, args.Error(1)
}

func (m *CatPerfumeRepoMock) ListAll(ctx context.Context) ([]model.Perfume, error) {
	panic("not used in CatalogUsecase tests")
}

func (m *CatPerfumeRepoMock) FindByID(ctx context.Context, id int64) (model.Perfume, error) {
	panic("not used in CatalogUsecase tests")
}

func (m *CatPerfumeRepoMock) Create(ctx context.Context, p model.Perfume) (model.Perfume, error) {
	panic("not used in CatalogUsecase tests")
}

func (m *CatPerfumeRepoMock) Update(ctx context.Context, p model.Perfume) error {
	panic("not used in CatalogUsecase tests")
}

func (m *CatPerfumeRepoMock) SetActive(ctx context.Context, id int64, isActive bool) error {
	panic("not used in CatalogUsecase tests")
}

func (m *CatPerfumeRepoMock) SoftDelete(ctx context.Context, id int64) error {
	panic("not used in CatalogUsecase tests")
}

func catalogRows() []model.Perfume {
	return []model.Perfume{
		{ID: 1, Brand: "Dior", Name: "Sauvage", Category: "Men", Price: 150,
			NotesTop: "Bergamot, Pepper", NotesMiddle: "Lavender", NotesBase: "Ambroxan"},
		{ID: 2, Brand: "Chanel", Name: "Coco Mademoiselle", Category: "Women", Price: 165},
		{ID: 3, Brand: "Le Labo", Name: "Santal 33", Category: "Unisex", Price: 310},
	}
}

func TestCatalogUsecase_List_InvalidCategory(t *testing.T) {
	uc := usecase.NewCatalogUsecase(new(CatPerfumeRepoMock))

	_, err := uc.List(context.Background(), "kids")
	assertHTTPError(t, err, http.StatusBadRequest, "invalid category")
}

func TestCatalogUsecase_List_All(t *testing.T) {
	pRepo := new(CatPerfumeRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	pRepo.On("ListActive", mock.Anything).Return(catalogRows(), nil)

	views, err := uc.List(context.Background(), "all")
	assert.NoError(t, err)
	assert.Equal(t, 3, len(views))

	//カテゴリはAPIでは小文字
	assert.Equal(t, "men", views[0].Category)
	assert.Equal(t, "women", views[1].Category)
	assert.Equal(t, "unisex", views[2].Category)

	pRepo.AssertExpectations(t)
}

// 空カテゴリは"all"扱い
func TestCatalogUsecase_List_EmptyCategoryMeansAll(t *testing.T) {
	pRepo := new(CatPerfumeRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	pRepo.On("ListActive", mock.Anything).Return(catalogRows(), nil)

	views, err := uc.List(context.Background(), "")
	assert.NoError(t, err)
	assert.Equal(t, 3, len(views))
}

func TestCatalogUsecase_List_FilterByCategory(t *testing.T) {
	pRepo := new(CatPerfumeRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	pRepo.On("ListActive", mock.Anything).Return(catalogRows(), nil)

	views, err := uc.List(context.Background(), "men")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(views))
	assert.Equal(t, "Sauvage", views[0].Name)
}

// DBエラーでも店頭を空にしない
func TestCatalogUsecase_List_FallbackOnRepoError(t *testing.T) {
	pRepo := new(CatPerfumeRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	pRepo.On("ListActive", mock.Anything).Return(nil, errors.New("db down"))

	views, err := uc.List(context.Background(), "all")
	assert.NoError(t, err)
	assert.NotEmpty(t, views)
}

// 0件でも同梱リストに切り替える
func TestCatalogUsecase_List_FallbackOnEmpty(t *testing.T) {
	pRepo := new(CatPerfumeRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	pRepo.On("ListActive", mock.Anything).Return([]model.Perfume{}, nil)

	views, err := uc.List(context.Background(), "men")
	assert.NoError(t, err)
	assert.NotEmpty(t, views)
	for _, v := range views {
		assert.Equal(t, "men", v.Category)
	}
}

func TestCatalogUsecase_List_SplitsNotes(t *testing.T) {
	pRepo := new(CatPerfumeRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	pRepo.On("ListActive", mock.Anything).Return(catalogRows(), nil)

	views, err := uc.List(context.Background(), "men")
	assert.NoError(t, err)
	assert.Equal(t, []string{"Bergamot", "Pepper"}, views[0].Notes.Top)
	assert.Equal(t, []string{"Lavender"}, views[0].Notes.Middle)
	assert.Equal(t, []string{"Ambroxan"}, views[0].Notes.Base)

	//notesが空のカラムは空スライス（nilにしない）
	women, err := uc.List(context.Background(), "women")
	assert.NoError(t, err)
	assert.Equal(t, []string{}, women[0].Notes.Top)
}

func TestCatalogUsecase_Get_InvalidID(t *testing.T) {
	uc := usecase.NewCatalogUsecase(new(CatPerfumeRepoMock))

	_, err := uc.Get(context.Background(), 0)
	assertHTTPError(t, err, http.StatusBadRequest, "invalid id")
}

func TestCatalogUsecase_Get_Success(t *testing.T) {
	pRepo := new(CatPerfumeRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	pRepo.On("ListActive", mock.Anything).Return(catalogRows(), nil)

	v, err := uc.Get(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, "Santal 33", v.Name)
}

func TestCatalogUsecase_Get_NotFound(t *testing.T) {
	pRepo := new(CatPerfumeRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	pRepo.On("ListActive", mock.Anything).Return(catalogRows(), nil)

	_, err := uc.Get(context.Background(), 999)
	assertHTTPError(t, err, http.StatusNotFound, "not found")
}

// 一覧がフォールバックで出ているなら詳細も同じリストから引ける
func TestCatalogUsecase_Get_UsesFallback(t *testing.T) {
	pRepo := new(CatPerfumeRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	pRepo.On("ListActive", mock.Anything).Return(nil, errors.New("db down"))

	views, err := uc.List(context.Background(), "all")
	assert.NoError(t, err)

	v, err := uc.Get(context.Background(), views[0].ID)
	assert.NoError(t, err)
	assert.Equal(t, views[0].Name, v.Name)
}
