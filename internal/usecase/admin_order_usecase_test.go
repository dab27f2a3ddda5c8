package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks（衝突回避の命名）
// =====================

type AdmOrderRepoMock struct{ mock.Mock }

func (m *AdmOrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	panic("not used in AdminOrderUsecase tests")
}

func (m *AdmOrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	panic("not used in AdminOrderUsecase tests")
}

func (m *AdmOrderRepoMock) ListAll(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *AdmOrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

type AdmOrderItemRepoMock struct{ mock.Mock }

func (m *AdmOrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	panic("not used in AdminOrderUsecase tests")
}

func (m *AdmOrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

func TestAdminOrderUsecase_List_WithItems(t *testing.T) {
	oRepo := new(AdmOrderRepoMock)
	iRepo := new(AdmOrderItemRepoMock)
	uc := usecase.NewAdminOrderUsecase(oRepo, iRepo)

	oRepo.On("ListAll", mock.Anything).Return([]model.Order{
		{ID: 2, CustomerName: "Lina", TotalPrice: 95, Status: model.OrderStatusNew},
		{ID: 1, CustomerName: "Rami", TotalPrice: 300, Status: model.OrderStatusShipped},
	}, nil)

	iRepo.On("ListByOrderID", mock.Anything, int64(2)).Return([]model.OrderItem{
		{PerfumeName: "J'adore", Quantity: 1, Price: 95},
	}, nil)
	iRepo.On("ListByOrderID", mock.Anything, int64(1)).Return([]model.OrderItem{
		{PerfumeName: "Sauvage", Quantity: 2, Price: 300},
	}, nil)

	views, err := uc.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, len(views))
	assert.Equal(t, "Lina", views[0].CustomerName)
	assert.Equal(t, 1, len(views[0].Items))
	assert.Equal(t, "Sauvage", views[1].Items[0].PerfumeName)
	assert.Equal(t, "SHIPPED", views[1].Status)

	oRepo.AssertExpectations(t)
	iRepo.AssertExpectations(t)
}

func TestAdminOrderUsecase_UpdateStatus_InvalidID(t *testing.T) {
	uc := usecase.NewAdminOrderUsecase(new(AdmOrderRepoMock), new(AdmOrderItemRepoMock))

	err := uc.UpdateStatus(context.Background(), 0, "SHIPPED")
	assertHTTPError(t, err, http.StatusBadRequest, "invalid id")
}

func TestAdminOrderUsecase_UpdateStatus_InvalidStatus(t *testing.T) {
	oRepo := new(AdmOrderRepoMock)
	uc := usecase.NewAdminOrderUsecase(oRepo, new(AdmOrderItemRepoMock))

	for _, s := range []string{"", "shipped", "CANCELED", "PAID"} {
		err := uc.UpdateStatus(context.Background(), 1, s)
		assertHTTPError(t, err, http.StatusBadRequest, "invalid status")
	}
	oRepo.AssertNotCalled(t, "UpdateStatus")
}

func TestAdminOrderUsecase_UpdateStatus_NotFound(t *testing.T) {
	oRepo := new(AdmOrderRepoMock)
	uc := usecase.NewAdminOrderUsecase(oRepo, new(AdmOrderItemRepoMock))

	oRepo.On("UpdateStatus", mock.Anything, int64(99), model.OrderStatusDelivered).Return(repo.ErrNotFound)

	err := uc.UpdateStatus(context.Background(), 99, "DELIVERED")
	assertHTTPError(t, err, http.StatusNotFound, "not found")
}

func TestAdminOrderUsecase_UpdateStatus_Success(t *testing.T) {
	oRepo := new(AdmOrderRepoMock)
	uc := usecase.NewAdminOrderUsecase(oRepo, new(AdmOrderItemRepoMock))

	oRepo.On("UpdateStatus", mock.Anything, int64(1), model.OrderStatusConfirmed).Return(nil)

	err := uc.UpdateStatus(context.Background(), 1, "CONFIRMED")
	assert.NoError(t, err)

	oRepo.AssertExpectations(t)
}
