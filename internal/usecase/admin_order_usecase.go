package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type AdminOrderUsecase struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
}

func NewAdminOrderUsecase(orders repo.OrderRepository, orderItems repo.OrderItemRepository) *AdminOrderUsecase {
	return &AdminOrderUsecase{orders: orders, orderItems: orderItems}
}

type AdminOrderItemView struct {
	PerfumeID   *int64  `json:"perfume_id"`
	PerfumeName string  `json:"perfume_name"`
	Category    string  `json:"category"`
	Quantity    int64   `json:"quantity"`
	Price       float64 `json:"price"`
}

type AdminOrderView struct {
	ID           int64                `json:"id"`
	CustomerName string               `json:"customer_name"`
	Phone        string               `json:"phone"`
	Email        string               `json:"email"`
	Address      string               `json:"address"`
	CityCountry  string               `json:"city_country"`
	Notes        string               `json:"notes"`
	TotalPrice   float64              `json:"total_price"`
	Status       string               `json:"status"`
	CreatedAt    time.Time            `json:"created_at"`
	Items        []AdminOrderItemView `json:"items"`
}

// List は全注文を新しい順で、明細付きで返す。
func (u *AdminOrderUsecase) List(ctx context.Context) ([]AdminOrderView, error) {
	orders, err := u.orders.ListAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	views := make([]AdminOrderView, 0, len(orders))
	for _, o := range orders {
		items, err := u.orderItems.ListByOrderID(ctx, o.ID)
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		views = append(views, toAdminOrderView(o, items))
	}
	return views, nil
}

// UpdateStatus はステータス遷移。値は決め打ちの5種のみ許可。
func (u *AdminOrderUsecase) UpdateStatus(ctx context.Context, orderID int64, status string) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if !model.ValidOrderStatus(status) {
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	err := u.orders.UpdateStatus(ctx, orderID, model.OrderStatus(status))
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func toAdminOrderView(o model.Order, items []model.OrderItem) AdminOrderView {
	outItems := make([]AdminOrderItemView, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, AdminOrderItemView{
			PerfumeID:   it.PerfumeID,
			PerfumeName: it.PerfumeName,
			Category:    it.Category,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}

	return AdminOrderView{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		Phone:        o.Phone,
		Email:        o.Email,
		Address:      o.Address,
		CityCountry:  o.CityCountry,
		Notes:        o.Notes,
		TotalPrice:   o.TotalPrice,
		Status:       string(o.Status),
		CreatedAt:    o.CreatedAt,
		Items:        outItems,
	}
}
