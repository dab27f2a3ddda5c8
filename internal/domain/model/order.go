package model

import "time"

type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "NEW"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// ValidOrderStatus は管理画面から来るステータス値の検証。
func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusNew, OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// 注文ヘッダ。会員機能は無いので顧客情報をそのまま持つ。
type Order struct {
	ID           int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName string      `gorm:"type:varchar(255);not null" json:"customer_name"`
	Phone        string      `gorm:"type:varchar(50);not null" json:"phone"`
	Email        string      `gorm:"type:varchar(255)" json:"email"`
	Address      string      `gorm:"type:text;not null" json:"address"`
	CityCountry  string      `gorm:"type:varchar(255);not null" json:"city_country"`
	Notes        string      `gorm:"type:text" json:"notes"`
	TotalPrice   float64     `gorm:"not null" json:"total_price"`
	Status       OrderStatus `gorm:"type:varchar(20);not null;default:'NEW';index" json:"status"`
	CreatedAt    time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
