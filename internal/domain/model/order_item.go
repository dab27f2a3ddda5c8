package model

import "time"

// 注文明細。商品は後から消えるので名前・カテゴリをスナップショットで持つ。
// Priceは明細合計（単価×数量）。
type OrderItem struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     int64     `gorm:"not null;index" json:"order_id"`
	PerfumeID   *int64    `gorm:"index" json:"perfume_id"`
	PerfumeName string    `gorm:"type:varchar(255);not null" json:"perfume_name"`
	Category    string    `gorm:"type:varchar(20)" json:"category"`
	Quantity    int64     `gorm:"not null" json:"quantity"`
	Price       float64   `gorm:"not null" json:"price"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
