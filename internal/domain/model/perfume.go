package model

import (
	"time"

	"gorm.io/gorm"
)

// 香水マスタ。notes系カラムはDB上カンマ区切り文字列で持つ（API側で分割）。
type Perfume struct {
	ID          int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Brand       string         `gorm:"type:varchar(255);not null" json:"brand"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	Category    string         `gorm:"type:varchar(20);not null;index" json:"category"`
	Price       float64        `gorm:"not null" json:"price"`
	Description string         `gorm:"type:text" json:"description"`
	ImageURL    string         `gorm:"type:text" json:"image_url"`
	NotesTop    string         `gorm:"type:text" json:"notes_top"`
	NotesMiddle string         `gorm:"type:text" json:"notes_middle"`
	NotesBase   string         `gorm:"type:text" json:"notes_base"`
	IsActive    bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
