package model

import "time"

// 来店客のクチコミ。ratingは1〜5、未評価はnil。
type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Rating    *int      `json:"rating"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
