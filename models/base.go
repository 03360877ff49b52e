package models

import "time"

// BaseModel tüm kalıcı varlıkların paylaştığı ortak alanları tanımlar.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
