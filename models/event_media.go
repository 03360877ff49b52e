package models

// EventMedia bir etkinliğe bağlı medya adreslerini tutar. Etkinlik başına
// tek kayıt vardır; güncelleme listelerin tamamını değiştirir.
type EventMedia struct {
	BaseModel
	EventID   uint       `gorm:"uniqueIndex;not null" json:"eventId"`
	Images    StringList `gorm:"type:json" json:"images"`
	Videos    StringList `gorm:"type:json" json:"videos"`
	Documents StringList `gorm:"type:json" json:"documents"`
}
