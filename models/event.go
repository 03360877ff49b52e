package models

import "time"

// EventStatus bir etkinliğin yaşam döngüsü durumunu tanımlar.
type EventStatus string

const (
	EventStatusConfirmed EventStatus = "CONFIRMED"
	EventStatusCancelled EventStatus = "CANCELLED"
	EventStatusTentative EventStatus = "TENTATIVE"
)

// Event bir kullanıcının düzenlediği etkinliği temsil eder. CalendarID
// harici takvimdeki karşılığın anahtarıdır; takvim oluşturma başarısız
// olduysa boş kalır ve kayıt yalnızca yerel yaşar.
type Event struct {
	BaseModel
	Title       string      `gorm:"type:varchar(255);not null" json:"title"`
	Description string      `gorm:"type:text" json:"description"`
	Location    string      `gorm:"type:varchar(255)" json:"location"`
	StartDate   *time.Time  `gorm:"type:timestamptz" json:"startDate"`
	EndDate     *time.Time  `gorm:"type:timestamptz" json:"endDate"`
	Status      EventStatus `gorm:"type:varchar(20);not null;default:'CONFIRMED'" json:"status"`

	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `gorm:"foreignKey:UserID" json:"-"`

	CalendarID string      `gorm:"type:varchar(255);index" json:"calendarId,omitempty"`
	Media      *EventMedia `gorm:"foreignKey:EventID" json:"media,omitempty"`
}
