package models

// Feedback bir kullanıcının etkinlik hakkındaki yorumunu temsil eder.
type Feedback struct {
	BaseModel
	Comment string `gorm:"type:text;not null" json:"comment"`
	UserID  uint   `gorm:"index;not null" json:"userId"`
	User    User   `gorm:"foreignKey:UserID" json:"-"`
	EventID uint   `gorm:"index;not null" json:"eventId"`
	Event   Event  `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"-"`
}
