package models

// Notification bir kullanıcıya gösterilen bildirim kaydını temsil eder.
// Davet yaşam döngüsü geçişlerinin yan etkisi olarak oluşturulur; yalnızca
// alıcı tarafından okundu olarak işaretlenebilir.
type Notification struct {
	BaseModel
	Message string `gorm:"type:text;not null" json:"message"`
	UserID  uint   `gorm:"index;not null" json:"userId"`
	User    User   `gorm:"foreignKey:UserID" json:"-"`
	Read    bool   `gorm:"not null;default:false" json:"read"`
}
