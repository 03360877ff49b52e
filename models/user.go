package models

// User Google hesabıyla giriş yapan bir kullanıcıyı temsil eder.
// Kayıt OAuth geri çağrısında ilk girişte otomatik oluşturulur;
// parola alanı yoktur.
type User struct {
	BaseModel
	FirstName string `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName  string `gorm:"type:varchar(100)" json:"lastName"`
	Email     string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	MobileNo  string `gorm:"type:varchar(20)" json:"mobileNo"`
	ImageURL  string `gorm:"type:text" json:"imageUrl"`
}
