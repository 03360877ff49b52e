package models

// Token bir kullanıcının Google OAuth kimlik bilgilerini tutar.
// Kullanıcı başına tek canlı kayıt vardır: yenisi oluşturulurken eskisi
// silinir, geçmiş tutulmaz.
type Token struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	UserID       uint   `gorm:"index;not null" json:"userId"`
	User         User   `gorm:"foreignKey:UserID" json:"-"`
	AccessToken  string `gorm:"type:text;not null" json:"-"`
	RefreshToken string `gorm:"type:text;not null" json:"-"`
}
