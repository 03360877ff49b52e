package models

import "time"

// InvitationStatus bir davetin LCV durumunu tanımlar.
type InvitationStatus string

const (
	InvitationStatusPending   InvitationStatus = "PENDING"
	InvitationStatusAccepted  InvitationStatus = "ACCEPTED"
	InvitationStatusRejected  InvitationStatus = "REJECTED"
	InvitationStatusTentative InvitationStatus = "TENTATIVE"
)

// Invitation bir kullanıcının belirli bir etkinliğe davetini temsil eder.
// (event_id, user_id) çifti benzersizdir: aynı kişiye aynı etkinlik için
// ikinci bir davet oluşturulamaz.
type Invitation struct {
	BaseModel
	EventID uint  `gorm:"not null;index:idx_invitation_event_user,unique" json:"eventId"`
	Event   Event `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"-"`
	UserID  uint  `gorm:"not null;index:idx_invitation_event_user,unique" json:"userId"`
	User    User  `gorm:"foreignKey:UserID" json:"-"`

	Status       InvitationStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	RSVP         RSVPQuestion     `gorm:"type:json" json:"rsvp"`
	RSVPResponse RSVPResponse     `gorm:"type:json;column:rsvp_response" json:"rsvpResponse"`

	CheckedIn   bool       `gorm:"not null;default:false" json:"checkedIn"`
	CheckinTime *time.Time `gorm:"type:timestamptz" json:"checkinTime,omitempty"`
}
