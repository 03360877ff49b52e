package models

// Yerel durumlar ile Google Calendar karşılıkları arasındaki çeviri
// tabloları. İki yön birbirinin tam tersidir; tek istisna, bilinmeyen
// harici değerlerin hataya düşmek yerine PENDING / CONFIRMED varsayılanına
// katlanmasıdır.

const (
	attendeeNeedsAction = "needsAction"
	attendeeAccepted    = "accepted"
	attendeeDeclined    = "declined"
	attendeeTentative   = "tentative"

	calendarConfirmed = "confirmed"
	calendarTentative = "tentative"
	calendarCancelled = "cancelled"
)

// AttendeeResponseByInvitationStatus yerel davet durumunu harici katılımcı
// cevabına çevirir.
func AttendeeResponseByInvitationStatus(status InvitationStatus) string {
	switch status {
	case InvitationStatusAccepted:
		return attendeeAccepted
	case InvitationStatusRejected:
		return attendeeDeclined
	case InvitationStatusTentative:
		return attendeeTentative
	default:
		return attendeeNeedsAction
	}
}

// InvitationStatusByAttendeeResponse harici katılımcı cevabını yerel davet
// durumuna çevirir. Bilinmeyen değerler PENDING'e düşer.
func InvitationStatusByAttendeeResponse(response string) InvitationStatus {
	switch response {
	case attendeeAccepted:
		return InvitationStatusAccepted
	case attendeeDeclined:
		return InvitationStatusRejected
	case attendeeTentative:
		return InvitationStatusTentative
	default:
		return InvitationStatusPending
	}
}

// CalendarStatusByEventStatus yerel etkinlik durumunu harici takvim
// durumuna çevirir.
func CalendarStatusByEventStatus(status EventStatus) string {
	switch status {
	case EventStatusCancelled:
		return calendarCancelled
	case EventStatusTentative:
		return calendarTentative
	default:
		return calendarConfirmed
	}
}

// EventStatusByCalendarStatus harici takvim durumunu yerel etkinlik
// durumuna çevirir. Bilinmeyen değerler CONFIRMED'e düşer.
func EventStatusByCalendarStatus(status string) EventStatus {
	switch status {
	case calendarCancelled:
		return EventStatusCancelled
	case calendarTentative:
		return EventStatusTentative
	default:
		return EventStatusConfirmed
	}
}
