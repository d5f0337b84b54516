package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Occupies reports whether a booking in this status holds its time slot.
// Cancelled bookings release the slot and no longer block rebooking.
func Occupies(s Status) bool {
	return s == StatusPending || s == StatusConfirmed
}

// OccupyingStatuses returns the statuses that count in overlap queries,
// in a form usable with a SQL IN clause.
func OccupyingStatuses() []string {
	return []string{string(StatusPending), string(StatusConfirmed)}
}
