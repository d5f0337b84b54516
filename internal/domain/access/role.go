// Package access is the single capability-resolution point for the API.
// Every operation consults these functions instead of comparing role
// strings at the call site.
package access

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleOwner   Role = "owner"
	RoleRegular Role = "user"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleOwner, RoleRegular:
		return Role(s), true
	}
	return "", false
}

// Requester identifies the authenticated caller of an operation. It is
// passed explicitly into every use case; the core never reads the
// current user from ambient state.
type Requester struct {
	ID   uint
	Role Role
}

// ===============================
// Field capabilities
// ===============================

// CanCreateField: only field owners create fields. The owner is always
// assigned from the requester, never taken from the payload.
func CanCreateField(r Requester) bool {
	return r.Role == RoleOwner
}

// CanMutateField covers update and plain delete of a field.
func CanMutateField(r Requester, fieldOwnerID uint) bool {
	if r.Role == RoleAdmin {
		return true
	}
	return r.Role == RoleOwner && r.ID == fieldOwnerID
}

// CanDeleteField adds the future-booking gate on top of CanMutateField.
// Admins bypass the gate; owners are hard-blocked while upcoming
// bookings exist.
func CanDeleteField(r Requester, fieldOwnerID uint, hasFutureBookings bool) bool {
	if r.Role == RoleAdmin {
		return true
	}
	if !CanMutateField(r, fieldOwnerID) {
		return false
	}
	return !hasFutureBookings
}

// ===============================
// Booking capabilities
// ===============================

// CanCreateBooking: any authenticated user may book, except the owner of
// the field being booked. The self-booking case is a validation failure
// rather than an authorization one, so callers that need the distinction
// should check SelfBooking first.
func CanCreateBooking(r Requester, fieldOwnerID uint) bool {
	return !SelfBooking(r, fieldOwnerID)
}

func SelfBooking(r Requester, fieldOwnerID uint) bool {
	return r.ID == fieldOwnerID
}

// CanViewBooking: admins see everything, field owners see bookings on
// their fields, regular users see their own.
func CanViewBooking(r Requester, fieldOwnerID, bookerID uint) bool {
	switch r.Role {
	case RoleAdmin:
		return true
	case RoleOwner:
		return r.ID == fieldOwnerID
	default:
		return r.ID == bookerID
	}
}

// CanMutateBooking covers update and delete: admins and the owner of the
// booked field only. The booker themselves may not mutate.
func CanMutateBooking(r Requester, fieldOwnerID uint) bool {
	if r.Role == RoleAdmin {
		return true
	}
	return r.Role == RoleOwner && r.ID == fieldOwnerID
}

// ===============================
// Booking list scope
// ===============================

// BookingScope restricts the booking collection BEFORE any per-object
// check. Scoping is a first-class invariant of the listing operation.
type BookingScope int

const (
	ScopeAll BookingScope = iota
	ScopeOwnedFields
	ScopeOwn
)

func ScopeFor(r Requester) BookingScope {
	switch r.Role {
	case RoleAdmin:
		return ScopeAll
	case RoleOwner:
		return ScopeOwnedFields
	default:
		return ScopeOwn
	}
}
