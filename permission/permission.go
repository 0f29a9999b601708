// Package permission holds the static role→permission table consulted by
// handlers before performing mutations.
package permission

// Role is an account type carried in the token's "type" claim.
type Role string

const (
	RoleUser  Role = "user"
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
)

// Permission is an operation tag like "vehicle:create".
type Permission string

const (
	UserRead   Permission = "user:read"
	UserUpdate Permission = "user:update"
	UserDelete Permission = "user:delete"

	VehicleRead   Permission = "vehicle:read"
	VehicleCreate Permission = "vehicle:create"
	VehicleUpdate Permission = "vehicle:update"
	VehicleDelete Permission = "vehicle:delete"

	BookingRead   Permission = "booking:read"
	BookingCreate Permission = "booking:create"
	BookingUpdate Permission = "booking:update"
	BookingDelete Permission = "booking:delete"

	PaymentRead   Permission = "payment:read"
	PaymentCreate Permission = "payment:create"
	PaymentUpdate Permission = "payment:update"

	AdminRead   Permission = "admin:read"
	AdminCreate Permission = "admin:create"
	AdminUpdate Permission = "admin:update"
	AdminDelete Permission = "admin:delete"

	OwnerRead   Permission = "owner:read"
	OwnerUpdate Permission = "owner:update"
)

// rolePermissions maps each role to the operations it may perform.
var rolePermissions = map[Role]map[Permission]struct{}{
	RoleUser: setOf(
		UserRead, UserUpdate,
		VehicleRead,
		BookingRead, BookingCreate, BookingUpdate,
		PaymentRead, PaymentCreate,
	),
	RoleOwner: setOf(
		UserRead, UserUpdate,
		VehicleRead, VehicleCreate, VehicleUpdate, VehicleDelete,
		BookingRead, BookingCreate, BookingUpdate, BookingDelete,
		PaymentRead, PaymentCreate, PaymentUpdate,
	),
	RoleAdmin: setOf(
		UserRead, UserUpdate, UserDelete,
		VehicleRead, VehicleCreate, VehicleUpdate, VehicleDelete,
		BookingRead, BookingCreate, BookingUpdate, BookingDelete,
		PaymentRead, PaymentCreate, PaymentUpdate,
		AdminRead, AdminCreate, AdminUpdate, AdminDelete,
		OwnerRead, OwnerUpdate,
	),
}

func setOf(perms ...Permission) map[Permission]struct{} {
	s := make(map[Permission]struct{}, len(perms))
	for _, p := range perms {
		s[p] = struct{}{}
	}
	return s
}

// ValidRole reports whether s names a known role.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleUser, RoleOwner, RoleAdmin:
		return true
	}
	return false
}

// ForRole returns the permission tags granted to a role, sorted order not
// guaranteed. Unknown roles get an empty list.
func ForRole(role string) []Permission {
	set, ok := rolePermissions[Role(role)]
	if !ok {
		return nil
	}
	perms := make([]Permission, 0, len(set))
	for p := range set {
		perms = append(perms, p)
	}
	return perms
}

// Has reports whether the role is granted the permission. Unknown roles
// have no permissions.
func Has(role string, p Permission) bool {
	set, ok := rolePermissions[Role(role)]
	if !ok {
		return false
	}
	_, ok = set[p]
	return ok
}

// RoleIn reports whether role matches any of the allowed roles. Invalid
// role strings never match.
func RoleIn(role string, allowed ...Role) bool {
	if !ValidRole(role) {
		return false
	}
	for _, a := range allowed {
		if Role(role) == a {
			return true
		}
	}
	return false
}
