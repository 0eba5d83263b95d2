package entities

// Role selects which fields of a work order a viewer sees. It never changes data.
type Role string

const (
	RoleTechnician Role = "technician"
	RoleOffice     Role = "office"
	RoleCustomer   Role = "customer"
)

// ParseRole maps a header value to a Role, defaulting to office.
func ParseRole(v string) Role {
	switch Role(v) {
	case RoleTechnician, RoleCustomer:
		return Role(v)
	}
	return RoleOffice
}

// Actor is the user performing an operation.
type Actor struct {
	ID   string
	Role Role
}
