package storesdk

import (
	"fmt"
	"strings"
)

// Role is the coarse permission category assigned to every user account.
// Roles travel on the wire as upper-case strings.
type Role string

const (
	RoleCustomer   Role = "CUSTOMER"
	RoleRetailer   Role = "RETAILER"
	RoleWholesaler Role = "WHOLESALER"
	RoleSupplier   Role = "SUPPLIER"
	RoleAdmin      Role = "ADMIN"
)

// Roles lists every known role. Used for validation and exhaustive route
// tables.
var Roles = []Role{RoleCustomer, RoleRetailer, RoleWholesaler, RoleSupplier, RoleAdmin}

// ParseRole normalises and validates a wire role string.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("storesdk: unknown role %q", s)
	}
	return r, nil
}

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleRetailer, RoleWholesaler, RoleSupplier, RoleAdmin:
		return true
	}
	return false
}

// Is compares roles case-insensitively. Backends have been observed to return
// mixed-case role strings, so all comparisons go through here.
func (r Role) Is(other Role) bool {
	return strings.EqualFold(string(r), string(other))
}

func (r Role) String() string { return string(r) }
