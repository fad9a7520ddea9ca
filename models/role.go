package models

import "strings"

// Roles form a closed enum. Legacy spellings from older clients are
// normalized at the boundary; anything unrecognized is rejected.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// NormalizeRole maps a caller-supplied role to the canonical enum.
// An empty input defaults to the lowest-privilege role.
func NormalizeRole(role string) (string, bool) {
	switch strings.ToUpper(strings.TrimSpace(role)) {
	case "", RoleUser, "STANDARD", "AGENT":
		return RoleUser, true
	case RoleAdmin, "ADMINISTRATOR":
		return RoleAdmin, true
	}
	return "", false
}
