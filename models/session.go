package models

import "time"

// Role is the access level decided at login.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// Session is the logged-in identity. It is the only record the application
// persists; the JSON field names match the stored record of the original
// mobile app so existing records restore cleanly.
type Session struct {
	MobileNumber string    `json:"mobileNumber"`
	Role         Role      `json:"role"`
	LoginTime    time.Time `json:"loginTime"`
}

// IsAdmin reports whether the session grants admin access.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
