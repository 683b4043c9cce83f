package domain

// Roles known to the platform.
const (
	RoleUser            = "USER"
	RoleAdmin           = "ADMIN"
	RoleOperator        = "OPERATOR"
	RoleRestaurantOwner = "RESTAURANT_OWNER"
)

// RequestContext carries authenticated user info when available.
type RequestContext struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// IsAdmin is a convenience check used by guarded handlers.
func (rc RequestContext) IsAdmin() bool { return rc.Role == RoleAdmin }
