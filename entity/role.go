package entity

// Role is the closed set of staff roles. A user holding neither is a customer.
type Role string

const (
	RoleManager      Role = "manager"
	RoleDeliveryCrew Role = "delivery_crew"
)

func (r Role) Valid() bool {
	return r == RoleManager || r == RoleDeliveryCrew
}

// UserRole is a set-membership row: at most one row per (user, role).
type UserRole struct {
	ID     uint `gorm:"primarykey" json:"id"`
	UserID uint `gorm:"uniqueIndex:idx_user_role;not null" json:"userId"`
	Role   Role `gorm:"uniqueIndex:idx_user_role;not null;size:32" json:"role"`
}
