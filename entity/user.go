package entity

import "time"

type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Username string `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Email    string `gorm:"size:255" json:"email"`
	Password string `gorm:"not null" json:"-"`

	Roles []UserRole `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// HasRole checks loaded memberships only; callers preload Roles.
func (u *User) HasRole(role Role) bool {
	for _, m := range u.Roles {
		if m.Role == role {
			return true
		}
	}
	return false
}
