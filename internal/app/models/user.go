package models

import "time"

// User defines a staff account able to manage course offerings, based on
// the 'users' table.
type User struct {
	ID          int64      `json:"id" db:"id" example:"1"`
	Username    string     `json:"username" db:"username" example:"admin"`
	Password    string     `json:"-" db:"password"` // hashed, excluded from JSON
	DisplayName string     `json:"displayName,omitempty" db:"display_name"`
	IsActive    bool       `json:"isActive" db:"is_active"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}
