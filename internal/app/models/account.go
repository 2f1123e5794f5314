package models

import "time"

// Account defines the authenticated identity based on the 'accounts' table.
// Profile data lives in the junior_profiles/senior_profiles tables and is
// attached to an account via AccountID.
type Account struct {
	ID          int64      `json:"id" db:"id" example:"1"`
	Email       string     `json:"email" db:"email" example:"ravi.23mca@kongu.edu"`
	Password    string     `json:"-" db:"password"` // hashed, excluded from JSON
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
	IsActive    bool       `json:"isActive" db:"is_active"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
}
