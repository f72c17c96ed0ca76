package models

import (
	"time"
)

// Profile defines the member profile model based on the 'profiles' table
type Profile struct {
	ID          int64      `json:"id" db:"id" example:"1"`                                                  // Unique identifier for the profile
	Username    string     `json:"username" db:"username" example:"gaffer_jane"`                            // Unique handle, also used for profile links
	Email       string     `json:"email" db:"email" example:"jane@example.com"`                             // Email address
	Password    string     `json:"-" db:"password"`                                                         // Hashed password (excluded from JSON)
	DisplayName string     `json:"displayName" db:"display_name" example:"Jane Miller"`                     // Name shown on the platform
	Role        RoleType   `json:"role" db:"role" example:"MEMBER"`                                         // MEMBER or ADMIN
	IsActive    bool       `json:"isActive" db:"is_active" example:"true"`                                  // Whether the account is active
	CreatedAt   time.Time  `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`                // Timestamp when the profile was created
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`                // Timestamp when the profile was last updated
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at" example:"2024-04-20T18:00:00Z"` // Timestamp of the last login (nullable)
}
