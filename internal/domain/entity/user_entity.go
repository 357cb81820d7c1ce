package entity

import (
	"time"
)

// User types distinguish who publishes videos from who buys them.
const (
	UserTypeStudent      = "student"
	UserTypeProfessional = "professional"
)

// User is the aggregate root for accounts. Password holds a bcrypt hash
// set by the account service; the store treats it as an opaque string.
//
// Email and username are unique case-insensitively; uniqueness is
// enforced at registration time, not by the store.
type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	Password     string    `json:"-"`
	Name         string    `json:"name"`
	UserType     string    `json:"userType"`
	Bio          *string   `json:"bio"`
	Experience   *int      `json:"experience"` // years
	ProfileImage *string   `json:"profileImage"`
	CreatedAt    time.Time `json:"createdAt"`
}

// IsProfessional reports whether the user publishes videos.
func (u *User) IsProfessional() bool { return u.UserType == UserTypeProfessional }

// IsStudent reports whether the user purchases and rates videos.
func (u *User) IsStudent() bool { return u.UserType == UserTypeStudent }
