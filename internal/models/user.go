package models

import (
	"time"

	"github.com/google/uuid"
)

// User types
const (
	UserTypeCompany    = "company"
	UserTypeInfluencer = "influencer"
)

var AllUserTypes = []string{UserTypeCompany, UserTypeInfluencer}

func IsValidUserType(t string) bool {
	for _, ut := range AllUserTypes {
		if ut == t {
			return true
		}
	}
	return false
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	UserType     string    `json:"user_type"` // company / influencer
	CreatedAt    time.Time `json:"created_at"`
	LastActiveAt time.Time `json:"last_active_at"`
}

func (u *User) IsCompany() bool {
	return u.UserType == UserTypeCompany
}

func (u *User) IsInfluencer() bool {
	return u.UserType == UserTypeInfluencer
}
