package models

import "time"

// UserLevel is the permission tier of an account.
type UserLevel string

const (
	UserLevelRegular UserLevel = "regular"
	UserLevelAdmin   UserLevel = "admin"
)

// User is a registered account. HashedPassword is never serialized.
type User struct {
	ID             int64     `json:"id" example:"1"`
	Email          string    `json:"email" example:"jane@example.com"`
	HashedPassword string    `json:"-"`
	Level          UserLevel `json:"level" example:"regular"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Preference stores the region/realm a user last browsed.
type Preference struct {
	ID            int64  `json:"id" example:"1"`
	UserID        int64  `json:"user_id" example:"1"`
	CurrentRegion string `json:"current_region" example:"us"`
	CurrentRealm  string `json:"current_realm" example:"earthen-ring"`
}
