package models

import "time"

type User struct {
	BaseUUIDModel
	Email         string  `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Password      string  `gorm:"type:varchar(255);not null"             json:"-"`
	FirstName     string  `gorm:"type:varchar(100);not null"             json:"firstName"`
	LastName      string  `gorm:"type:varchar(100);not null"             json:"lastName"`
	GuardianName  *string `gorm:"type:varchar(200)"                      json:"guardianName,omitempty"`
	GuardianPhone *string `gorm:"type:varchar(50)"                       json:"guardianPhone,omitempty"`
	IsAdmin       bool    `gorm:"not null;default:false"                 json:"isAdmin"`
}

type RegisterRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	RetypePassword string `json:"retypePassword"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	GuardianName   string `json:"guardianName"`
	GuardianPhone  string `json:"guardianPhone"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// Session is the cache-resident record behind the session cookie.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}
