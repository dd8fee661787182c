package models

import "time"

const DefaultImageURL = "https://i.pinimg.com/550x/a8/0e/36/a80e3690318c08114011145fdcfa3ddb.jpg"

type User struct {
	Base
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Username     string `gorm:"uniqueIndex;size:50" json:"username"`
	Email        string `gorm:"uniqueIndex;size:255" json:"email"`
	Phone        string `json:"-"` // encrypted at rest, decrypted at the API boundary
	PasswordHash string `json:"-"`
	IsConfirmed  bool   `json:"is_confirmed"`
	ImageURL     string `gorm:"size:255" json:"image_url"`
}

type UserProfile struct {
	Base
	UserID      string `gorm:"type:char(36);uniqueIndex" json:"user_id"`
	DisplayName string `gorm:"size:100" json:"display_name"`
	AvatarURL   string `gorm:"size:255" json:"avatar_url"`
	Timezone    string `gorm:"size:50" json:"timezone"`
}

type ConfirmationCode struct {
	Base
	UserID        string    `gorm:"type:char(36);index" json:"user_id"`
	Code          string    `gorm:"size:16" json:"-"`
	CodeExpiresAt time.Time `json:"code_expires_at"`
}
