// File: /models/user.go
package models

import (
	"time"
)

type User struct {
	ID            string    `json:"id" gorm:"primaryKey;size:191"`
	Name          string    `json:"name" gorm:"not null;size:255"`
	Email         string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password      string    `json:"-" gorm:"not null;size:255"`
	EmailVerified bool      `json:"email_verified" gorm:"default:false"`
	Organization  *string   `json:"organization" gorm:"size:255"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relationships
	WasteRecords []WasteRecord `json:"waste_records,omitempty" gorm:"foreignKey:OwnerID"`
}
