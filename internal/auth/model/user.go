// Package model provides identity domain models for the auth module.
package model

import (
	"time"

	"gorm.io/gorm"
)

// User represents a person who authenticated via an external provider.
// Matches the users table schema.
type User struct {
	ID          string    `gorm:"primaryKey;column:id;type:uuid"                                  json:"id"`
	GoogleID    string    `gorm:"column:google_id;type:varchar(255);not null;uniqueIndex:idx_users_google_id" json:"-"`
	Email       string    `gorm:"column:email;type:varchar(255)"                                  json:"email"`
	DisplayName string    `gorm:"column:display_name;type:varchar(255)"                           json:"display_name"`
	Photo       string    `gorm:"column:photo;type:text"                                          json:"photo"`
	Provider    string    `gorm:"column:provider;type:varchar(64);not null;default:google"        json:"provider"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"       json:"-"`
	UpdatedAt   time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()"       json:"-"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// BeforeUpdate refreshes the UpdatedAt timestamp before saving.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}
