// Package model provides domain models and DTOs for the team module.
package model

import (
	"time"

	"gorm.io/gorm"
)

// Team represents one submitted tournament entry.
// Matches the teams table schema. Records are immutable after creation;
// no edit or delete operation exists in this workflow.
type Team struct {
	ID                    string    `gorm:"primaryKey;column:id;type:uuid"                            json:"id"`
	TeamName              string    `gorm:"column:team_name;type:varchar(255);not null"               json:"team_name"`
	Email                 string    `gorm:"column:email;type:varchar(255);not null"                   json:"email"`
	Phone                 string    `gorm:"column:phone;type:varchar(64);not null"                    json:"phone"`
	Leader                string    `gorm:"column:leader;type:varchar(255);not null"                  json:"leader"`
	Player1               string    `gorm:"column:player1;type:varchar(255);not null"                 json:"p1"`
	Player2               string    `gorm:"column:player2;type:varchar(255);not null"                 json:"p2"`
	Player3               string    `gorm:"column:player3;type:varchar(255);not null"                 json:"p3"`
	Player4               string    `gorm:"column:player4;type:varchar(255);not null"                 json:"p4"`
	TransactionID         string    `gorm:"column:transaction_id;type:varchar(255);not null"          json:"transaction_id"`
	TransactionScreenshot *string   `gorm:"column:transaction_screenshot;type:text"                   json:"transaction_screenshot"`
	CreatedAt             time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
	UpdatedAt             time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeUpdate refreshes the UpdatedAt timestamp before saving.
func (t *Team) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}
