package model

import "time"

// Step is a kanban column. Steps are created independently of any project and
// attached to projects through ProjectStep rows.
type Step struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedByID uint      `gorm:"not null;uniqueIndex:uk_creator_name;index:idx_created_by" json:"created_by"`
	Name        string    `gorm:"type:varchar(128);uniqueIndex:uk_creator_name;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	CreatedBy *User `gorm:"foreignKey:CreatedByID" json:"creator,omitempty"`
}

func (Step) TableName() string { return "steps" }
