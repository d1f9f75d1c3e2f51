package model

import "time"

// Card is a task. It belongs to exactly one project and currently sits in
// exactly one of that project's steps.
type Card struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedByID uint      `gorm:"not null;uniqueIndex:uk_card;index:idx_card_creator" json:"created_by"`
	AssignToID  uint      `gorm:"not null;index:idx_card_assignee" json:"assign_to"`
	ProjectID   uint      `gorm:"not null;uniqueIndex:uk_card;index:idx_card_project" json:"project_id"`
	StepID      uint      `gorm:"not null;uniqueIndex:uk_card" json:"step_id"`
	Title       string    `gorm:"type:varchar(256);uniqueIndex:uk_card;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	CreatedBy *User    `gorm:"foreignKey:CreatedByID" json:"creator,omitempty"`
	AssignTo  *User    `gorm:"foreignKey:AssignToID" json:"assignee,omitempty"`
	Project   *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Step      *Step    `gorm:"foreignKey:StepID" json:"step,omitempty"`
}

func (Card) TableName() string { return "cards" }
