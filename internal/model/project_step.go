package model

import "time"

// ProjectStep gives a Step a position inside a Project's ordered column list.
// Positions within one project are kept contiguous 1..N, where N is the number
// of rows for that project. There is deliberately no unique index on
// (project_id, position): the move algorithm shifts siblings through
// intermediate states that would violate it mid-transaction.
type ProjectStep struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProjectID uint      `gorm:"not null;uniqueIndex:uk_project_step;index:idx_ps_project" json:"project_id"`
	StepID    uint      `gorm:"not null;uniqueIndex:uk_project_step" json:"step_id"`
	Position  int       `gorm:"not null" json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Step *Step `gorm:"foreignKey:StepID" json:"step,omitempty"`
}

func (ProjectStep) TableName() string { return "project_steps" }
