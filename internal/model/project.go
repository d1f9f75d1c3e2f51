package model

import "time"

type Project struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OwnerID     uint      `gorm:"not null;uniqueIndex:uk_owner_name;index:idx_owner_id" json:"owner_id"`
	Name        string    `gorm:"type:varchar(128);uniqueIndex:uk_owner_name;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	StartAt     time.Time `gorm:"not null" json:"start_at"`
	EndsAt      time.Time `gorm:"not null" json:"ends_at"`
	Public      bool      `gorm:"default:false" json:"public"`
	Closed      bool      `gorm:"default:false" json:"closed"`
	GithubLink  string    `gorm:"type:varchar(512)" json:"githublink"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Owner   *User           `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Members []ProjectMember `gorm:"foreignKey:ProjectID" json:"members,omitempty"`
}

func (Project) TableName() string { return "projects" }
