package model

import "time"

type Comment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedByID uint      `gorm:"not null;index:idx_comment_creator" json:"created_by"`
	CardID      uint      `gorm:"not null;index:idx_comment_card" json:"card_id"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	CreatedBy *User `gorm:"foreignKey:CreatedByID" json:"creator,omitempty"`
	Card      *Card `gorm:"foreignKey:CardID" json:"card,omitempty"`
}

func (Comment) TableName() string { return "comments" }
