package model

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(64);uniqueIndex:uk_username;not null" json:"username"`
	Firstname string    `gorm:"type:varchar(64)" json:"firstname"`
	Lastname  string    `gorm:"type:varchar(64)" json:"lastname"`
	Email     string    `gorm:"type:varchar(128);uniqueIndex:uk_email;not null" json:"email"`
	GoogleID  string    `gorm:"type:varchar(128);uniqueIndex:uk_google_id;not null" json:"-"`
	Admin     bool      `gorm:"default:false" json:"admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

type UserBrief struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Firstname string `json:"firstname,omitempty"`
	Lastname  string `json:"lastname,omitempty"`
	Email     string `json:"email,omitempty"`
	Admin     bool   `json:"admin"`
}

func (u *User) Brief() UserBrief {
	return UserBrief{
		ID:        u.ID,
		Username:  u.Username,
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
		Email:     u.Email,
		Admin:     u.Admin,
	}
}
