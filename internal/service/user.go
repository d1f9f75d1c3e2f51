package service

import (
	"errors"
	"fmt"

	"github.com/Zaker237/projectboard/internal/model"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) List() ([]model.User, error) {
	users := make([]model.User, 0)
	if err := s.db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) GetByID(id uint) (*model.User, error) {
	var user model.User
	err := s.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("40401:user not found: id=%d", id)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Create(user *model.User) (*model.User, error) {
	var count int64
	s.db.Model(&model.User{}).
		Where("username = ? OR email = ? OR google_id = ?", user.Username, user.Email, user.GoogleID).
		Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("40901:username, email or google account already taken")
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(id uint, updates map[string]interface{}) (*model.User, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}
	if username, ok := updates["username"]; ok {
		var count int64
		s.db.Model(&model.User{}).Where("username = ? AND id <> ?", username, id).Count(&count)
		if count > 0 {
			return nil, fmt.Errorf("40901:username already taken")
		}
	}
	if email, ok := updates["email"]; ok {
		var count int64
		s.db.Model(&model.User{}).Where("email = ? AND id <> ?", email, id).Count(&count)
		if count > 0 {
			return nil, fmt.Errorf("40901:email already taken")
		}
	}
	if err := s.db.Model(&model.User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *UserService) Delete(id uint) error {
	result := s.db.Delete(&model.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("40401:user not found: id=%d", id)
	}
	return nil
}
