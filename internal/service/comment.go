package service

import (
	"errors"
	"fmt"

	"github.com/Zaker237/projectboard/internal/model"
	"gorm.io/gorm"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

func (s *CommentService) List() ([]model.Comment, error) {
	comments := make([]model.Comment, 0)
	if err := s.db.Order("id ASC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *CommentService) ListByCreator(userID uint) ([]model.Comment, error) {
	if !checkExists(s.db, &model.User{}, userID) {
		return nil, fmt.Errorf("40401:user not found: id=%d", userID)
	}
	comments := make([]model.Comment, 0)
	err := s.db.Where("created_by_id = ?", userID).Order("id ASC").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *CommentService) ListByCard(cardID uint) ([]model.Comment, error) {
	if !checkExists(s.db, &model.Card{}, cardID) {
		return nil, fmt.Errorf("40404:card not found: id=%d", cardID)
	}
	comments := make([]model.Comment, 0)
	err := s.db.Where("card_id = ?", cardID).Order("id ASC").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *CommentService) GetByID(id uint) (*model.Comment, error) {
	var comment model.Comment
	err := s.db.First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("40405:comment not found: id=%d", id)
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *CommentService) Create(comment *model.Comment) (*model.Comment, error) {
	if !checkExists(s.db, &model.User{}, comment.CreatedByID) {
		return nil, fmt.Errorf("40401:user not found: id=%d", comment.CreatedByID)
	}
	if !checkExists(s.db, &model.Card{}, comment.CardID) {
		return nil, fmt.Errorf("40404:card not found: id=%d", comment.CardID)
	}
	if err := s.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) Update(id uint, updates map[string]interface{}) (*model.Comment, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}
	if err := s.db.Model(&model.Comment{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *CommentService) Delete(id uint) error {
	result := s.db.Delete(&model.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("40405:comment not found: id=%d", id)
	}
	return nil
}
