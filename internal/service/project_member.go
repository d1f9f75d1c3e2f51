package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Zaker237/projectboard/internal/events"
	"github.com/Zaker237/projectboard/internal/model"
	"github.com/Zaker237/projectboard/internal/notify"
	"gorm.io/gorm"
)

// ProjectMemberService manages project membership. Unlike steps, members
// carry no ordering, only an admin flag.
type ProjectMemberService struct {
	db       *gorm.DB
	hub      *events.Hub
	notifier notify.Notifier
}

func NewProjectMemberService(db *gorm.DB) *ProjectMemberService {
	return &ProjectMemberService{db: db, notifier: notify.NoopNotifier{}}
}

func (s *ProjectMemberService) SetHub(hub *events.Hub)        { s.hub = hub }
func (s *ProjectMemberService) SetNotifier(n notify.Notifier) { s.notifier = n }

func (s *ProjectMemberService) ListMembers(projectID uint) ([]model.ProjectMember, error) {
	if !checkExists(s.db, &model.Project{}, projectID) {
		return nil, fmt.Errorf("40402:project not found: id=%d", projectID)
	}
	members := make([]model.ProjectMember, 0)
	err := s.db.Preload("User").
		Where("project_id = ?", projectID).
		Order("id ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (s *ProjectMemberService) AddMember(projectID, userID uint, admin bool) error {
	if !checkExists(s.db, &model.Project{}, projectID) {
		return fmt.Errorf("40402:project not found: id=%d", projectID)
	}
	if !checkExists(s.db, &model.User{}, userID) {
		return fmt.Errorf("40401:user not found: id=%d", userID)
	}

	var count int64
	s.db.Model(&model.ProjectMember{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).Count(&count)
	if count > 0 {
		return fmt.Errorf("40903:user is already a member of the project")
	}

	member := &model.ProjectMember{ProjectID: projectID, UserID: userID, Admin: admin}
	if err := s.db.Create(member).Error; err != nil {
		return err
	}

	s.broadcast(projectID, events.TypeMemberAdded, events.MemberPayload{
		ProjectID: projectID, UserID: userID, Admin: admin,
	})
	return nil
}

// UpdateMember toggles the admin flag of an existing membership.
func (s *ProjectMemberService) UpdateMember(projectID, userID uint, admin bool) error {
	if !checkExists(s.db, &model.Project{}, projectID) {
		return fmt.Errorf("40402:project not found: id=%d", projectID)
	}
	if !checkExists(s.db, &model.User{}, userID) {
		return fmt.Errorf("40401:user not found: id=%d", userID)
	}

	var member model.ProjectMember
	err := s.db.Where("project_id = ? AND user_id = ?", projectID, userID).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("40407:user is not a member of the project")
	}
	if err != nil {
		return err
	}
	return s.db.Model(&member).UpdateColumn("admin", admin).Error
}

func (s *ProjectMemberService) RemoveMember(projectID, userID uint) error {
	if !checkExists(s.db, &model.Project{}, projectID) {
		return fmt.Errorf("40402:project not found: id=%d", projectID)
	}
	if !checkExists(s.db, &model.User{}, userID) {
		return fmt.Errorf("40401:user not found: id=%d", userID)
	}

	result := s.db.Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&model.ProjectMember{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("40407:user is not a member of the project")
	}

	s.broadcast(projectID, events.TypeMemberRemoved, events.MemberPayload{
		ProjectID: projectID, UserID: userID,
	})
	return nil
}

func (s *ProjectMemberService) broadcast(projectID uint, typ string, data interface{}) {
	if s.hub != nil {
		s.hub.Broadcast(projectID, events.Event{Type: typ, Data: data})
	}
	if s.notifier != nil {
		_ = s.notifier.NotifyBoardChanged(context.Background(), notify.BoardChangedEvent{
			ProjectID: projectID, Type: typ, Data: data,
		})
	}
}
