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

type CardService struct {
	db       *gorm.DB
	hub      *events.Hub
	notifier notify.Notifier
}

func NewCardService(db *gorm.DB) *CardService {
	return &CardService{db: db, notifier: notify.NoopNotifier{}}
}

func (s *CardService) SetHub(hub *events.Hub)        { s.hub = hub }
func (s *CardService) SetNotifier(n notify.Notifier) { s.notifier = n }

func (s *CardService) List() ([]model.Card, error) {
	cards := make([]model.Card, 0)
	if err := s.db.Order("id ASC").Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

func (s *CardService) ListByCreator(userID uint) ([]model.Card, error) {
	if !checkExists(s.db, &model.User{}, userID) {
		return nil, fmt.Errorf("40401:user not found: id=%d", userID)
	}
	cards := make([]model.Card, 0)
	err := s.db.Where("created_by_id = ?", userID).Order("id ASC").Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (s *CardService) ListByProject(projectID uint) ([]model.Card, error) {
	if !checkExists(s.db, &model.Project{}, projectID) {
		return nil, fmt.Errorf("40402:project not found: id=%d", projectID)
	}
	cards := make([]model.Card, 0)
	err := s.db.Where("project_id = ?", projectID).Order("id ASC").Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}

// ListByProjectStep returns the cards sitting in one column of a board.
func (s *CardService) ListByProjectStep(projectID, stepID uint) ([]model.Card, error) {
	if !checkExists(s.db, &model.Project{}, projectID) {
		return nil, fmt.Errorf("40402:project not found: id=%d", projectID)
	}
	if !checkExists(s.db, &model.Step{}, stepID) {
		return nil, fmt.Errorf("40403:step not found: id=%d", stepID)
	}
	cards := make([]model.Card, 0)
	err := s.db.Where("project_id = ? AND step_id = ?", projectID, stepID).
		Order("id ASC").Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (s *CardService) GetByID(id uint) (*model.Card, error) {
	var card model.Card
	err := s.db.First(&card, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("40404:card not found: id=%d", id)
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (s *CardService) Create(card *model.Card) (*model.Card, error) {
	if !checkExists(s.db, &model.User{}, card.CreatedByID) {
		return nil, fmt.Errorf("40401:user not found: id=%d", card.CreatedByID)
	}
	if !checkExists(s.db, &model.User{}, card.AssignToID) {
		return nil, fmt.Errorf("40401:user not found: id=%d", card.AssignToID)
	}
	if !checkExists(s.db, &model.Project{}, card.ProjectID) {
		return nil, fmt.Errorf("40402:project not found: id=%d", card.ProjectID)
	}
	if !checkExists(s.db, &model.Step{}, card.StepID) {
		return nil, fmt.Errorf("40403:step not found: id=%d", card.StepID)
	}
	if !s.stepOnBoard(card.ProjectID, card.StepID) {
		return nil, fmt.Errorf("40406:step is not in the project")
	}

	var count int64
	s.db.Model(&model.Card{}).
		Where("created_by_id = ? AND project_id = ? AND step_id = ? AND title = ?",
			card.CreatedByID, card.ProjectID, card.StepID, card.Title).
		Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("40901:card with this title already exists in the step")
	}

	if err := s.db.Create(card).Error; err != nil {
		return nil, err
	}

	s.broadcast(card.ProjectID, events.TypeCardCreated, events.CardPayload{
		ProjectID: card.ProjectID, StepID: card.StepID, CardID: card.ID, Title: card.Title,
	})
	return card, nil
}

// Update patches a card. Changing step_id moves the card to another column of
// the same board; the target step must be attached to the card's project.
func (s *CardService) Update(id uint, updates map[string]interface{}) (*model.Card, error) {
	card, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if assignTo, ok := updates["assign_to_id"]; ok {
		if !checkExists(s.db, &model.User{}, toUint(assignTo)) {
			return nil, fmt.Errorf("40401:user not found: id=%v", assignTo)
		}
	}
	if stepID, ok := updates["step_id"]; ok {
		sid := toUint(stepID)
		if !checkExists(s.db, &model.Step{}, sid) {
			return nil, fmt.Errorf("40403:step not found: id=%d", sid)
		}
		if !s.stepOnBoard(card.ProjectID, sid) {
			return nil, fmt.Errorf("40406:step is not in the project")
		}
	}

	if err := s.db.Model(&model.Card{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	updated, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	s.broadcast(updated.ProjectID, events.TypeCardUpdated, events.CardPayload{
		ProjectID: updated.ProjectID, StepID: updated.StepID, CardID: updated.ID, Title: updated.Title,
	})
	return updated, nil
}

func (s *CardService) Delete(id uint) error {
	card, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(&model.Card{}, id).Error; err != nil {
		return err
	}
	s.broadcast(card.ProjectID, events.TypeCardDeleted, events.CardPayload{
		ProjectID: card.ProjectID, StepID: card.StepID, CardID: card.ID, Title: card.Title,
	})
	return nil
}

func (s *CardService) stepOnBoard(projectID, stepID uint) bool {
	var count int64
	s.db.Model(&model.ProjectStep{}).
		Where("project_id = ? AND step_id = ?", projectID, stepID).Count(&count)
	return count > 0
}

func (s *CardService) broadcast(projectID uint, typ string, data interface{}) {
	if s.hub != nil {
		s.hub.Broadcast(projectID, events.Event{Type: typ, Data: data})
	}
	if s.notifier != nil {
		_ = s.notifier.NotifyBoardChanged(context.Background(), notify.BoardChangedEvent{
			ProjectID: projectID, Type: typ, Data: data,
		})
	}
}

func toUint(v interface{}) uint {
	switch n := v.(type) {
	case uint:
		return n
	case int:
		return uint(n)
	case int64:
		return uint(n)
	case float64:
		return uint(n)
	}
	return 0
}
