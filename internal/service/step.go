package service

import (
	"errors"
	"fmt"

	"github.com/Zaker237/projectboard/internal/model"
	"gorm.io/gorm"
)

type StepService struct {
	db           *gorm.DB
	projectSteps *ProjectStepService
}

func NewStepService(db *gorm.DB, projectSteps *ProjectStepService) *StepService {
	return &StepService{db: db, projectSteps: projectSteps}
}

func (s *StepService) List() ([]model.Step, error) {
	steps := make([]model.Step, 0)
	if err := s.db.Order("id ASC").Find(&steps).Error; err != nil {
		return nil, err
	}
	return steps, nil
}

func (s *StepService) ListByCreator(userID uint) ([]model.Step, error) {
	if !checkExists(s.db, &model.User{}, userID) {
		return nil, fmt.Errorf("40401:user not found: id=%d", userID)
	}
	steps := make([]model.Step, 0)
	err := s.db.Where("created_by_id = ?", userID).Order("id ASC").Find(&steps).Error
	if err != nil {
		return nil, err
	}
	return steps, nil
}

func (s *StepService) GetByID(id uint) (*model.Step, error) {
	var step model.Step
	err := s.db.First(&step, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("40403:step not found: id=%d", id)
	}
	if err != nil {
		return nil, err
	}
	return &step, nil
}

func (s *StepService) Create(step *model.Step) (*model.Step, error) {
	if !checkExists(s.db, &model.User{}, step.CreatedByID) {
		return nil, fmt.Errorf("40401:user not found: id=%d", step.CreatedByID)
	}
	var count int64
	s.db.Model(&model.Step{}).
		Where("created_by_id = ? AND name = ?", step.CreatedByID, step.Name).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("40901:creator already has a step with this name")
	}
	if err := s.db.Create(step).Error; err != nil {
		return nil, err
	}
	return step, nil
}

func (s *StepService) Update(id uint, updates map[string]interface{}) (*model.Step, error) {
	step, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if name, ok := updates["name"]; ok {
		var count int64
		s.db.Model(&model.Step{}).
			Where("created_by_id = ? AND name = ? AND id <> ?", step.CreatedByID, name, id).Count(&count)
		if count > 0 {
			return nil, fmt.Errorf("40901:creator already has a step with this name")
		}
	}
	if err := s.db.Model(&model.Step{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Delete removes the step. The step is first detached from every project so
// no board is left with a hole in its sequence.
func (s *StepService) Delete(id uint) error {
	if !checkExists(s.db, &model.Step{}, id) {
		return fmt.Errorf("40403:step not found: id=%d", id)
	}
	if err := s.projectSteps.DetachAll(id); err != nil {
		return err
	}
	return s.db.Delete(&model.Step{}, id).Error
}
