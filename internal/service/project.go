package service

import (
	"errors"
	"fmt"

	"github.com/Zaker237/projectboard/internal/model"
	"gorm.io/gorm"
)

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

func (s *ProjectService) List() ([]model.Project, error) {
	projects := make([]model.Project, 0)
	if err := s.db.Preload("Owner").Order("updated_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *ProjectService) ListByOwner(ownerID uint) ([]model.Project, error) {
	if !checkExists(s.db, &model.User{}, ownerID) {
		return nil, fmt.Errorf("40401:user not found: id=%d", ownerID)
	}
	projects := make([]model.Project, 0)
	err := s.db.Where("owner_id = ?", ownerID).Order("updated_at DESC").Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *ProjectService) GetByID(id uint) (*model.Project, error) {
	var project model.Project
	err := s.db.Preload("Owner").Preload("Members.User").First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("40402:project not found: id=%d", id)
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *ProjectService) Create(project *model.Project) (*model.Project, error) {
	if !checkExists(s.db, &model.User{}, project.OwnerID) {
		return nil, fmt.Errorf("40401:user not found: id=%d", project.OwnerID)
	}
	var count int64
	s.db.Model(&model.Project{}).
		Where("owner_id = ? AND name = ?", project.OwnerID, project.Name).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("40901:owner already has a project with this name")
	}
	if err := s.db.Create(project).Error; err != nil {
		return nil, err
	}
	s.db.Preload("Owner").First(project, project.ID)
	return project, nil
}

func (s *ProjectService) Update(id uint, updates map[string]interface{}) (*model.Project, error) {
	project, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if name, ok := updates["name"]; ok {
		var count int64
		s.db.Model(&model.Project{}).
			Where("owner_id = ? AND name = ? AND id <> ?", project.OwnerID, name, id).Count(&count)
		if count > 0 {
			return nil, fmt.Errorf("40901:owner already has a project with this name")
		}
	}
	if err := s.db.Model(&model.Project{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Delete removes the project together with its join rows. Step and card
// entities are shared resources and stay.
func (s *ProjectService) Delete(id uint) error {
	if !checkExists(s.db, &model.Project{}, id) {
		return fmt.Errorf("40402:project not found: id=%d", id)
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&model.ProjectStep{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&model.ProjectMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Project{}, id).Error
	})
}
