package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Zaker237/projectboard/internal/events"
	"github.com/Zaker237/projectboard/internal/model"
	"github.com/Zaker237/projectboard/internal/notify"
	"gorm.io/gorm"
)

// ProjectStepService maintains the ordered list of steps attached to a
// project. Positions are 1-based and contiguous: after any successful
// mutation the positions of a project's rows are exactly 1..N, where N is the
// number of rows for that project.
//
// The store gives no atomicity across separate requests, so every mutation
// holds a per-project lock for its whole read-shift-write cycle and performs
// its multi-row writes inside a single transaction.
type ProjectStepService struct {
	db       *gorm.DB
	locks    projectLocks
	hub      *events.Hub
	notifier notify.Notifier
}

func NewProjectStepService(db *gorm.DB) *ProjectStepService {
	return &ProjectStepService{db: db, notifier: notify.NoopNotifier{}}
}

func (s *ProjectStepService) SetHub(hub *events.Hub)        { s.hub = hub }
func (s *ProjectStepService) SetNotifier(n notify.Notifier) { s.notifier = n }

// projectLocks serializes ordering mutations per project within this process.
// Two interleaved moves on the same project would otherwise tear the sequence.
type projectLocks struct {
	mu sync.Mutex
	m  map[uint]*sync.Mutex
}

func (l *projectLocks) lock(projectID uint) *sync.Mutex {
	l.mu.Lock()
	if l.m == nil {
		l.m = make(map[uint]*sync.Mutex)
	}
	pl, ok := l.m[projectID]
	if !ok {
		pl = &sync.Mutex{}
		l.m[projectID] = pl
	}
	l.mu.Unlock()
	pl.Lock()
	return pl
}

// ListSteps returns the project's steps ordered by board position.
func (s *ProjectStepService) ListSteps(projectID uint) ([]model.Step, error) {
	if !checkExists(s.db, &model.Project{}, projectID) {
		return nil, fmt.Errorf("40402:project not found: id=%d", projectID)
	}
	steps := make([]model.Step, 0)
	err := s.db.Model(&model.Step{}).
		Joins("JOIN project_steps ON project_steps.step_id = steps.id").
		Where("project_steps.project_id = ?", projectID).
		Order("project_steps.position ASC").
		Find(&steps).Error
	if err != nil {
		return nil, err
	}
	return steps, nil
}

// ListRows returns the raw join rows ordered by position, step preloaded.
func (s *ProjectStepService) ListRows(projectID uint) ([]model.ProjectStep, error) {
	if !checkExists(s.db, &model.Project{}, projectID) {
		return nil, fmt.Errorf("40402:project not found: id=%d", projectID)
	}
	rows := make([]model.ProjectStep, 0)
	err := s.db.Preload("Step").
		Where("project_id = ?", projectID).
		Order("position ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// AddStep appends the step to the end of the project's board.
func (s *ProjectStepService) AddStep(projectID, stepID uint) error {
	pl := s.locks.lock(projectID)
	defer pl.Unlock()

	if !checkExists(s.db, &model.Project{}, projectID) {
		return fmt.Errorf("40402:project not found: id=%d", projectID)
	}
	if !checkExists(s.db, &model.Step{}, stepID) {
		return fmt.Errorf("40403:step not found: id=%d", stepID)
	}

	var count int64
	s.db.Model(&model.ProjectStep{}).
		Where("project_id = ? AND step_id = ?", projectID, stepID).Count(&count)
	if count > 0 {
		return fmt.Errorf("40902:step is already in the project")
	}

	var position int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.ProjectStep{}).
			Where("project_id = ?", projectID).Count(&n).Error; err != nil {
			return err
		}
		position = int(n) + 1
		row := &model.ProjectStep{ProjectID: projectID, StepID: stepID, Position: position}
		return tx.Create(row).Error
	})
	if err != nil {
		return err
	}

	s.broadcast(projectID, events.TypeStepAttached, events.StepPayload{
		ProjectID: projectID, StepID: stepID, Position: position,
	})
	return nil
}

// RemoveStep detaches the step and closes the gap it leaves: every sibling
// past the removed position moves one slot earlier.
func (s *ProjectStepService) RemoveStep(projectID, stepID uint) error {
	pl := s.locks.lock(projectID)
	defer pl.Unlock()

	if !checkExists(s.db, &model.Project{}, projectID) {
		return fmt.Errorf("40402:project not found: id=%d", projectID)
	}
	if !checkExists(s.db, &model.Step{}, stepID) {
		return fmt.Errorf("40403:step not found: id=%d", stepID)
	}

	var ps model.ProjectStep
	err := s.db.Where("project_id = ? AND step_id = ?", projectID, stepID).First(&ps).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("40406:step is not in the project")
	}
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.ProjectStep{}, ps.ID).Error; err != nil {
			return err
		}
		return tx.Model(&model.ProjectStep{}).
			Where("project_id = ? AND position > ?", projectID, ps.Position).
			UpdateColumn("position", gorm.Expr("position - 1")).Error
	})
	if err != nil {
		return err
	}

	s.broadcast(projectID, events.TypeStepDetached, events.StepPayload{
		ProjectID: projectID, StepID: stepID, Position: ps.Position,
	})
	return nil
}

// MoveStep places the step at newPos, shifting the siblings in between by one
// to make room. Moving earlier shifts [newPos, cur) one slot later; moving
// later shifts (cur, newPos] one slot earlier. The shifted set and the target
// are disjoint, so no two rows land on the same position.
func (s *ProjectStepService) MoveStep(projectID, stepID uint, newPos int) error {
	pl := s.locks.lock(projectID)
	defer pl.Unlock()

	if !checkExists(s.db, &model.Project{}, projectID) {
		return fmt.Errorf("40402:project not found: id=%d", projectID)
	}
	if !checkExists(s.db, &model.Step{}, stepID) {
		return fmt.Errorf("40403:step not found: id=%d", stepID)
	}

	var ps model.ProjectStep
	err := s.db.Where("project_id = ? AND step_id = ?", projectID, stepID).First(&ps).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("40406:step is not yet in the project")
	}
	if err != nil {
		return err
	}

	var n int64
	s.db.Model(&model.ProjectStep{}).Where("project_id = ?", projectID).Count(&n)
	if newPos < 1 || newPos > int(n) {
		return fmt.Errorf("40002:position out of range: %d (valid 1..%d)", newPos, n)
	}
	if newPos == ps.Position {
		return nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if ps.Position > newPos {
			if err := tx.Model(&model.ProjectStep{}).
				Where("project_id = ? AND id <> ? AND position >= ? AND position < ?",
					projectID, ps.ID, newPos, ps.Position).
				UpdateColumn("position", gorm.Expr("position + 1")).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Model(&model.ProjectStep{}).
				Where("project_id = ? AND id <> ? AND position > ? AND position <= ?",
					projectID, ps.ID, ps.Position, newPos).
				UpdateColumn("position", gorm.Expr("position - 1")).Error; err != nil {
				return err
			}
		}
		return tx.Model(&model.ProjectStep{}).
			Where("id = ?", ps.ID).
			UpdateColumn("position", newPos).Error
	})
	if err != nil {
		return err
	}

	s.broadcast(projectID, events.TypeStepMoved, events.StepMovedPayload{
		ProjectID: projectID, StepID: stepID, From: ps.Position, To: newPos,
	})
	return nil
}

// DetachAll removes the step from every project it is attached to, compacting
// each board. Called when a step is deleted.
func (s *ProjectStepService) DetachAll(stepID uint) error {
	var rows []model.ProjectStep
	if err := s.db.Where("step_id = ?", stepID).Find(&rows).Error; err != nil {
		return err
	}
	for _, row := range rows {
		pl := s.locks.lock(row.ProjectID)
		err := s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Delete(&model.ProjectStep{}, row.ID).Error; err != nil {
				return err
			}
			return tx.Model(&model.ProjectStep{}).
				Where("project_id = ? AND position > ?", row.ProjectID, row.Position).
				UpdateColumn("position", gorm.Expr("position - 1")).Error
		})
		pl.Unlock()
		if err != nil {
			return err
		}
		s.broadcast(row.ProjectID, events.TypeStepDetached, events.StepPayload{
			ProjectID: row.ProjectID, StepID: stepID, Position: row.Position,
		})
	}
	return nil
}

func (s *ProjectStepService) broadcast(projectID uint, typ string, data interface{}) {
	if s.hub != nil {
		s.hub.Broadcast(projectID, events.Event{Type: typ, Data: data})
	}
	if s.notifier != nil {
		_ = s.notifier.NotifyBoardChanged(context.Background(), notify.BoardChangedEvent{
			ProjectID: projectID, Type: typ, Data: data,
		})
	}
}
