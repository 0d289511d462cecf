package repository

import (
	"github.com/hmorita/group-task-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository over the given handle.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create inserts a task row
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(id string) (*models.Task, error) {
	var task models.Task
	if err := r.db.Where("id = ?", id).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Update saves changed task fields
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete removes a task row
func (r *GormTaskRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Task{}).Error
}

// ListByAssignee lists tasks assigned to a user, assigner preloaded
func (r *GormTaskRepository) ListByAssignee(userID string) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Preload("Assigner").
		Where("assignee_id = ?", userID).
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListByGroup lists tasks belonging to a group, assigner preloaded
func (r *GormTaskRepository) ListByGroup(groupID string) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Preload("Assigner").
		Where("group_id = ?", groupID).
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListCompleted lists completed tasks that are either assigned to the user
// directly or belong to the given group.
func (r *GormTaskRepository) ListCompleted(userID, groupID string) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Preload("Assigner").
		Where("completed = ?", true).
		Where("assignee_id = ? OR group_id = ?", userID, groupID).
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// SetCompleted flips the completed flag on a task
func (r *GormTaskRepository) SetCompleted(taskID string, completed bool) error {
	return r.db.Model(&models.Task{}).
		Where("id = ?", taskID).
		Update("completed", completed).Error
}
