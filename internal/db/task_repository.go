package db

import (
	"github.com/terzostudio/gestionale/internal/models"
	"gorm.io/gorm"
)

const (
	taskListLimit     = 200
	upcomingTaskLimit = 6
)

type TaskRepository struct {
	database *gorm.DB
}

func NewTaskRepository(database *gorm.DB) *TaskRepository {
	return &TaskRepository{database: database}
}

func (repo *TaskRepository) List() ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	if err := repo.database.
		Order("done ASC, due_date ASC").
		Limit(taskListLimit).
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (repo *TaskRepository) Upcoming() ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	if err := repo.database.
		Order("done ASC, due_date ASC").
		Limit(upcomingTaskLimit).
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (repo *TaskRepository) Create(task *models.Task) error {
	return repo.database.Create(task).Error
}

// Toggle flips the done flag in a single conditional UPDATE. A missing id
// affects zero rows and is not an error.
func (repo *TaskRepository) Toggle(taskID uint) (int64, error) {
	result := repo.database.Model(&models.Task{}).Where("id = ?", taskID).
		Update("done", gorm.Expr("NOT done"))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (repo *TaskRepository) Delete(taskID uint) error {
	return repo.database.Delete(&models.Task{}, taskID).Error
}

func (repo *TaskRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Task{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
