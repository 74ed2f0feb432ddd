package dao

import (
	"caredesk/caredesk/sources/psql/models"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskDAO struct {
	DB *gorm.DB
}

func NewTaskDAO(db *gorm.DB) *TaskDAO {
	return &TaskDAO{DB: db}
}

func (dao *TaskDAO) CreateTask(ctx context.Context, task *models.Task) error {
	return dao.DB.WithContext(ctx).Create(task).Error
}

func (dao *TaskDAO) GetTaskByID(ctx context.Context, doctorID int, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := dao.DB.WithContext(ctx).
		Where("id = ? AND doctor_id = ?", id, doctorID).
		First(&task).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (dao *TaskDAO) ListTasksByDoctor(ctx context.Context, doctorID int, project string) ([]models.Task, error) {
	q := dao.DB.WithContext(ctx).Where("doctor_id = ?", doctorID)
	if project != "" {
		q = q.Where("project = ?", project)
	}
	var tasks []models.Task
	err := q.Order("completed ASC, priority DESC, created_at ASC").Find(&tasks).Error
	return tasks, err
}

func (dao *TaskDAO) UpdateTask(ctx context.Context, doctorID int, id uuid.UUID, updates map[string]interface{}) error {
	res := dao.DB.WithContext(ctx).
		Model(&models.Task{}).
		Where("id = ? AND doctor_id = ?", id, doctorID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("task not found or forbidden")
	}
	return nil
}

// CompleteTask toggles completion, stamping or clearing completed_at.
func (dao *TaskDAO) CompleteTask(ctx context.Context, doctorID int, id uuid.UUID, completed bool) error {
	updates := map[string]interface{}{"completed": completed}
	if completed {
		now := time.Now()
		updates["completed_at"] = &now
	} else {
		updates["completed_at"] = nil
	}
	return dao.UpdateTask(ctx, doctorID, id, updates)
}

func (dao *TaskDAO) DeleteTask(ctx context.Context, doctorID int, id uuid.UUID) error {
	res := dao.DB.WithContext(ctx).
		Where("id = ? AND doctor_id = ?", id, doctorID).
		Delete(&models.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("task not found or forbidden")
	}
	return nil
}
