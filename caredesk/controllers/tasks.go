package controllers

import (
	"caredesk/caredesk/sources/psql/dao"
	"caredesk/caredesk/sources/psql/models"
	"caredesk/caredesk/utils/types"
	"context"

	"github.com/google/uuid"
)

type TasksController struct {
	dao *dao.TaskDAO
}

func NewTasksController(dao *dao.TaskDAO) *TasksController {
	return &TasksController{dao: dao}
}

func (c *TasksController) CreateTask(ctx context.Context, doctorID int, req types.TaskRequest) (*models.Task, error) {
	task := &models.Task{
		DoctorID:    doctorID,
		Title:       req.Title,
		Description: req.Description,
		Project:     req.Project,
		Labels:      req.Labels,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	}
	if err := c.dao.CreateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (c *TasksController) ListTasks(ctx context.Context, doctorID int, project string) ([]models.Task, error) {
	return c.dao.ListTasksByDoctor(ctx, doctorID, project)
}

func (c *TasksController) GetTask(ctx context.Context, doctorID int, id uuid.UUID) (*models.Task, error) {
	return c.dao.GetTaskByID(ctx, doctorID, id)
}

func (c *TasksController) UpdateTask(ctx context.Context, doctorID int, id uuid.UUID, updates map[string]interface{}) error {
	return c.dao.UpdateTask(ctx, doctorID, id, updates)
}

func (c *TasksController) CompleteTask(ctx context.Context, doctorID int, id uuid.UUID, completed bool) error {
	return c.dao.CompleteTask(ctx, doctorID, id, completed)
}

func (c *TasksController) DeleteTask(ctx context.Context, doctorID int, id uuid.UUID) error {
	return c.dao.DeleteTask(ctx, doctorID, id)
}
