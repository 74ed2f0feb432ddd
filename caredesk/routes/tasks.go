package routes

import (
	"caredesk/caredesk/config"
	"caredesk/caredesk/controllers"
	"caredesk/caredesk/middlewares"
	"caredesk/caredesk/utils/types"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func TasksRoutes(ctrl *controllers.TasksController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares.AuthMiddleware(cfg))

	r.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
		id, _ := doctorID(r)
		var req types.TaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, http.StatusBadRequest, err
		}
		if req.Title == "" {
			return nil, http.StatusBadRequest, errors.New("title is required")
		}
		task, err := ctrl.CreateTask(r.Context(), id, req)
		if err != nil {
			return nil, http.StatusInternalServerError, err
		}
		return task, http.StatusCreated, nil
	}))

	r.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
		id, _ := doctorID(r)
		tasks, err := ctrl.ListTasks(r.Context(), id, r.URL.Query().Get("project"))
		if err != nil {
			return nil, http.StatusInternalServerError, err
		}
		return tasks, http.StatusOK, nil
	}))

	r.Get("/{task_id}", handleJSON(func(r *http.Request) (any, int, error) {
		id, _ := doctorID(r)
		taskID, err := uuid.Parse(chi.URLParam(r, "task_id"))
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		task, err := ctrl.GetTask(r.Context(), id, taskID)
		if err != nil {
			return nil, http.StatusInternalServerError, err
		}
		if task == nil {
			return nil, http.StatusNotFound, errors.New("task not found")
		}
		return task, http.StatusOK, nil
	}))

	r.Patch("/{task_id}", handleJSON(func(r *http.Request) (any, int, error) {
		id, _ := doctorID(r)
		taskID, err := uuid.Parse(chi.URLParam(r, "task_id"))
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		var updates map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
			return nil, http.StatusBadRequest, err
		}
		if err := ctrl.UpdateTask(r.Context(), id, taskID, updates); err != nil {
			return nil, http.StatusNotFound, err
		}
		return map[string]string{"status": "updated"}, http.StatusOK, nil
	}))

	r.Post("/{task_id}/complete", handleJSON(func(r *http.Request) (any, int, error) {
		id, _ := doctorID(r)
		taskID, err := uuid.Parse(chi.URLParam(r, "task_id"))
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		var req struct {
			Completed bool `json:"completed"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, http.StatusBadRequest, err
		}
		if err := ctrl.CompleteTask(r.Context(), id, taskID, req.Completed); err != nil {
			return nil, http.StatusNotFound, err
		}
		return map[string]string{"status": "updated"}, http.StatusOK, nil
	}))

	r.Delete("/{task_id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := doctorID(r)
		taskID, err := uuid.Parse(chi.URLParam(r, "task_id"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := ctrl.DeleteTask(r.Context(), id, taskID); err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	return r
}
