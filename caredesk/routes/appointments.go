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

func AppointmentsRoutes(ctrl *controllers.AppointmentsController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares.AuthMiddleware(cfg))

	r.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
		id, _ := doctorID(r)
		var req types.AppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, http.StatusBadRequest, err
		}
		appt, err := ctrl.CreateAppointment(r.Context(), id, req)
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		return appt, http.StatusCreated, nil
	}))

	// GET /appointments?date=2026-08-31 : one day of the calendar
	r.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
		id, _ := doctorID(r)
		date := r.URL.Query().Get("date")
		if date == "" {
			return nil, http.StatusBadRequest, errors.New("date query parameter is required")
		}
		appts, err := ctrl.Calendar(r.Context(), id, date)
		if err != nil {
			return nil, http.StatusInternalServerError, err
		}
		return appts, http.StatusOK, nil
	}))

	r.Patch("/{appointment_id}/status", handleJSON(func(r *http.Request) (any, int, error) {
		id, _ := doctorID(r)
		apptID, err := uuid.Parse(chi.URLParam(r, "appointment_id"))
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		var req struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, http.StatusBadRequest, err
		}
		if err := ctrl.UpdateStatus(r.Context(), id, apptID, req.Status); err != nil {
			return nil, http.StatusNotFound, err
		}
		return map[string]string{"status": "updated"}, http.StatusOK, nil
	}))

	return r
}
