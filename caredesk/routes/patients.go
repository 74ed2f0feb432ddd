package routes

import (
	"caredesk/caredesk/config"
	"caredesk/caredesk/controllers"
	"caredesk/caredesk/middlewares"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func PatientsRoutes(ctrl *controllers.PatientsController, docs *controllers.DocumentsController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares.AuthMiddleware(cfg))

	patientParam := func(r *http.Request) (uuid.UUID, error) {
		return uuid.Parse(chi.URLParam(r, "patient_id"))
	}

	r.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
		id, ok := doctorID(r)
		if !ok {
			return nil, http.StatusUnauthorized, errors.New("unauthorized")
		}
		patients, err := ctrl.ListPatients(r.Context(), id)
		if err != nil {
			return nil, http.StatusInternalServerError, err
		}
		return patients, http.StatusOK, nil
	}))

	r.Get("/{patient_id}", handleJSON(func(r *http.Request) (any, int, error) {
		id, _ := doctorID(r)
		pid, err := patientParam(r)
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		patient, err := ctrl.GetPatient(r.Context(), id, pid)
		if err != nil {
			if errors.Is(err, controllers.ErrPatientNotFound) {
				return nil, http.StatusNotFound, err
			}
			return nil, http.StatusInternalServerError, err
		}
		return patient, http.StatusOK, nil
	}))

	r.Get("/{patient_id}/chart", handleJSON(func(r *http.Request) (any, int, error) {
		id, _ := doctorID(r)
		pid, err := patientParam(r)
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		chart, err := ctrl.GetChart(r.Context(), id, pid)
		if err != nil {
			if errors.Is(err, controllers.ErrPatientNotFound) {
				return nil, http.StatusNotFound, err
			}
			return nil, http.StatusInternalServerError, err
		}
		return chart, http.StatusOK, nil
	}))

	r.Get("/{patient_id}/suggestions", handleJSON(func(r *http.Request) (any, int, error) {
		id, _ := doctorID(r)
		pid, err := patientParam(r)
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		suggestions, err := ctrl.Suggestions(r.Context(), id, pid)
		if err != nil {
			if errors.Is(err, controllers.ErrPatientNotFound) {
				return nil, http.StatusNotFound, err
			}
			return nil, http.StatusInternalServerError, err
		}
		return map[string]any{"suggestions": suggestions}, http.StatusOK, nil
	}))

	// Chart attachments (object-store backed).
	r.Post("/{patient_id}/documents", handleJSON(func(r *http.Request) (any, int, error) {
		id, _ := doctorID(r)
		pid, err := patientParam(r)
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		defer file.Close()
		key, err := docs.Upload(r.Context(), id, pid, header.Filename,
			header.Header.Get("Content-Type"), header.Size, file)
		if err != nil {
			if errors.Is(err, controllers.ErrPatientNotFound) {
				return nil, http.StatusNotFound, err
			}
			return nil, http.StatusInternalServerError, err
		}
		return map[string]string{"key": key}, http.StatusCreated, nil
	}))

	r.Get("/{patient_id}/documents/download", func(w http.ResponseWriter, r *http.Request) {
		id, _ := doctorID(r)
		pid, err := patientParam(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		key := r.URL.Query().Get("key")
		if key == "" {
			http.Error(w, "key query parameter is required", http.StatusBadRequest)
			return
		}
		body, err := docs.Fetch(r.Context(), id, pid, key)
		if err != nil {
			if errors.Is(err, controllers.ErrPatientNotFound) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer body.Close()
		w.Header().Set("Content-Type", "application/octet-stream")
		io.Copy(w, body)
	})

	r.Get("/{patient_id}/documents", handleJSON(func(r *http.Request) (any, int, error) {
		id, _ := doctorID(r)
		pid, err := patientParam(r)
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		list, err := docs.List(r.Context(), id, pid)
		if err != nil {
			if errors.Is(err, controllers.ErrPatientNotFound) {
				return nil, http.StatusNotFound, err
			}
			return nil, http.StatusInternalServerError, err
		}
		return list, http.StatusOK, nil
	}))

	return r
}
