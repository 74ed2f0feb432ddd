package routes

import (
	"caredesk/caredesk/middlewares"
	"encoding/json"
	"net/http"
)

// handleJSON wraps a handler returning (payload, status, error) to cut the
// encode/status boilerplate.
func handleJSON(handler func(r *http.Request) (any, int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, status, err := handler(r)
		if err != nil {
			http.Error(w, err.Error(), status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if res != nil {
			json.NewEncoder(w).Encode(res)
		}
	}
}

// doctorID pulls the authenticated doctor id placed by the auth middleware.
func doctorID(r *http.Request) (int, bool) {
	id, ok := r.Context().Value(middlewares.DoctorIDKey).(int)
	return id, ok
}
