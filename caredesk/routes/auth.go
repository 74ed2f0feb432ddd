package routes

import (
	"caredesk/caredesk/controllers"
	"caredesk/caredesk/utils/types"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func AuthRoutes(ctrl *controllers.AuthController) chi.Router {
	r := chi.NewRouter()

	r.Post("/signup", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, http.StatusBadRequest, err
		}
		if req.Email == "" || req.Password == "" || req.FullName == "" {
			return nil, http.StatusBadRequest, errors.New("full_name, email and password are required")
		}
		token, err := ctrl.Signup(r.Context(), req)
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		return map[string]string{"token": token}, http.StatusCreated, nil
	}))

	r.Post("/login", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, http.StatusBadRequest, err
		}
		token, err := ctrl.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, controllers.ErrInvalidCredentials) {
				return nil, http.StatusUnauthorized, err
			}
			return nil, http.StatusInternalServerError, err
		}
		return map[string]string{"token": token}, http.StatusOK, nil
	}))

	return r
}
