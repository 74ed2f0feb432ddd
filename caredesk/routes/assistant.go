package routes

import (
	"caredesk/caredesk/config"
	"caredesk/caredesk/controllers"
	"caredesk/caredesk/middlewares"
	"caredesk/caredesk/services/search"
	"caredesk/caredesk/services/suggest"
	"caredesk/caredesk/utils/types"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
)

func AssistantRoutes(ctrl *controllers.AssistantController, cfg config.Config) chi.Router {
	r := chi.NewRouter()

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		// POST /assistant/search : submit one query for the doctor's session
		gr.Post("/search", handleJSON(func(r *http.Request) (any, int, error) {
			id, _ := doctorID(r)
			var req types.SearchRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				return nil, http.StatusBadRequest, err
			}
			turn, err := ctrl.Search(r.Context(), id, req)
			if err != nil {
				if errors.Is(err, search.ErrEmptyQuery) {
					return nil, http.StatusBadRequest, err
				}
				if errors.Is(err, search.ErrSuperseded) {
					// Not a failure: a newer query took over this session.
					return map[string]bool{"superseded": true}, http.StatusOK, nil
				}
				return nil, http.StatusBadGateway, err
			}
			return turn, http.StatusOK, nil
		}))

		gr.Get("/session", handleJSON(func(r *http.Request) (any, int, error) {
			id, _ := doctorID(r)
			return ctrl.Session(id), http.StatusOK, nil
		}))

		gr.Post("/reset", handleJSON(func(r *http.Request) (any, int, error) {
			id, _ := doctorID(r)
			ctrl.Reset(id)
			return map[string]string{"status": "reset"}, http.StatusOK, nil
		}))

		gr.Get("/history", handleJSON(func(r *http.Request) (any, int, error) {
			id, _ := doctorID(r)
			limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
			turns, err := ctrl.History(r.Context(), id, limit)
			if err != nil {
				return nil, http.StatusInternalServerError, err
			}
			return turns, http.StatusOK, nil
		}))

		// POST /assistant/history/{turn_id}/select : re-display a past turn
		gr.Post("/history/{turn_id}/select", handleJSON(func(r *http.Request) (any, int, error) {
			id, _ := doctorID(r)
			turn, err := ctrl.SelectHistory(r.Context(), id, chi.URLParam(r, "turn_id"))
			if err != nil {
				return nil, http.StatusNotFound, err
			}
			return turn, http.StatusOK, nil
		}))

		// GET /assistant/suggestions : fallback list when no patient is open
		gr.Get("/suggestions", handleJSON(func(r *http.Request) (any, int, error) {
			return map[string]any{"suggestions": suggest.GeneralSuggestions()}, http.StatusOK, nil
		}))
	})

	// One query per connection: first frame carries the token and request,
	// the reply frame carries the turn or an error.
	r.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusInternalError, "internal error")

		ctx := r.Context()
		typ, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		if typ != websocket.MessageText {
			conn.Close(websocket.StatusUnsupportedData, "unsupported data")
			return
		}
		var input struct {
			Token         string              `json:"token"`
			SearchRequest types.SearchRequest `json:"search_request"`
		}
		if err := json.Unmarshal(data, &input); err != nil {
			conn.Write(ctx, websocket.MessageText, []byte(`{"error":"invalid json"}`))
			return
		}

		id, err := middlewares.ParseToken(cfg, input.Token)
		if err != nil {
			conn.Write(ctx, websocket.MessageText, []byte(`{"error":"invalid token"}`))
			conn.Close(websocket.StatusPolicyViolation, "invalid token")
			return
		}

		turn, err := ctrl.Search(ctx, id, input.SearchRequest)
		if err != nil {
			if errors.Is(err, search.ErrSuperseded) {
				conn.Write(ctx, websocket.MessageText, []byte(`{"superseded":true}`))
				conn.Close(websocket.StatusNormalClosure, "")
				return
			}
			payload, _ := json.Marshal(map[string]string{"error": err.Error()})
			conn.Write(ctx, websocket.MessageText, payload)
			conn.Close(websocket.StatusInternalError, "search error")
			return
		}
		payload, _ := json.Marshal(turn)
		conn.Write(ctx, websocket.MessageText, payload)
		conn.Close(websocket.StatusNormalClosure, "")
	})

	return r
}
