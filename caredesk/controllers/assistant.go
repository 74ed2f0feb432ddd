package controllers

import (
	"caredesk/caredesk/services/search"
	"caredesk/caredesk/sources/psql/dao"
	"caredesk/caredesk/sources/psql/models"
	"caredesk/caredesk/utils/logging"
	"caredesk/caredesk/utils/types"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionView is the display-layer snapshot of one conversation session.
type SessionView struct {
	State   search.State  `json:"state"`
	Error   string        `json:"error,omitempty"`
	Turns   []search.Turn `json:"turns"`
	Current *search.Turn  `json:"current,omitempty"`
}

// AssistantController owns one Coordinator per logged-in doctor. The
// coordinator enforces the single-in-flight policy, so two racing HTTP
// submissions from the same doctor resolve to exactly one appended turn.
type AssistantController struct {
	doctorDAO  *dao.DoctorDAO
	patientDAO *dao.PatientDAO
	turnDAO    *dao.SearchTurnDAO
	agent      search.AgentClient

	mu       sync.Mutex
	sessions map[int]*search.Coordinator
}

func NewAssistantController(doctorDAO *dao.DoctorDAO, patientDAO *dao.PatientDAO, turnDAO *dao.SearchTurnDAO, agent search.AgentClient) *AssistantController {
	return &AssistantController{
		doctorDAO:  doctorDAO,
		patientDAO: patientDAO,
		turnDAO:    turnDAO,
		agent:      agent,
		sessions:   make(map[int]*search.Coordinator),
	}
}

func (c *AssistantController) coordinator(doctorID int) *search.Coordinator {
	c.mu.Lock()
	defer c.mu.Unlock()
	coord, ok := c.sessions[doctorID]
	if !ok {
		coord = search.NewCoordinator(search.NewSession(), c.agent)
		c.sessions[doctorID] = coord
	}
	return coord
}

// Search submits one query for the doctor. The session context (doctor
// name, specialty, patient name when the panel is open) is refreshed before
// every submission so the system prompt always reflects the current state.
func (c *AssistantController) Search(ctx context.Context, doctorID int, req types.SearchRequest) (*search.Turn, error) {
	coord := c.coordinator(doctorID)

	var sctx search.Context
	doctor, err := c.doctorDAO.GetDoctorByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor != nil {
		sctx.DoctorName = doctor.FullName
		sctx.Specialty = doctor.Specialty
	}
	if req.PanelOpen && req.PatientID != "" {
		if pid, perr := uuid.Parse(req.PatientID); perr == nil {
			patient, perr := c.patientDAO.GetPatientByID(ctx, pid)
			if perr == nil && patient != nil {
				sctx.PatientName = patient.Name
				sctx.PatientPanelOpen = true
			}
		}
	}
	coord.Session().SetContext(sctx)

	turn, err := coord.Submit(ctx, req.Query)
	if err != nil {
		return nil, err
	}

	// History outlives the conversation; persist outside the request's
	// cancellation scope so a client disconnect cannot drop the row.
	saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	record := &models.SearchTurn{
		DoctorID:  doctorID,
		TurnID:    turn.ID,
		Query:     turn.Query,
		Answer:    turn.Answer,
		Timestamp: turn.Timestamp,
	}
	if err := c.turnDAO.SaveTurn(saveCtx, record); err != nil {
		logging.ErrorLogger.Error("failed to persist search turn",
			zap.Int("doctor_id", doctorID), zap.Error(err))
	}
	return turn, nil
}

// Session returns the current display snapshot.
func (c *AssistantController) Session(doctorID int) SessionView {
	session := c.coordinator(doctorID).Session()
	return SessionView{
		State:   session.State(),
		Error:   session.Err(),
		Turns:   session.Turns(),
		Current: session.Current(),
	}
}

// Reset starts a "new search": the conversation clears, history stays.
func (c *AssistantController) Reset(doctorID int) {
	c.coordinator(doctorID).Reset()
}

// History lists persisted turns, newest first.
func (c *AssistantController) History(ctx context.Context, doctorID int, limit int) ([]models.SearchTurn, error) {
	if limit <= 0 {
		limit = 20
	}
	return c.turnDAO.ListRecentTurns(ctx, doctorID, limit)
}

// SelectHistory re-displays a past turn in the live session without
// re-issuing the request or appending a duplicate.
func (c *AssistantController) SelectHistory(ctx context.Context, doctorID int, turnID string) (*search.Turn, error) {
	record, err := c.turnDAO.GetTurnByTurnID(ctx, doctorID, turnID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, errors.New("history turn not found")
	}
	turn := search.Turn{
		ID:        record.TurnID,
		Query:     record.Query,
		Answer:    record.Answer,
		Timestamp: record.Timestamp,
	}
	c.coordinator(doctorID).Session().SelectHistoryTurn(turn)
	return &turn, nil
}
