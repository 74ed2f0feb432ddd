package search

import (
	"caredesk/caredesk/services/assistant"
	"fmt"
	"strconv"
	"sync"
	"time"
)

// State is the session-level display state consumed by the presentation
// layer. Idle is the state before any query has ever been submitted and
// drives the default-suggestions view; Composing means the user is typing a
// query (or a new one after a result).
type State string

const (
	StateIdle      State = "idle"
	StateComposing State = "composing"
	StateAwaiting  State = "awaiting_response"
	StateDisplay   State = "displaying"
	StateErrored   State = "errored"
)

// Turn is one completed query/answer exchange. Turns are immutable once
// appended.
type Turn struct {
	ID        string    `json:"id"`
	Query     string    `json:"query"`
	Answer    string    `json:"answer"`
	Timestamp time.Time `json:"timestamp"`
}

// Context is the acting user / patient context the system prompt is derived
// from. It is read fresh on every message build, never snapshotted per turn.
type Context struct {
	DoctorName       string
	Specialty        string
	PatientName      string
	PatientPanelOpen bool
}

// Session holds the current back-and-forth thread: ordered turns, the live
// display state, and the context feeding the system prompt. Mutation of
// turns and state is reserved to the Coordinator acting for the most recent
// submission; reads are safe from any goroutine.
type Session struct {
	mu      sync.RWMutex
	sctx    Context
	turns   []Turn
	state   State
	lastErr string
	current *Turn
	lastID  int64
}

func NewSession() *Session {
	return &Session{state: StateIdle}
}

// SetContext replaces the doctor/patient context. The next BuildMessages
// call picks it up; prior turns are not rewritten.
func (s *Session) SetContext(sctx Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sctx = sctx
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Err returns the user-facing error message when the session is Errored.
func (s *Session) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Turns returns a copy of the conversation in chronological order.
func (s *Session) Turns() []Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Current returns the turn selected for display, which is the newest turn
// unless a history turn was re-selected.
func (s *Session) Current() *Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	t := *s.current
	return &t
}

// systemPrompt derives the instruction message from the current context.
// Recomputed on every call so a patient switched mid-conversation shows up
// in the very next request.
func (s *Session) systemPrompt() string {
	doctor := s.sctx.DoctorName
	if doctor == "" {
		doctor = "Unknown Doctor"
	}
	specialty := s.sctx.Specialty
	if specialty == "" {
		specialty = "General Medicine"
	}
	patient := ""
	if s.sctx.PatientPanelOpen && s.sctx.PatientName != "" {
		patient = fmt.Sprintf(" The current patient is %s.", s.sctx.PatientName)
	}
	return fmt.Sprintf(
		"You are a clinical assistant. The current user is Dr. %s (Specialty: %s).%s Provide evidence-informed answers with clear formatting.",
		doctor, specialty, patient,
	)
}

// BuildMessages assembles the outbound message list for a query: one system
// message, every prior turn flattened to a user/assistant pair in order, and
// the query as the trailing user message. For N prior turns that is exactly
// 2N+2 messages.
func (s *Session) BuildMessages(query string) []assistant.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	msgs := make([]assistant.Message, 0, 2*len(s.turns)+2)
	msgs = append(msgs, assistant.Message{Role: assistant.RoleSystem, Content: s.systemPrompt()})
	for _, t := range s.turns {
		msgs = append(msgs, assistant.Message{Role: assistant.RoleUser, Content: t.Query})
		msgs = append(msgs, assistant.Message{Role: assistant.RoleAssistant, Content: t.Answer})
	}
	msgs = append(msgs, assistant.Message{Role: assistant.RoleUser, Content: query})
	return msgs
}

// AppendTurn normalizes the raw answer, stamps a fresh id and timestamp,
// appends the turn and makes it current.
func (s *Session) AppendTurn(query, rawAnswer string) Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	turn := Turn{
		ID:        s.nextTurnID(),
		Query:     query,
		Answer:    assistant.Normalize(rawAnswer),
		Timestamp: time.Now(),
	}
	s.turns = append(s.turns, turn)
	s.current = &turn
	return turn
}

// nextTurnID is time-based (UnixMilli) with a monotonic bump so two turns
// landing in the same millisecond still order correctly. Caller holds s.mu.
func (s *Session) nextTurnID() string {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

// Reset clears the conversation for a "new search". Search history is a
// longer-lived collection owned elsewhere and is not touched.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = nil
	s.current = nil
	s.lastErr = ""
	s.state = StateIdle
}

// SelectHistoryTurn re-displays a previously completed turn without issuing
// a request and without appending a duplicate.
func (s *Session) SelectHistoryTurn(turn Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &turn
	s.lastErr = ""
	s.state = StateDisplay
}

// Compose marks the user as typing. Idle, Displaying and Errored all lead
// here on the next input.
func (s *Session) Compose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateComposing
	s.lastErr = ""
}

// beginRequest moves the session to AwaitingResponse and clears any prior
// error banner. Called by the Coordinator only.
func (s *Session) beginRequest() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAwaiting
	s.lastErr = ""
}

func (s *Session) finishDisplay() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateDisplay
}

// fail records a user-facing error. Existing turns stay visible.
func (s *Session) fail(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateErrored
	s.lastErr = msg
}
