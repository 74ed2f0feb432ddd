package search

import (
	"caredesk/caredesk/services/assistant"
	"caredesk/caredesk/utils/logging"
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var (
	// ErrEmptyQuery rejects blank submissions before any request is issued.
	ErrEmptyQuery = errors.New("query is empty")
	// ErrSuperseded marks a submission that a newer one cancelled. Not a
	// user-visible failure: callers discard it silently.
	ErrSuperseded = errors.New("request superseded by a newer query")
)

// AgentClient is the outbound edge of the coordinator; *assistant.Client
// satisfies it.
type AgentClient interface {
	Complete(ctx context.Context, messages []assistant.Message) (string, error)
}

// Coordinator serializes submissions against one Session: at most one
// request is in flight, and issuing a new query cancels the previous one
// before the new request is created. Only the most recent generation may
// mutate session state, so a cancelled call that still resolves is
// discarded without side effects.
type Coordinator struct {
	session *Session
	agent   AgentClient

	mu     sync.Mutex
	cancel context.CancelFunc
	gen    uint64
}

func NewCoordinator(session *Session, agent AgentClient) *Coordinator {
	return &Coordinator{session: session, agent: agent}
}

func (c *Coordinator) Session() *Session {
	return c.session
}

// Submit trims and validates the query, supersedes any in-flight request,
// calls the answer service and, if this submission is still current when the
// call resolves, appends the resulting turn.
func (c *Coordinator) Submit(ctx context.Context, query string) (*Turn, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	c.mu.Lock()
	// Cancel-then-create: the prior token must be dead before a new one
	// exists, so two live requests never overlap.
	if c.cancel != nil {
		c.cancel()
	}
	reqCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.gen++
	gen := c.gen
	c.session.Compose()
	c.session.beginRequest()
	messages := c.session.BuildMessages(query)
	c.mu.Unlock()

	answer, err := c.agent.Complete(reqCtx, messages)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		// A newer submission owns the session now; whatever this call
		// returned is dropped, success or failure.
		return nil, ErrSuperseded
	}
	cancel()
	c.cancel = nil

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, ErrSuperseded
		}
		logging.ErrorLogger.Error("assistant request failed",
			zap.String("query", query), zap.Error(err))
		msg := err.Error()
		if msg == "" {
			msg = "Failed to get answer from agent"
		}
		c.session.fail(msg)
		return nil, err
	}

	turn := c.session.AppendTurn(query, answer)
	c.session.finishDisplay()
	return &turn, nil
}

// Reset clears the conversation; an in-flight request is cancelled so it
// cannot land in the fresh session.
func (c *Coordinator) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.gen++
	c.session.Reset()
}
