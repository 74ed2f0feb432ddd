package search

import (
	"caredesk/caredesk/services/assistant"
	"caredesk/caredesk/utils/logging"
	"context"
	"errors"
	"testing"
	"time"
)

// fakeAgent hands each call to the test, which resolves it by sending on
// resp. A cancelled request context unblocks Complete with ctx.Err(), the
// same way the HTTP client behaves.
type fakeAgent struct {
	calls chan *agentCall
}

type agentCall struct {
	messages []assistant.Message
	resp     chan agentResult
}

type agentResult struct {
	answer string
	err    error
}

func (f *fakeAgent) Complete(ctx context.Context, messages []assistant.Message) (string, error) {
	call := &agentCall{messages: messages, resp: make(chan agentResult, 1)}
	f.calls <- call
	select {
	case r := <-call.resp:
		return r.answer, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

type submitResult struct {
	turn *Turn
	err  error
}

func newTestCoordinator() (*Coordinator, *fakeAgent) {
	logging.InitLogger()
	agent := &fakeAgent{calls: make(chan *agentCall, 4)}
	return NewCoordinator(NewSession(), agent), agent
}

func waitCall(t *testing.T, agent *fakeAgent) *agentCall {
	t.Helper()
	select {
	case call := <-agent.calls:
		return call
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for agent call")
		return nil
	}
}

func waitResult(t *testing.T, ch chan submitResult) submitResult {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for submit result")
		return submitResult{}
	}
}

func TestSubmitSuccess(t *testing.T) {
	coord, agent := newTestCoordinator()

	resCh := make(chan submitResult, 1)
	go func() {
		turn, err := coord.Submit(context.Background(), "  chest pain workup  ")
		resCh <- submitResult{turn, err}
	}()

	call := waitCall(t, agent)
	if got := coord.Session().State(); got != StateAwaiting {
		t.Errorf("expected state %q during flight, got %q", StateAwaiting, got)
	}
	if last := call.messages[len(call.messages)-1]; last.Content != "chest pain workup" {
		t.Errorf("expected trimmed query in trailing message, got %q", last.Content)
	}
	call.resp <- agentResult{answer: "Use the HEART score.\r\n\r\n\r\nThen ECG."}

	res := waitResult(t, resCh)
	if res.err != nil {
		t.Fatalf("submit failed: %v", res.err)
	}
	if res.turn.Answer != "Use the HEART score.\n\nThen ECG." {
		t.Errorf("answer not normalized: %q", res.turn.Answer)
	}
	if got := coord.Session().State(); got != StateDisplay {
		t.Errorf("expected state %q after success, got %q", StateDisplay, got)
	}
	if turns := coord.Session().Turns(); len(turns) != 1 {
		t.Errorf("expected 1 turn, got %d", len(turns))
	}
}

func TestSubmitEmptyQueryRejected(t *testing.T) {
	coord, agent := newTestCoordinator()

	for _, query := range []string{"", "   ", "\n\t"} {
		turn, err := coord.Submit(context.Background(), query)
		if !errors.Is(err, ErrEmptyQuery) {
			t.Errorf("query %q: expected ErrEmptyQuery, got %v", query, err)
		}
		if turn != nil {
			t.Errorf("query %q: expected nil turn", query)
		}
	}
	if len(agent.calls) != 0 {
		t.Errorf("expected no agent calls for empty queries, got %d", len(agent.calls))
	}
	if got := coord.Session().State(); got != StateIdle {
		t.Errorf("expected state unchanged (%q), got %q", StateIdle, got)
	}
}

func TestNewSubmissionSupersedesPending(t *testing.T) {
	coord, agent := newTestCoordinator()

	resA := make(chan submitResult, 1)
	go func() {
		turn, err := coord.Submit(context.Background(), "query A")
		resA <- submitResult{turn, err}
	}()
	waitCall(t, agent)

	resB := make(chan submitResult, 1)
	go func() {
		turn, err := coord.Submit(context.Background(), "query B")
		resB <- submitResult{turn, err}
	}()
	callB := waitCall(t, agent)
	callB.resp <- agentResult{answer: "answer B"}

	rA := waitResult(t, resA)
	if !errors.Is(rA.err, ErrSuperseded) {
		t.Errorf("expected ErrSuperseded for query A, got %v", rA.err)
	}
	rB := waitResult(t, resB)
	if rB.err != nil {
		t.Fatalf("query B failed: %v", rB.err)
	}

	turns := coord.Session().Turns()
	if len(turns) != 1 {
		t.Fatalf("expected exactly 1 turn, got %d", len(turns))
	}
	if turns[0].Query != "query B" {
		t.Errorf("expected surviving turn for query B, got %q", turns[0].Query)
	}
}

func TestSupersededSuccessIsDiscarded(t *testing.T) {
	coord, agent := newTestCoordinator()

	resA := make(chan submitResult, 1)
	go func() {
		turn, err := coord.Submit(context.Background(), "query A")
		resA <- submitResult{turn, err}
	}()
	callA := waitCall(t, agent)

	resB := make(chan submitResult, 1)
	go func() {
		turn, err := coord.Submit(context.Background(), "query B")
		resB <- submitResult{turn, err}
	}()
	callB := waitCall(t, agent)

	// The superseded call resolves successfully anyway; its answer must
	// never reach the session.
	callA.resp <- agentResult{answer: "stale answer A"}
	callB.resp <- agentResult{answer: "answer B"}

	rA := waitResult(t, resA)
	if !errors.Is(rA.err, ErrSuperseded) {
		t.Errorf("expected ErrSuperseded for query A, got %v", rA.err)
	}
	if rA.turn != nil {
		t.Errorf("expected no turn for superseded query, got %+v", rA.turn)
	}
	waitResult(t, resB)

	for _, turn := range coord.Session().Turns() {
		if turn.Query == "query A" || turn.Answer == "stale answer A" {
			t.Errorf("superseded result leaked into session: %+v", turn)
		}
	}
}

func TestTransportFailureSetsErroredAndKeepsTurns(t *testing.T) {
	coord, agent := newTestCoordinator()

	resCh := make(chan submitResult, 1)
	go func() {
		turn, err := coord.Submit(context.Background(), "first")
		resCh <- submitResult{turn, err}
	}()
	waitCall(t, agent).resp <- agentResult{answer: "first answer"}
	waitResult(t, resCh)

	go func() {
		turn, err := coord.Submit(context.Background(), "second")
		resCh <- submitResult{turn, err}
	}()
	waitCall(t, agent).resp <- agentResult{err: errors.New("agent error 503: unavailable")}

	res := waitResult(t, resCh)
	if res.err == nil {
		t.Fatal("expected error from failed submit")
	}
	session := coord.Session()
	if got := session.State(); got != StateErrored {
		t.Errorf("expected state %q, got %q", StateErrored, got)
	}
	if session.Err() == "" {
		t.Error("expected a user-facing error message")
	}
	turns := session.Turns()
	if len(turns) != 1 || turns[0].Query != "first" {
		t.Errorf("prior turns must survive a failure, got %+v", turns)
	}
}

func TestErrorClearedOnNextSubmission(t *testing.T) {
	coord, agent := newTestCoordinator()

	resCh := make(chan submitResult, 1)
	go func() {
		turn, err := coord.Submit(context.Background(), "will fail")
		resCh <- submitResult{turn, err}
	}()
	waitCall(t, agent).resp <- agentResult{err: errors.New("boom")}
	waitResult(t, resCh)

	go func() {
		turn, err := coord.Submit(context.Background(), "retry")
		resCh <- submitResult{turn, err}
	}()
	call := waitCall(t, agent)
	if got := coord.Session().State(); got != StateAwaiting {
		t.Errorf("new submission should move state to %q, got %q", StateAwaiting, got)
	}
	if msg := coord.Session().Err(); msg != "" {
		t.Errorf("new submission should clear the error, still have %q", msg)
	}
	call.resp <- agentResult{answer: "recovered"}
	res := waitResult(t, resCh)
	if res.err != nil {
		t.Fatalf("retry failed: %v", res.err)
	}
}

func TestResetCancelsInFlight(t *testing.T) {
	coord, agent := newTestCoordinator()

	resCh := make(chan submitResult, 1)
	go func() {
		turn, err := coord.Submit(context.Background(), "pending")
		resCh <- submitResult{turn, err}
	}()
	waitCall(t, agent)
	coord.Reset()

	res := waitResult(t, resCh)
	if !errors.Is(res.err, ErrSuperseded) {
		t.Errorf("expected ErrSuperseded after reset, got %v", res.err)
	}
	if turns := coord.Session().Turns(); len(turns) != 0 {
		t.Errorf("expected empty session after reset, got %d turns", len(turns))
	}
	if got := coord.Session().State(); got != StateIdle {
		t.Errorf("expected state %q after reset, got %q", StateIdle, got)
	}
}
