package assistant

import (
	"caredesk/caredesk/utils/logging"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClientComplete(t *testing.T) {
	logging.InitLogger()

	var gotReq chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected application/json, got %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("request body decode failed: %v", err)
		}
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Start with an ECG."}}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	messages := []Message{
		{Role: RoleSystem, Content: "You are a clinical assistant."},
		{Role: RoleUser, Content: "chest pain workup"},
	}
	answer, err := client.Complete(context.Background(), messages)
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if answer != "Start with an ECG." {
		t.Errorf("unexpected answer %q", answer)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[1].Content != "chest pain workup" {
		t.Errorf("messages not sent as-is: %+v", gotReq.Messages)
	}
}

func TestClientCompleteNon200(t *testing.T) {
	logging.InitLogger()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Complete(context.Background(), []Message{{Role: RoleUser, Content: "q"}})
	if err == nil {
		t.Fatal("expected error for 503 response")
	}
	if !strings.Contains(err.Error(), "503") || !strings.Contains(err.Error(), "model overloaded") {
		t.Errorf("error should carry status and body, got %q", err.Error())
	}
}

func TestClientCompleteNoContent(t *testing.T) {
	logging.InitLogger()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Complete(context.Background(), []Message{{Role: RoleUser, Content: "q"}})
	if !errors.Is(err, ErrNoContent) {
		t.Errorf("expected ErrNoContent, got %v", err)
	}
}

func TestClientCompleteCancelled(t *testing.T) {
	logging.InitLogger()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := NewClient(srv.URL).Complete(ctx, []Message{{Role: RoleUser, Content: "q"}})
		errCh <- err
	}()
	cancel()

	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
