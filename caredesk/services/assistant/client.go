package assistant

import (
	"bytes"
	"caredesk/caredesk/utils/logging"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// Message is one exchange unit sent to the answer service. Role is one of
// "system", "user" or "assistant".
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type chatRequest struct {
	Messages []Message `json:"messages"`
}

// Client calls the external answer service. Cancellation is carried by the
// request context; callers that abort a call should expect ctx.Err() back.
type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(endpoint string) *Client {
	return &Client{endpoint: endpoint, http: http.DefaultClient}
}

// Complete posts the ordered message list and returns the raw assistant
// text. Any non-200 status or unrecognized response shape is an error
// carrying whatever diagnostic text the service produced.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	defer logging.LogDuration(ctx, "assistant_complete")()

	body, err := json.Marshal(chatRequest{Messages: messages})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		logging.ErrorLogger.Error("agent request failed",
			zap.Int("status", resp.StatusCode), zap.String("body", string(b)))
		return "", fmt.Errorf("agent error %d: %s", resp.StatusCode, string(b))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	content, err := extractContent(raw)
	if err != nil {
		return "", err
	}
	return content, nil
}
