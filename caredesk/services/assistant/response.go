package assistant

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoContent is returned when a response parses as JSON but carries no
// assistant text in any shape this client understands.
var ErrNoContent = errors.New("agent returned no content")

// messageContent tolerates the two content encodings the answer service has
// been seen to emit: a plain string, or an array of parts each carrying a
// "text" field.
type messageContent struct {
	text string
}

type contentPart struct {
	Text string `json:"text"`
}

func (c *messageContent) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		c.text = s
		return nil
	}
	var parts []contentPart
	if err := json.Unmarshal(data, &parts); err == nil {
		var b strings.Builder
		for _, p := range parts {
			b.WriteString(p.Text)
		}
		c.text = b.String()
		return nil
	}
	// Unknown encoding: leave empty rather than failing the whole decode,
	// so sibling fields still get a chance to supply the text.
	c.text = ""
	return nil
}

type responseMessage struct {
	Role    string         `json:"role"`
	Content messageContent `json:"content"`
}

type responseChoice struct {
	Message responseMessage `json:"message"`
}

type agentResponse struct {
	Choices []responseChoice `json:"choices"`
	// Alternate locations some backends use instead of choices.
	Message  *responseMessage `json:"message"`
	Response string           `json:"response"`
}

// extractContent pulls the assistant text out of a raw response body,
// checking the known shapes in order: choices[].message.content, a top-level
// message.content, then a bare "response" string. ErrNoContent if none match.
func extractContent(body []byte) (string, error) {
	var resp agentResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", err
	}
	for _, choice := range resp.Choices {
		if choice.Message.Content.text != "" {
			return choice.Message.Content.text, nil
		}
	}
	if resp.Message != nil && resp.Message.Content.text != "" {
		return resp.Message.Content.text, nil
	}
	if resp.Response != "" {
		return resp.Response, nil
	}
	return "", ErrNoContent
}
