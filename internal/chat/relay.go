package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	ErrNotConfigured = errors.New("chat webhook not configured")
	ErrUnavailable   = errors.New("chat webhook unavailable")
)

const maxReplySize = 1 << 20 // 1MB

// Relay forwards chat messages to the external automation webhook and
// normalizes whatever it answers with. The webhook is an opaque
// collaborator: it receives the message text and the user id, and may reply
// with JSON in several shapes or with plain text.
type Relay struct {
	webhookURL string
	client     *http.Client
}

// NewRelay creates a Relay targeting webhookURL. An empty URL produces a
// relay that rejects every message with ErrNotConfigured.
func NewRelay(webhookURL string) *Relay {
	return &Relay{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 60 * time.Second},
	}
}

type outboundMessage struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// Send posts a message on behalf of userID and returns the normalized reply.
func (r *Relay) Send(ctx context.Context, userID int64, message string) (string, error) {
	if r.webhookURL == "" {
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(outboundMessage{Message: message, UserID: userID})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.webhookURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxReplySize))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	return normalizeReply(raw), nil
}

// normalizeReply extracts the reply text from the webhook's answer. Known
// shapes: a JSON array whose first element carries an "output" field, an
// object with an "output" field, and a bare JSON string. Anything else is
// passed through verbatim.
func normalizeReply(raw []byte) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return ""
	}

	var arr []struct {
		Output string `json:"output"`
	}
	if err := json.Unmarshal(raw, &arr); err == nil && len(arr) > 0 && arr[0].Output != "" {
		return arr[0].Output
	}

	var obj struct {
		Output string `json:"output"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Output != "" {
		return obj.Output
	}

	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}

	return trimmed
}
