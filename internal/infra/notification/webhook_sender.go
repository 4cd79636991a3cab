package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const defaultWebhookTimeout = 10 * time.Second

// webhookSender posts JSON payloads to responder dispatch endpoints.
type webhookSender struct {
	client *http.Client
}

func newWebhookSender(timeout time.Duration) *webhookSender {
	if timeout <= 0 {
		timeout = defaultWebhookTimeout
	}

	return &webhookSender{
		client: &http.Client{Timeout: timeout},
	}
}

// post sends the payload to the endpoint and treats any non-2xx response as
// an error.
func (s *webhookSender) post(ctx context.Context, endpoint string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to encode webhook payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to create webhook request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "webhook request failed")
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("webhook returned status %d", resp.StatusCode)
	}

	return nil
}
