package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookSender_PostsJSONPayload(t *testing.T) {
	var received service.PolicePayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	sender := newWebhookSender(time.Second)

	payload := &service.PolicePayload{
		UserID:    "user-1",
		AlertID:   "alert-1",
		AlertType: entity.AlertTypePanic,
		Priority:  entity.PriorityCritical,
		UserName:  "Dana Reyes",
		UserPhone: "+15550001111",
	}
	require.NoError(t, sender.post(context.Background(), srv.URL, payload))

	assert.Equal(t, "alert-1", received.AlertID)
	assert.Equal(t, entity.AlertTypePanic, received.AlertType)
	assert.Equal(t, "Dana Reyes", received.UserName)
}

func TestWebhookSender_NonSuccessStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	sender := newWebhookSender(time.Second)

	err := sender.post(context.Background(), srv.URL, map[string]string{"ping": "pong"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
