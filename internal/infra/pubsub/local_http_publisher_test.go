package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clubrelay/config"
	"clubrelay/internal/domain/constants"
	"clubrelay/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishAccountEvent(t *testing.T) {
	var got PubSubPushMessage
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	pub := NewLocalHTTPPublisher(srv.URL, newDiscardLogger())
	event := &entity.AccountEvent{
		RequestID:         "req-1",
		Type:              constants.EventAccountDeleted,
		UserID:            "AHC2601",
		DeletionRequestID: "3f1c",
		OccurredAt:        time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	require.NoError(t, pub.PublishAccountEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, constants.EventAccountDeleted, got.Message.Attributes["event_type"])
	assert.Equal(t, "AHC2601", got.Message.Attributes["user_id"])
	assert.Equal(t, "3f1c", got.Message.Attributes["deletion_request_id"])
	assert.NotEmpty(t, got.Message.MessageID)

	raw, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)

	var decoded entity.AccountEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	pub := NewLocalHTTPPublisher(srv.URL, newDiscardLogger())
	err := pub.PublishAccountEvent(context.Background(), &entity.AccountEvent{Type: constants.EventAccountDeleted, UserID: "u"})
	assert.Error(t, err)
}

func TestNoopPublisher(t *testing.T) {
	pub := &noopPublisher{logger: newDiscardLogger()}

	assert.NoError(t, pub.PublishAccountEvent(context.Background(), &entity.AccountEvent{Type: "x"}))
	assert.NoError(t, pub.Close())
}

func TestNewPublisher(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.PubSubConfig
		wantErr  string
		wantNoop bool
	}{
		{name: "not configured", cfg: nil, wantNoop: true},
		{name: "empty provider", cfg: &config.PubSubConfig{}, wantNoop: true},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8681/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "localEndpoint"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: "topicId"},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pub, err := newPublisher(context.Background(), tt.cfg, newDiscardLogger())
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			_, isNoop := pub.(*noopPublisher)
			assert.Equal(t, tt.wantNoop, isNoop)
		})
	}
}
