package notification

import (
	"context"
	"testing"

	"clubrelay/internal/domain/service"
	"clubrelay/internal/infra/metrics"
	mockSvc "clubrelay/internal/mocks/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessagingClient struct {
	sent []*messaging.Message
	id   string
	err  error
}

func (f *fakeMessagingClient) Send(_ context.Context, m *messaging.Message) (string, error) {
	f.sent = append(f.sent, m)

	return f.id, f.err
}

func TestFirebaseService_SendSingleNotification(t *testing.T) {
	client := &fakeMessagingClient{id: "projects/p/messages/1"}
	svc := &firebaseService{client: client}

	id, err := svc.SendSingleNotification(context.Background(), "tok", "Title", "Body", map[string]string{"orderId": "42"})
	require.NoError(t, err)
	assert.Equal(t, "projects/p/messages/1", id)

	require.Len(t, client.sent, 1)
	msg := client.sent[0]
	assert.Equal(t, "tok", msg.Token)
	assert.Equal(t, "Title", msg.Notification.Title)
	assert.Equal(t, "Body", msg.Notification.Body)
	assert.Equal(t, "42", msg.Data["orderId"])
}

func TestFirebaseService_GenericError(t *testing.T) {
	svc := &firebaseService{client: &fakeMessagingClient{err: errors.New("deadline exceeded")}}

	_, err := svc.SendSingleNotification(context.Background(), "tok", "t", "b", nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrInvalidToken)
}

func TestNoopService(t *testing.T) {
	_, err := noopService{}.SendSingleNotification(context.Background(), "tok", "t", "b", nil)
	assert.ErrorIs(t, err, service.ErrProviderUnavailable)
}

func TestInstrumented_CountsResults(t *testing.T) {
	m := metrics.New()
	next := mockSvc.NewMockNotificationService(t)
	svc := NewInstrumented(next, m)
	ctx := context.Background()

	next.EXPECT().SendSingleNotification(ctx, "good", "t", "b", map[string]string(nil)).Return("id-1", nil).Once()
	next.EXPECT().SendSingleNotification(ctx, "stale", "t", "b", map[string]string(nil)).
		Return("", errors.Wrap(service.ErrInvalidToken, "unregistered")).Once()
	next.EXPECT().SendSingleNotification(ctx, "down", "t", "b", map[string]string(nil)).
		Return("", errors.New("boom")).Once()

	id, err := svc.SendSingleNotification(ctx, "good", "t", "b", nil)
	require.NoError(t, err)
	assert.Equal(t, "id-1", id)

	_, err = svc.SendSingleNotification(ctx, "stale", "t", "b", nil)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	_, err = svc.SendSingleNotification(ctx, "down", "t", "b", nil)
	assert.Error(t, err)

	assert.InDelta(t, 1, testutil.ToFloat64(m.PushResults.WithLabelValues(resultSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.PushResults.WithLabelValues(resultInvalidToken)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.PushResults.WithLabelValues(resultError)), 0)
}
