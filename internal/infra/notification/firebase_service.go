// Package notification delivers push notifications through Firebase Cloud Messaging.
package notification

import (
	"context"

	"clubrelay/internal/domain/service"
	"clubrelay/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// messagingClient is the slice of *messaging.Client used here.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messagingClient
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.NotificationService, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var fbCfg *firebase.Config
	if projectID != "" {
		fbCfg = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, fbCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// SendSingleNotification sends a push to one token and returns the FCM message id.
// Tokens FCM rejects as malformed or unregistered map to service.ErrInvalidToken.
func (s *firebaseService) SendSingleNotification(
	ctx context.Context,
	token, title, body string,
	data map[string]string,
) (string, error) {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: "default"},
			},
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	id, err := s.client.Send(ctx, message)
	if err != nil {
		if messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err) {
			return "", errors.Join(service.ErrInvalidToken, err)
		}

		return "", errors.Wrap(err, "failed to send notification")
	}

	return id, nil
}
