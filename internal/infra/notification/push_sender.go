// Package notification contains the outbound notification channel: Firebase
// push messages to emergency contacts and HTTP dispatch to responder services.
package notification

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// fcmMulticastLimit is Firebase's per-request token ceiling.
const fcmMulticastLimit = 500

// pushSender wraps the Firebase messaging client.
type pushSender struct {
	client *messaging.Client
}

// newPushSender initializes the Firebase app and messaging client.
func newPushSender(ctx context.Context, credentialsPath string) (*pushSender, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &pushSender{
		client: client,
	}, nil
}

// sendMulticast pushes the same notification to every token, reporting how
// many sends succeeded and failed.
func (s *pushSender) sendMulticast(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil
	}

	if len(tokens) > fcmMulticastLimit {
		tokens = tokens[:fcmMulticastLimit]
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to send multicast notification")
	}

	return response.SuccessCount, response.FailureCount, nil
}
