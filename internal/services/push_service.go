package services

import (
	"context"
	"log"

	"firebase.google.com/go/messaging"
	"github.com/pkg/errors"

	"github.com/yourusername/order-notifier/internal/models"
)

// PushService sends push notifications through Firebase Cloud Messaging.
type PushService struct {
	client           *messaging.Client
	androidChannelID string
}

func NewPushService(client *messaging.Client, androidChannelID string) *PushService {
	return &PushService{
		client:           client,
		androidChannelID: androidChannelID,
	}
}

// Send delivers msg to its token and returns the FCM message id.
func (s *PushService) Send(ctx context.Context, msg models.PushMessage) (string, error) {
	id, err := s.client.Send(ctx, buildMessage(msg, s.androidChannelID))
	if err != nil {
		return "", errors.Wrap(err, "failed to send FCM")
	}

	log.Printf("✅ Notification sent to token: %s", maskToken(msg.Token))
	return id, nil
}

func buildMessage(msg models.PushMessage, androidChannelID string) *messaging.Message {
	m := &messaging.Message{
		Token: msg.Token,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	}
	if androidChannelID != "" {
		m.Android = &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: androidChannelID,
			},
		}
	}
	return m
}

func maskToken(token string) string {
	n := 20
	if len(token) <= n {
		n = len(token) / 4
	}
	return token[:n] + "..."
}
