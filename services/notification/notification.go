package notification

import (
	"context"
	"fmt"

	providerRepo "carebook/database/repository/provider"
	userRepo "carebook/database/repository/user"
	"carebook/utils"

	"firebase.google.com/go/v4/messaging"
)

// DefaultNotificationService sends pushes through the shared FCM client.
// When FCM is not configured every send is a silent no-op, so callers never
// need to know whether push is enabled.
type DefaultNotificationService struct {
	Users     userRepo.UserRepository
	Providers providerRepo.ProviderRepository
}

func NewDefaultNotificationService(users userRepo.UserRepository, providers providerRepo.ProviderRepository) (*DefaultNotificationService, error) {
	if users == nil || providers == nil {
		return nil, fmt.Errorf("notification service initialization error: user or provider repository is nil")
	}
	return &DefaultNotificationService{Users: users, Providers: providers}, nil
}

func (s *DefaultNotificationService) SendUserPush(ctx context.Context, userID, title, body string, data map[string]string) error {
	if utils.FCMClient == nil {
		return nil
	}

	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("SendUserPush: could not find user %s: %w", userID, err)
	}
	if u == nil || u.FCMToken == "" {
		return nil // no push target, fail silently
	}

	if data == nil {
		data = map[string]string{}
	}
	if _, ok := data["role"]; !ok {
		data["role"] = "user"
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendUserPush: failed to send FCM message: %w", err)
	}
	return nil
}

func (s *DefaultNotificationService) SendProviderPush(ctx context.Context, providerID, title, body string, data map[string]string) error {
	if utils.FCMClient == nil {
		return nil
	}

	p, err := s.Providers.GetByID(ctx, providerID)
	if err != nil {
		return fmt.Errorf("SendProviderPush: could not find provider %s: %w", providerID, err)
	}
	if p == nil || p.FCMToken == "" {
		return nil
	}

	if data == nil {
		data = map[string]string{}
	}
	if _, ok := data["role"]; !ok {
		data["role"] = "provider"
	}

	msg := &messaging.Message{
		Token: p.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "high_priority",
				Sound:     "default",
			},
		},
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendProviderPush: failed to send FCM message: %w", err)
	}
	return nil
}
