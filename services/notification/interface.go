package notification

import "context"

// NotificationService defines methods for sending FCM pushes to the two
// account types.
type NotificationService interface {
	SendUserPush(ctx context.Context, userID, title, body string, data map[string]string) error
	SendProviderPush(ctx context.Context, providerID, title, body string, data map[string]string) error
}
