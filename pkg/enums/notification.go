package enums

import "fmt"

// NotificationType classifies inbox notifications.
type NotificationType string

const (
	NotificationTypeMatch   NotificationType = "match"
	NotificationTypeMessage NotificationType = "message"
	NotificationTypeSession NotificationType = "session"
	NotificationTypeRating  NotificationType = "rating"
)

var validNotificationTypes = []NotificationType{
	NotificationTypeMatch,
	NotificationTypeMessage,
	NotificationTypeSession,
	NotificationTypeRating,
}

// IsValid checks whether the given type matches the canonical enum.
func (n NotificationType) IsValid() bool {
	for _, candidate := range validNotificationTypes {
		if candidate == n {
			return true
		}
	}
	return false
}

// ParseNotificationType converts raw strings into NotificationType.
func ParseNotificationType(value string) (NotificationType, error) {
	for _, candidate := range validNotificationTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid notification type %q", value)
}
