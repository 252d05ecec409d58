package fcm

import (
	"time"

	"firebase.google.com/go/v4/messaging"
)

// notificationBody is the fixed body text carried by every message.
const notificationBody = "Notification from FCM"

// clickActionMain is the Android tap action override.
const clickActionMain = "android.intent.action.MAIN"

// apnsPriorityImmediate requests immediate delivery from APNs.
const apnsPriorityImmediate = "10"

// Payload is the body of an FCM v1 messages:send request. The v1 REST API
// expects the message wrapped in a top-level "message" key.
type Payload struct {
	Message *messaging.Message `json:"message"`
}

// BuildCommon constructs the uniform notification message. The title is the
// wall-clock time at build, the body is fixed, and the data map carries the
// caller's type code and auxiliary token verbatim. All three inputs are
// opaque; nothing is validated here.
func BuildCommon(typeCode, deviceToken, authToken string) *Payload {
	return &Payload{
		Message: &messaging.Message{
			Token: deviceToken,
			Notification: &messaging.Notification{
				Title: time.Now().Format(time.ANSIC),
				Body:  notificationBody,
			},
			Data: map[string]string{
				"Type":  typeCode,
				"Token": authToken,
			},
		},
	}
}

// BuildOverride constructs the common message from the same three inputs and
// layers platform-specific customizations on top: an APNs block with a badge
// count, a duplicate of the notification/data payload, and an immediate
// delivery priority header, plus an Android block overriding the tap action.
// The result is a strict superset of the common message.
func BuildOverride(typeCode, deviceToken, authToken string) *Payload {
	p := BuildCommon(typeCode, deviceToken, authToken)
	msg := p.Message

	badge := 1
	msg.APNS = &messaging.APNSConfig{
		Headers: map[string]string{
			"apns-priority": apnsPriorityImmediate,
		},
		Payload: &messaging.APNSPayload{
			Aps: &messaging.Aps{
				Badge: &badge,
			},
			CustomData: map[string]interface{}{
				"message": map[string]interface{}{
					"token": msg.Token,
					"notification": map[string]string{
						"title": msg.Notification.Title,
						"body":  msg.Notification.Body,
					},
				},
				"data": msg.Data,
			},
		},
	}

	msg.Android = &messaging.AndroidConfig{
		Notification: &messaging.AndroidNotification{
			ClickAction: clickActionMain,
		},
	}

	return p
}
