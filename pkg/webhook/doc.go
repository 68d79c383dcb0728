// Package webhook delivers JSON payloads to HTTP webhook endpoints.
//
// Sender.Send retries transient failures with a pluggable BackoffStrategy and
// stops on permanent 4xx responses. Every attempt of one Send carries the same
// X-Webhook-ID header so receivers can drop duplicates. ChatMessage is the
// payload understood by Slack and Discord incoming webhooks.
//
// # Usage
//
//	sender := webhook.NewSender(nil)
//	err := sender.Send(ctx, cfg.NotifyURL, webhook.NewChatMessage("user unsubscribed"),
//		webhook.WithTimeout(3*time.Second),
//		webhook.WithOnDelivery(func(r webhook.DeliveryResult) {
//			log.Debug("webhook attempt", "attempt", r.Attempt, "status", r.StatusCode)
//		}),
//	)
//
// # Errors
//
// Send returns errors wrapping ErrInvalidURL, ErrInvalidPayload,
// ErrPermanentFailure or ErrDeliveryFailed. Attempt errors inside them wrap
// ErrTimeout or ErrTemporaryFailure.
package webhook
