package unsubscribe

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/oneclick/pkg/webhook"
)

// Notifier announces an accepted unsubscribe.
type Notifier interface {
	Notify(ctx context.Context, email string) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, email string) error

func (f NotifierFunc) Notify(ctx context.Context, email string) error {
	return f(ctx, email)
}

// WebhookNotifier posts a chat message to an incoming-webhook URL.
type WebhookNotifier struct {
	sender *webhook.Sender
	url    string
	opts   []webhook.SendOption
}

// NewWebhookNotifier returns a notifier posting to url through sender.
// opts apply to every Send.
func NewWebhookNotifier(sender *webhook.Sender, url string, opts ...webhook.SendOption) *WebhookNotifier {
	if sender == nil {
		sender = webhook.NewSender(nil)
	}
	return &WebhookNotifier{sender: sender, url: url, opts: opts}
}

func (n *WebhookNotifier) Notify(ctx context.Context, email string) error {
	msg := webhook.NewChatMessage(fmt.Sprintf("%s unsubscribed via one-click link", email))
	return n.sender.Send(ctx, n.url, msg, n.opts...)
}
