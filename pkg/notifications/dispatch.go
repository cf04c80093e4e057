package notifications

import (
	"context"

	"github.com/dmitrymomot/notifykit/pkg/async"
)

// SendAsync runs n.Send on its own goroutine. The future resolves to the
// message ID the send was logged under. Each call can be canceled through
// its own ctx; there is no ordering between calls.
func SendAsync(ctx context.Context, n Notification, recipient, subject, content string) *async.Future[string] {
	ctx, id := ensureMessageID(ctx)
	msg := Message{Recipient: recipient, Subject: subject, Body: content}

	return async.Async(ctx, msg, func(ctx context.Context, m Message) (string, error) {
		if err := n.Send(ctx, m.Recipient, m.Subject, m.Body); err != nil {
			return id, err
		}
		return id, nil
	})
}
