package queue

import "context"

// Sender submits a payload to the queue it was bound to at startup.
// *sqsbundle.Sender satisfies it.
type Sender interface {
	Send(ctx context.Context, payload any) error
	QueueName() string
}
