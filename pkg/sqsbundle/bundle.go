package sqsbundle

import (
	"context"
	"errors"
	"fmt"

	"sqs-bundle/pkg/log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// Bundle glues an SQS client into the host application. It resolves queues
// by name (creating them on first use), hands out senders and registers
// receivers as managed units with per-receiver health checks.
//
// The client must be safe for concurrent use; the bundle shares it between
// all senders and receiver loops.
type Bundle struct {
	client    SQSClient
	lifecycle Lifecycle
}

// New creates a Bundle, registers it as a managed unit and registers the
// overall backend reachability check under the name "sqs-bundle".
func New(client SQSClient, lifecycle Lifecycle) *Bundle {
	b := &Bundle{
		client:    client,
		lifecycle: lifecycle,
	}

	lifecycle.Manage(b)
	lifecycle.RegisterHealthCheck("sqs-bundle", b.HealthCheck())

	return b
}

// Start implements Managed. The bundle itself carries no background work;
// receivers are managed units of their own.
func (b *Bundle) Start(ctx context.Context) error {
	log.Info("Starting SQS bundle")
	return nil
}

// Stop implements Managed.
func (b *Bundle) Stop(ctx context.Context) error {
	log.Info("Stopping SQS bundle")
	return nil
}

// CreateSender resolves the named queue, creating it if absent, and returns
// a Sender bound to it. When resolution fails the queue is unusable: the
// error wraps ErrQueueUnavailable and no messages will be sent for this
// queue.
func (b *Bundle) CreateSender(ctx context.Context, queueName string, opts ...SenderOption) (*Sender, error) {
	queueURL, err := b.urlForQueue(ctx, queueName)
	if err != nil {
		log.Errorf("Could not create sender for queue %s, no messages will be sent for this queue: %v", queueName, err)
		return nil, err
	}

	return newSender(b.client, queueName, queueURL, opts...), nil
}

// RegisterReceiver resolves the named queue and registers a receiver loop
// for it as a managed unit, together with a health check named
// "SQS receiver for <queueName>". The handler receives each message body
// decoded into T.
//
// When queue resolution or option validation fails the registration is
// refused: the error is logged and no loop is started. The host keeps
// running without this receiver.
func RegisterReceiver[T any](ctx context.Context, b *Bundle, queueName string, handler Handler[T], opts ...ReceiverOption) {
	queueURL, err := b.urlForQueue(ctx, queueName)
	if err != nil {
		log.Errorf("Cannot register receiver for queue %s: %v", queueName, err)
		return
	}

	r, err := newReceiver(b.client, queueName, queueURL, handler, opts...)
	if err != nil {
		log.Errorf("Cannot register receiver for queue %s: %v", queueName, err)
		return
	}

	b.lifecycle.Manage(r)
	b.lifecycle.RegisterHealthCheck("SQS receiver for "+queueName, r.HealthCheck())
}

// HealthCheck returns a read-only reachability check against the backend.
func (b *Bundle) HealthCheck() HealthCheck {
	return func(ctx context.Context) error {
		_, err := b.client.ListQueues(ctx, &sqs.ListQueuesInput{
			MaxResults: aws.Int32(1),
		})
		if err != nil {
			return fmt.Errorf("sqs backend unreachable: %w", err)
		}
		return nil
	}
}

// urlForQueue retrieves the queue URL for the given queue name. If the queue
// does not exist it is created with default attributes. Every call makes
// network-bound SDK calls; senders and receivers hold the resolved URL for
// their lifetime.
func (b *Bundle) urlForQueue(ctx context.Context, queueName string) (string, error) {
	out, err := b.client.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: aws.String(queueName),
	})
	if err == nil {
		return aws.ToString(out.QueueUrl), nil
	}

	var notFound *types.QueueDoesNotExist
	if !errors.As(err, &notFound) {
		return "", fmt.Errorf("%w: lookup of queue %s failed: %w", ErrQueueUnavailable, queueName, err)
	}

	log.Infof("Queue %s does not exist, trying to create it", queueName)

	created, err := b.client.CreateQueue(ctx, &sqs.CreateQueueInput{
		QueueName: aws.String(queueName),
	})
	if err != nil {
		return "", fmt.Errorf("%w: could not create queue %s: %w", ErrQueueUnavailable, queueName, err)
	}

	return aws.ToString(created.QueueUrl), nil
}
