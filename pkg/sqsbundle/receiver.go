package sqsbundle

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"sqs-bundle/pkg/log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// Handler processes one decoded payload. Returning a non-nil error routes
// the message through the receiver's exception policy.
type Handler[T any] interface {
	Handle(ctx context.Context, payload T) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc[T any] func(ctx context.Context, payload T) error

func (f HandlerFunc[T]) Handle(ctx context.Context, payload T) error {
	return f(ctx, payload)
}

// Receiver states. A stopped receiver is terminal and cannot be restarted.
const (
	stateCreated int32 = iota
	stateRunning
	stateStopped
)

// Receiver is a managed background loop bound to one queue. It long-polls
// for messages, decodes each body into T, invokes the handler, and deletes
// the message only after the handler succeeds or the exception policy says
// to drop it. All processing is synchronous within the loop's own goroutine;
// a slow handler stalls only this receiver.
type Receiver[T any] struct {
	client  SQSClient
	handler Handler[T]
	opts    *receiverOptions

	queueName string
	queueURL  string

	state  atomic.Int32
	cancel context.CancelFunc
	done   chan struct{}
}

func newReceiver[T any](client SQSClient, queueName, queueURL string, handler Handler[T], opts ...ReceiverOption) (*Receiver[T], error) {
	options := newReceiverOptions()
	for _, opt := range opts {
		opt(options)
	}

	if err := options.validate(); err != nil {
		return nil, fmt.Errorf("invalid receiver options: %w", err)
	}

	return &Receiver[T]{
		client:    client,
		handler:   handler,
		opts:      options,
		queueName: queueName,
		queueURL:  queueURL,
		done:      make(chan struct{}),
	}, nil
}

// Start implements Managed. It spawns the polling goroutine and returns.
// The loop runs until Stop is called; the context passed here only scopes
// the start call itself, so the loop derives its own cancellable context.
func (r *Receiver[T]) Start(ctx context.Context) error {
	if !r.state.CompareAndSwap(stateCreated, stateRunning) {
		if r.state.Load() == stateStopped {
			return fmt.Errorf("receiver for queue %s: %w", r.queueName, ErrReceiverStopped)
		}
		return fmt.Errorf("receiver for queue %s already started", r.queueName)
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	go r.run(loopCtx)

	log.Infof("Started SQS receiver for queue %s", r.queueName)
	return nil
}

// Stop implements Managed. It cancels the loop context, which interrupts a
// blocked long poll, and waits for the loop goroutine to drain or for ctx to
// expire.
func (r *Receiver[T]) Stop(ctx context.Context) error {
	prev := r.state.Swap(stateStopped)
	if prev != stateRunning {
		return nil
	}

	r.cancel()

	select {
	case <-r.done:
		log.Infof("Stopped SQS receiver for queue %s", r.queueName)
		return nil
	case <-ctx.Done():
		return fmt.Errorf("receiver for queue %s did not stop in time: %w", r.queueName, ctx.Err())
	}
}

// HealthCheck reports healthy only while the loop is running.
func (r *Receiver[T]) HealthCheck() HealthCheck {
	return func(ctx context.Context) error {
		switch r.state.Load() {
		case stateRunning:
			return nil
		case stateCreated:
			return fmt.Errorf("receiver for queue %s has not been started", r.queueName)
		default:
			return fmt.Errorf("receiver for queue %s is stopped", r.queueName)
		}
	}
}

func (r *Receiver[T]) run(ctx context.Context) {
	defer close(r.done)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		out, err := r.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            aws.String(r.queueURL),
			MaxNumberOfMessages: r.opts.maxNumberOfMessages,
			WaitTimeSeconds:     r.opts.waitTimeSeconds,
		})
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			// Transient by contract: nothing was retrieved, so nothing is
			// lost. Back off to avoid hammering the API on persistent errors.
			log.Errorf("Failed to receive messages from queue %s: %v", r.queueName, err)

			select {
			case <-ctx.Done():
				return
			case <-time.After(r.opts.pollBackoff):
			}
			continue
		}

		for _, msg := range out.Messages {
			r.dispatch(ctx, msg)
		}
	}
}

// dispatch decodes and handles one message, then acknowledges it according
// to the handler's and the exception policy's verdict. Acknowledgment is the
// only path that removes a message; a crash before the delete leaves it for
// backend-driven redelivery.
func (r *Receiver[T]) dispatch(ctx context.Context, msg types.Message) {
	err := r.process(ctx, msg)
	if err == nil {
		r.ack(ctx, msg)
		return
	}

	if r.applyPolicy(msg, err) {
		log.Errorf("Error processing message %s from queue %s, acknowledging it anyway: %v", messageID(msg), r.queueName, err)
		r.ack(ctx, msg)
		return
	}

	log.Errorf("Error processing message %s from queue %s, leaving it for redelivery: %v", messageID(msg), r.queueName, err)
}

func (r *Receiver[T]) process(ctx context.Context, msg types.Message) error {
	var payload T
	if err := r.opts.codec.Decode(aws.ToString(msg.Body), &payload); err != nil {
		return fmt.Errorf("failed to decode message body: %w", err)
	}

	return r.handler.Handle(ctx, payload)
}

// applyPolicy consults the exception policy. A panicking policy fails safe
// toward redelivery.
func (r *Receiver[T]) applyPolicy(msg types.Message, cause error) (ack bool) {
	defer func() {
		if p := recover(); p != nil {
			log.Errorf("Exception policy panicked for message %s from queue %s, leaving it for redelivery: %v", messageID(msg), r.queueName, p)
			ack = false
		}
	}()

	return r.opts.policy(msg, cause)
}

func (r *Receiver[T]) ack(ctx context.Context, msg types.Message) {
	_, err := r.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(r.queueURL),
		ReceiptHandle: msg.ReceiptHandle,
	})
	if err != nil {
		log.Errorf("Failed to delete message %s from queue %s: %v", messageID(msg), r.queueName, err)
		return
	}

	log.Debugf("Deleted message %s from queue %s", messageID(msg), r.queueName)
}

func messageID(msg types.Message) string {
	return aws.ToString(msg.MessageId)
}
