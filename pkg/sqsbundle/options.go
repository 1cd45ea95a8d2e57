package sqsbundle

import (
	"fmt"
	"time"
)

// receiverOptions holds the tunables of one receiver loop.
type receiverOptions struct {
	maxNumberOfMessages int32
	waitTimeSeconds     int32
	pollBackoff         time.Duration
	codec               Codec
	policy              ExceptionPolicy
}

func newReceiverOptions() *receiverOptions {
	return &receiverOptions{
		maxNumberOfMessages: 10,
		waitTimeSeconds:     20,
		pollBackoff:         5 * time.Second,
		codec:               JSONCodec{},
		policy:              AcknowledgeAlways,
	}
}

func (o *receiverOptions) validate() error {
	if o.maxNumberOfMessages < 1 || o.maxNumberOfMessages > 10 {
		return fmt.Errorf("maxNumberOfMessages must be between 1 and 10, got %d", o.maxNumberOfMessages)
	}
	if o.waitTimeSeconds < 1 || o.waitTimeSeconds > 20 {
		return fmt.Errorf("waitTimeSeconds must be between 1 and 20, got %d", o.waitTimeSeconds)
	}
	if o.pollBackoff <= 0 {
		return fmt.Errorf("pollBackoff must be positive, got %s", o.pollBackoff)
	}
	if o.codec == nil {
		return fmt.Errorf("codec must not be nil")
	}
	if o.policy == nil {
		return fmt.Errorf("exception policy must not be nil")
	}
	return nil
}

// ReceiverOption overrides a receiver default.
type ReceiverOption func(*receiverOptions)

// WithMaxNumberOfMessages sets the receive batch size (1 to 10, default 10).
func WithMaxNumberOfMessages(n int32) ReceiverOption {
	return func(o *receiverOptions) { o.maxNumberOfMessages = n }
}

// WithWaitTimeSeconds sets the long-poll wait (1 to 20 seconds, default 20).
// The wait also bounds shutdown latency: a stop signal interrupts the poll,
// but an unresponsive backend can hold the loop for up to this long.
func WithWaitTimeSeconds(s int32) ReceiverOption {
	return func(o *receiverOptions) { o.waitTimeSeconds = s }
}

// WithPollBackoff sets the delay before retrying a failed poll (default 5s).
func WithPollBackoff(d time.Duration) ReceiverOption {
	return func(o *receiverOptions) { o.pollBackoff = d }
}

// WithCodec sets the codec used to decode message bodies (default JSONCodec).
func WithCodec(c Codec) ReceiverOption {
	return func(o *receiverOptions) { o.codec = c }
}

// WithExceptionPolicy sets the policy consulted when the handler or the
// codec fails. Without this option the receiver uses AcknowledgeAlways and
// logs each dropped message.
func WithExceptionPolicy(p ExceptionPolicy) ReceiverOption {
	return func(o *receiverOptions) { o.policy = p }
}

// SenderOption overrides a sender default.
type SenderOption func(*Sender)

// WithSenderCodec sets the codec used to encode payloads (default JSONCodec).
func WithSenderCodec(c Codec) SenderOption {
	return func(s *Sender) { s.codec = c }
}
