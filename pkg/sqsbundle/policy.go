package sqsbundle

import "github.com/aws/aws-sdk-go-v2/service/sqs/types"

// ExceptionPolicy decides what happens to a message whose handler (or
// decoding) failed. Returning true acknowledges the message anyway, removing
// it from the queue; returning false leaves it for redelivery after the
// visibility timeout.
//
// A policy that panics is recovered by the receiver, logged, and treated as
// "do not acknowledge".
type ExceptionPolicy func(msg types.Message, err error) bool

// AcknowledgeAlways drops every failed message. This trades delivery
// guarantees for simplicity: a processing error silently discards the
// message. It is the bundle default for compatibility; callers that need
// at-least-once semantics under failure must use RetryOnError or their own
// policy.
func AcknowledgeAlways(types.Message, error) bool { return true }

// RetryOnError leaves every failed message on the queue for redelivery.
// Pair it with a dead-letter queue to avoid poison messages cycling forever.
func RetryOnError(types.Message, error) bool { return false }
