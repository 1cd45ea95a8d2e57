package sqsbundle

import "errors"

// ErrQueueUnavailable wraps queue resolution failures: the queue does not
// exist and could not be created, or the lookup itself failed. Senders and
// receivers are not created for unavailable queues.
var ErrQueueUnavailable = errors.New("queue unavailable")

// ErrReceiverStopped is returned when starting a receiver that has already
// been stopped. A stopped receiver is terminal; register a fresh one instead.
var ErrReceiverStopped = errors.New("receiver already stopped")
