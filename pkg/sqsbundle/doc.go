// Package sqsbundle wires an Amazon SQS client into a host application's
// lifecycle: startup/shutdown hooks, health checks and configuration binding.
//
// A Bundle hands out senders bound to a named queue and registers receivers
// that poll a queue on a managed background loop. Queues are resolved by name
// and created on first use when absent. Message processing follows an
// explicit acknowledge model: a message is deleted from the queue only after
// the handler returns without error, or when the receiver's exception policy
// decides a failed message should be dropped. Unacknowledged messages are
// redelivered by SQS after the visibility timeout.
//
// The host supplies a Lifecycle implementation; the bundle never owns the
// invocation timing of start, stop or health checks.
package sqsbundle
