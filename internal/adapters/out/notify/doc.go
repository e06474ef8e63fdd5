// Package notify delivers request lifecycle events to subscribers.
//
// Units of work use a Collector to gather the events of every request they
// saved and call Dispatch once the transaction has committed. Dispatch hands
// the events to a ports.EventPublisher and only logs its failures: the
// transition has already happened and is not undone by a lost notification.
//
// Publishers in this package: Multi (fan-out), Log (slog) and Metered
// (Prometheus counters around another publisher). Kafka and Redis
// sinks live in the kafka and redis subpackages and share the JSON Envelope.
package notify
