// Package orderbook implements the live, per-instrument limit order book:
// a mutable price-level ladder supporting L1/L2/L3 granularity, integrity
// checking, and non-mutating fill simulation.
package orderbook

import "go.uber.org/zap"

// ObservationKind classifies an event reported through a Sink.
type ObservationKind string

const (
	// ObservationStaleSequence fires when a mutation arrives with a
	// sequence number not strictly greater than the book's last-seen
	// sequence.
	ObservationStaleSequence ObservationKind = "StaleSequence"
	// ObservationNoOpDelete fires when a DELETE references an order_id
	// that is not (or no longer) on the book; the delete is tolerated as
	// an idempotent no-op rather than failing.
	ObservationNoOpDelete ObservationKind = "NoOpDelete"
	// ObservationCrossedBook fires when check_integrity finds the book
	// crossed.
	ObservationCrossedBook ObservationKind = "CrossedBook"
)

// Sink receives diagnostic observations from an OrderBook. Implementations
// must not block or mutate the book from within Record.
type Sink interface {
	Record(kind ObservationKind, context map[string]interface{})
}

// NoopSink discards every observation. It is the default Sink when none is
// supplied at construction.
type NoopSink struct{}

// Record implements Sink by doing nothing.
func (NoopSink) Record(ObservationKind, map[string]interface{}) {}

// ZapSink forwards observations to a zap.Logger at Warn level, grounded on
// the teacher's zap.String/zap.Float64 structured field convention.
type ZapSink struct {
	Logger *zap.Logger
}

// NewZapSink constructs a ZapSink over the given logger.
func NewZapSink(logger *zap.Logger) *ZapSink {
	return &ZapSink{Logger: logger}
}

// Record logs the observation at Warn level with its context flattened
// into zap fields.
func (s *ZapSink) Record(kind ObservationKind, context map[string]interface{}) {
	if s.Logger == nil {
		return
	}
	fields := make([]zap.Field, 0, len(context)+1)
	fields = append(fields, zap.String("kind", string(kind)))
	for k, v := range context {
		fields = append(fields, zap.Any(k, v))
	}
	s.Logger.Warn("orderbook observation", fields...)
}
