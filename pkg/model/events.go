package model

import "github.com/google/uuid"

// OrderDenied records that an order was rejected before submission, along
// with a human-readable reason. Construction is skeletal relative to the
// full event model: only the fields needed to explain a denial to an
// observability sink or test assertion are kept.
type OrderDenied struct {
	TraderId      TraderId
	StrategyId    StrategyId
	InstrumentId  InstrumentId
	ClientOrderId ClientOrderId
	Reason        string
	EventId       uuid.UUID
	TsEvent       uint64
	TsInit        uint64
}

// NewOrderDenied constructs an OrderDenied event, generating a fresh
// EventId.
func NewOrderDenied(traderId TraderId, strategyId StrategyId, instrumentId InstrumentId, clientOrderId ClientOrderId, reason string, tsEvent, tsInit uint64) OrderDenied {
	return OrderDenied{
		TraderId:      traderId,
		StrategyId:    strategyId,
		InstrumentId:  instrumentId,
		ClientOrderId: clientOrderId,
		Reason:        reason,
		EventId:       uuid.New(),
		TsEvent:       tsEvent,
		TsInit:        tsInit,
	}
}
