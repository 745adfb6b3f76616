package model

import "github.com/abdoElHodaky/tradsys-core/pkg/errors"

// QuoteTick is a single top-of-book bid/ask quote for an instrument.
type QuoteTick struct {
	InstrumentId InstrumentId
	Bid          Price
	Ask          Price
	BidSize      Quantity
	AskSize      Quantity
	TsEvent      uint64
	TsInit       uint64
}

// NewQuoteTick constructs a QuoteTick, rejecting a crossed bid/ask.
func NewQuoteTick(instrumentId InstrumentId, bid, ask Price, bidSize, askSize Quantity, tsEvent, tsInit uint64) (QuoteTick, error) {
	if bid.Greater(ask) {
		return QuoteTick{}, errors.Newf(errors.ErrOutOfBounds, "quote tick bid %s exceeds ask %s", bid.String(), ask.String())
	}
	return QuoteTick{
		InstrumentId: instrumentId,
		Bid:          bid,
		Ask:          ask,
		BidSize:      bidSize,
		AskSize:      askSize,
		TsEvent:      tsEvent,
		TsInit:       tsInit,
	}, nil
}

// TradeTick is a single executed trade for an instrument.
type TradeTick struct {
	InstrumentId  InstrumentId
	Price         Price
	Size          Quantity
	AggressorSide AggressorSide
	TradeId       TradeId
	TsEvent       uint64
	TsInit        uint64
}

// NewTradeTick constructs a TradeTick.
func NewTradeTick(instrumentId InstrumentId, price Price, size Quantity, aggressorSide AggressorSide, tradeId TradeId, tsEvent, tsInit uint64) TradeTick {
	return TradeTick{
		InstrumentId:  instrumentId,
		Price:         price,
		Size:          size,
		AggressorSide: aggressorSide,
		TradeId:       tradeId,
		TsEvent:       tsEvent,
		TsInit:        tsInit,
	}
}

// BarSpecification describes a bar's aggregation: a step count of
// aggregation units (e.g. 1-minute bars have step=1, aggregation=MINUTE)
// and the price type the bars are built from.
type BarSpecification struct {
	Step        uint64
	Aggregation uint8
	PriceType   PriceType
}

// NewBarSpecification constructs a BarSpecification. Fails if step is zero,
// since a zero-width aggregation window is meaningless.
func NewBarSpecification(step uint64, aggregation uint8, priceType PriceType) (BarSpecification, error) {
	if step == 0 {
		return BarSpecification{}, errors.New(errors.ErrOutOfBounds, "bar specification step must be nonzero")
	}
	return BarSpecification{Step: step, Aggregation: aggregation, PriceType: priceType}, nil
}

// BarType identifies the instrument, specification, and data source of a
// bar series.
type BarType struct {
	InstrumentId      InstrumentId
	Spec              BarSpecification
	AggregationSource AggregationSource
}

// NewBarType constructs a BarType.
func NewBarType(instrumentId InstrumentId, spec BarSpecification, source AggregationSource) BarType {
	return BarType{InstrumentId: instrumentId, Spec: spec, AggregationSource: source}
}

// Bar is a single OHLCV bar.
type Bar struct {
	BarType BarType
	Open    Price
	High    Price
	Low     Price
	Close   Price
	Volume  Quantity
	TsEvent uint64
	TsInit  uint64
}

// NewBar constructs a Bar, validating
// low <= min(open, close) <= max(open, close) <= high.
func NewBar(barType BarType, open, high, low, close Price, volume Quantity, tsEvent, tsInit uint64) (Bar, error) {
	minOC := open
	if close.Less(minOC) {
		minOC = close
	}
	maxOC := open
	if close.Greater(maxOC) {
		maxOC = close
	}
	if low.Greater(minOC) || minOC.Greater(maxOC) || maxOC.Greater(high) {
		return Bar{}, errors.Newf(errors.ErrOutOfBounds,
			"bar invariant violated: low %s <= min(open,close) %s <= max(open,close) %s <= high %s does not hold",
			low.String(), minOC.String(), maxOC.String(), high.String())
	}
	return Bar{
		BarType: barType,
		Open:    open,
		High:    high,
		Low:     low,
		Close:   close,
		Volume:  volume,
		TsEvent: tsEvent,
		TsInit:  tsInit,
	}, nil
}
