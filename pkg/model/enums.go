package model

import (
	"strings"

	"github.com/abdoElHodaky/tradsys-core/pkg/errors"
)

// fromStringByName looks up s (case-insensitively) against the canonical
// names table shared with each enum's String/FromWire methods, returning
// the matching discriminant in its canonical form. This is the "single
// table drives both directions" lookup used by every FromString below.
func fromStringByName[T comparable](names map[T]string, label, s string) (T, error) {
	for variant, name := range names {
		if strings.EqualFold(name, s) {
			return variant, nil
		}
	}
	var zero T
	return zero, errors.Newf(errors.ErrUnknownEnumVariant, "%s: unknown name %q", label, s)
}

// OrderSide is the side of an order or book level. The integer values bind
// to the platform's wire format and must not be renumbered.
type OrderSide uint8

const (
	OrderSideNone OrderSide = 0
	OrderSideBuy  OrderSide = 1
	OrderSideSell OrderSide = 2
)

var orderSideNames = map[OrderSide]string{
	OrderSideNone: "NO_ORDER_SIDE",
	OrderSideBuy:  "BUY",
	OrderSideSell: "SELL",
}

// String renders the canonical uppercase name, matching the wire format's
// Python-string representation.
func (s OrderSide) String() string {
	if name, ok := orderSideNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// OrderSideFromWire validates a wire discriminant and returns the
// corresponding OrderSide.
func OrderSideFromWire(v uint8) (OrderSide, error) {
	if _, ok := orderSideNames[OrderSide(v)]; ok {
		return OrderSide(v), nil
	}
	return 0, errors.Newf(errors.ErrUnknownEnumVariant, "OrderSide: unknown discriminant %d", v)
}

// OrderSideFromString parses the canonical name case-insensitively.
func OrderSideFromString(s string) (OrderSide, error) {
	return fromStringByName(orderSideNames, "OrderSide", s)
}

// Opposite returns the other trading side. Panics if called on
// OrderSideNone, which has no opposite.
func (s OrderSide) Opposite() OrderSide {
	switch s {
	case OrderSideBuy:
		return OrderSideSell
	case OrderSideSell:
		return OrderSideBuy
	default:
		panic("model: OrderSideNone has no opposite")
	}
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus uint8

const (
	OrderStatusInitialized    OrderStatus = 1
	OrderStatusDenied         OrderStatus = 2
	OrderStatusSubmitted      OrderStatus = 3
	OrderStatusAccepted       OrderStatus = 4
	OrderStatusRejected       OrderStatus = 5
	OrderStatusCanceled       OrderStatus = 6
	OrderStatusExpired        OrderStatus = 7
	OrderStatusTriggered      OrderStatus = 8
	OrderStatusPendingUpdate  OrderStatus = 9
	OrderStatusPendingCancel  OrderStatus = 10
	OrderStatusPartiallyFilled OrderStatus = 11
	OrderStatusFilled         OrderStatus = 12
)

var orderStatusNames = map[OrderStatus]string{
	OrderStatusInitialized:     "INITIALIZED",
	OrderStatusDenied:          "DENIED",
	OrderStatusSubmitted:       "SUBMITTED",
	OrderStatusAccepted:        "ACCEPTED",
	OrderStatusRejected:        "REJECTED",
	OrderStatusCanceled:        "CANCELED",
	OrderStatusExpired:         "EXPIRED",
	OrderStatusTriggered:       "TRIGGERED",
	OrderStatusPendingUpdate:   "PENDING_UPDATE",
	OrderStatusPendingCancel:   "PENDING_CANCEL",
	OrderStatusPartiallyFilled: "PARTIALLY_FILLED",
	OrderStatusFilled:          "FILLED",
}

func (s OrderStatus) String() string {
	if name, ok := orderStatusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// OrderStatusFromWire validates a wire discriminant and returns the
// corresponding OrderStatus.
func OrderStatusFromWire(v uint8) (OrderStatus, error) {
	if _, ok := orderStatusNames[OrderStatus(v)]; ok {
		return OrderStatus(v), nil
	}
	return 0, errors.Newf(errors.ErrUnknownEnumVariant, "OrderStatus: unknown discriminant %d", v)
}

// OrderStatusFromString parses the canonical name case-insensitively.
func OrderStatusFromString(s string) (OrderStatus, error) {
	return fromStringByName(orderStatusNames, "OrderStatus", s)
}

// OrderType is the execution style of an order.
type OrderType uint8

const (
	OrderTypeMarket             OrderType = 1
	OrderTypeLimit              OrderType = 2
	OrderTypeStopMarket         OrderType = 3
	OrderTypeStopLimit          OrderType = 4
	OrderTypeMarketToLimit      OrderType = 5
	OrderTypeMarketIfTouched    OrderType = 6
	OrderTypeLimitIfTouched     OrderType = 7
	OrderTypeTrailingStopMarket OrderType = 8
	OrderTypeTrailingStopLimit  OrderType = 9
)

var orderTypeNames = map[OrderType]string{
	OrderTypeMarket:             "MARKET",
	OrderTypeLimit:              "LIMIT",
	OrderTypeStopMarket:         "STOP_MARKET",
	OrderTypeStopLimit:          "STOP_LIMIT",
	OrderTypeMarketToLimit:      "MARKET_TO_LIMIT",
	OrderTypeMarketIfTouched:    "MARKET_IF_TOUCHED",
	OrderTypeLimitIfTouched:     "LIMIT_IF_TOUCHED",
	OrderTypeTrailingStopMarket: "TRAILING_STOP_MARKET",
	OrderTypeTrailingStopLimit:  "TRAILING_STOP_LIMIT",
}

func (t OrderType) String() string {
	if name, ok := orderTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// OrderTypeFromWire validates a wire discriminant and returns the
// corresponding OrderType.
func OrderTypeFromWire(v uint8) (OrderType, error) {
	if _, ok := orderTypeNames[OrderType(v)]; ok {
		return OrderType(v), nil
	}
	return 0, errors.Newf(errors.ErrUnknownEnumVariant, "OrderType: unknown discriminant %d", v)
}

// OrderTypeFromString parses the canonical name case-insensitively.
func OrderTypeFromString(s string) (OrderType, error) {
	return fromStringByName(orderTypeNames, "OrderType", s)
}

// TimeInForce governs how long an order remains working.
type TimeInForce uint8

const (
	TimeInForceGTC        TimeInForce = 1
	TimeInForceIOC        TimeInForce = 2
	TimeInForceFOK        TimeInForce = 3
	TimeInForceGTD        TimeInForce = 4
	TimeInForceDAY        TimeInForce = 5
	TimeInForceAtTheOpen  TimeInForce = 6
	TimeInForceAtTheClose TimeInForce = 7
)

var timeInForceNames = map[TimeInForce]string{
	TimeInForceGTC:        "GTC",
	TimeInForceIOC:        "IOC",
	TimeInForceFOK:        "FOK",
	TimeInForceGTD:        "GTD",
	TimeInForceDAY:        "DAY",
	TimeInForceAtTheOpen:  "AT_THE_OPEN",
	TimeInForceAtTheClose: "AT_THE_CLOSE",
}

func (t TimeInForce) String() string {
	if name, ok := timeInForceNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// TimeInForceFromWire validates a wire discriminant and returns the
// corresponding TimeInForce.
func TimeInForceFromWire(v uint8) (TimeInForce, error) {
	if _, ok := timeInForceNames[TimeInForce(v)]; ok {
		return TimeInForce(v), nil
	}
	return 0, errors.Newf(errors.ErrUnknownEnumVariant, "TimeInForce: unknown discriminant %d", v)
}

// TimeInForceFromString parses the canonical name case-insensitively.
func TimeInForceFromString(s string) (TimeInForce, error) {
	return fromStringByName(timeInForceNames, "TimeInForce", s)
}

// BookAction is the kind of mutation an OrderBookDelta applies.
type BookAction uint8

const (
	BookActionAdd    BookAction = 1
	BookActionUpdate BookAction = 2
	BookActionDelete BookAction = 3
	BookActionClear  BookAction = 4
)

var bookActionNames = map[BookAction]string{
	BookActionAdd:    "ADD",
	BookActionUpdate: "UPDATE",
	BookActionDelete: "DELETE",
	BookActionClear:  "CLEAR",
}

func (a BookAction) String() string {
	if name, ok := bookActionNames[a]; ok {
		return name
	}
	return "UNKNOWN"
}

// BookActionFromWire validates a wire discriminant and returns the
// corresponding BookAction.
func BookActionFromWire(v uint8) (BookAction, error) {
	if _, ok := bookActionNames[BookAction(v)]; ok {
		return BookAction(v), nil
	}
	return 0, errors.Newf(errors.ErrUnknownEnumVariant, "BookAction: unknown discriminant %d", v)
}

// BookActionFromString parses the canonical name case-insensitively.
func BookActionFromString(s string) (BookAction, error) {
	return fromStringByName(bookActionNames, "BookAction", s)
}

// BookType selects the granularity an OrderBook maintains: top-of-book
// quotes only, aggregated price levels, or individual order tracking.
type BookType uint8

const (
	// BookTypeL1TBBO: top-of-book best bid/offer only.
	BookTypeL1TBBO BookType = 1
	// BookTypeL2MBP: market by price, aggregated per price level.
	BookTypeL2MBP BookType = 2
	// BookTypeL3MBO: market by order, individual orders tracked.
	BookTypeL3MBO BookType = 3
)

var bookTypeNames = map[BookType]string{
	BookTypeL1TBBO: "L1_TBBO",
	BookTypeL2MBP:  "L2_MBP",
	BookTypeL3MBO:  "L3_MBO",
}

func (t BookType) String() string {
	if name, ok := bookTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// BookTypeFromWire validates a wire discriminant and returns the
// corresponding BookType.
func BookTypeFromWire(v uint8) (BookType, error) {
	if _, ok := bookTypeNames[BookType(v)]; ok {
		return BookType(v), nil
	}
	return 0, errors.Newf(errors.ErrUnknownEnumVariant, "BookType: unknown discriminant %d", v)
}

// BookTypeFromString parses the canonical name case-insensitively.
func BookTypeFromString(s string) (BookType, error) {
	return fromStringByName(bookTypeNames, "BookType", s)
}

// AggressorSide identifies which side initiated (crossed the spread for) a
// trade.
type AggressorSide uint8

const (
	AggressorSideNone   AggressorSide = 0
	AggressorSideBuyer  AggressorSide = 1
	AggressorSideSeller AggressorSide = 2
)

var aggressorSideNames = map[AggressorSide]string{
	AggressorSideNone:   "NO_AGGRESSOR",
	AggressorSideBuyer:  "BUYER",
	AggressorSideSeller: "SELLER",
}

func (a AggressorSide) String() string {
	if name, ok := aggressorSideNames[a]; ok {
		return name
	}
	return "UNKNOWN"
}

// AggressorSideFromWire validates a wire discriminant and returns the
// corresponding AggressorSide.
func AggressorSideFromWire(v uint8) (AggressorSide, error) {
	if _, ok := aggressorSideNames[AggressorSide(v)]; ok {
		return AggressorSide(v), nil
	}
	return 0, errors.Newf(errors.ErrUnknownEnumVariant, "AggressorSide: unknown discriminant %d", v)
}

// AggressorSideFromString parses the canonical name case-insensitively.
func AggressorSideFromString(s string) (AggressorSide, error) {
	return fromStringByName(aggressorSideNames, "AggressorSide", s)
}

// CurrencyType distinguishes fiat from crypto-native currencies.
type CurrencyType uint8

const (
	CurrencyTypeCrypto CurrencyType = 1
	CurrencyTypeFiat   CurrencyType = 2
)

var currencyTypeNames = map[CurrencyType]string{
	CurrencyTypeCrypto: "CRYPTO",
	CurrencyTypeFiat:   "FIAT",
}

func (c CurrencyType) String() string {
	if name, ok := currencyTypeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// CurrencyTypeFromWire validates a wire discriminant and returns the
// corresponding CurrencyType.
func CurrencyTypeFromWire(v uint8) (CurrencyType, error) {
	if _, ok := currencyTypeNames[CurrencyType(v)]; ok {
		return CurrencyType(v), nil
	}
	return 0, errors.Newf(errors.ErrUnknownEnumVariant, "CurrencyType: unknown discriminant %d", v)
}

// CurrencyTypeFromString parses the canonical name case-insensitively.
func CurrencyTypeFromString(s string) (CurrencyType, error) {
	return fromStringByName(currencyTypeNames, "CurrencyType", s)
}

// PriceType selects which of a market's reference prices is meant.
type PriceType uint8

const (
	PriceTypeBid  PriceType = 1
	PriceTypeAsk  PriceType = 2
	PriceTypeMid  PriceType = 3
	PriceTypeLast PriceType = 4
)

var priceTypeNames = map[PriceType]string{
	PriceTypeBid:  "BID",
	PriceTypeAsk:  "ASK",
	PriceTypeMid:  "MID",
	PriceTypeLast: "LAST",
}

func (p PriceType) String() string {
	if name, ok := priceTypeNames[p]; ok {
		return name
	}
	return "UNKNOWN"
}

// PriceTypeFromWire validates a wire discriminant and returns the
// corresponding PriceType.
func PriceTypeFromWire(v uint8) (PriceType, error) {
	if _, ok := priceTypeNames[PriceType(v)]; ok {
		return PriceType(v), nil
	}
	return 0, errors.Newf(errors.ErrUnknownEnumVariant, "PriceType: unknown discriminant %d", v)
}

// PriceTypeFromString parses the canonical name case-insensitively.
func PriceTypeFromString(s string) (PriceType, error) {
	return fromStringByName(priceTypeNames, "PriceType", s)
}

// AggregationSource distinguishes data produced by the venue from data
// aggregated internally (e.g. bars built locally from ticks).
type AggregationSource uint8

const (
	AggregationSourceExternal AggregationSource = 1
	AggregationSourceInternal AggregationSource = 2
)

var aggregationSourceNames = map[AggregationSource]string{
	AggregationSourceExternal: "EXTERNAL",
	AggregationSourceInternal: "INTERNAL",
}

func (a AggregationSource) String() string {
	if name, ok := aggregationSourceNames[a]; ok {
		return name
	}
	return "UNKNOWN"
}

// AggregationSourceFromWire validates a wire discriminant and returns the
// corresponding AggregationSource.
func AggregationSourceFromWire(v uint8) (AggregationSource, error) {
	if _, ok := aggregationSourceNames[AggregationSource(v)]; ok {
		return AggregationSource(v), nil
	}
	return 0, errors.Newf(errors.ErrUnknownEnumVariant, "AggregationSource: unknown discriminant %d", v)
}

// AggregationSourceFromString parses the canonical name case-insensitively.
func AggregationSourceFromString(s string) (AggregationSource, error) {
	return fromStringByName(aggregationSourceNames, "AggregationSource", s)
}
