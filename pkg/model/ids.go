package model

import (
	"strings"

	"github.com/abdoElHodaky/tradsys-core/pkg/errors"
)

// Identifier is an interned, immutable domain string. Two identifiers are
// equal iff their underlying content matches; construction rejects the
// empty string so a zero-value Identifier can never be mistaken for a
// valid one.
type Identifier struct {
	value string
}

// NewIdentifier constructs an Identifier from s, failing if s is empty.
func NewIdentifier(kind, s string) (Identifier, error) {
	if s == "" {
		return Identifier{}, errors.Newf(errors.ErrInvalidIdentifier, "%s: identifier must not be empty", kind)
	}
	return Identifier{value: s}, nil
}

// MustIdentifier is like NewIdentifier but panics on error. Intended for
// construction of literal, known-valid identifiers (tests, constants).
func MustIdentifier(kind, s string) Identifier {
	id, err := NewIdentifier(kind, s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the identifier's content.
func (i Identifier) String() string { return i.value }

// IsEmpty reports whether this is the zero-value Identifier.
func (i Identifier) IsEmpty() bool { return i.value == "" }

// Equals compares two identifiers by content.
func (i Identifier) Equals(o Identifier) bool { return i.value == o.value }

// Less orders identifiers lexicographically by content.
func (i Identifier) Less(o Identifier) bool { return i.value < o.value }

// The domain identifier kinds. Each is a distinct type over Identifier so
// the compiler catches cross-kind mixups (a TraderId can't be passed where
// a StrategyId is expected), matching the header's distinct Arc_String
// wrapper structs (TraderId_t, StrategyId_t, ...).
type (
	Symbol         struct{ Identifier }
	Venue          struct{ Identifier }
	TraderId       struct{ Identifier }
	StrategyId     struct{ Identifier }
	AccountId      struct{ Identifier }
	ClientId       struct{ Identifier }
	ClientOrderId  struct{ Identifier }
	VenueOrderId   struct{ Identifier }
	PositionId     struct{ Identifier }
	OrderListId    struct{ Identifier }
	TradeId        struct{ Identifier }
	ExecAlgorithmId struct{ Identifier }
	ComponentId    struct{ Identifier }
)

// NewSymbol constructs a Symbol, rejecting the empty string.
func NewSymbol(s string) (Symbol, error) {
	id, err := NewIdentifier("Symbol", s)
	return Symbol{id}, err
}

// NewVenue constructs a Venue, rejecting the empty string.
func NewVenue(s string) (Venue, error) {
	id, err := NewIdentifier("Venue", s)
	return Venue{id}, err
}

// NewTraderId constructs a TraderId, rejecting the empty string.
func NewTraderId(s string) (TraderId, error) {
	id, err := NewIdentifier("TraderId", s)
	return TraderId{id}, err
}

// NewStrategyId constructs a StrategyId, rejecting the empty string.
func NewStrategyId(s string) (StrategyId, error) {
	id, err := NewIdentifier("StrategyId", s)
	return StrategyId{id}, err
}

// NewAccountId constructs an AccountId, rejecting the empty string.
func NewAccountId(s string) (AccountId, error) {
	id, err := NewIdentifier("AccountId", s)
	return AccountId{id}, err
}

// NewClientId constructs a ClientId, rejecting the empty string.
func NewClientId(s string) (ClientId, error) {
	id, err := NewIdentifier("ClientId", s)
	return ClientId{id}, err
}

// NewClientOrderId constructs a ClientOrderId, rejecting the empty string.
func NewClientOrderId(s string) (ClientOrderId, error) {
	id, err := NewIdentifier("ClientOrderId", s)
	return ClientOrderId{id}, err
}

// NewVenueOrderId constructs a VenueOrderId, rejecting the empty string.
func NewVenueOrderId(s string) (VenueOrderId, error) {
	id, err := NewIdentifier("VenueOrderId", s)
	return VenueOrderId{id}, err
}

// NewPositionId constructs a PositionId, rejecting the empty string.
func NewPositionId(s string) (PositionId, error) {
	id, err := NewIdentifier("PositionId", s)
	return PositionId{id}, err
}

// NewOrderListId constructs an OrderListId, rejecting the empty string.
func NewOrderListId(s string) (OrderListId, error) {
	id, err := NewIdentifier("OrderListId", s)
	return OrderListId{id}, err
}

// NewTradeId constructs a TradeId, rejecting the empty string.
func NewTradeId(s string) (TradeId, error) {
	id, err := NewIdentifier("TradeId", s)
	return TradeId{id}, err
}

// NewExecAlgorithmId constructs an ExecAlgorithmId, rejecting the empty string.
func NewExecAlgorithmId(s string) (ExecAlgorithmId, error) {
	id, err := NewIdentifier("ExecAlgorithmId", s)
	return ExecAlgorithmId{id}, err
}

// NewComponentId constructs a ComponentId, rejecting the empty string.
func NewComponentId(s string) (ComponentId, error) {
	id, err := NewIdentifier("ComponentId", s)
	return ComponentId{id}, err
}

// InstrumentId identifies a tradable instrument by symbol and venue. Its
// canonical textual form is "{symbol}.{venue}".
type InstrumentId struct {
	Symbol Symbol
	Venue  Venue
}

// NewInstrumentId constructs an InstrumentId from its parts.
func NewInstrumentId(symbol Symbol, venue Venue) InstrumentId {
	return InstrumentId{Symbol: symbol, Venue: venue}
}

// String renders the canonical "{symbol}.{venue}" form.
func (i InstrumentId) String() string {
	return i.Symbol.String() + "." + i.Venue.String()
}

// Equals compares two InstrumentIds by their symbol and venue content.
func (i InstrumentId) Equals(o InstrumentId) bool {
	return i.Symbol.Equals(o.Symbol.Identifier) && i.Venue.Equals(o.Venue.Identifier)
}

// ParseInstrumentId parses the canonical "{symbol}.{venue}" form, splitting
// on the last '.' separator. Either side being empty is a failure.
func ParseInstrumentId(s string) (InstrumentId, error) {
	idx := strings.LastIndexByte(s, '.')
	if idx < 0 {
		return InstrumentId{}, errors.Newf(errors.ErrInvalidIdentifier, "InstrumentId: %q has no '.' separator", s)
	}
	symbolPart, venuePart := s[:idx], s[idx+1:]
	if symbolPart == "" || venuePart == "" {
		return InstrumentId{}, errors.Newf(errors.ErrInvalidIdentifier, "InstrumentId: %q has an empty symbol or venue", s)
	}
	symbol, err := NewSymbol(symbolPart)
	if err != nil {
		return InstrumentId{}, err
	}
	venue, err := NewVenue(venuePart)
	if err != nil {
		return InstrumentId{}, err
	}
	return NewInstrumentId(symbol, venue), nil
}
