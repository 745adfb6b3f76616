package model

// BookOrder is a single order resting on a book, used directly as the L3
// order-tracking unit and as the payload of an OrderBookDelta.
type BookOrder struct {
	Side    OrderSide
	Price   Price
	Size    Quantity
	OrderId uint64
}

// Exposure is price times size, the notional value the order represents.
func (o BookOrder) Exposure() float64 {
	return o.Price.AsFloat64() * o.Size.AsFloat64()
}

// SignedSize is size signed by side: positive for BUY, negative for SELL.
func (o BookOrder) SignedSize() float64 {
	if o.Side == OrderSideSell {
		return -o.Size.AsFloat64()
	}
	return o.Size.AsFloat64()
}

// Equals compares two BookOrder values over side, raw price, raw size, and
// order_id.
func (o BookOrder) Equals(other BookOrder) bool {
	return o.Side == other.Side &&
		o.Price.Raw() == other.Price.Raw() &&
		o.Size.Raw() == other.Size.Raw() &&
		o.OrderId == other.OrderId
}

// OrderBookDelta is a single mutation applied to an order book: an ADD,
// UPDATE, DELETE, or CLEAR action carrying the affected BookOrder.
type OrderBookDelta struct {
	InstrumentId InstrumentId
	Action       BookAction
	Order        BookOrder
	Flags        uint8
	Sequence     uint64
	TsEvent      uint64
	TsInit       uint64
}
