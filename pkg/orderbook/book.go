package orderbook

import (
	"container/heap"

	"github.com/abdoElHodaky/tradsys-core/pkg/errors"
	"github.com/abdoElHodaky/tradsys-core/pkg/model"
)

// State is the order book's implicit lifecycle stage, derived from which
// sides currently hold at least one level.
type State int

const (
	// StateEmpty: neither side has a level.
	StateEmpty State = iota
	// StateOneSided: exactly one side has at least one level.
	StateOneSided
	// StateTwoSided: both sides have at least one level.
	StateTwoSided
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "EMPTY"
	case StateOneSided:
		return "ONE_SIDED"
	case StateTwoSided:
		return "TWO_SIDED"
	default:
		return "UNKNOWN"
	}
}

type orderLocation struct {
	side     model.OrderSide
	priceRaw int64
}

// OrderBook is a single-threaded, mutable, per-instrument limit order
// book. It is not safe for concurrent use; callers needing concurrent
// access must serialize their own calls.
type OrderBook struct {
	instrumentId model.InstrumentId
	bookType     model.BookType
	bids         *levelHeap
	asks         *levelHeap
	orderIndex   map[uint64]orderLocation
	sequence     uint64
	tsLast       uint64
	count        uint64
	lastTrade    model.Price
	haveLastTrade bool
	sink         Sink
}

// Option configures an OrderBook at construction.
type Option func(*OrderBook)

// WithSink attaches an observability Sink. Without this option the book
// uses NoopSink.
func WithSink(sink Sink) Option {
	return func(b *OrderBook) { b.sink = sink }
}

// New constructs an empty OrderBook for the given instrument and
// granularity.
func New(instrumentId model.InstrumentId, bookType model.BookType, opts ...Option) *OrderBook {
	b := &OrderBook{
		instrumentId: instrumentId,
		bookType:     bookType,
		bids:         newLevelHeap(true),
		asks:         newLevelHeap(false),
		orderIndex:   make(map[uint64]orderLocation),
		sink:         NoopSink{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// InstrumentId returns the instrument this book tracks.
func (b *OrderBook) InstrumentId() model.InstrumentId { return b.instrumentId }

// BookType returns the book's configured granularity.
func (b *OrderBook) BookType() model.BookType { return b.bookType }

func (b *OrderBook) sideHeap(side model.OrderSide) *levelHeap {
	if side == model.OrderSideBuy {
		return b.bids
	}
	return b.asks
}

func (b *OrderBook) touch(tsEvent uint64) {
	b.tsLast = tsEvent
}

func (b *OrderBook) observeSequence(sequence uint64) {
	if sequence != 0 && sequence <= b.sequence {
		b.sink.Record(ObservationStaleSequence, map[string]interface{}{
			"instrument_id":   b.instrumentId.String(),
			"last_sequence":   b.sequence,
			"incoming_sequence": sequence,
		})
	}
	if sequence > b.sequence {
		b.sequence = sequence
	}
}

// Add inserts a new resting order. For an L3_MBO book this fails with
// ErrDuplicateOrder if order.OrderId already exists anywhere on the book.
// For an L2_MBP book, an Add at a price that already has a level replaces
// that level's aggregate order with the incoming one.
// For an L1_TBBO book, Add overwrites whatever was previously resting on
// that side with the single incoming order — the platform's C API accepts
// per-order adds against a top-of-book-only book, and the most useful
// reading of that is "this is now the top of book" rather than an error.
func (b *OrderBook) Add(order model.BookOrder) error {
	if b.bookType == model.BookTypeL3MBO {
		if _, exists := b.orderIndex[order.OrderId]; exists {
			return errors.Newf(errors.ErrDuplicateOrder, "order_id %d already exists on the book", order.OrderId)
		}
	}
	side := b.sideHeap(order.Side)
	if b.bookType == model.BookTypeL1TBBO {
		for _, l := range side.levels {
			for _, o := range l.orders {
				delete(b.orderIndex, o.OrderId)
			}
		}
		side.clear()
	}
	level := side.findByPrice(order.Price.Raw())
	if level == nil {
		level = &priceLevel{price: order.Price}
		heap.Push(side, level)
	}
	if b.bookType == model.BookTypeL2MBP {
		// L2_MBP: the incoming order is the level's new aggregate.
		level.orders = []model.BookOrder{order}
	} else {
		level.append(order)
	}
	if b.bookType == model.BookTypeL3MBO {
		b.orderIndex[order.OrderId] = orderLocation{side: order.Side, priceRaw: order.Price.Raw()}
	}
	b.count++
	return nil
}

// Update changes the price and/or size of an existing resting order. On
// an L3_MBO book the order is located by order.OrderId; a price change
// moves it to the back of the new level's FIFO queue, a size-only change
// preserves time priority. On an L2_MBP book the entire level at
// order.Price is replaced with the incoming aggregate. On an L1_TBBO
// book, Update is equivalent to Add.
func (b *OrderBook) Update(order model.BookOrder) error {
	if b.bookType == model.BookTypeL1TBBO {
		return b.Add(order)
	}
	side := b.sideHeap(order.Side)
	if b.bookType == model.BookTypeL3MBO {
		loc, exists := b.orderIndex[order.OrderId]
		if !exists {
			return errors.Newf(errors.ErrUnknownOrder, "order_id %d not found", order.OrderId)
		}
		if loc.side != order.Side {
			return errors.Newf(errors.ErrSideMismatch, "order_id %d belongs to side %s, not %s", order.OrderId, loc.side, order.Side)
		}
		if loc.priceRaw == order.Price.Raw() {
			level := side.findByPrice(loc.priceRaw)
			level.replaceByOrderId(order.OrderId, order)
			b.count++
			return nil
		}
		oldLevel := side.findByPrice(loc.priceRaw)
		if oldLevel != nil {
			oldLevel.removeByOrderId(order.OrderId)
			if oldLevel.isEmpty() {
				side.removeByPrice(loc.priceRaw)
			}
		}
		newLevel := side.findByPrice(order.Price.Raw())
		if newLevel == nil {
			newLevel = &priceLevel{price: order.Price}
			heap.Push(side, newLevel)
		}
		newLevel.append(order)
		b.orderIndex[order.OrderId] = orderLocation{side: order.Side, priceRaw: order.Price.Raw()}
		b.count++
		return nil
	}
	// L2_MBP: the level itself is the addressable unit.
	level := side.findByPrice(order.Price.Raw())
	if level == nil {
		level = &priceLevel{price: order.Price}
		heap.Push(side, level)
	}
	level.orders = []model.BookOrder{order}
	b.count++
	return nil
}

// Delete removes a resting order or level. On L1_TBBO, side is cleared
// entirely regardless of orderId. On L3_MBO, orderId must belong to side
// or this fails with ErrSideMismatch; an orderId unknown to the book is
// tolerated as an idempotent no-op rather than an error, reported via
// ObservationNoOpDelete. On L2_MBP, orderId is matched against whichever
// synthetic order currently occupies a level, with the same tolerance
// for an unknown orderId.
func (b *OrderBook) Delete(side model.OrderSide, orderId uint64) error {
	h := b.sideHeap(side)
	if b.bookType == model.BookTypeL1TBBO {
		for _, l := range h.levels {
			for _, o := range l.orders {
				delete(b.orderIndex, o.OrderId)
			}
		}
		h.clear()
		b.count++
		return nil
	}
	if b.bookType == model.BookTypeL3MBO {
		loc, exists := b.orderIndex[orderId]
		if !exists {
			b.noOpDelete(side, orderId)
			b.count++
			return nil
		}
		if loc.side != side {
			return errors.Newf(errors.ErrSideMismatch, "order_id %d belongs to side %s, not %s", orderId, loc.side, side)
		}
		level := h.findByPrice(loc.priceRaw)
		if level != nil {
			level.removeByOrderId(orderId)
			if level.isEmpty() {
				h.removeByPrice(loc.priceRaw)
			}
		}
		delete(b.orderIndex, orderId)
		b.count++
		return nil
	}
	for _, l := range h.levels {
		if _, ok := l.removeByOrderId(orderId); ok {
			if l.isEmpty() {
				h.removeByPrice(l.price.Raw())
			}
			b.count++
			return nil
		}
	}
	b.noOpDelete(side, orderId)
	b.count++
	return nil
}

func (b *OrderBook) noOpDelete(side model.OrderSide, orderId uint64) {
	b.sink.Record(ObservationNoOpDelete, map[string]interface{}{
		"instrument_id": b.instrumentId.String(),
		"side":          side.String(),
		"order_id":      orderId,
	})
}

// Clear empties both sides of the book.
func (b *OrderBook) Clear() {
	b.bids.clear()
	b.asks.clear()
	b.orderIndex = make(map[uint64]orderLocation)
	b.count++
}

// ClearBids empties the bid side only.
func (b *OrderBook) ClearBids() {
	b.clearSide(model.OrderSideBuy)
}

// ClearAsks empties the ask side only.
func (b *OrderBook) ClearAsks() {
	b.clearSide(model.OrderSideSell)
}

func (b *OrderBook) clearSide(side model.OrderSide) {
	h := b.sideHeap(side)
	for _, l := range h.levels {
		for _, o := range l.orders {
			delete(b.orderIndex, o.OrderId)
		}
	}
	h.clear()
	b.count++
}

// ApplyDelta applies a single OrderBookDelta, dispatching to
// Add/Update/Delete/Clear by its BookAction, and advances the book's
// sequence/ts_last bookkeeping.
func (b *OrderBook) ApplyDelta(delta model.OrderBookDelta) error {
	var err error
	switch delta.Action {
	case model.BookActionAdd:
		err = b.Add(delta.Order)
	case model.BookActionUpdate:
		err = b.Update(delta.Order)
	case model.BookActionDelete:
		err = b.Delete(delta.Order.Side, delta.Order.OrderId)
	case model.BookActionClear:
		b.Clear()
	default:
		return errors.Newf(errors.ErrInvalidBookOperation, "unknown book action %v", delta.Action)
	}
	if err != nil {
		return err
	}
	b.observeSequence(delta.Sequence)
	b.touch(delta.TsEvent)
	return nil
}

// UpdateQuoteTick replaces the top of book from a QuoteTick. Valid for
// L1_TBBO books; other book types reject it since per-order/per-level
// structure would be lost by collapsing to a single top-of-book pair.
func (b *OrderBook) UpdateQuoteTick(tick model.QuoteTick) error {
	if b.bookType != model.BookTypeL1TBBO {
		return errors.Newf(errors.ErrInvalidBookOperation, "update_quote_tick is only valid for L1_TBBO books, this book is %s", b.bookType)
	}
	b.bids.clear()
	b.asks.clear()
	bidLevel := &priceLevel{price: tick.Bid}
	bidLevel.append(model.BookOrder{Side: model.OrderSideBuy, Price: tick.Bid, Size: tick.BidSize})
	heap.Push(b.bids, bidLevel)
	askLevel := &priceLevel{price: tick.Ask}
	askLevel.append(model.BookOrder{Side: model.OrderSideSell, Price: tick.Ask, Size: tick.AskSize})
	heap.Push(b.asks, askLevel)
	b.touch(tick.TsEvent)
	return nil
}

// UpdateTradeTick records the tick's price as the book's last traded
// price. It does not mutate the ladder.
func (b *OrderBook) UpdateTradeTick(tick model.TradeTick) error {
	b.lastTrade = tick.Price
	b.haveLastTrade = true
	b.touch(tick.TsEvent)
	return nil
}

// LastTradePrice returns the most recent price seen via UpdateTradeTick.
func (b *OrderBook) LastTradePrice() (model.Price, bool) {
	return b.lastTrade, b.haveLastTrade
}

// Reset returns the book to its empty, freshly-constructed state,
// including sequence and ts_last bookkeeping.
func (b *OrderBook) Reset() {
	b.bids.clear()
	b.asks.clear()
	b.orderIndex = make(map[uint64]orderLocation)
	b.sequence = 0
	b.tsLast = 0
	b.count = 0
	b.haveLastTrade = false
}

// BestBidPrice returns the best (highest) bid price, or false if the bid
// side is empty.
func (b *OrderBook) BestBidPrice() (model.Price, bool) {
	l := b.bids.peek()
	if l == nil {
		return model.Price{}, false
	}
	return l.price, true
}

// BestAskPrice returns the best (lowest) ask price, or false if the ask
// side is empty.
func (b *OrderBook) BestAskPrice() (model.Price, bool) {
	l := b.asks.peek()
	if l == nil {
		return model.Price{}, false
	}
	return l.price, true
}

// BestBidSize returns the aggregate size resting at the best bid, or
// false if the bid side is empty.
func (b *OrderBook) BestBidSize() (model.Quantity, bool) {
	l := b.bids.peek()
	if l == nil {
		return model.Quantity{}, false
	}
	return l.totalSize(), true
}

// BestAskSize returns the aggregate size resting at the best ask, or
// false if the ask side is empty.
func (b *OrderBook) BestAskSize() (model.Quantity, bool) {
	l := b.asks.peek()
	if l == nil {
		return model.Quantity{}, false
	}
	return l.totalSize(), true
}

// Spread returns best ask minus best bid. Fails with ErrEmptyBook unless
// both sides have at least one level.
func (b *OrderBook) Spread() (model.Price, error) {
	bid, ok := b.BestBidPrice()
	if !ok {
		return model.Price{}, errors.New(errors.ErrEmptyBook, "spread: bid side is empty")
	}
	ask, ok := b.BestAskPrice()
	if !ok {
		return model.Price{}, errors.New(errors.ErrEmptyBook, "spread: ask side is empty")
	}
	return ask.Sub(bid)
}

// Midpoint returns the average of best bid and best ask. Fails with
// ErrEmptyBook unless both sides have at least one level.
func (b *OrderBook) Midpoint() (model.Price, error) {
	bid, ok := b.BestBidPrice()
	if !ok {
		return model.Price{}, errors.New(errors.ErrEmptyBook, "midpoint: bid side is empty")
	}
	ask, ok := b.BestAskPrice()
	if !ok {
		return model.Price{}, errors.New(errors.ErrEmptyBook, "midpoint: ask side is empty")
	}
	sum, err := bid.Add(ask)
	if err != nil {
		return model.Price{}, err
	}
	half := sum.AsFloat64() / 2
	precision := bid.Precision()
	if ask.Precision() > precision {
		precision = ask.Precision()
	}
	return model.NewPrice(half, precision)
}

// HasBid reports whether the bid side has at least one level.
func (b *OrderBook) HasBid() bool { return b.bids.Len() > 0 }

// HasAsk reports whether the ask side has at least one level.
func (b *OrderBook) HasAsk() bool { return b.asks.Len() > 0 }

// BidLevelCount returns the number of distinct bid price levels.
func (b *OrderBook) BidLevelCount() int { return b.bids.Len() }

// AskLevelCount returns the number of distinct ask price levels.
func (b *OrderBook) AskLevelCount() int { return b.asks.Len() }

// Sequence returns the highest sequence number observed by ApplyDelta.
func (b *OrderBook) Sequence() uint64 { return b.sequence }

// TsLast returns the event timestamp of the most recent mutation.
func (b *OrderBook) TsLast() uint64 { return b.tsLast }

// Count returns the number of mutations successfully applied since
// construction or the last Reset.
func (b *OrderBook) Count() uint64 { return b.count }

// State reports the book's implicit lifecycle stage.
func (b *OrderBook) State() State {
	switch {
	case b.HasBid() && b.HasAsk():
		return StateTwoSided
	case b.HasBid() || b.HasAsk():
		return StateOneSided
	default:
		return StateEmpty
	}
}

// BidLevels returns a best-to-worst ordered snapshot of bid levels, each
// as (price, aggregate size).
func (b *OrderBook) BidLevels() []LevelView {
	return levelViews(b.bids.sorted())
}

// AskLevels returns a best-to-worst ordered snapshot of ask levels, each
// as (price, aggregate size).
func (b *OrderBook) AskLevels() []LevelView {
	return levelViews(b.asks.sorted())
}

// LevelView is a read-only snapshot of one price level.
type LevelView struct {
	Price  model.Price
	Size   model.Quantity
	Orders []model.BookOrder
}

func levelViews(levels []*priceLevel) []LevelView {
	out := make([]LevelView, len(levels))
	for i, l := range levels {
		orders := make([]model.BookOrder, len(l.orders))
		copy(orders, l.orders)
		out[i] = LevelView{Price: l.price, Size: l.totalSize(), Orders: orders}
	}
	return out
}
