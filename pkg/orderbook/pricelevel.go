package orderbook

import (
	"container/heap"

	"github.com/abdoElHodaky/tradsys-core/pkg/model"
)

// priceLevel is the queue of resting orders at a single price. For L2
// books it holds exactly one synthetic aggregate order; for L3 it holds
// the FIFO sequence of real orders in time priority.
type priceLevel struct {
	price  model.Price
	orders []model.BookOrder
}

// totalSize returns the sum of all resting order sizes at this level.
func (l *priceLevel) totalSize() model.Quantity {
	total := model.Quantity{}
	for _, o := range l.orders {
		// Add never fails for same-precision, in-range quantities built
		// from validated BookOrder sizes; overflow at this scale would
		// itself be a data-integrity failure the caller should surface.
		sum, err := total.Add(o.Size)
		if err != nil {
			return total
		}
		total = sum
	}
	return total
}

// append adds an order to the back of the FIFO queue (time priority:
// later arrivals match later).
func (l *priceLevel) append(o model.BookOrder) {
	l.orders = append(l.orders, o)
}

// removeByOrderId removes and returns the order with the given id.
func (l *priceLevel) removeByOrderId(orderId uint64) (model.BookOrder, bool) {
	for i, o := range l.orders {
		if o.OrderId == orderId {
			removed := o
			l.orders = append(l.orders[:i], l.orders[i+1:]...)
			return removed, true
		}
	}
	return model.BookOrder{}, false
}

// replaceByOrderId updates the size of an existing order in place,
// preserving its FIFO position (an UPDATE, unlike a cancel/re-add, does
// not reset time priority unless the price changes).
func (l *priceLevel) replaceByOrderId(orderId uint64, newOrder model.BookOrder) bool {
	for i, o := range l.orders {
		if o.OrderId == orderId {
			l.orders[i] = newOrder
			return true
		}
	}
	return false
}

// isEmpty reports whether the level has no resting orders.
func (l *priceLevel) isEmpty() bool {
	return len(l.orders) == 0
}

// levelHeap is a container/heap-ordered priority queue of price levels for
// one side of the book: bids ordered with the highest price at the root,
// asks with the lowest. Grounded on the teacher's OrderHeap pattern
// (pkg/matching/engine.go), generalized from per-order to per-price-level
// priority and from float64 to fixed-point Price comparison.
type levelHeap struct {
	levels []*priceLevel
	isBid  bool
}

func newLevelHeap(isBid bool) *levelHeap {
	return &levelHeap{levels: make([]*priceLevel, 0), isBid: isBid}
}

func (h levelHeap) Len() int { return len(h.levels) }

func (h levelHeap) Less(i, j int) bool {
	if h.isBid {
		return h.levels[i].price.Greater(h.levels[j].price)
	}
	return h.levels[i].price.Less(h.levels[j].price)
}

func (h levelHeap) Swap(i, j int) { h.levels[i], h.levels[j] = h.levels[j], h.levels[i] }

func (h *levelHeap) Push(x interface{}) {
	h.levels = append(h.levels, x.(*priceLevel))
}

func (h *levelHeap) Pop() interface{} {
	old := h.levels
	n := len(old)
	level := old[n-1]
	h.levels = old[:n-1]
	return level
}

// peek returns the best (top-of-book) level without removing it, or nil
// if the side is empty.
func (h *levelHeap) peek() *priceLevel {
	if len(h.levels) == 0 {
		return nil
	}
	return h.levels[0]
}

// findByPrice locates the level at the given raw price, or nil.
func (h *levelHeap) findByPrice(raw int64) *priceLevel {
	for _, l := range h.levels {
		if l.price.Raw() == raw {
			return l
		}
	}
	return nil
}

// removeByPrice removes and returns the level at the given raw price.
func (h *levelHeap) removeByPrice(raw int64) *priceLevel {
	for i, l := range h.levels {
		if l.price.Raw() == raw {
			return heap.Remove(h, i).(*priceLevel)
		}
	}
	return nil
}

// sorted returns a best-to-worst ordered copy of the side's levels. The
// heap's internal slice satisfies the heap invariant but is not fully
// sorted, so callers needing ladder order (pprint, simulate_fills, depth
// queries beyond the top) must go through this instead of h.levels
// directly.
func (h *levelHeap) sorted() []*priceLevel {
	out := make([]*priceLevel, len(h.levels))
	copy(out, h.levels)
	// Simple insertion sort: book depth is small in practice and this
	// keeps the ordering logic identical to Less above.
	for i := 1; i < len(out); i++ {
		j := i
		for j > 0 && sortLess(h.isBid, out[j], out[j-1]) {
			out[j], out[j-1] = out[j-1], out[j]
			j--
		}
	}
	return out
}

func sortLess(isBid bool, a, b *priceLevel) bool {
	if isBid {
		return a.price.Greater(b.price)
	}
	return a.price.Less(b.price)
}

func (h *levelHeap) clear() {
	h.levels = h.levels[:0]
}
