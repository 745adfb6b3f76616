package orderbook

import (
	"github.com/abdoElHodaky/tradsys-core/pkg/errors"
)

// CheckIntegrity validates the book's internal invariants: the book must
// not be crossed (best bid below best ask), no order_id may appear on
// more than one level, no level may be empty, and each side's levels must
// be sorted in priority order. It returns the first violation found, or
// nil if the book is consistent.
func (b *OrderBook) CheckIntegrity() error {
	if bid, ok := b.BestBidPrice(); ok {
		if ask, ok := b.BestAskPrice(); ok {
			if bid.GreaterOrEqual(ask) {
				b.sink.Record(ObservationCrossedBook, map[string]interface{}{
					"instrument_id": b.instrumentId.String(),
					"best_bid":      bid.String(),
					"best_ask":      ask.String(),
				})
				return errors.Newf(errors.ErrBookCrossed, "book crossed: best bid %s >= best ask %s", bid.String(), ask.String())
			}
		}
	}
	if err := checkSide(b.bids, true); err != nil {
		return err
	}
	if err := checkSide(b.asks, false); err != nil {
		return err
	}
	seen := make(map[uint64]bool)
	for _, l := range b.bids.levels {
		for _, o := range l.orders {
			if o.OrderId != 0 {
				if seen[o.OrderId] {
					return errors.Newf(errors.ErrDuplicateOrder, "order_id %d appears more than once", o.OrderId)
				}
				seen[o.OrderId] = true
			}
		}
	}
	for _, l := range b.asks.levels {
		for _, o := range l.orders {
			if o.OrderId != 0 {
				if seen[o.OrderId] {
					return errors.Newf(errors.ErrDuplicateOrder, "order_id %d appears more than once", o.OrderId)
				}
				seen[o.OrderId] = true
			}
		}
	}
	return nil
}

func checkSide(h *levelHeap, isBid bool) error {
	for _, l := range h.levels {
		if l.isEmpty() {
			return errors.Newf(errors.ErrInvalidBookOperation, "empty level at price %s", l.price.String())
		}
	}
	sorted := h.sorted()
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1].price, sorted[i].price
		ordered := prev.Greater(cur)
		if !isBid {
			ordered = prev.Less(cur)
		}
		if !ordered {
			return errors.Newf(errors.ErrInvalidBookOperation, "levels out of priority order at %s then %s", prev.String(), cur.String())
		}
	}
	return nil
}
