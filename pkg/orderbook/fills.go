package orderbook

import "github.com/abdoElHodaky/tradsys-core/pkg/model"

// Fill is a single simulated match against a resting level or order.
// OrderId is the id of the resting order consumed; on an L1/L2 book that
// is the id carried by the level's aggregate order (0 for a level set by
// UpdateQuoteTick).
type Fill struct {
	Price   model.Price
	Size    model.Quantity
	OrderId uint64
}

// SimulateFills walks the opposite side of the book in FIFO priority
// order and reports how an incoming order of the given side and size
// would fill, without mutating the book. If limitPrice is non-nil, the
// walk stops at the first level that would not satisfy the limit (a buy
// requires level price <= limit, a sell requires level price >= limit);
// if limitPrice is nil the walk is a market order that consumes the
// entire opposite side if necessary. The second return value is the
// portion of size left unfilled. Grounded on the teacher's
// processMarketOrder/processLimitOrder walk in pkg/matching/engine.go,
// made non-mutating and fixed-point.
func (b *OrderBook) SimulateFills(side model.OrderSide, size model.Quantity, limitPrice *model.Price) ([]Fill, model.Quantity, error) {
	opposite := b.sideHeap(side.Opposite())
	remaining := size
	var fills []Fill

	for _, level := range opposite.sorted() {
		if remaining.IsZero() {
			break
		}
		if limitPrice != nil {
			if side == model.OrderSideBuy && level.price.Greater(*limitPrice) {
				break
			}
			if side == model.OrderSideSell && level.price.Less(*limitPrice) {
				break
			}
		}
		for _, o := range level.orders {
			if remaining.IsZero() {
				break
			}
			fillSize := o.Size
			if remaining.Less(fillSize) {
				fillSize = remaining
			}
			fills = append(fills, Fill{Price: level.price, Size: fillSize, OrderId: o.OrderId})
			next, err := remaining.Sub(fillSize)
			if err != nil {
				return fills, remaining, err
			}
			remaining = next
		}
	}

	return fills, remaining, nil
}
