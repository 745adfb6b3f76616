package orderbook

import (
	"fmt"
	"strings"
)

// Pprint renders the top `levels` price levels of each side as a
// human-readable ladder, asks descending to the best ask then bids
// descending from the best bid, matching the conventional terminal
// depth-chart layout.
func (b *OrderBook) Pprint(levels int) string {
	asks := b.AskLevels()
	bids := b.BidLevels()
	if levels > 0 {
		if len(asks) > levels {
			asks = asks[:levels]
		}
		if len(bids) > levels {
			bids = bids[:levels]
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s)\n", b.instrumentId.String(), b.bookType.String())
	for i := len(asks) - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "  ASK %12s @ %12s\n", asks[i].Size.String(), asks[i].Price.String())
	}
	if len(asks) == 0 && len(bids) == 0 {
		sb.WriteString("  <empty>\n")
		return sb.String()
	}
	sb.WriteString("  -----\n")
	for _, lv := range bids {
		fmt.Fprintf(&sb, "  BID %12s @ %12s\n", lv.Size.String(), lv.Price.String())
	}
	return sb.String()
}
