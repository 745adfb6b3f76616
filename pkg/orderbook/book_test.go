package orderbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/abdoElHodaky/tradsys-core/pkg/errors"
	"github.com/abdoElHodaky/tradsys-core/pkg/model"
)

func testInstrument(t require.TestingT) model.InstrumentId {
	symbol, err := model.NewSymbol("AAPL")
	require.NoError(t, err)
	venue, err := model.NewVenue("XNAS")
	require.NoError(t, err)
	return model.NewInstrumentId(symbol, venue)
}

func px(t require.TestingT, v float64) model.Price {
	p, err := model.NewPrice(v, 2)
	require.NoError(t, err)
	return p
}

func qty(t require.TestingT, v float64) model.Quantity {
	q, err := model.NewQuantity(v, 0)
	require.NoError(t, err)
	return q
}

type BookSuite struct {
	suite.Suite
	instrumentId model.InstrumentId
}

func TestBookSuite(t *testing.T) {
	suite.Run(t, new(BookSuite))
}

func (s *BookSuite) SetupTest() {
	s.instrumentId = testInstrument(s.T())
}

func (s *BookSuite) TestL2LadderBuildsBestToWorst() {
	book := New(s.instrumentId, model.BookTypeL2MBP)
	require.NoError(s.T(), book.Add(model.BookOrder{Side: model.OrderSideBuy, Price: px(s.T(), 99.50), Size: qty(s.T(), 100), OrderId: 1}))
	require.NoError(s.T(), book.Add(model.BookOrder{Side: model.OrderSideBuy, Price: px(s.T(), 99.75), Size: qty(s.T(), 50), OrderId: 2}))
	require.NoError(s.T(), book.Add(model.BookOrder{Side: model.OrderSideSell, Price: px(s.T(), 100.25), Size: qty(s.T(), 80), OrderId: 3}))
	require.NoError(s.T(), book.Add(model.BookOrder{Side: model.OrderSideSell, Price: px(s.T(), 100.00), Size: qty(s.T(), 40), OrderId: 4}))

	bidPrice, ok := book.BestBidPrice()
	require.True(s.T(), ok)
	assert.Equal(s.T(), "99.75", bidPrice.String())

	askPrice, ok := book.BestAskPrice()
	require.True(s.T(), ok)
	assert.Equal(s.T(), "100.00", askPrice.String())

	bids := book.BidLevels()
	require.Len(s.T(), bids, 2)
	assert.Equal(s.T(), "99.75", bids[0].Price.String())
	assert.Equal(s.T(), "99.50", bids[1].Price.String())

	spread, err := book.Spread()
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "0.25", spread.String())

	assert.Equal(s.T(), StateTwoSided, book.State())
}

func (s *BookSuite) TestL3ModifyPreservesLevelMovesOnRepriceOnly() {
	book := New(s.instrumentId, model.BookTypeL3MBO)
	require.NoError(s.T(), book.Add(model.BookOrder{Side: model.OrderSideBuy, Price: px(s.T(), 10), Size: qty(s.T(), 5), OrderId: 1}))
	require.NoError(s.T(), book.Add(model.BookOrder{Side: model.OrderSideBuy, Price: px(s.T(), 10), Size: qty(s.T(), 3), OrderId: 2}))

	// Size-only update keeps order 1 at the front of the level.
	require.NoError(s.T(), book.Update(model.BookOrder{Side: model.OrderSideBuy, Price: px(s.T(), 10), Size: qty(s.T(), 9), OrderId: 1}))
	levels := book.BidLevels()
	require.Len(s.T(), levels, 1)
	require.Len(s.T(), levels[0].Orders, 2)
	assert.Equal(s.T(), uint64(1), levels[0].Orders[0].OrderId)

	// Re-pricing order 2 moves it to a new level.
	require.NoError(s.T(), book.Update(model.BookOrder{Side: model.OrderSideBuy, Price: px(s.T(), 11), Size: qty(s.T(), 3), OrderId: 2}))
	levels = book.BidLevels()
	require.Len(s.T(), levels, 2)
	assert.Equal(s.T(), "11.00", levels[0].Price.String())
	assert.Equal(s.T(), "10.00", levels[1].Price.String())
}

func (s *BookSuite) TestL3DuplicateOrderRejected() {
	book := New(s.instrumentId, model.BookTypeL3MBO)
	require.NoError(s.T(), book.Add(model.BookOrder{Side: model.OrderSideBuy, Price: px(s.T(), 10), Size: qty(s.T(), 5), OrderId: 1}))
	err := book.Add(model.BookOrder{Side: model.OrderSideBuy, Price: px(s.T(), 11), Size: qty(s.T(), 5), OrderId: 1})
	require.Error(s.T(), err)
	assert.Equal(s.T(), errors.ErrDuplicateOrder, errors.GetErrorCode(err))
}

type recordingSink struct {
	kinds []ObservationKind
}

func (r *recordingSink) Record(kind ObservationKind, _ map[string]interface{}) {
	r.kinds = append(r.kinds, kind)
}

func (s *BookSuite) TestUnknownOrderDeleteIsNoOp() {
	sink := &recordingSink{}
	book := New(s.instrumentId, model.BookTypeL3MBO, WithSink(sink))
	err := book.Delete(model.OrderSideBuy, 999)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), uint64(1), book.Count())
	require.Len(s.T(), sink.kinds, 1)
	assert.Equal(s.T(), ObservationNoOpDelete, sink.kinds[0])
}

func (s *BookSuite) TestCheckIntegrityDetectsCrossedBook() {
	book := New(s.instrumentId, model.BookTypeL2MBP)
	require.NoError(s.T(), book.Add(model.BookOrder{Side: model.OrderSideBuy, Price: px(s.T(), 101), Size: qty(s.T(), 5), OrderId: 1}))
	require.NoError(s.T(), book.Add(model.BookOrder{Side: model.OrderSideSell, Price: px(s.T(), 100), Size: qty(s.T(), 5), OrderId: 2}))

	err := book.CheckIntegrity()
	require.Error(s.T(), err)
	assert.Equal(s.T(), errors.ErrBookCrossed, errors.GetErrorCode(err))
}

func (s *BookSuite) TestSimulateFillsWalksFIFOAcrossLevels() {
	book := New(s.instrumentId, model.BookTypeL3MBO)
	require.NoError(s.T(), book.Add(model.BookOrder{Side: model.OrderSideSell, Price: px(s.T(), 100), Size: qty(s.T(), 10), OrderId: 1}))
	require.NoError(s.T(), book.Add(model.BookOrder{Side: model.OrderSideSell, Price: px(s.T(), 100), Size: qty(s.T(), 5), OrderId: 2}))
	require.NoError(s.T(), book.Add(model.BookOrder{Side: model.OrderSideSell, Price: px(s.T(), 101), Size: qty(s.T(), 20), OrderId: 3}))

	fills, remaining, err := book.SimulateFills(model.OrderSideBuy, qty(s.T(), 18), nil)
	require.NoError(s.T(), err)
	require.Len(s.T(), fills, 3)
	assert.Equal(s.T(), "10", fills[0].Size.String())
	assert.Equal(s.T(), uint64(1), fills[0].OrderId)
	assert.Equal(s.T(), "5", fills[1].Size.String())
	assert.Equal(s.T(), uint64(2), fills[1].OrderId)
	assert.Equal(s.T(), "3", fills[2].Size.String())
	assert.Equal(s.T(), uint64(3), fills[2].OrderId)
	assert.True(s.T(), remaining.IsZero())

	// simulate_fills must not mutate the book.
	levels := book.AskLevels()
	require.Len(s.T(), levels, 2)
}

func (s *BookSuite) TestSimulateFillsRespectsLimitPrice() {
	book := New(s.instrumentId, model.BookTypeL3MBO)
	require.NoError(s.T(), book.Add(model.BookOrder{Side: model.OrderSideSell, Price: px(s.T(), 100), Size: qty(s.T(), 10), OrderId: 1}))
	require.NoError(s.T(), book.Add(model.BookOrder{Side: model.OrderSideSell, Price: px(s.T(), 105), Size: qty(s.T(), 10), OrderId: 2}))

	limit := px(s.T(), 100)
	fills, remaining, err := book.SimulateFills(model.OrderSideBuy, qty(s.T(), 20), &limit)
	require.NoError(s.T(), err)
	require.Len(s.T(), fills, 1)
	assert.Equal(s.T(), "10", remaining.String())
}

func (s *BookSuite) TestL1QuoteTickDrivesTopOfBook() {
	book := New(s.instrumentId, model.BookTypeL1TBBO)
	tick := model.QuoteTick{
		InstrumentId: s.instrumentId,
		Bid:          px(s.T(), 99),
		Ask:          px(s.T(), 101),
		BidSize:      qty(s.T(), 10),
		AskSize:      qty(s.T(), 12),
		TsEvent:      1,
	}
	require.NoError(s.T(), book.UpdateQuoteTick(tick))
	bid, ok := book.BestBidPrice()
	require.True(s.T(), ok)
	assert.Equal(s.T(), "99.00", bid.String())

	// A second quote replaces the first rather than accumulating levels.
	tick.Bid = px(s.T(), 99.50)
	require.NoError(s.T(), book.UpdateQuoteTick(tick))
	assert.Equal(s.T(), 1, book.BidLevelCount())
}

func (s *BookSuite) TestQuoteTickRejectedOnNonL1Book() {
	book := New(s.instrumentId, model.BookTypeL2MBP)
	err := book.UpdateQuoteTick(model.QuoteTick{InstrumentId: s.instrumentId, Bid: px(s.T(), 1), Ask: px(s.T(), 2)})
	require.Error(s.T(), err)
	assert.Equal(s.T(), errors.ErrInvalidBookOperation, errors.GetErrorCode(err))
}

func (s *BookSuite) TestEmptyBookQueriesFail() {
	book := New(s.instrumentId, model.BookTypeL2MBP)
	_, err := book.Spread()
	require.Error(s.T(), err)
	assert.Equal(s.T(), errors.ErrEmptyBook, errors.GetErrorCode(err))
	assert.Equal(s.T(), StateEmpty, book.State())
}

func (s *BookSuite) TestCountTracksSuccessfulMutations() {
	book := New(s.instrumentId, model.BookTypeL3MBO)
	require.NoError(s.T(), book.Add(model.BookOrder{Side: model.OrderSideBuy, Price: px(s.T(), 10), Size: qty(s.T(), 5), OrderId: 1}))
	require.NoError(s.T(), book.Add(model.BookOrder{Side: model.OrderSideBuy, Price: px(s.T(), 11), Size: qty(s.T(), 5), OrderId: 2}))
	require.NoError(s.T(), book.Add(model.BookOrder{Side: model.OrderSideSell, Price: px(s.T(), 12), Size: qty(s.T(), 5), OrderId: 3}))
	assert.Equal(s.T(), uint64(3), book.Count())

	book.Reset()
	assert.Equal(s.T(), uint64(0), book.Count())
}

func (s *BookSuite) TestResetClearsSequenceAndLevels() {
	book := New(s.instrumentId, model.BookTypeL2MBP)
	require.NoError(s.T(), book.ApplyDelta(model.OrderBookDelta{
		InstrumentId: s.instrumentId,
		Action:       model.BookActionAdd,
		Order:        model.BookOrder{Side: model.OrderSideBuy, Price: px(s.T(), 10), Size: qty(s.T(), 1), OrderId: 1},
		Sequence:     5,
	}))
	assert.Equal(s.T(), uint64(5), book.Sequence())
	book.Reset()
	assert.Equal(s.T(), uint64(0), book.Sequence())
	assert.Equal(s.T(), StateEmpty, book.State())
}
