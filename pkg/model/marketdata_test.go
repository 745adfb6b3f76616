package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdoElHodaky/tradsys-core/pkg/errors"
)

func testBarType(t require.TestingT) BarType {
	symbol, err := NewSymbol("AAPL")
	require.NoError(t, err)
	venue, err := NewVenue("XNAS")
	require.NoError(t, err)
	instrumentId := NewInstrumentId(symbol, venue)
	spec, err := NewBarSpecification(1, 0, PriceTypeLast)
	require.NoError(t, err)
	return NewBarType(instrumentId, spec, AggregationSourceInternal)
}

func TestNewBarAcceptsConsistentOHLC(t *testing.T) {
	open, _ := NewPrice(10, 2)
	high, _ := NewPrice(12, 2)
	low, _ := NewPrice(9, 2)
	close, _ := NewPrice(11, 2)
	volume, _ := NewQuantity(100, 0)

	bar, err := NewBar(testBarType(t), open, high, low, close, volume, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "12.00", bar.High.String())
}

func TestNewBarRejectsInvertedHighLow(t *testing.T) {
	open, _ := NewPrice(10, 2)
	high, _ := NewPrice(9, 2)
	low, _ := NewPrice(12, 2)
	close, _ := NewPrice(11, 2)
	volume, _ := NewQuantity(100, 0)

	_, err := NewBar(testBarType(t), open, high, low, close, volume, 1, 1)
	require.Error(t, err)
	assert.Equal(t, errors.ErrOutOfBounds, errors.GetErrorCode(err))
}

func TestNewQuoteTickRejectsCrossedQuote(t *testing.T) {
	symbol, _ := NewSymbol("AAPL")
	venue, _ := NewVenue("XNAS")
	instrumentId := NewInstrumentId(symbol, venue)
	bid, _ := NewPrice(101, 2)
	ask, _ := NewPrice(100, 2)
	size, _ := NewQuantity(1, 0)

	_, err := NewQuoteTick(instrumentId, bid, ask, size, size, 1, 1)
	require.Error(t, err)
	assert.Equal(t, errors.ErrOutOfBounds, errors.GetErrorCode(err))
}
