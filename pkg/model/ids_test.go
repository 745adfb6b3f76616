package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifierRejectsEmpty(t *testing.T) {
	_, err := NewSymbol("")
	require.Error(t, err)
}

func TestInstrumentIdRoundTrip(t *testing.T) {
	symbol, err := NewSymbol("AAPL")
	require.NoError(t, err)
	venue, err := NewVenue("XNAS")
	require.NoError(t, err)
	id := NewInstrumentId(symbol, venue)
	assert.Equal(t, "AAPL.XNAS", id.String())

	parsed, err := ParseInstrumentId("AAPL.XNAS")
	require.NoError(t, err)
	assert.True(t, parsed.Equals(id))
}

func TestParseInstrumentIdRejectsMissingSeparator(t *testing.T) {
	_, err := ParseInstrumentId("AAPL")
	require.Error(t, err)
}

func TestParseInstrumentIdUsesLastSeparator(t *testing.T) {
	// symbols may themselves contain '.', so the split must anchor on the
	// last occurrence.
	id, err := ParseInstrumentId("BRK.B.XNYS")
	require.NoError(t, err)
	assert.Equal(t, "BRK.B", id.Symbol.String())
	assert.Equal(t, "XNYS", id.Venue.String())
}
