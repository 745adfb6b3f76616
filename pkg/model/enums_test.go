package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdoElHodaky/tradsys-core/pkg/errors"
)

func TestOrderSideFromWire(t *testing.T) {
	side, err := OrderSideFromWire(1)
	require.NoError(t, err)
	assert.Equal(t, OrderSideBuy, side)
	assert.Equal(t, "BUY", side.String())

	_, err = OrderSideFromWire(99)
	require.Error(t, err)
}

func TestOrderSideOpposite(t *testing.T) {
	assert.Equal(t, OrderSideSell, OrderSideBuy.Opposite())
	assert.Equal(t, OrderSideBuy, OrderSideSell.Opposite())
}

func TestBookTypeFromWire(t *testing.T) {
	bt, err := BookTypeFromWire(2)
	require.NoError(t, err)
	assert.Equal(t, BookTypeL2MBP, bt)
	assert.Equal(t, "L2_MBP", bt.String())
}

func TestUnknownEnumVariantFails(t *testing.T) {
	_, err := TimeInForceFromWire(0)
	require.Error(t, err)
}

func TestOrderSideFromStringIsCaseInsensitive(t *testing.T) {
	side, err := OrderSideFromString("buy")
	require.NoError(t, err)
	assert.Equal(t, OrderSideBuy, side)

	side, err = OrderSideFromString("SELL")
	require.NoError(t, err)
	assert.Equal(t, OrderSideSell, side)
}

func TestBookTypeFromStringUnknownFails(t *testing.T) {
	_, err := BookTypeFromString("L4_BOGUS")
	require.Error(t, err)
	assert.Equal(t, errors.ErrUnknownEnumVariant, errors.GetErrorCode(err))
}
