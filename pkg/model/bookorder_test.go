package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookOrderExposure(t *testing.T) {
	price, err := NewPrice(10, 2)
	require.NoError(t, err)
	size, err := NewQuantity(5, 0)
	require.NoError(t, err)
	order := BookOrder{Side: OrderSideBuy, Price: price, Size: size, OrderId: 1}
	assert.Equal(t, 50.0, order.Exposure())
}

func TestBookOrderSignedSize(t *testing.T) {
	price, err := NewPrice(10, 2)
	require.NoError(t, err)
	size, err := NewQuantity(5, 0)
	require.NoError(t, err)

	buy := BookOrder{Side: OrderSideBuy, Price: price, Size: size, OrderId: 1}
	assert.Equal(t, 5.0, buy.SignedSize())

	sell := BookOrder{Side: OrderSideSell, Price: price, Size: size, OrderId: 1}
	assert.Equal(t, -5.0, sell.SignedSize())
}

func TestBookOrderEquals(t *testing.T) {
	price, err := NewPrice(10, 2)
	require.NoError(t, err)
	size, err := NewQuantity(5, 0)
	require.NoError(t, err)

	a := BookOrder{Side: OrderSideBuy, Price: price, Size: size, OrderId: 1}
	b := BookOrder{Side: OrderSideBuy, Price: price, Size: size, OrderId: 1}
	c := BookOrder{Side: OrderSideBuy, Price: price, Size: size, OrderId: 2}

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}
