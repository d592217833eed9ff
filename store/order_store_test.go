package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcastillo/bodega-api/models"
)

func TestOrderRoundTrip(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()

	placed := time.Now()
	o := models.Order{CustomerID: 1, OrderDate: placed}
	require.NoError(t, stores.Orders.Insert(ctx, &o))
	assert.GreaterOrEqual(t, o.OrderID, uint(1))

	got, err := stores.Orders.GetByID(ctx, o.OrderID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, o.CustomerID, got.CustomerID)
	assert.WithinDuration(t, placed, got.OrderDate, time.Second)
}

func TestOrderUpdate(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()

	o := models.Order{CustomerID: 1, OrderDate: time.Now()}
	require.NoError(t, stores.Orders.Insert(ctx, &o))

	o.CustomerID = 2
	require.NoError(t, stores.Orders.Update(ctx, &o))

	got, err := stores.Orders.GetByID(ctx, o.OrderID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint(2), got.CustomerID)
}

func TestOrderDeleteThenAbsent(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()

	o := models.Order{CustomerID: 1, OrderDate: time.Now()}
	require.NoError(t, stores.Orders.Insert(ctx, &o))
	require.NoError(t, stores.Orders.Delete(ctx, &o))

	got, err := stores.Orders.GetByID(ctx, o.OrderID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOrderWatchAll(t *testing.T) {
	stores := newTestStores(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := stores.Orders.WatchAll(ctx)
	waitFor(t, ch, func(rows []models.Order) bool { return len(rows) == 0 })

	require.NoError(t, stores.Orders.Insert(context.Background(), &models.Order{CustomerID: 1, OrderDate: time.Now()}))
	rows := waitFor(t, ch, func(rows []models.Order) bool { return len(rows) == 1 })
	assert.Equal(t, uint(1), rows[0].CustomerID)
}
