package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcastillo/bodega-api/models"
)

func TestOrderDetailCompositeKeyReplaces(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()

	require.NoError(t, stores.OrderDetails.Insert(ctx, &models.OrderDetail{OrderID: 1, ProductID: 5, Quantity: 2}))
	require.NoError(t, stores.OrderDetails.Insert(ctx, &models.OrderDetail{OrderID: 1, ProductID: 5, Quantity: 9}))

	details, err := stores.OrderDetails.ByOrder(ctx, 1)
	require.NoError(t, err)
	require.Len(t, details, 1, "same (order, product) pair must replace, never duplicate")
	assert.Equal(t, 9, details[0].Quantity)
}

func TestOrderDetailRejectsNonPositiveQuantity(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		quantity int
	}{
		{"zero quantity", 0},
		{"negative quantity", -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := models.OrderDetail{OrderID: 1, ProductID: 1, Quantity: tt.quantity}
			assert.ErrorIs(t, stores.OrderDetails.Insert(ctx, &d), ErrInvalidQuantity)
			assert.ErrorIs(t, stores.OrderDetails.Update(ctx, &d), ErrInvalidQuantity)
		})
	}
}

func TestOrderDetailGetDetail(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()

	require.NoError(t, stores.OrderDetails.Insert(ctx, &models.OrderDetail{OrderID: 1, ProductID: 5, Quantity: 2}))

	got, err := stores.OrderDetails.GetDetail(ctx, 1, 5)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.Quantity)

	absent, err := stores.OrderDetails.GetDetail(ctx, 1, 6)
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestOrderDetailByOrderScopesToOrder(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()

	require.NoError(t, stores.OrderDetails.Insert(ctx, &models.OrderDetail{OrderID: 1, ProductID: 5, Quantity: 2}))
	require.NoError(t, stores.OrderDetails.Insert(ctx, &models.OrderDetail{OrderID: 1, ProductID: 6, Quantity: 1}))
	require.NoError(t, stores.OrderDetails.Insert(ctx, &models.OrderDetail{OrderID: 2, ProductID: 5, Quantity: 4}))

	details, err := stores.OrderDetails.ByOrder(ctx, 1)
	require.NoError(t, err)
	require.Len(t, details, 2)
	for _, d := range details {
		assert.Equal(t, uint(1), d.OrderID)
	}
}

func TestOrderDetailDeleteAllFromOrder(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()

	require.NoError(t, stores.OrderDetails.Insert(ctx, &models.OrderDetail{OrderID: 1, ProductID: 5, Quantity: 2}))
	require.NoError(t, stores.OrderDetails.Insert(ctx, &models.OrderDetail{OrderID: 1, ProductID: 6, Quantity: 1}))
	require.NoError(t, stores.OrderDetails.Insert(ctx, &models.OrderDetail{OrderID: 2, ProductID: 5, Quantity: 4}))

	require.NoError(t, stores.OrderDetails.DeleteAllFromOrder(ctx, 1))

	gone, err := stores.OrderDetails.ByOrder(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, gone)

	kept, err := stores.OrderDetails.ByOrder(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestOrderDetailDelete(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()

	d := models.OrderDetail{OrderID: 1, ProductID: 5, Quantity: 2}
	require.NoError(t, stores.OrderDetails.Insert(ctx, &d))
	require.NoError(t, stores.OrderDetails.Delete(ctx, &d))

	got, err := stores.OrderDetails.GetDetail(ctx, 1, 5)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOrderDetailWatchByOrderSeesReplacement(t *testing.T) {
	stores := newTestStores(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := stores.OrderDetails.WatchByOrder(ctx, 1)
	waitFor(t, ch, func(rows []models.OrderDetail) bool { return len(rows) == 0 })

	bg := context.Background()
	require.NoError(t, stores.OrderDetails.Insert(bg, &models.OrderDetail{OrderID: 1, ProductID: 5, Quantity: 2}))
	waitFor(t, ch, func(rows []models.OrderDetail) bool {
		return len(rows) == 1 && rows[0].Quantity == 2
	})

	require.NoError(t, stores.OrderDetails.Insert(bg, &models.OrderDetail{OrderID: 1, ProductID: 5, Quantity: 9}))
	rows := waitFor(t, ch, func(rows []models.OrderDetail) bool {
		return len(rows) == 1 && rows[0].Quantity == 9
	})
	assert.Equal(t, uint(5), rows[0].ProductID)
}
