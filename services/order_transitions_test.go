package services

import (
	"testing"

	"github.com/hectorDev2/macao-comanda/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitOne(t *testing.T, svc *OrderService, table string, lines ...SubmitLine) *entity.Order {
	t.Helper()
	order, err := svc.Submit(table, lines)
	require.NoError(t, err)
	return order
}

func TestAdvanceHappyPath(t *testing.T) {
	db := newTestDB(t)
	menu := seedMenu(t, db)
	svc := newOrderService(t, db, nil)

	order := submitOne(t, svc, "5", SubmitLine{MenuID: menu[0].ID, Qty: 1})
	itemID := order.Items[0].ID

	for _, target := range []entity.ItemStatus{
		entity.StatusPreparing, entity.StatusReady, entity.StatusDelivered,
	} {
		it, err := svc.Advance(order.ID, itemID, target)
		require.NoError(t, err)
		assert.Equal(t, target, it.Status)
	}

	// delivered is terminal
	_, err := svc.Advance(order.ID, itemID, entity.StatusDelivered)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAdvanceRejectsSkipsAndBackwardMoves(t *testing.T) {
	db := newTestDB(t)
	menu := seedMenu(t, db)
	svc := newOrderService(t, db, nil)

	order := submitOne(t, svc, "5", SubmitLine{MenuID: menu[0].ID, Qty: 1})
	itemID := order.Items[0].ID

	// pending → ready and pending → delivered are jumps
	_, err := svc.Advance(order.ID, itemID, entity.StatusReady)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = svc.Advance(order.ID, itemID, entity.StatusDelivered)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.Advance(order.ID, itemID, entity.StatusPreparing)
	require.NoError(t, err)

	// no backward move, no repeat
	_, err = svc.Advance(order.ID, itemID, entity.StatusPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = svc.Advance(order.ID, itemID, entity.StatusPreparing)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// preparing → delivered skips ready
	_, err = svc.Advance(order.ID, itemID, entity.StatusDelivered)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAdvanceUnknownIDs(t *testing.T) {
	db := newTestDB(t)
	menu := seedMenu(t, db)
	svc := newOrderService(t, db, nil)

	order := submitOne(t, svc, "5", SubmitLine{MenuID: menu[0].ID, Qty: 1})

	_, err := svc.Advance(9999, order.Items[0].ID, entity.StatusPreparing)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	_, err = svc.Advance(order.ID, 9999, entity.StatusPreparing)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestAdvanceEmitsDeliveredWhenLastItemCompletes(t *testing.T) {
	db := newTestDB(t)
	menu := seedMenu(t, db)
	feed := &recordPublisher{}
	svc := newOrderService(t, db, feed)

	order := submitOne(t, svc, "5",
		SubmitLine{MenuID: menu[0].ID, Qty: 1},
		SubmitLine{MenuID: menu[1].ID, Qty: 1},
	)
	a, b := order.Items[0].ID, order.Items[1].ID

	for _, target := range []entity.ItemStatus{
		entity.StatusPreparing, entity.StatusReady, entity.StatusDelivered,
	} {
		_, err := svc.Advance(order.ID, a, target)
		require.NoError(t, err)
	}
	assert.NotContains(t, feed.types(), EventDelivered)

	for _, target := range []entity.ItemStatus{
		entity.StatusPreparing, entity.StatusReady, entity.StatusDelivered,
	} {
		_, err := svc.Advance(order.ID, b, target)
		require.NoError(t, err)
	}
	assert.Contains(t, feed.types(), EventDelivered)
}

func TestCancelOnlyPending(t *testing.T) {
	db := newTestDB(t)
	menu := seedMenu(t, db)
	svc := newOrderService(t, db, nil)

	order := submitOne(t, svc, "5",
		SubmitLine{MenuID: menu[0].ID, Qty: 1},
		SubmitLine{MenuID: menu[1].ID, Qty: 1},
	)

	_, err := svc.Advance(order.ID, order.Items[0].ID, entity.StatusPreparing)
	require.NoError(t, err)

	err = svc.Cancel(order.ID, order.Items[0].ID)
	assert.ErrorIs(t, err, ErrItemNotPending)

	// the still-pending line can go
	require.NoError(t, svc.Cancel(order.ID, order.Items[1].ID))

	got, err := svc.Detail(order.ID)
	require.NoError(t, err)
	assert.Len(t, got.Items, 1)
}

func TestCancelLastItemDeletesOrder(t *testing.T) {
	db := newTestDB(t)
	menu := seedMenu(t, db)
	feed := &recordPublisher{}
	svc := newOrderService(t, db, feed)

	order := submitOne(t, svc, "5", SubmitLine{MenuID: menu[0].ID, Qty: 1})

	require.NoError(t, svc.Cancel(order.ID, order.Items[0].ID))

	_, err := svc.Detail(order.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.Contains(t, feed.types(), EventOrderGone)
}

func TestItemsByStatus(t *testing.T) {
	db := newTestDB(t)
	menu := seedMenu(t, db)
	svc := newOrderService(t, db, nil)

	o1 := submitOne(t, svc, "5",
		SubmitLine{MenuID: menu[0].ID, Qty: 1},
		SubmitLine{MenuID: menu[1].ID, Qty: 2},
	)
	submitOne(t, svc, "7", SubmitLine{MenuID: menu[2].ID, Qty: 1})

	_, err := svc.Advance(o1.ID, o1.Items[0].ID, entity.StatusPreparing)
	require.NoError(t, err)

	pending, err := svc.ItemsByStatus(entity.StatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	preparing, err := svc.ItemsByStatus(entity.StatusPreparing)
	require.NoError(t, err)
	require.Len(t, preparing, 1)
	assert.Equal(t, "5", preparing[0].Table)
	assert.Equal(t, o1.ID, preparing[0].OrderID)

	_, err = svc.ItemsByStatus("burnt")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	// repeated reads agree
	again, err := svc.ItemsByStatus(entity.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, len(pending), len(again))
}
