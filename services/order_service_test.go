package services

import (
	"testing"

	"github.com/hectorDev2/macao-comanda/entity"
	"github.com/hectorDev2/macao-comanda/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitValidation(t *testing.T) {
	db := newTestDB(t)
	menu := seedMenu(t, db)
	svc := newOrderService(t, db, nil)

	_, err := svc.Submit("", []SubmitLine{{MenuID: menu[0].ID, Qty: 1}})
	assert.ErrorIs(t, err, ErrTableRequired)

	_, err = svc.Submit("   ", []SubmitLine{{MenuID: menu[0].ID, Qty: 1}})
	assert.ErrorIs(t, err, ErrTableRequired)

	_, err = svc.Submit("5", nil)
	assert.ErrorIs(t, err, ErrLinesRequired)

	_, err = svc.Submit("5", []SubmitLine{{MenuID: menu[0].ID, Qty: 0}})
	assert.ErrorIs(t, err, ErrQtyInvalid)

	_, err = svc.Submit("5", []SubmitLine{{MenuID: 9999, Qty: 1}})
	assert.ErrorIs(t, err, ErrMenuNotFound)
}

func TestSubmitCreatesAllPendingLines(t *testing.T) {
	db := newTestDB(t)
	menu := seedMenu(t, db)
	feed := &recordPublisher{}
	svc := newOrderService(t, db, feed)

	order, err := svc.Submit("5", []SubmitLine{
		{MenuID: menu[0].ID, Qty: 2},
		{MenuID: menu[2].ID, Qty: 1},
	})
	require.NoError(t, err)

	require.Len(t, order.Items, 2)
	for _, it := range order.Items {
		assert.Equal(t, entity.StatusPending, it.Status)
	}
	assert.Equal(t, "5", order.Table)
	// price and name are snapshotted from the catalog
	assert.Equal(t, menu[0].Name, order.Items[0].Name)
	assert.True(t, order.Items[0].UnitPrice.Equal(dec("12.00")))

	assert.Equal(t, []string{EventOrderCreated}, feed.types())
}

func TestListOpenNewestFirst(t *testing.T) {
	db := newTestDB(t)
	menu := seedMenu(t, db)
	svc := newOrderService(t, db, nil)

	first, err := svc.Submit("1", []SubmitLine{{MenuID: menu[0].ID, Qty: 1}})
	require.NoError(t, err)
	second, err := svc.Submit("2", []SubmitLine{{MenuID: menu[1].ID, Qty: 1}})
	require.NoError(t, err)

	orders, err := svc.ListOpen()
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)

	// idempotent read
	again, err := svc.ListOpen()
	require.NoError(t, err)
	assert.Equal(t, len(orders), len(again))
	assert.Equal(t, orders[0].ID, again[0].ID)
}

func TestListForTableFilters(t *testing.T) {
	db := newTestDB(t)
	menu := seedMenu(t, db)
	svc := newOrderService(t, db, nil)

	_, err := svc.Submit("5", []SubmitLine{{MenuID: menu[0].ID, Qty: 1}})
	require.NoError(t, err)
	_, err = svc.Submit("7", []SubmitLine{{MenuID: menu[1].ID, Qty: 1}})
	require.NoError(t, err)

	orders, err := svc.ListForTable("5")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "5", orders[0].Table)
}

func TestSubmitFromCartClearsCart(t *testing.T) {
	db := newTestDB(t)
	menu := seedMenu(t, db)
	cartRepo := repository.NewCartRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartSvc := NewCartService(db, cartRepo, menuRepo)
	svc := newOrderService(t, db, nil)

	const userID = 1
	_, err := cartSvc.AddItem(userID, menu[0].ID, 2)
	require.NoError(t, err)
	_, err = cartSvc.AddItem(userID, menu[2].ID, 1)
	require.NoError(t, err)

	order, err := svc.SubmitFromCart(userID, "9")
	require.NoError(t, err)
	require.Len(t, order.Items, 2)

	cart, err := cartSvc.Get(userID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestSubmitFromCartEmpty(t *testing.T) {
	db := newTestDB(t)
	seedMenu(t, db)
	svc := newOrderService(t, db, nil)

	_, err := svc.SubmitFromCart(1, "9")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestDetailNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db, nil)

	_, err := svc.Detail(1234)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
