package services

import (
	"testing"

	"github.com/hectorDev2/macao-comanda/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartService(t *testing.T) (*CartService, []uint) {
	t.Helper()
	db := newTestDB(t)
	menu := seedMenu(t, db)
	svc := NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
	ids := make([]uint, len(menu))
	for i, m := range menu {
		ids[i] = m.ID
	}
	return svc, ids
}

func TestAddItemMergesSameMenuLines(t *testing.T) {
	svc, menu := newCartService(t)
	const userID = 1

	cart, err := svc.AddItem(userID, menu[0], 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	cart, err = svc.AddItem(userID, menu[0], 2)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Qty)
	assert.True(t, cart.Items[0].Total.Equal(dec("36.00")))

	cart, err = svc.AddItem(userID, menu[2], 1)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
}

func TestAddItemValidation(t *testing.T) {
	svc, menu := newCartService(t)

	_, err := svc.AddItem(1, menu[0], 0)
	assert.ErrorIs(t, err, ErrQtyInvalid)

	_, err = svc.AddItem(1, 9999, 1)
	assert.ErrorIs(t, err, ErrMenuNotFound)

	// inactive items cannot be ordered
	_, err = svc.AddItem(1, menu[3], 1)
	assert.ErrorIs(t, err, ErrMenuUnavailable)
}

func TestUpdateQtyZeroRemovesLine(t *testing.T) {
	svc, menu := newCartService(t)
	const userID = 1

	cart, err := svc.AddItem(userID, menu[0], 2)
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	cart, err = svc.UpdateQty(userID, itemID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, cart.Items[0].Qty)
	assert.True(t, cart.Items[0].Total.Equal(dec("60.00")))

	cart, err = svc.UpdateQty(userID, itemID, 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartsAreScopedPerUser(t *testing.T) {
	svc, menu := newCartService(t)

	_, err := svc.AddItem(1, menu[0], 1)
	require.NoError(t, err)
	cartB, err := svc.AddItem(2, menu[1], 1)
	require.NoError(t, err)
	itemB := cartB.Items[0].ID

	// user 1 cannot touch user 2's line
	_, err = svc.UpdateQty(1, itemB, 9)
	assert.ErrorIs(t, err, ErrItemNotFound)

	cartA, err := svc.Get(1)
	require.NoError(t, err)
	require.Len(t, cartA.Items, 1)
	assert.Equal(t, 1, cartA.Items[0].Qty)
}

func TestClearCart(t *testing.T) {
	svc, menu := newCartService(t)
	const userID = 1

	_, err := svc.AddItem(userID, menu[0], 1)
	require.NoError(t, err)
	_, err = svc.AddItem(userID, menu[1], 1)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(userID))

	cart, err := svc.Get(userID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	// clearing an absent cart is a no-op
	require.NoError(t, svc.Clear(42))
}
