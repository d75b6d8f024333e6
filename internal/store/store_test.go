package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"groshop/m/domain"
	"groshop/m/internal/database"
	"groshop/m/internal/migrations"
	"groshop/m/internal/store"
)

func setup(t *testing.T) (store.AccountRepository, store.InventoryRepository) {
	t.Helper()
	db := database.Connect(":memory:")
	t.Cleanup(func() { db.Close() })
	migrations.Run(db)
	return store.NewAccountRepository(db), store.NewInventoryRepository(db)
}

func TestAccountCreateAndGet(t *testing.T) {
	accounts, _ := setup(t)
	ctx := context.Background()

	id, err := accounts.Create(ctx, domain.User{Username: "admin1", Password: "hash", Role: domain.RoleAdmin})
	require.NoError(t, err)
	require.NotZero(t, id)

	byID, err := accounts.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "admin1", byID.Username)
	assert.Equal(t, domain.RoleAdmin, byID.Role)

	byName, err := accounts.GetByUsername(ctx, "admin1")
	require.NoError(t, err)
	assert.Equal(t, id, byName.ID)
}

func TestAccountDuplicateUsername(t *testing.T) {
	accounts, _ := setup(t)
	ctx := context.Background()

	_, err := accounts.Create(ctx, domain.User{Username: "admin1", Password: "hash", Role: domain.RoleAdmin})
	require.NoError(t, err)

	_, err = accounts.Create(ctx, domain.User{Username: "admin1", Password: "other", Role: domain.RoleAdmin})
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestAccountUpdateKeepsPassword(t *testing.T) {
	accounts, _ := setup(t)
	ctx := context.Background()

	id, err := accounts.Create(ctx, domain.User{Username: "emp1", Password: "hash", Role: domain.RoleEmployee})
	require.NoError(t, err)

	err = accounts.Update(ctx, domain.User{ID: id, Username: "emp1", Name: "Eve", Department: "Front", DOB: "1990-01-01", Phone: "0123", Address: "Main St"})
	require.NoError(t, err)

	user, err := accounts.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "hash", user.Password, "profile update must not touch the hash")
	assert.Equal(t, "Eve", user.Name)

	require.NoError(t, accounts.UpdatePassword(ctx, id, "newhash"))
	user, err = accounts.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "newhash", user.Password)
}

func TestAccountDelete(t *testing.T) {
	accounts, _ := setup(t)
	ctx := context.Background()

	id, err := accounts.Create(ctx, domain.User{Username: "emp1", Password: "hash", Role: domain.RoleEmployee})
	require.NoError(t, err)

	require.NoError(t, accounts.Delete(ctx, id))
	_, err = accounts.GetByID(ctx, id)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, accounts.Delete(ctx, id), store.ErrNotFound)
}

func TestInventoryCRUD(t *testing.T) {
	_, inventory := setup(t)
	ctx := context.Background()

	id, err := inventory.Create(ctx, domain.Grocery{Code: "AP1", Name: "Apples", MfgDate: "2026-01-01", ExpDate: "2026-06-01", Quantity: 10, CostPrice: 20, SalePrice: 30})
	require.NoError(t, err)

	item, err := inventory.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Apples", item.Name)

	item.Name = "Green Apples"
	item.Quantity = 7
	require.NoError(t, inventory.Update(ctx, item))

	item, err = inventory.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Green Apples", item.Name)
	assert.Equal(t, int64(7), item.Quantity)

	require.NoError(t, inventory.Delete(ctx, id))
	_, err = inventory.GetByID(ctx, id)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestInventoryGetByCodeFirstMatch(t *testing.T) {
	_, inventory := setup(t)
	ctx := context.Background()

	// Codes are not unique; the oldest record wins.
	first, err := inventory.Create(ctx, domain.Grocery{Code: "AP1", Name: "Apples", SalePrice: 30})
	require.NoError(t, err)
	_, err = inventory.Create(ctx, domain.Grocery{Code: "AP1", Name: "Other Apples", SalePrice: 40})
	require.NoError(t, err)

	item, err := inventory.GetByCode(ctx, "AP1")
	require.NoError(t, err)
	assert.Equal(t, first, item.ID)

	_, err = inventory.GetByCode(ctx, "NOPE")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestInventoryListByQuantity(t *testing.T) {
	_, inventory := setup(t)
	ctx := context.Background()

	_, err := inventory.Create(ctx, domain.Grocery{Code: "A", Name: "A", Quantity: 9})
	require.NoError(t, err)
	_, err = inventory.Create(ctx, domain.Grocery{Code: "B", Name: "B", Quantity: 2})
	require.NoError(t, err)
	_, err = inventory.Create(ctx, domain.Grocery{Code: "C", Name: "C", Quantity: 5})
	require.NoError(t, err)

	items, err := inventory.ListByQuantity(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "B", items[0].Code)
	assert.Equal(t, "C", items[1].Code)
	assert.Equal(t, "A", items[2].Code)
}

func TestAdjustQuantityGuard(t *testing.T) {
	_, inventory := setup(t)
	ctx := context.Background()

	id, err := inventory.Create(ctx, domain.Grocery{Code: "AP1", Name: "Apples", Quantity: 3})
	require.NoError(t, err)

	require.NoError(t, inventory.AdjustQuantity(ctx, id, -2))
	item, err := inventory.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), item.Quantity)

	err = inventory.AdjustQuantity(ctx, id, -2)
	assert.ErrorIs(t, err, store.ErrInsufficientStock)
	item, err = inventory.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), item.Quantity, "rejected adjustment must not change stock")

	assert.ErrorIs(t, inventory.AdjustQuantity(ctx, 999, -1), store.ErrNotFound)
}
