package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"groshop/m/domain"
)

// InventoryRepository persists grocery records.
type InventoryRepository interface {
	Create(ctx context.Context, item domain.Grocery) (int64, error)
	GetByID(ctx context.Context, id int64) (domain.Grocery, error)
	// GetByCode returns the oldest record carrying the given item code.
	// Codes are not unique; first match by insertion order wins.
	GetByCode(ctx context.Context, code string) (domain.Grocery, error)
	List(ctx context.Context) ([]domain.Grocery, error)
	// ListByQuantity orders by on-hand quantity ascending, so the items
	// closest to running out come first.
	ListByQuantity(ctx context.Context) ([]domain.Grocery, error)
	Update(ctx context.Context, item domain.Grocery) error
	Delete(ctx context.Context, id int64) error
	// AdjustQuantity adds delta to the item's on-hand quantity. The write
	// is rejected with ErrInsufficientStock if it would go below zero.
	AdjustQuantity(ctx context.Context, id int64, delta int64) error
}

type inventoryRepo struct {
	db *sqlx.DB
}

// NewInventoryRepository returns a sqlx-backed InventoryRepository.
func NewInventoryRepository(db *sqlx.DB) InventoryRepository {
	return &inventoryRepo{db: db}
}

const grocerySelect = `SELECT id, code, name, mfg_date, exp_date, quantity, cost_price, sale_price, created_at, updated_at FROM groceries`

func (r *inventoryRepo) Create(ctx context.Context, item domain.Grocery) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO groceries (code, name, mfg_date, exp_date, quantity, cost_price, sale_price)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		item.Code, item.Name, item.MfgDate, item.ExpDate, item.Quantity, item.CostPrice, item.SalePrice)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *inventoryRepo) GetByID(ctx context.Context, id int64) (domain.Grocery, error) {
	var item domain.Grocery
	err := r.db.GetContext(ctx, &item, grocerySelect+` WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Grocery{}, ErrNotFound
	}
	return item, err
}

func (r *inventoryRepo) GetByCode(ctx context.Context, code string) (domain.Grocery, error) {
	var item domain.Grocery
	err := r.db.GetContext(ctx, &item, grocerySelect+` WHERE code = ? ORDER BY id ASC LIMIT 1`, code)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Grocery{}, ErrNotFound
	}
	return item, err
}

func (r *inventoryRepo) List(ctx context.Context) ([]domain.Grocery, error) {
	var items []domain.Grocery
	err := r.db.SelectContext(ctx, &items, grocerySelect+` ORDER BY id ASC`)
	return items, err
}

func (r *inventoryRepo) ListByQuantity(ctx context.Context) ([]domain.Grocery, error) {
	var items []domain.Grocery
	err := r.db.SelectContext(ctx, &items, grocerySelect+` ORDER BY quantity ASC, id ASC`)
	return items, err
}

func (r *inventoryRepo) Update(ctx context.Context, item domain.Grocery) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE groceries SET code = ?, name = ?, mfg_date = ?, exp_date = ?, quantity = ?, cost_price = ?, sale_price = ?, updated_at = CURRENT_TIMESTAMP
         WHERE id = ?`,
		item.Code, item.Name, item.MfgDate, item.ExpDate, item.Quantity, item.CostPrice, item.SalePrice, item.ID)
	if err != nil {
		return err
	}
	return rowsOrNotFound(res)
}

func (r *inventoryRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM groceries WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return rowsOrNotFound(res)
}

func (r *inventoryRepo) AdjustQuantity(ctx context.Context, id int64, delta int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE groceries SET quantity = quantity + ?, updated_at = CURRENT_TIMESTAMP
         WHERE id = ? AND quantity + ? >= 0`,
		delta, id, delta)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	// Guard rejected: tell stock shortage apart from a missing record.
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return ErrInsufficientStock
}
