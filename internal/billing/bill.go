package billing

import (
	"context"
	"errors"
	"log"

	"groshop/m/domain"
	"groshop/m/internal/store"
)

var (
	// ErrItemNotFound means the submitted item code matched no grocery.
	ErrItemNotFound = errors.New("item not found")
	// ErrLineNotFound means the referenced line is not on the bill.
	ErrLineNotFound = errors.New("line item not found")
	// ErrInsufficientStock means on-hand quantity cannot cover the request.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Accumulator builds up a session's bill against live inventory. It holds no
// bill state itself; the caller owns the bill and passes it in.
type Accumulator struct {
	inventory store.InventoryRepository
}

func NewAccumulator(inventory store.InventoryRepository) *Accumulator {
	return &Accumulator{inventory: inventory}
}

// AddItem adds one unit of the grocery with the given item code to the bill,
// creating the bill if it does not exist yet. The customer name and phone
// are re-stamped on every call, so the last submitted values win. A nil bill
// is valid input; the returned bill is the one the caller should keep.
func (a *Accumulator) AddItem(ctx context.Context, bill *domain.Bill, code, customerName, customerPhone string) (*domain.Bill, error) {
	item, err := a.inventory.GetByCode(ctx, code)
	if errors.Is(err, store.ErrNotFound) {
		return bill, ErrItemNotFound
	}
	if err != nil {
		return bill, err
	}
	if item.Quantity < 1 {
		return bill, ErrInsufficientStock
	}

	if bill == nil {
		bill = &domain.Bill{Items: make(map[int64]*domain.LineItem)}
	}
	bill.CustomerName = customerName
	bill.CustomerPhone = customerPhone

	if line, ok := bill.Items[item.ID]; ok {
		line.Qty++
	} else {
		bill.Items[item.ID] = &domain.LineItem{Item: item, Qty: 1}
	}
	bill.Total += item.SalePrice
	return bill, nil
}

// Increment adds one more unit to an existing line after re-checking the
// grocery's current on-hand quantity.
func (a *Accumulator) Increment(ctx context.Context, bill *domain.Bill, id int64) error {
	line := lookupLine(bill, id)
	if line == nil {
		return ErrLineNotFound
	}

	item, err := a.inventory.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrItemNotFound
	}
	if err != nil {
		return err
	}
	if item.Quantity < line.Qty+1 {
		return ErrInsufficientStock
	}

	line.Qty++
	bill.Total += line.Item.SalePrice
	return nil
}

// Decrement removes one unit from a line, charging back the snapshot price
// the line was created with. A line reaching zero is removed; a bill with no
// lines left is destroyed, signalled by a nil return.
func (a *Accumulator) Decrement(bill *domain.Bill, id int64) (*domain.Bill, error) {
	line := lookupLine(bill, id)
	if line == nil {
		return bill, ErrLineNotFound
	}

	bill.Total -= line.Item.SalePrice
	line.Qty--
	if line.Qty == 0 {
		delete(bill.Items, id)
	}
	if len(bill.Items) == 0 {
		return nil, nil
	}
	return bill, nil
}

// Commit applies the bill's quantities as stock deductions. Each line is
// deducted independently: a failure on one line is logged and does not stop
// the others. The bill is left untouched; clearing it stays the caller's
// move. Returns the first failure seen after every line was attempted.
func (a *Accumulator) Commit(ctx context.Context, bill *domain.Bill) error {
	if bill == nil {
		return nil
	}
	var firstErr error
	for id, line := range bill.Items {
		if err := a.inventory.AdjustQuantity(ctx, id, -line.Qty); err != nil {
			log.Printf("bill commit: deducting %d of item %d: %v", line.Qty, id, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func lookupLine(bill *domain.Bill, id int64) *domain.LineItem {
	if bill == nil {
		return nil
	}
	return bill.Items[id]
}
