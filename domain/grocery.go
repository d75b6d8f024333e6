package domain

// Grocery is one inventory record. Code is the item code printed on the
// shelf label; it is what cashiers type into the invoice form and it is not
// required to be unique.
type Grocery struct {
	ID        int64   `db:"id" json:"id"`
	Code      string  `db:"code" json:"code"`
	Name      string  `db:"name" json:"name"`
	MfgDate   string  `db:"mfg_date" json:"mfg_date"`
	ExpDate   string  `db:"exp_date" json:"exp_date"`
	Quantity  int64   `db:"quantity" json:"quantity"`
	CostPrice float64 `db:"cost_price" json:"cost_price"`
	SalePrice float64 `db:"sale_price" json:"sale_price"`
	CreatedAt string  `db:"created_at" json:"created_at"`
	UpdatedAt string  `db:"updated_at" json:"updated_at"`
}
