package domain

// LineItem is one grocery's snapshot plus the accumulated quantity within a
// bill. Item is a copy taken when the line was created; the bill always
// charges the snapshot's sale price even if the record changes afterwards.
type LineItem struct {
	Item Grocery `json:"item"`
	Qty  int64   `json:"qty"`
}

// Bill is the in-progress invoice for one checkout session. It exists only
// in session storage and is never written to the database.
type Bill struct {
	CustomerName  string              `json:"customer_name"`
	CustomerPhone string              `json:"customer_phone"`
	Items         map[int64]*LineItem `json:"items"`
	Total         float64             `json:"total"`
}
