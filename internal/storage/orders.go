package storage

import "time"

const (
	OrderStatusPending = "PENDING"
	OrderStatusDone    = "DONE"
	OrderStatusShipped = "SHIPPED"
)

type Order struct {
	ID          int64      `json:"id"`
	OrderNum    string     `json:"order_num"`
	Client      string     `json:"client"`
	Product     string     `json:"product"`
	SKU         *string    `json:"sku,omitempty"`
	Quantity    int        `json:"quantity"`
	Status      string     `json:"status"`
	Priority    bool       `json:"priority"`
	IntakeDate  time.Time  `json:"intake_date"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CompletedBy *string    `json:"completed_by,omitempty"`
}

// PendingOrder is one slot of the allocation pool. The pool is loaded
// sorted priority desc, intake_date asc; the allocator consumes it in
// that order and never re-sorts.
type PendingOrder struct {
	ID         int64     `json:"id"`
	OrderNum   string    `json:"order_num"`
	Product    string    `json:"product"`
	SKU        *string   `json:"sku,omitempty"`
	Quantity   int       `json:"quantity"`
	Priority   bool      `json:"priority"`
	IntakeDate time.Time `json:"intake_date"`
}

type SaveOrder struct {
	OrderNum   string  `json:"order_num"`
	Client     string  `json:"client"`
	Product    string  `json:"product"`
	SKU        *string `json:"sku,omitempty"`
	Quantity   int     `json:"quantity"`
	Priority   bool    `json:"priority"`
	IntakeDate string  `json:"intake_date"`
}

// ImportRow is one already-parsed line of the admin order import.
// Rows whose order_num exists are updated, the rest are inserted.
type ImportRow struct {
	OrderNum string  `json:"order_num"`
	Client   string  `json:"client"`
	Product  string  `json:"product"`
	SKU      *string `json:"sku,omitempty"`
	Quantity int     `json:"quantity"`
	Priority bool    `json:"priority"`
}

type ImportResult struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
}

type OrderFilter struct {
	Year   int
	Month  int
	Search string
	Status string
}
