package storage

// PlanInstruction is one line of an imported daily production plan,
// already parsed from the spreadsheet by the frontend.
type PlanInstruction struct {
	ProductName string `json:"product_name"`
	WorkerName  string `json:"worker_name"`
	Quantity    int    `json:"quantity"`
}

// WriteFailure records one assignment row that could not be persisted
// during an allocation run. The run is not aborted by it.
type WriteFailure struct {
	OrderID int64  `json:"order_id"`
	Reason  string `json:"reason"`
}
