package model

import "fmt"

// ProcessStatus describes the server-side order lifecycle stage.
type ProcessStatus int

const (
	StatusCreated ProcessStatus = iota
	StatusAccepted
	StatusReady
	StatusCompleted
	StatusCanceled
	StatusDonated
)

var statusLabels = map[ProcessStatus]string{
	StatusCreated:   "Created",
	StatusAccepted:  "Accepted",
	StatusReady:     "Ready",
	StatusCompleted: "Completed",
	StatusCanceled:  "Canceled",
	StatusDonated:   "Donated",
}

// String returns the display label for the status.
func (s ProcessStatus) String() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return fmt.Sprintf("Status %d", int(s))
}

// OrderItem is a single garment within an order.
type OrderItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Order describes a dry-cleaning order. Status and the other fields are
// mutated only server-side; the client re-fetches rather than patching.
type Order struct {
	ID                     int64         `json:"id"`
	CustomerID             int64         `json:"customerId"`
	ReceiptNumber          int64         `json:"receiptNumber"`
	ProcessStatus          ProcessStatus `json:"processStatus"`
	ExpectedCompletionDate *string       `json:"expectedCompletionDate,omitempty"`
	Notes                  []string      `json:"notes"`
	Items                  []OrderItem   `json:"items"`
}

// OrderDraft is the creation payload for POST /orders.
type OrderDraft struct {
	CustomerID             int64         `json:"customerId"`
	ReceiptNumber          int64         `json:"receiptNumber"`
	ProcessStatus          ProcessStatus `json:"processStatus"`
	ExpectedCompletionDate *string       `json:"expectedCompletionDate"`
	Notes                  []string      `json:"notes"`
	Items                  []OrderItem   `json:"items"`
}
