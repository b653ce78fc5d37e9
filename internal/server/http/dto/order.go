package dto

import "github.com/qdryclean/qadmin/internal/domain/model"

// SearchRequest carries search text for the order list.
type SearchRequest struct {
	Search string `json:"search"`
}

// PageRequest selects a page of the order list.
type PageRequest struct {
	Page int `json:"page"`
}

// OrderFormRequest is the creation form payload.
type OrderFormRequest struct {
	CustomerID             int64             `json:"customerId"`
	ReceiptNumber          int64             `json:"receiptNumber"`
	ProcessStatus          int               `json:"processStatus"`
	ExpectedCompletionDate *string           `json:"expectedCompletionDate"`
	Notes                  []string          `json:"notes"`
	Items                  []model.OrderItem `json:"items"`
}

// Draft converts the request into the domain creation payload.
func (r OrderFormRequest) Draft() model.OrderDraft {
	return model.OrderDraft{
		CustomerID:             r.CustomerID,
		ReceiptNumber:          r.ReceiptNumber,
		ProcessStatus:          model.ProcessStatus(r.ProcessStatus),
		ExpectedCompletionDate: r.ExpectedCompletionDate,
		Notes:                  r.Notes,
		Items:                  r.Items,
	}
}
