package model

// Bill is a payment reminder with a due date. SendEmail survives from a
// legacy reminder variant and is optional.
type Bill struct {
	ID        FlexID  `json:"id"`
	Title     string  `json:"title"`
	DueDate   Date    `json:"dueDate"`
	Amount    float64 `json:"amount"`
	Paid      bool    `json:"isPaid"`
	Category  string  `json:"category,omitempty"`
	SendEmail bool    `json:"sendEmail,omitempty"`
}

// CreateBill is the payload for creating a bill.
type CreateBill struct {
	Title     string  `json:"title"`
	DueDate   Date    `json:"dueDate"`
	Amount    float64 `json:"amount"`
	Category  string  `json:"category,omitempty"`
	Paid      bool    `json:"isPaid,omitempty"`
	SendEmail bool    `json:"sendEmail,omitempty"`
}

// UpdateBill carries the mutable bill fields.
type UpdateBill struct {
	Title     *string  `json:"title,omitempty"`
	DueDate   *Date    `json:"dueDate,omitempty"`
	Amount    *float64 `json:"amount,omitempty"`
	Category  *string  `json:"category,omitempty"`
	Paid      *bool    `json:"isPaid,omitempty"`
	SendEmail *bool    `json:"sendEmail,omitempty"`
}
