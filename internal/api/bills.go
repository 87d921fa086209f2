package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/ahamed-hazeeb/budget-buddy/internal/model"
)

// BillService wraps the bill reminders resource.
type BillService struct {
	client *Client
}

// NewBillService creates the bill resource client.
func NewBillService(client *Client) *BillService {
	return &BillService{client: client}
}

// GetAll lists bills.
func (s *BillService) GetAll(ctx context.Context) ([]model.Bill, error) {
	var out []model.Bill
	if err := s.client.get(ctx, "/bills", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Bill{}
	}
	return out, nil
}

// GetUpcoming lists bills due within the given number of days.
func (s *BillService) GetUpcoming(ctx context.Context, days int) ([]model.Bill, error) {
	q := url.Values{}
	q.Set("days", strconv.Itoa(days))

	var out []model.Bill
	if err := s.client.get(ctx, "/bills/upcoming", q, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Bill{}
	}
	return out, nil
}

// GetOverdue lists unpaid bills past their due date.
func (s *BillService) GetOverdue(ctx context.Context) ([]model.Bill, error) {
	var out []model.Bill
	if err := s.client.get(ctx, "/bills/overdue", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Bill{}
	}
	return out, nil
}

// GetByID fetches a single bill.
func (s *BillService) GetByID(ctx context.Context, id string) (model.Bill, error) {
	var out model.Bill
	err := s.client.get(ctx, "/bills/"+url.PathEscape(id), nil, &out)
	return out, err
}

// Create adds a bill.
func (s *BillService) Create(ctx context.Context, data model.CreateBill) (model.Bill, error) {
	var out model.Bill
	err := s.client.post(ctx, "/bills", data, &out)
	return out, err
}

// Update modifies a bill.
func (s *BillService) Update(ctx context.Context, id string, data model.UpdateBill) (model.Bill, error) {
	var out model.Bill
	err := s.client.put(ctx, "/bills/"+url.PathEscape(id), data, &out)
	return out, err
}

// MarkPaid marks a bill as paid.
func (s *BillService) MarkPaid(ctx context.Context, id string) (model.Bill, error) {
	var out model.Bill
	err := s.client.patch(ctx, "/bills/"+url.PathEscape(id)+"/pay", nil, &out)
	return out, err
}

// Delete removes a bill.
func (s *BillService) Delete(ctx context.Context, id string) error {
	return s.client.delete(ctx, "/bills/"+url.PathEscape(id))
}
