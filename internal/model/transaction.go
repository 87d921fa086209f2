package model

import "time"

// Transaction is a single money movement as returned by the backend.
// Category and account may be referenced by id or, in older payloads,
// by an inline name; aggregation resolves ids first and falls back to
// the inline string.
type Transaction struct {
	ID         FlexID          `json:"id"`
	Date       Date            `json:"date"`
	Amount     float64         `json:"amount"`
	CategoryID FlexID          `json:"category_id,omitempty"`
	Category   string          `json:"category,omitempty"`
	AccountID  FlexID          `json:"account_id,omitempty"`
	Account    string          `json:"account,omitempty"`
	Kind       TransactionKind `json:"type"`
	Note       string          `json:"note,omitempty"`
}

// CreateTransaction is the payload for creating a transaction. The
// resource client stamps UserID from the session before sending.
type CreateTransaction struct {
	Date       Date            `json:"date"`
	Amount     float64         `json:"amount"`
	CategoryID FlexID          `json:"category_id,omitempty"`
	AccountID  FlexID          `json:"account_id,omitempty"`
	Kind       TransactionKind `json:"type"`
	Note       string          `json:"note,omitempty"`
	UserID     int64           `json:"user_id,omitempty"`
}

// UpdateTransaction carries the mutable transaction fields; nil
// pointers are omitted from the request body.
type UpdateTransaction struct {
	Date       *Date            `json:"date,omitempty"`
	Amount     *float64         `json:"amount,omitempty"`
	CategoryID *FlexID          `json:"category_id,omitempty"`
	AccountID  *FlexID          `json:"account_id,omitempty"`
	Kind       *TransactionKind `json:"type,omitempty"`
	Note       *string          `json:"note,omitempty"`
}

// Date is a calendar date serialized as YYYY-MM-DD. The backend also
// emits full RFC 3339 timestamps on some routes; both are accepted.
type Date struct {
	time.Time
}

// Today returns the current calendar date.
func Today() Date {
	y, m, d := time.Now().Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// NewDate builds a Date from year, month, day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

const dateLayout = "2006-01-02"

// UnmarshalJSON accepts YYYY-MM-DD or RFC 3339 timestamps.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		d.Time = time.Time{}
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	// Keep the calendar day as written; truncating the absolute
	// instant would shift dates carrying a non-zero UTC offset.
	y, m, day := t.Date()
	d.Time = time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return nil
}

// MarshalJSON emits YYYY-MM-DD.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}
