package model

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ahamed-hazeeb/budget-buddy/internal/common"
)

// FlexID tolerates the backend emitting entity identifiers as either
// JSON numbers or strings. It always marshals back as a string.
type FlexID string

// NewFlexID builds an identifier from a numeric key.
func NewFlexID(id int64) FlexID {
	return FlexID(strconv.FormatInt(id, 10))
}

// UnmarshalJSON accepts a string or number identifier.
func (f *FlexID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexID(n.String())
		return nil
	}

	return fmt.Errorf("%w: identifier %s", common.ErrParse, string(data))
}

// String returns the identifier as a string.
func (f FlexID) String() string {
	return string(f)
}

// Int64 converts the identifier to an integer when the backend uses
// numeric keys; it fails for non-numeric identifiers.
func (f FlexID) Int64() (int64, error) {
	n, err := strconv.ParseInt(string(f), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: non-numeric identifier %q", common.ErrParse, string(f))
	}
	return n, nil
}
