package contribution

import (
	"errors"

	"github.com/google/uuid"
)

// Contribution is a planned future payment. With Recurring set, Amount is a
// monthly contribution and Date its start date; otherwise it is a one-off
// payment on Date. A nil AccountID marks an unallocated lump sum.
//
// Date stays a plain ISO string end to end: it is optional, never computed
// with, and only ever sorted lexicographically.
type Contribution struct {
	ID        uuid.UUID
	AccountID *uuid.UUID
	Amount    float64
	Date      *string
	Recurring bool
}

var (
	ErrNotFound        = errors.New("contribution not found")
	ErrAccountNotFound = errors.New("account not found")
)
