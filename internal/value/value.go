package value

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Record is a point-in-time balance snapshot for one account. The most
// recent record by date is the account's current value.
type Record struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Value     float64
	Date      time.Time
	CreatedAt time.Time
}

var (
	ErrNotFound        = errors.New("value record not found")
	ErrAccountNotFound = errors.New("account not found")
)
