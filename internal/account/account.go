package account

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Account is a named savings or investment bucket. Its history lives in
// value records and its planned payments in future contributions, both keyed
// by the account id.
type Account struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

var ErrNotFound = errors.New("account not found")
