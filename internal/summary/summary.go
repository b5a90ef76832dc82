package summary

import (
	"github.com/google/uuid"
)

// AccountTotal is one account's latest snapshot value, 0.0 when the account
// has no snapshots yet.
type AccountTotal struct {
	ID    uuid.UUID
	Name  string
	Total float64
}

// Overview is the derived view the dashboard renders: the sum of every
// account's latest value against the global target. Target is nil until a
// settings row exists.
type Overview struct {
	Total    float64
	Target   *float64
	Accounts []AccountTotal
}
