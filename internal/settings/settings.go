package settings

import (
	"github.com/google/uuid"
)

// Settings is the app-wide singleton row. TotalTarget is the global savings
// target, nil until the user sets one.
type Settings struct {
	ID          uuid.UUID
	TotalTarget *float64
}
