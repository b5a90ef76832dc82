package contribution

import (
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/nestegg/internal/contribution"
)

type contributionResponse struct {
	ID        uuid.UUID  `json:"id"`
	AccountID *uuid.UUID `json:"account_id"`
	Amount    float64    `json:"amount"`
	Date      *string    `json:"date"`
	Recurring bool       `json:"recurring"`
}

func toResponse(c *contribution.Contribution) contributionResponse {
	return contributionResponse{
		ID:        c.ID,
		AccountID: c.AccountID,
		Amount:    c.Amount,
		Date:      c.Date,
		Recurring: c.Recurring,
	}
}

func toResponseList(cs []*contribution.Contribution) []contributionResponse {
	resp := make([]contributionResponse, len(cs))
	for i, c := range cs {
		resp[i] = toResponse(c)
	}

	return resp
}
