package value

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/nestegg/internal/value"
)

type valueResponse struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"account_id"`
	Value     float64   `json:"value"`
	Date      string    `json:"date"`
}

func toResponse(rec *value.Record) valueResponse {
	return valueResponse{
		ID:        rec.ID,
		AccountID: rec.AccountID,
		Value:     rec.Value,
		Date:      rec.Date.Format(time.DateOnly),
	}
}

func toResponseList(recs []*value.Record) []valueResponse {
	resp := make([]valueResponse, len(recs))
	for i, rec := range recs {
		resp[i] = toResponse(rec)
	}

	return resp
}
