package account

import (
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/nestegg/internal/account"
)

type accountResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func toResponse(acct *account.Account) accountResponse {
	return accountResponse{
		ID:   acct.ID,
		Name: acct.Name,
	}
}

func toResponseList(accts []*account.Account) []accountResponse {
	resp := make([]accountResponse, len(accts))
	for i, acct := range accts {
		resp[i] = toResponse(acct)
	}

	return resp
}
