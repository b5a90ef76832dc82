package summary

import (
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/nestegg/internal/settings"
	"github.com/MrJamesThe3rd/nestegg/internal/summary"
)

type accountTotalResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Total float64   `json:"total"`
}

type overviewResponse struct {
	Total    float64                `json:"total"`
	Target   *float64               `json:"target"`
	Accounts []accountTotalResponse `json:"accounts"`
}

func toOverviewResponse(o *summary.Overview) overviewResponse {
	accounts := make([]accountTotalResponse, len(o.Accounts))
	for i, a := range o.Accounts {
		accounts[i] = accountTotalResponse{
			ID:    a.ID,
			Name:  a.Name,
			Total: a.Total,
		}
	}

	return overviewResponse{
		Total:    o.Total,
		Target:   o.Target,
		Accounts: accounts,
	}
}

type settingsResponse struct {
	ID          uuid.UUID `json:"id"`
	TotalTarget *float64  `json:"total_target"`
}

func toSettingsResponse(row *settings.Settings) settingsResponse {
	return settingsResponse{
		ID:          row.ID,
		TotalTarget: row.TotalTarget,
	}
}
