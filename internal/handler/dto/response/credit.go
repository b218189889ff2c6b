package response

import (
	"nobat/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type BalanceResponse struct {
	PlanRemaining int `json:"planRemaining"`
	Purchased     int `json:"purchased"`
	Total         int `json:"total"`
}

func FromBalanceView(view *queries.BalanceView) (*BalanceResponse, error) {
	resp := &BalanceResponse{}
	if err := copier.Copy(resp, view); err != nil {
		return nil, err
	}
	return resp, nil
}
