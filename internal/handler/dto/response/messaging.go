package response

import (
	"nobat/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type SendResultResponse struct {
	RecipientPhone string `json:"recipientPhone"`
	Status         string `json:"status"`
	Reason         string `json:"reason,omitempty"`
}

type BulkSendResponse struct {
	Results []SendResultResponse `json:"results"`
	Sent    int                  `json:"sent"`
	Failed  int                  `json:"failed"`
}

func FromSendResults(results []commands.SendResult) (*BulkSendResponse, error) {
	resp := &BulkSendResponse{Results: make([]SendResultResponse, 0, len(results))}
	if err := copier.Copy(&resp.Results, &results); err != nil {
		return nil, err
	}
	for _, r := range results {
		if r.Status == commands.SendStatusSent {
			resp.Sent++
		} else {
			resp.Failed++
		}
	}
	return resp, nil
}
