package queries

import (
	"context"

	"nobat/internal/domain/credit"

	"github.com/google/uuid"
)

type CreditReader interface {
	Get(ctx context.Context, businessID uuid.UUID) (*credit.Account, error)
}

type BalanceView struct {
	PlanRemaining int `json:"planRemaining"`
	Purchased     int `json:"purchased"`
	Total         int `json:"total"`
}

type CreditQueries interface {
	Balance(ctx context.Context, businessID uuid.UUID) (*BalanceView, error)
}

type creditQueries struct {
	credits CreditReader
}

func NewCreditQueries(credits CreditReader) CreditQueries {
	return &creditQueries{credits: credits}
}

func (q *creditQueries) Balance(ctx context.Context, businessID uuid.UUID) (*BalanceView, error) {
	account, err := q.credits.Get(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return &BalanceView{
		PlanRemaining: account.PlanRemaining(),
		Purchased:     account.Purchased(),
		Total:         account.Total(),
	}, nil
}
