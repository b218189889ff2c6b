//go:build unit

package credit_test

import (
	"testing"
	"time"

	"nobat/internal/domain/credit"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 4, 10, 12, 0, 0, 0, time.UTC)

func newAccount(t *testing.T, plan, purchased int) *credit.Account {
	t.Helper()
	a, err := credit.NewAccount(uuid.New(), plan, purchased, now)
	require.NoError(t, err)
	return a
}

func TestDebitDrawsPlanFirst(t *testing.T) {
	a := newAccount(t, 5, 10)

	require.NoError(t, a.Debit(3, now))
	assert.Equal(t, 2, a.PlanRemaining())
	assert.Equal(t, 10, a.Purchased())

	require.NoError(t, a.Debit(4, now))
	assert.Equal(t, 0, a.PlanRemaining())
	assert.Equal(t, 8, a.Purchased())
}

func TestDebitWholeOrNothing(t *testing.T) {
	a := newAccount(t, 2, 3)

	err := a.Debit(6, now)
	require.ErrorIs(t, err, credit.ErrInsufficientCredit)

	var insufficientErr *credit.InsufficientCreditError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, 1, insufficientErr.Shortfall())

	// A rejected debit never partially drains a pool.
	assert.Equal(t, 2, a.PlanRemaining())
	assert.Equal(t, 3, a.Purchased())
}

func TestDebitExactBalance(t *testing.T) {
	a := newAccount(t, 2, 3)
	require.NoError(t, a.Debit(5, now))
	assert.Equal(t, 0, a.Total())
}

func TestDebitValidation(t *testing.T) {
	a := newAccount(t, 5, 0)
	require.ErrorIs(t, a.Debit(0, now), credit.ErrInvalidAmount)
	require.ErrorIs(t, a.Debit(-1, now), credit.ErrInvalidAmount)
}

func TestCreditPools(t *testing.T) {
	a := newAccount(t, 0, 0)

	require.NoError(t, a.Credit(10, credit.PoolPlan, now))
	require.NoError(t, a.Credit(4, credit.PoolPurchased, now))
	assert.Equal(t, 10, a.PlanRemaining())
	assert.Equal(t, 4, a.Purchased())
	assert.Equal(t, 14, a.Total())

	require.ErrorIs(t, a.Credit(1, credit.Pool("bonus"), now), credit.ErrInvalidAmount)
	require.ErrorIs(t, a.Credit(0, credit.PoolPlan, now), credit.ErrInvalidAmount)
}

// Non-negativity must survive any debit/credit sequence.
func TestPoolsNeverNegative(t *testing.T) {
	a := newAccount(t, 3, 1)

	ops := []struct {
		debit  int
		credit int
		pool   credit.Pool
	}{
		{debit: 2},
		{credit: 5, pool: credit.PoolPurchased},
		{debit: 6},
		{debit: 10},
		{credit: 2, pool: credit.PoolPlan},
		{debit: 3},
	}

	for _, op := range ops {
		if op.debit > 0 {
			_ = a.Debit(op.debit, now)
		} else {
			_ = a.Credit(op.credit, op.pool, now)
		}
		assert.GreaterOrEqual(t, a.PlanRemaining(), 0)
		assert.GreaterOrEqual(t, a.Purchased(), 0)
	}
}

func TestNewAccountValidation(t *testing.T) {
	_, err := credit.NewAccount(uuid.New(), -1, 0, now)
	require.ErrorIs(t, err, credit.ErrInvalidAmount)
}
