package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"nobat/internal/domain/credit"
	"nobat/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CreditRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewCreditRepository(pool *pgxpool.Pool, logger *slog.Logger) *CreditRepository {
	return &CreditRepository{pool: pool, logger: logger}
}

func (r *CreditRepository) Get(ctx context.Context, businessID uuid.UUID) (*credit.Account, error) {
	var (
		planRemaining int
		purchased     int
		updatedAt     time.Time
	)
	err := r.pool.QueryRow(ctx, `
		SELECT plan_remaining, purchased_balance, updated_at
		FROM credit_accounts
		WHERE business_id = $1`,
		businessID,
	).Scan(&planRemaining, &purchased, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, credit.ErrAccountNotFound
	}
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "get credit account", err)
	}
	return credit.ReconstructAccount(businessID, planRemaining, purchased, updatedAt), nil
}

// Debit draws plan pool first, then purchased, in one guarded statement. The
// WHERE clause makes the draw whole-or-nothing and the row lock serializes
// concurrent debits against the same business.
func (r *CreditRepository) Debit(ctx context.Context, businessID uuid.UUID, amount int) (*credit.Account, error) {
	if amount <= 0 {
		return nil, credit.ErrInvalidAmount
	}

	var (
		planRemaining int
		purchased     int
		updatedAt     time.Time
	)
	err := r.pool.QueryRow(ctx, `
		UPDATE credit_accounts
		SET plan_remaining    = plan_remaining - LEAST(plan_remaining, $2),
		    purchased_balance = purchased_balance - ($2 - LEAST(plan_remaining, $2)),
		    updated_at        = now()
		WHERE business_id = $1
		  AND plan_remaining + purchased_balance >= $2
		RETURNING plan_remaining, purchased_balance, updated_at`,
		businessID, amount,
	).Scan(&planRemaining, &purchased, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		// Either no account or not enough credit; refetch to tell them apart
		// and report the shortfall.
		account, getErr := r.Get(ctx, businessID)
		if getErr != nil {
			return nil, getErr
		}
		return nil, &credit.InsufficientCreditError{Required: amount, Available: account.Total()}
	}
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "debit credit account", err)
	}
	return credit.ReconstructAccount(businessID, planRemaining, purchased, updatedAt), nil
}

// Credit adds amount to the named pool; used for plan renewals, purchases and
// refunds after a failed send.
func (r *CreditRepository) Credit(ctx context.Context, businessID uuid.UUID, amount int, pool credit.Pool) (*credit.Account, error) {
	if amount <= 0 || !pool.IsValid() {
		return nil, credit.ErrInvalidAmount
	}

	column := "plan_remaining"
	if pool == credit.PoolPurchased {
		column = "purchased_balance"
	}

	var (
		planRemaining int
		purchased     int
		updatedAt     time.Time
	)
	err := r.pool.QueryRow(ctx, `
		UPDATE credit_accounts
		SET `+column+` = `+column+` + $2,
		    updated_at = now()
		WHERE business_id = $1
		RETURNING plan_remaining, purchased_balance, updated_at`,
		businessID, amount,
	).Scan(&planRemaining, &purchased, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, credit.ErrAccountNotFound
	}
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "credit account", err)
	}
	return credit.ReconstructAccount(businessID, planRemaining, purchased, updatedAt), nil
}
