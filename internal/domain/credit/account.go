// Package credit models the messaging-credit balance of a business: a plan
// allowance that renews with the subscription and a purchased top-up pool.
// Debits draw plan first, then purchased, and are whole-or-nothing.
package credit

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInsufficientCredit = errors.New("insufficient credit")
	ErrInvalidAmount      = errors.New("credit amount must be positive")
	ErrAccountNotFound    = errors.New("credit account not found")
)

// InsufficientCreditError reports the shortfall so callers can offer a
// top-up path.
type InsufficientCreditError struct {
	Required  int
	Available int
}

func (e *InsufficientCreditError) Error() string {
	return fmt.Sprintf("insufficient credit: need %d, have %d", e.Required, e.Available)
}

func (e *InsufficientCreditError) Is(target error) bool {
	return target == ErrInsufficientCredit
}

func (e *InsufficientCreditError) Shortfall() int {
	return e.Required - e.Available
}

// Pool names the two balances a credit can live in.
type Pool string

const (
	PoolPlan      Pool = "plan"
	PoolPurchased Pool = "purchased"
)

func (p Pool) IsValid() bool {
	return p == PoolPlan || p == PoolPurchased
}

type Account struct {
	businessID    uuid.UUID
	planRemaining int
	purchased     int
	updatedAt     time.Time
}

func NewAccount(businessID uuid.UUID, planAllowance, purchased int, now time.Time) (*Account, error) {
	if planAllowance < 0 || purchased < 0 {
		return nil, ErrInvalidAmount
	}
	return &Account{
		businessID:    businessID,
		planRemaining: planAllowance,
		purchased:     purchased,
		updatedAt:     now,
	}, nil
}

func ReconstructAccount(businessID uuid.UUID, planRemaining, purchased int, updatedAt time.Time) *Account {
	return &Account{
		businessID:    businessID,
		planRemaining: planRemaining,
		purchased:     purchased,
		updatedAt:     updatedAt,
	}
}

// Debit removes amount credits, plan pool first. A debit the account cannot
// cover leaves both pools untouched.
func (a *Account) Debit(amount int, now time.Time) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount > a.Total() {
		return &InsufficientCreditError{Required: amount, Available: a.Total()}
	}

	fromPlan := min(a.planRemaining, amount)
	a.planRemaining -= fromPlan
	a.purchased -= amount - fromPlan
	a.updatedAt = now
	return nil
}

// Credit adds amount to the named pool (plan renewals, purchases, refunds).
func (a *Account) Credit(amount int, pool Pool, now time.Time) error {
	if amount <= 0 || !pool.IsValid() {
		return ErrInvalidAmount
	}
	if pool == PoolPlan {
		a.planRemaining += amount
	} else {
		a.purchased += amount
	}
	a.updatedAt = now
	return nil
}

func (a *Account) CanAfford(amount int) bool {
	return amount <= a.Total()
}

func (a *Account) BusinessID() uuid.UUID { return a.businessID }
func (a *Account) PlanRemaining() int    { return a.planRemaining }
func (a *Account) Purchased() int        { return a.purchased }
func (a *Account) Total() int            { return a.planRemaining + a.purchased }
func (a *Account) UpdatedAt() time.Time  { return a.updatedAt }
