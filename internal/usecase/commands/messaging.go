package commands

import (
	"context"
	"log/slog"

	"nobat/internal/domain/credit"
	"nobat/internal/infra/metrics"

	"github.com/google/uuid"
)

type SendRequest struct {
	RecipientPhone string
	Content        string
	Cost           int
}

type SendStatus string

const (
	SendStatusSent   SendStatus = "sent"
	SendStatusFailed SendStatus = "failed"
)

type SendResult struct {
	RecipientPhone string
	Status         SendStatus
	Reason         string
}

type MessagingCommands interface {
	// SendBulk meters and dispatches one message per request. The batch is
	// rejected upfront when the total cost exceeds the spendable balance;
	// past that gate each recipient is an independent debit+send unit whose
	// transport failure refunds its own credit and touches nobody else.
	// Results come back in request order, one entry per request.
	SendBulk(ctx context.Context, businessID uuid.UUID, requests []SendRequest) ([]SendResult, error)
}

type messagingCommands struct {
	notifier *notifier
	logger   *slog.Logger
}

func NewMessagingCommands(
	credits CreditRepository,
	gateway SMSGateway,
	messageCost int,
	logger *slog.Logger,
) MessagingCommands {
	return &messagingCommands{
		notifier: newNotifier(credits, gateway, messageCost, logger),
		logger:   logger,
	}
}

func (m *messagingCommands) SendBulk(ctx context.Context, businessID uuid.UUID, requests []SendRequest) ([]SendResult, error) {
	if len(requests) == 0 {
		return []SendResult{}, nil
	}

	total := 0
	for i := range requests {
		if requests[i].Cost <= 0 {
			requests[i].Cost = m.notifier.defaultCost
		}
		total += requests[i].Cost
	}

	// Affordability gate for the batch as a whole. Nothing is dispatched
	// and nothing is debited when the business cannot cover every
	// recipient.
	account, err := m.notifier.credits.Get(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if !account.CanAfford(total) {
		metrics.IncBulkPrecheckBlocks()
		return nil, &credit.InsufficientCreditError{Required: total, Available: account.Total()}
	}

	results := make([]SendResult, 0, len(requests))
	for _, req := range requests {
		// Caller cancellation stops undispatched recipients; already
		// processed ones keep their results.
		if ctx.Err() != nil {
			return results, ctx.Err()
		}
		results = append(results, m.dispatchOne(ctx, businessID, req))
	}
	return results, nil
}

// dispatchOne is the per-recipient unit of work: debit, send, refund on
// transport failure. A failed debit here means concurrent spending consumed
// the pre-checked balance; the recipient fails without touching the rest of
// the batch.
func (m *messagingCommands) dispatchOne(ctx context.Context, businessID uuid.UUID, req SendRequest) SendResult {
	result := SendResult{RecipientPhone: req.RecipientPhone, Status: SendStatusSent}

	if err := m.notifier.send(ctx, businessID, req.RecipientPhone, req.Content, req.Cost, "bulk"); err != nil {
		result.Status = SendStatusFailed
		result.Reason = err.Error()
	}
	return result
}

// notifier owns the debit+send+refund-on-failure unit shared by booking
// notifications and bulk sends.
type notifier struct {
	credits     CreditRepository
	gateway     SMSGateway
	defaultCost int
	logger      *slog.Logger
}

func newNotifier(credits CreditRepository, gateway SMSGateway, defaultCost int, logger *slog.Logger) *notifier {
	if defaultCost <= 0 {
		defaultCost = 1
	}
	return &notifier{
		credits:     credits,
		gateway:     gateway,
		defaultCost: defaultCost,
		logger:      logger,
	}
}

func (n *notifier) send(ctx context.Context, businessID uuid.UUID, phone, content string, cost int, kind string) error {
	if cost <= 0 {
		cost = n.defaultCost
	}

	if _, err := n.credits.Debit(ctx, businessID, cost); err != nil {
		return err
	}
	metrics.AddCreditsDebited(cost)

	if err := n.gateway.Send(ctx, phone, content); err != nil {
		// Transport failed after the debit: give the credit back. Refunds
		// restore the plan pool, the one debits drain first.
		if _, refundErr := n.credits.Credit(ctx, businessID, cost, credit.PoolPlan); refundErr != nil {
			n.logger.Error("refund after failed send did not apply",
				"business_id", businessID, "cost", cost, "error", refundErr)
		} else {
			metrics.AddCreditsRefunded(cost)
		}
		metrics.IncSMSFailed(kind)
		return err
	}

	metrics.IncSMSSent(kind)
	return nil
}

// trySend is send for fire-and-forget callers: failures are logged, never
// propagated, so a missing notification cannot fail a booking operation.
func (n *notifier) trySend(ctx context.Context, businessID uuid.UUID, phone, content, kind string) {
	if err := n.send(ctx, businessID, phone, content, 0, kind); err != nil {
		n.logger.Warn("booking notification not sent",
			"business_id", businessID, "kind", kind, "error", err)
	}
}
