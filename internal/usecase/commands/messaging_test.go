//go:build unit

package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"nobat/internal/domain/credit"
	"nobat/internal/usecase/commands"
	commandsmock "nobat/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type messagingFixture struct {
	credits *commandsmock.MockCreditRepository
	gateway *commandsmock.MockSMSGateway
	uc      commands.MessagingCommands
}

func newMessagingFixture(t *testing.T) *messagingFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &messagingFixture{
		credits: commandsmock.NewMockCreditRepository(ctrl),
		gateway: commandsmock.NewMockSMSGateway(ctrl),
	}
	f.uc = commands.NewMessagingCommands(f.credits, f.gateway, 1, slog.Default())
	return f
}

func account(t *testing.T, businessID uuid.UUID, plan, purchased int) *credit.Account {
	t.Helper()
	return credit.ReconstructAccount(businessID, plan, purchased, time.Now())
}

func requests(phones ...string) []commands.SendRequest {
	out := make([]commands.SendRequest, len(phones))
	for i, p := range phones {
		out[i] = commands.SendRequest{RecipientPhone: p, Content: "hello"}
	}
	return out
}

func TestMessagingCommands_SendBulk(t *testing.T) {
	businessID := uuid.New()

	t.Run("empty batch is a no-op", func(t *testing.T) {
		f := newMessagingFixture(t)

		results, err := f.uc.SendBulk(context.Background(), businessID, nil)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("unaffordable batch is rejected upfront with no debits", func(t *testing.T) {
		f := newMessagingFixture(t)

		f.credits.EXPECT().Get(gomock.Any(), businessID).
			Return(account(t, businessID, 1, 1), nil)

		_, err := f.uc.SendBulk(context.Background(), businessID,
			requests("0911", "0912", "0913"))
		assert.ErrorIs(t, err, credit.ErrInsufficientCredit)

		var insufficient *credit.InsufficientCreditError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, 3, insufficient.Required)
		assert.Equal(t, 2, insufficient.Available)
		assert.Equal(t, 1, insufficient.Shortfall())
	})

	t.Run("every recipient sent when transport succeeds", func(t *testing.T) {
		f := newMessagingFixture(t)

		f.credits.EXPECT().Get(gomock.Any(), businessID).
			Return(account(t, businessID, 10, 0), nil)
		f.credits.EXPECT().Debit(gomock.Any(), businessID, 1).Return(nil, nil).Times(3)
		f.gateway.EXPECT().Send(gomock.Any(), gomock.Any(), "hello").Return(nil).Times(3)

		results, err := f.uc.SendBulk(context.Background(), businessID,
			requests("0911", "0912", "0913"))
		require.NoError(t, err)
		require.Len(t, results, 3)
		for i, phone := range []string{"0911", "0912", "0913"} {
			assert.Equal(t, phone, results[i].RecipientPhone)
			assert.Equal(t, commands.SendStatusSent, results[i].Status)
			assert.Empty(t, results[i].Reason)
		}
	})

	t.Run("failed send refunds its own credit and leaves the rest alone", func(t *testing.T) {
		f := newMessagingFixture(t)

		debited, refunded := 0, 0
		f.credits.EXPECT().Get(gomock.Any(), businessID).
			Return(account(t, businessID, 10, 0), nil)
		f.credits.EXPECT().Debit(gomock.Any(), businessID, 1).
			DoAndReturn(func(context.Context, uuid.UUID, int) (*credit.Account, error) {
				debited++
				return nil, nil
			}).Times(3)
		f.credits.EXPECT().Credit(gomock.Any(), businessID, 1, credit.PoolPlan).
			DoAndReturn(func(context.Context, uuid.UUID, int, credit.Pool) (*credit.Account, error) {
				refunded++
				return nil, nil
			})

		f.gateway.EXPECT().Send(gomock.Any(), "0911", "hello").Return(nil)
		f.gateway.EXPECT().Send(gomock.Any(), "0912", "hello").Return(errors.New("provider down"))
		f.gateway.EXPECT().Send(gomock.Any(), "0913", "hello").Return(nil)

		results, err := f.uc.SendBulk(context.Background(), businessID,
			requests("0911", "0912", "0913"))
		require.NoError(t, err)
		require.Len(t, results, 3)

		assert.Equal(t, commands.SendStatusSent, results[0].Status)
		assert.Equal(t, commands.SendStatusFailed, results[1].Status)
		assert.NotEmpty(t, results[1].Reason)
		assert.Equal(t, commands.SendStatusSent, results[2].Status)

		// Net spend equals cost of delivered messages only.
		assert.Equal(t, 3, debited)
		assert.Equal(t, 1, refunded)
	})

	t.Run("failed debit mid-batch fails that recipient only", func(t *testing.T) {
		f := newMessagingFixture(t)

		f.credits.EXPECT().Get(gomock.Any(), businessID).
			Return(account(t, businessID, 2, 0), nil)

		gomock.InOrder(
			f.credits.EXPECT().Debit(gomock.Any(), businessID, 1).Return(nil, nil),
			f.credits.EXPECT().Debit(gomock.Any(), businessID, 1).
				Return(nil, &credit.InsufficientCreditError{Required: 1, Available: 0}),
		)
		f.gateway.EXPECT().Send(gomock.Any(), "0911", "hello").Return(nil)

		results, err := f.uc.SendBulk(context.Background(), businessID,
			requests("0911", "0912"))
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, commands.SendStatusSent, results[0].Status)
		assert.Equal(t, commands.SendStatusFailed, results[1].Status)
	})

	t.Run("per-request cost overrides the default in the gate", func(t *testing.T) {
		f := newMessagingFixture(t)

		f.credits.EXPECT().Get(gomock.Any(), businessID).
			Return(account(t, businessID, 3, 0), nil)

		reqs := []commands.SendRequest{
			{RecipientPhone: "0911", Content: "hello", Cost: 2},
			{RecipientPhone: "0912", Content: "hello", Cost: 2},
		}
		_, err := f.uc.SendBulk(context.Background(), businessID, reqs)
		assert.ErrorIs(t, err, credit.ErrInsufficientCredit)
	})

	t.Run("cancelled context stops undispatched recipients", func(t *testing.T) {
		f := newMessagingFixture(t)

		ctx, cancel := context.WithCancel(context.Background())

		f.credits.EXPECT().Get(gomock.Any(), businessID).
			Return(account(t, businessID, 10, 0), nil)
		f.credits.EXPECT().Debit(gomock.Any(), businessID, 1).Return(nil, nil)
		f.gateway.EXPECT().Send(gomock.Any(), "0911", "hello").
			DoAndReturn(func(context.Context, string, string) error {
				cancel()
				return nil
			})

		results, err := f.uc.SendBulk(ctx, businessID, requests("0911", "0912", "0913"))
		assert.ErrorIs(t, err, context.Canceled)
		assert.Len(t, results, 1)
	})
}
