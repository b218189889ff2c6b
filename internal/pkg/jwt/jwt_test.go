//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"nobat/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyRoundTrip(t *testing.T) {
	verifier := jwt.NewVerifier("test-secret")
	businessID := uuid.New()

	token, err := verifier.Sign(businessID, time.Hour)
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, businessID, claims.BusinessID)
}

func TestVerifyRejections(t *testing.T) {
	verifier := jwt.NewVerifier("test-secret")

	t.Run("wrong secret", func(t *testing.T) {
		token, err := jwt.NewVerifier("other-secret").Sign(uuid.New(), time.Hour)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := verifier.Sign(uuid.New(), -time.Minute)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := verifier.Verify("not.a.token")
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("missing business id", func(t *testing.T) {
		token, err := verifier.Sign(uuid.Nil, time.Hour)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
