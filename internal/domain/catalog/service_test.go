//go:build unit

package catalog_test

import (
	"testing"

	"nobat/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService(t *testing.T) {
	_, err := catalog.NewService(uuid.New(), uuid.New(), "haircut", 0, true)
	require.ErrorIs(t, err, catalog.ErrInvalidDuration)

	s, err := catalog.NewService(uuid.New(), uuid.New(), "haircut", 45, true)
	require.NoError(t, err)
	assert.Equal(t, 45, s.DurationMin())
}

func TestTotalDuration(t *testing.T) {
	mk := func(d int) *catalog.Service {
		s, err := catalog.NewService(uuid.New(), uuid.New(), "svc", d, true)
		require.NoError(t, err)
		return s
	}

	assert.Equal(t, catalog.DefaultDurationMin, catalog.TotalDuration(nil))
	assert.Equal(t, 45, catalog.TotalDuration([]*catalog.Service{mk(45)}))
	assert.Equal(t, 105, catalog.TotalDuration([]*catalog.Service{mk(45), mk(60)}))
}
