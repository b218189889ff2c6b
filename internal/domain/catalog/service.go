// Package catalog holds the services a business offers. Bookings reference
// services by ID; filtering is set membership on IDs, never string matching.
package catalog

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrInvalidDuration = errors.New("service duration must be positive")
)

// DefaultDurationMin is the fallback when a booking selects no services.
const DefaultDurationMin = 30

type Service struct {
	id          uuid.UUID
	businessID  uuid.UUID
	name        string
	durationMin int
	isActive    bool
}

func NewService(id, businessID uuid.UUID, name string, durationMin int, isActive bool) (*Service, error) {
	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	return &Service{
		id:          id,
		businessID:  businessID,
		name:        name,
		durationMin: durationMin,
		isActive:    isActive,
	}, nil
}

func (s *Service) ID() uuid.UUID         { return s.id }
func (s *Service) BusinessID() uuid.UUID { return s.businessID }
func (s *Service) Name() string          { return s.name }
func (s *Service) DurationMin() int      { return s.durationMin }
func (s *Service) IsActive() bool        { return s.isActive }

// TotalDuration sums the selected services' durations. No selection falls
// back to DefaultDurationMin; this is the single normalization point for the
// availability engine, which rejects non-positive durations outright.
func TotalDuration(services []*Service) int {
	if len(services) == 0 {
		return DefaultDurationMin
	}
	total := 0
	for _, s := range services {
		total += s.durationMin
	}
	return total
}
