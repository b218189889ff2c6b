package repository

import (
	"context"
	"log/slog"

	"nobat/internal/domain/catalog"
	"nobat/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewServiceRepository(pool *pgxpool.Pool, logger *slog.Logger) *ServiceRepository {
	return &ServiceRepository{pool: pool, logger: logger}
}

// FindActiveByIDs resolves service ids for one business. Any id that is
// missing, inactive or owned by another business fails the whole lookup; a
// booking must never silently drop part of its selection.
func (r *ServiceRepository) FindActiveByIDs(ctx context.Context, businessID uuid.UUID, ids []uuid.UUID) ([]*catalog.Service, error) {
	if len(ids) == 0 {
		return []*catalog.Service{}, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, business_id, name, duration_min, is_active
		FROM services
		WHERE business_id = $1 AND id = ANY($2::uuid[]) AND is_active`,
		businessID, idsArg(ids),
	)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "find services by ids", err)
	}
	defer rows.Close()

	found := make(map[uuid.UUID]*catalog.Service, len(ids))
	for rows.Next() {
		var (
			id, bizID   uuid.UUID
			name        string
			durationMin int
			isActive    bool
		)
		if err := rows.Scan(&id, &bizID, &name, &durationMin, &isActive); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "scan service", err)
		}
		svc, err := catalog.NewService(id, bizID, name, durationMin, isActive)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "stored service invalid", err)
		}
		found[id] = svc
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "iterate services", err)
	}

	services := make([]*catalog.Service, 0, len(ids))
	for _, id := range ids {
		svc, ok := found[id]
		if !ok {
			return nil, catalog.ErrServiceNotFound
		}
		services = append(services, svc)
	}
	return services, nil
}
