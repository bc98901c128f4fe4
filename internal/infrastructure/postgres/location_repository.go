package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stock-allocation-api/internal/domain/entity"
	"github.com/jhoicas/stock-allocation-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador de ubicaciones.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// GetByID obtiene una ubicación por ID. Devuelve (nil, nil) si no existe.
func (r *LocationRepo) GetByID(ctx context.Context, id int64) (*entity.Location, error) {
	query := `
		SELECT id, organization_id, name, type, address, created_at, updated_at
		FROM locations WHERE id = $1`
	l, err := scanLocation(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return l, nil
}

// ListByOrganization lista ubicaciones de una organización con paginación.
func (r *LocationRepo) ListByOrganization(ctx context.Context, organizationID int64, limit, offset int) ([]*entity.Location, error) {
	query := `
		SELECT id, organization_id, name, type, address, created_at, updated_at
		FROM locations WHERE organization_id = $1 ORDER BY name, id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

func scanLocation(row pgx.Row) (*entity.Location, error) {
	var (
		l       entity.Location
		locType string
		address *string
	)
	if err := row.Scan(&l.ID, &l.OrganizationID, &l.Name, &locType, &address, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	l.Type = entity.LocationType(locType)
	if address != nil {
		l.Address = *address
	}
	return &l, nil
}
