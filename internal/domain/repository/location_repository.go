package repository

import (
	"context"

	"github.com/jhoicas/stock-allocation-api/internal/domain/entity"
)

// LocationRepository define el puerto de consulta de ubicaciones (bodegas/tiendas).
type LocationRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Location, error)
	ListByOrganization(ctx context.Context, organizationID int64, limit, offset int) ([]*entity.Location, error)
}
