package usecase

import (
	"context"

	"github.com/jhoicas/stock-allocation-api/internal/application/dto"
	"github.com/jhoicas/stock-allocation-api/internal/domain"
	"github.com/jhoicas/stock-allocation-api/internal/domain/entity"
	"github.com/jhoicas/stock-allocation-api/internal/domain/repository"
)

// LocationUseCase consultas de ubicaciones (bodegas/tiendas) de una organización.
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// GetByID obtiene una ubicación de la organización. Una ubicación de otra organización
// se reporta como inexistente (domain.ErrNotFound) para no filtrar IDs ajenos.
func (uc *LocationUseCase) GetByID(ctx context.Context, organizationID, id int64) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if location == nil || location.OrganizationID != organizationID {
		return nil, domain.ErrNotFound
	}
	return toLocationResponse(location), nil
}

// List lista ubicaciones por organización con paginación.
func (uc *LocationUseCase) List(ctx context.Context, organizationID int64, limit, offset int) (*dto.LocationListResponse, error) {
	list, err := uc.repo.ListByOrganization(ctx, organizationID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLocationResponse(l))
	}
	return &dto.LocationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	return &dto.LocationResponse{
		ID:             l.ID,
		OrganizationID: l.OrganizationID,
		Name:           l.Name,
		Type:           string(l.Type),
		Address:        l.Address,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}
