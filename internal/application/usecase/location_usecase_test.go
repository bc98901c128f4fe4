package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-allocation-api/internal/application/usecase"
	"github.com/jhoicas/stock-allocation-api/internal/domain"
	"github.com/jhoicas/stock-allocation-api/internal/domain/entity"
)

type fakeLocationRepo struct {
	byID map[int64]*entity.Location
}

func (f *fakeLocationRepo) GetByID(_ context.Context, id int64) (*entity.Location, error) {
	return f.byID[id], nil
}

func (f *fakeLocationRepo) ListByOrganization(_ context.Context, organizationID int64, limit, offset int) ([]*entity.Location, error) {
	var out []*entity.Location
	for _, l := range f.byID {
		if l.OrganizationID == organizationID {
			out = append(out, l)
		}
	}
	return out, nil
}

func newLocationRepo() *fakeLocationRepo {
	return &fakeLocationRepo{byID: map[int64]*entity.Location{
		1: {ID: 1, OrganizationID: 10, Name: "Central", Type: entity.LocationTypeWarehouse},
		2: {ID: 2, OrganizationID: 20, Name: "Ajena", Type: entity.LocationTypeStore},
	}}
}

func TestLocationUseCase_GetByID(t *testing.T) {
	uc := usecase.NewLocationUseCase(newLocationRepo())

	out, err := uc.GetByID(context.Background(), 10, 1)
	require.NoError(t, err)
	assert.Equal(t, "Central", out.Name)
	assert.Equal(t, "warehouse", out.Type)
}

func TestLocationUseCase_GetByID_OtraOrganizacion(t *testing.T) {
	uc := usecase.NewLocationUseCase(newLocationRepo())

	_, err := uc.GetByID(context.Background(), 10, 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.GetByID(context.Background(), 10, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLocationUseCase_List(t *testing.T) {
	uc := usecase.NewLocationUseCase(newLocationRepo())

	out, err := uc.List(context.Background(), 20, 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(2), out.Items[0].ID)
	assert.Equal(t, 20, out.Page.Limit)
}
