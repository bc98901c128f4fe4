package entity

import "time"

// LocationType clasifica el lugar que custodia stock.
type LocationType string

const (
	LocationTypeWarehouse LocationType = "warehouse"
	LocationTypeStore     LocationType = "store"
)

// Location representa una bodega o tienda de una organización donde se guarda inventario (multi-ubicación).
type Location struct {
	ID             int64
	OrganizationID int64
	Name           string
	Type           LocationType
	Address        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
