// Package stock contiene el motor de consolidación de stock multi-ubicación:
// agregación de existencias, plan de asignación greedy y factibilidad de pedidos.
// Todo es puro y de solo lectura; los datos llegan ya leídos desde el repositorio.
package stock

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/stock-allocation-api/internal/domain/entity"
)

// LocationStock desglose de stock de un producto en una ubicación.
type LocationStock struct {
	LocationID int64
	Name       string
	Type       entity.LocationType
	Available  decimal.Decimal
	Reserved   decimal.Decimal
	OnHand     decimal.Decimal
}

// Consolidation resultado consolidado de un producto sobre todas sus ubicaciones.
// SuggestedAllocation es nil cuando no existe ninguna ubicación con disponible > 0.
type Consolidation struct {
	ProductID           int64
	TotalAvailable      decimal.Decimal
	TotalReserved       decimal.Decimal
	TotalOnHand         decimal.Decimal
	Requested           decimal.Decimal
	IsAvailable         bool
	Locations           []LocationStock
	SuggestedAllocation []Allocation
}

// Consolidate suma las cantidades de los registros (sin recortar negativos), arma el desglose
// por ubicación en el mismo orden de entrada y calcula la asignación sugerida.
func Consolidate(productID int64, records []*entity.StockRecord, requested decimal.Decimal) Consolidation {
	locations := make([]LocationStock, 0, len(records))
	totalAvailable := decimal.Zero
	totalReserved := decimal.Zero
	totalOnHand := decimal.Zero

	for _, r := range records {
		q := r.Quantities()
		totalAvailable = totalAvailable.Add(q.Available)
		totalReserved = totalReserved.Add(q.Reserved)
		totalOnHand = totalOnHand.Add(q.OnHand)

		locations = append(locations, LocationStock{
			LocationID: r.Location.ID,
			Name:       r.Location.Name,
			Type:       r.Location.Type,
			Available:  q.Available,
			Reserved:   q.Reserved,
			OnHand:     q.OnHand,
		})
	}

	return Consolidation{
		ProductID:           productID,
		TotalAvailable:      totalAvailable,
		TotalReserved:       totalReserved,
		TotalOnHand:         totalOnHand,
		Requested:           requested,
		IsAvailable:         totalAvailable.GreaterThanOrEqual(requested),
		Locations:           locations,
		SuggestedAllocation: PlanAllocation(locations, requested),
	}
}
