package stock

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Allocation cantidad a tomar de una ubicación.
type Allocation struct {
	LocationID int64
	Quantity   decimal.Decimal
}

// PlanAllocation reparte requested entre las ubicaciones con disponible > 0, empezando por la de
// mayor disponible (empates: orden de entrada). Siempre propone el mejor llenado parcial posible:
// el total asignado es min(requested, suma de disponibles positivos).
//
// Devuelve nil (no una lista vacía) si no queda nada que asignar.
func PlanAllocation(locations []LocationStock, requested decimal.Decimal) []Allocation {
	candidates := make([]LocationStock, 0, len(locations))
	for _, l := range locations {
		if l.Available.GreaterThan(decimal.Zero) {
			candidates = append(candidates, l)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Available.GreaterThan(candidates[j].Available)
	})

	var allocation []Allocation
	remaining := requested
	for _, l := range candidates {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		take := decimal.Min(l.Available, remaining)
		allocation = append(allocation, Allocation{LocationID: l.LocationID, Quantity: take})
		remaining = remaining.Sub(take)
	}
	return allocation
}
