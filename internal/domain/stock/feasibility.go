package stock

import "github.com/shopspring/decimal"

// OrderLine línea de pedido a validar.
type OrderLine struct {
	ProductID int64
	Quantity  decimal.Decimal
}

// OrderSummary totales informativos del pedido.
// TotalQuantityAvailable suma productos distintos: no sirve como señal de factibilidad.
type OrderSummary struct {
	TotalProductsRequested int
	TotalProductsAvailable int
	TotalQuantityRequested decimal.Decimal
	TotalQuantityAvailable decimal.Decimal
}

// OrderFeasibility resultado de validar un pedido completo.
type OrderFeasibility struct {
	Products      []Consolidation
	OrderFeasible bool
	Summary       OrderSummary
}

// EvaluateOrder pliega los resultados por producto (en el orden recibido) en el veredicto del pedido.
func EvaluateOrder(results []Consolidation) OrderFeasibility {
	summary := OrderSummary{
		TotalProductsRequested: len(results),
		TotalQuantityRequested: decimal.Zero,
		TotalQuantityAvailable: decimal.Zero,
	}
	feasible := true
	for _, r := range results {
		if r.IsAvailable {
			summary.TotalProductsAvailable++
		} else {
			feasible = false
		}
		summary.TotalQuantityRequested = summary.TotalQuantityRequested.Add(r.Requested)
		summary.TotalQuantityAvailable = summary.TotalQuantityAvailable.Add(r.TotalAvailable)
	}
	return OrderFeasibility{
		Products:      results,
		OrderFeasible: feasible,
		Summary:       summary,
	}
}
