package dto

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/stock-allocation-api/internal/domain/stock"
)

// ConsolidatedStockQuery query params de GET /api/stock/consolidated.
// Quantity llega como texto para aceptar decimales sin pérdida.
type ConsolidatedStockQuery struct {
	ProductID      int64  `query:"product_id"`
	Quantity       string `query:"quantity"`
	OrganizationID int64  `query:"organization_id"`
}

// ValidateOrderRequest body para POST /api/stock/validate-order.
type ValidateOrderRequest struct {
	OrganizationID *int64             `json:"organizationId,omitempty"`
	Items          []OrderItemRequest `json:"items"`
}

// OrderItemRequest línea del pedido a validar.
type OrderItemRequest struct {
	ProductID int64           `json:"productId"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// LocationStockDTO desglose de stock por ubicación.
type LocationStockDTO struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Available decimal.Decimal `json:"available"`
	Reserved  decimal.Decimal `json:"reserved"`
	OnHand    decimal.Decimal `json:"onHand"`
}

// AllocationDTO cantidad sugerida a tomar de una ubicación.
type AllocationDTO struct {
	LocationID int64           `json:"locationId"`
	Quantity   decimal.Decimal `json:"quantity"`
}

// ConsolidatedStockResponse stock consolidado de un producto.
// SuggestedAllocation se serializa como null cuando no hay ubicaciones con stock positivo.
type ConsolidatedStockResponse struct {
	ProductID           int64              `json:"productId"`
	TotalAvailable      decimal.Decimal    `json:"totalAvailable"`
	TotalReserved       decimal.Decimal    `json:"totalReserved"`
	TotalOnHand         decimal.Decimal    `json:"totalOnHand"`
	Requested           decimal.Decimal    `json:"requested"`
	IsAvailable         bool               `json:"isAvailable"`
	Locations           []LocationStockDTO `json:"locations"`
	SuggestedAllocation []AllocationDTO    `json:"suggestedAllocation"`
}

// OrderSummaryDTO totales del pedido. totalQuantityAvailable es informativo (suma productos distintos).
type OrderSummaryDTO struct {
	TotalProductsRequested int             `json:"totalProductsRequested"`
	TotalProductsAvailable int             `json:"totalProductsAvailable"`
	TotalQuantityRequested decimal.Decimal `json:"totalQuantityRequested"`
	TotalQuantityAvailable decimal.Decimal `json:"totalQuantityAvailable"`
}

// OrderFeasibilityResponse resultado de POST /api/stock/validate-order.
type OrderFeasibilityResponse struct {
	Products      []ConsolidatedStockResponse `json:"products"`
	OrderFeasible bool                        `json:"orderFeasible"`
	Summary       OrderSummaryDTO             `json:"summary"`
}

// ToConsolidatedStockResponse mapea el resultado de dominio al contrato HTTP.
func ToConsolidatedStockResponse(c stock.Consolidation) ConsolidatedStockResponse {
	locations := make([]LocationStockDTO, 0, len(c.Locations))
	for _, l := range c.Locations {
		locations = append(locations, LocationStockDTO{
			ID:        l.LocationID,
			Name:      l.Name,
			Type:      string(l.Type),
			Available: l.Available,
			Reserved:  l.Reserved,
			OnHand:    l.OnHand,
		})
	}

	var allocation []AllocationDTO
	if c.SuggestedAllocation != nil {
		allocation = make([]AllocationDTO, 0, len(c.SuggestedAllocation))
		for _, a := range c.SuggestedAllocation {
			allocation = append(allocation, AllocationDTO{LocationID: a.LocationID, Quantity: a.Quantity})
		}
	}

	return ConsolidatedStockResponse{
		ProductID:           c.ProductID,
		TotalAvailable:      c.TotalAvailable,
		TotalReserved:       c.TotalReserved,
		TotalOnHand:         c.TotalOnHand,
		Requested:           c.Requested,
		IsAvailable:         c.IsAvailable,
		Locations:           locations,
		SuggestedAllocation: allocation,
	}
}

// ToOrderFeasibilityResponse mapea la factibilidad del pedido conservando el orden de productos.
func ToOrderFeasibilityResponse(f stock.OrderFeasibility) OrderFeasibilityResponse {
	products := make([]ConsolidatedStockResponse, 0, len(f.Products))
	for _, p := range f.Products {
		products = append(products, ToConsolidatedStockResponse(p))
	}
	return OrderFeasibilityResponse{
		Products:      products,
		OrderFeasible: f.OrderFeasible,
		Summary: OrderSummaryDTO{
			TotalProductsRequested: f.Summary.TotalProductsRequested,
			TotalProductsAvailable: f.Summary.TotalProductsAvailable,
			TotalQuantityRequested: f.Summary.TotalQuantityRequested,
			TotalQuantityAvailable: f.Summary.TotalQuantityAvailable,
		},
	}
}
