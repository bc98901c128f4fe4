package inventory

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/stock-allocation-api/internal/application/dto"
	"github.com/jhoicas/stock-allocation-api/internal/domain/repository"
	"github.com/jhoicas/stock-allocation-api/internal/domain/stock"
	"github.com/jhoicas/stock-allocation-api/pkg/logger"
)

// ConsolidationUseCase consolida stock multi-ubicación y valida la factibilidad de pedidos.
//
// Fuente de datos: StockRecordRepository (solo lectura). Cada llamada lee la foto actual
// del stock; no hay caché ni reintentos y los errores del repositorio se devuelven tal cual.
type ConsolidationUseCase struct {
	stockRepo repository.StockRecordRepository
	log       *logger.Logger
}

// NewConsolidationUseCase construye el caso de uso.
func NewConsolidationUseCase(stockRepo repository.StockRecordRepository, log *logger.Logger) *ConsolidationUseCase {
	return &ConsolidationUseCase{
		stockRepo: stockRepo,
		log:       log.Named("stock_consolidation"),
	}
}

// ConsolidatedStock devuelve totales, desglose por ubicación y asignación sugerida para un producto.
// organizationID nil consulta todas las organizaciones.
func (uc *ConsolidationUseCase) ConsolidatedStock(
	ctx context.Context,
	productID int64,
	requested decimal.Decimal,
	organizationID *int64,
) (*dto.ConsolidatedStockResponse, error) {
	c, err := uc.consolidate(ctx, productID, requested, organizationID)
	if err != nil {
		return nil, err
	}
	out := dto.ToConsolidatedStockResponse(c)
	return &out, nil
}

// ValidateOrder consolida cada línea del pedido en paralelo y arma el veredicto global.
//
// Todas las consultas se lanzan a la vez; cada goroutine escribe en el índice de su línea,
// así el resultado respeta el orden de entrada. El primer error cancela el resto y
// aborta el pedido completo (sin resultados parciales).
func (uc *ConsolidationUseCase) ValidateOrder(
	ctx context.Context,
	lines []stock.OrderLine,
	organizationID *int64,
) (*dto.OrderFeasibilityResponse, error) {
	results := make([]stock.Consolidation, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			c, err := uc.consolidate(gctx, line.ProductID, line.Quantity, organizationID)
			if err != nil {
				return err
			}
			results[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		uc.log.Warn().Err(err).Int("lines", len(lines)).Msg("validación de pedido abortada")
		return nil, err
	}

	feasibility := stock.EvaluateOrder(results)
	uc.log.Debug().
		Int("lines", len(lines)).
		Int("available", feasibility.Summary.TotalProductsAvailable).
		Bool("feasible", feasibility.OrderFeasible).
		Msg("pedido validado")

	out := dto.ToOrderFeasibilityResponse(feasibility)
	return &out, nil
}

func (uc *ConsolidationUseCase) consolidate(
	ctx context.Context,
	productID int64,
	requested decimal.Decimal,
	organizationID *int64,
) (stock.Consolidation, error) {
	records, err := uc.stockRepo.FetchStockRecords(ctx, productID, organizationID)
	if err != nil {
		return stock.Consolidation{}, err
	}
	c := stock.Consolidate(productID, records, requested)

	ev := uc.log.Debug().
		Int64("product_id", productID).
		Int("locations", len(c.Locations)).
		Str("requested", requested.String()).
		Str("total_available", c.TotalAvailable.String()).
		Bool("is_available", c.IsAvailable)
	if organizationID != nil {
		ev = ev.Int64("organization_id", *organizationID)
	}
	ev.Msg("stock consolidado")
	return c, nil
}
