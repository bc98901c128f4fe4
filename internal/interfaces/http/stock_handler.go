package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/stock-allocation-api/internal/application/dto"
	"github.com/jhoicas/stock-allocation-api/internal/application/inventory"
	"github.com/jhoicas/stock-allocation-api/internal/domain"
	"github.com/jhoicas/stock-allocation-api/internal/domain/stock"
	"github.com/jhoicas/stock-allocation-api/pkg/jwt"
)

// StockHandler expone la consolidación de stock y la validación de pedidos (protegido).
// Aquí vive la validación de forma de la petición; el motor no rechaza cantidades por sí mismo.
type StockHandler struct {
	uc            *inventory.ConsolidationUseCase
	maxOrderLines int
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.ConsolidationUseCase, maxOrderLines int) *StockHandler {
	return &StockHandler{uc: uc, maxOrderLines: maxOrderLines}
}

// GetConsolidated godoc
// @Summary      Stock consolidado de un producto
// @Description  Suma el stock del producto en todas sus ubicaciones y sugiere de dónde tomar la cantidad pedida.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_id       query  int     true   "ID del producto"
// @Param        quantity         query  string  true   "Cantidad pedida (> 0, admite decimales)"
// @Param        organization_id  query  int     false  "Organización. Por defecto la del token."
// @Success      200  {object}  dto.ConsolidatedStockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock/consolidated [get]
func (h *StockHandler) GetConsolidated(c *fiber.Ctx) error {
	var q dto.ConsolidatedStockQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	if q.ProductID <= 0 {
		return writeError(c, fmt.Errorf("%w: product_id debe ser un entero positivo", domain.ErrInvalidInput))
	}
	quantity, err := parsePositiveQuantity(q.Quantity)
	if err != nil {
		return writeError(c, err)
	}

	var requestedOrg *int64
	if c.Query("organization_id") != "" {
		if q.OrganizationID <= 0 {
			return writeError(c, fmt.Errorf("%w: organization_id debe ser un entero positivo", domain.ErrInvalidInput))
		}
		requestedOrg = &q.OrganizationID
	}
	orgID, err := resolveOrganization(c, requestedOrg)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.ConsolidatedStock(c.UserContext(), q.ProductID, quantity, orgID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ValidateOrder godoc
// @Summary      Validar factibilidad de un pedido
// @Description  Consolida el stock de cada línea en paralelo. orderFeasible es true solo si todas las líneas están disponibles.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValidateOrderRequest  true  "items: [{productId, quantity}], organizationId opcional"
// @Success      200   {object}  dto.OrderFeasibilityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/stock/validate-order [post]
func (h *StockHandler) ValidateOrder(c *fiber.Ctx) error {
	var in dto.ValidateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	lines, err := h.orderLines(in)
	if err != nil {
		return writeError(c, err)
	}
	orgID, err := resolveOrganization(c, in.OrganizationID)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.ValidateOrder(c.UserContext(), lines, orgID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *StockHandler) orderLines(in dto.ValidateOrderRequest) ([]stock.OrderLine, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: items es requerido", domain.ErrInvalidInput)
	}
	if len(in.Items) > h.maxOrderLines {
		return nil, fmt.Errorf("%w: máximo %d líneas por pedido", domain.ErrInvalidInput, h.maxOrderLines)
	}
	if in.OrganizationID != nil && *in.OrganizationID <= 0 {
		return nil, fmt.Errorf("%w: organizationId debe ser un entero positivo", domain.ErrInvalidInput)
	}
	lines := make([]stock.OrderLine, 0, len(in.Items))
	for i, item := range in.Items {
		if item.ProductID <= 0 {
			return nil, fmt.Errorf("%w: items[%d].productId debe ser un entero positivo", domain.ErrInvalidInput, i)
		}
		if !item.Quantity.GreaterThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: items[%d].quantity debe ser mayor que cero", domain.ErrInvalidInput, i)
		}
		lines = append(lines, stock.OrderLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return lines, nil
}

func parsePositiveQuantity(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: quantity es requerido", domain.ErrInvalidInput)
	}
	q, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: quantity no es un número", domain.ErrInvalidInput)
	}
	if !q.GreaterThan(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: quantity debe ser mayor que cero", domain.ErrInvalidInput)
	}
	return q, nil
}

// resolveOrganization decide el filtro de organización de la consulta.
// Un superadmin puede consultar cualquier organización o todas (nil); el resto queda
// limitado a la organización de su token.
func resolveOrganization(c *fiber.Ctx, requested *int64) (*int64, error) {
	if GetRole(c) == jwt.RoleSuperAdmin {
		return requested, nil
	}
	own := GetOrganizationID(c)
	if own <= 0 {
		return nil, domain.ErrForbidden
	}
	if requested != nil && *requested != own {
		return nil, domain.ErrForbidden
	}
	return &own, nil
}
