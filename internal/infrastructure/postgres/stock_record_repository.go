package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-allocation-api/internal/domain/entity"
	"github.com/jhoicas/stock-allocation-api/internal/domain/repository"
)

var _ repository.StockRecordRepository = (*StockRecordRepo)(nil)

const stockRecordsByProduct = `
	SELECT sr.id, sr.product_id, l.id, l.organization_id, l.name, l.type,
	       sr.quantity_available, sr.quantity_reserved, sr.quantity_on_hand, sr.updated_at
	FROM stock_records sr
	JOIN locations l ON l.id = sr.location_id
	WHERE sr.product_id = $1`

// StockRecordRepo implementación de StockRecordRepository sobre PostgreSQL (pool o tx).
type StockRecordRepo struct {
	q Querier
}

// NewStockRecordRepository construye el adaptador de lectura de stock.
func NewStockRecordRepository(q Querier) *StockRecordRepo {
	return &StockRecordRepo{q: q}
}

// FetchStockRecords lee el stock del producto en todas sus ubicaciones, filtrando por la
// organización de la ubicación cuando organizationID no es nil. Orden estable por id de fila.
// Las cantidades NULL se devuelven como NullDecimal inválido; no se normalizan aquí.
func (r *StockRecordRepo) FetchStockRecords(ctx context.Context, productID int64, organizationID *int64) ([]*entity.StockRecord, error) {
	query := stockRecordsByProduct
	args := []any{productID}
	if organizationID != nil {
		query += ` AND l.organization_id = $2`
		args = append(args, *organizationID)
	}
	query += ` ORDER BY sr.id`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetch stock records: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.StockRecord, 0)
	for rows.Next() {
		var (
			s       entity.StockRecord
			locType string
		)
		if err := rows.Scan(
			&s.ID, &s.ProductID,
			&s.Location.ID, &s.Location.OrganizationID, &s.Location.Name, &locType,
			&s.QuantityAvailable, &s.QuantityReserved, &s.QuantityOnHand, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock record: %w", err)
		}
		s.Location.Type = entity.LocationType(locType)
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stock records: %w", err)
	}
	return list, nil
}
