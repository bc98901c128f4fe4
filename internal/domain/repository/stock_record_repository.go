package repository

import (
	"context"

	"github.com/jhoicas/stock-allocation-api/internal/domain/entity"
)

// StockRecordRepository define el puerto de lectura de stock por ubicación.
// Solo lectura: el motor de consolidación nunca escribe.
type StockRecordRepository interface {
	// FetchStockRecords devuelve todas las filas de stock del producto, una por ubicación.
	// Si organizationID no es nil, filtra por la organización dueña de la ubicación.
	// Un producto sin filas devuelve una lista vacía y error nil.
	FetchStockRecords(ctx context.Context, productID int64, organizationID *int64) ([]*entity.StockRecord, error)
}
