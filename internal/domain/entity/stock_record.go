package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockRecord es la foto de stock de un producto en una ubicación (una fila por par producto+ubicación).
// Las cantidades pueden venir nulas desde la fuente; se conservan tal cual (incluidos negativos).
type StockRecord struct {
	ID                int64
	ProductID         int64
	Location          Location
	QuantityAvailable decimal.NullDecimal
	QuantityReserved  decimal.NullDecimal
	QuantityOnHand    decimal.NullDecimal
	UpdatedAt         time.Time
}

// StockQuantities cantidades ya normalizadas de un StockRecord (nulo -> 0, negativos intactos).
type StockQuantities struct {
	Available decimal.Decimal
	Reserved  decimal.Decimal
	OnHand    decimal.Decimal
}

// QuantityOrZero convierte una cantidad nula en cero. No recorta valores negativos.
func QuantityOrZero(q decimal.NullDecimal) decimal.Decimal {
	if !q.Valid {
		return decimal.Zero
	}
	return q.Decimal
}

// Quantities aplica QuantityOrZero a las tres cantidades del registro.
// Es el único punto donde se resuelven los nulos; la aritmética posterior trabaja con valores definidos.
func (r *StockRecord) Quantities() StockQuantities {
	return StockQuantities{
		Available: QuantityOrZero(r.QuantityAvailable),
		Reserved:  QuantityOrZero(r.QuantityReserved),
		OnHand:    QuantityOrZero(r.QuantityOnHand),
	}
}
