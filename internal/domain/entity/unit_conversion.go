package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnitConversionEdge equivalencia definida por el usuario para un ítem:
// FromQuantity unidades de FromUnit equivalen a ToQuantity unidades de ToUnit (ej. 1 BOX = 24 EA).
type UnitConversionEdge struct {
	ID           string
	CompanyID    string
	ItemID       string
	FromUnit     string
	ToUnit       string
	FromQuantity decimal.Decimal
	ToQuantity   decimal.Decimal
	CreatedAt    time.Time
}

// Valid indica si ambas cantidades son positivas y las unidades no están vacías.
func (e UnitConversionEdge) Valid() bool {
	return e.FromUnit != "" && e.ToUnit != "" &&
		e.FromQuantity.IsPositive() && e.ToQuantity.IsPositive()
}
