package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemFailure ítem cuyo saldo no se pudo calcular dentro de un reporte.
type ItemFailure struct {
	ItemID   string
	ItemCode string
	Error    string
}

// WarehouseReport saldos de todos los ítems de una bodega a una fecha.
type WarehouseReport struct {
	CompanyID     string
	WarehouseID   string
	WarehouseCode string
	WarehouseName string
	AsOfDate      time.Time
	Rows          []Balance
	Failures      []ItemFailure
	TotalBalance  decimal.Decimal
	GeneratedAt   time.Time
}

// LowStockRow saldo por debajo del umbral efectivo (máximo entre el mínimo del ítem y el umbral pedido).
type LowStockRow struct {
	Balance
	Threshold decimal.Decimal
	Shortfall decimal.Decimal
}
