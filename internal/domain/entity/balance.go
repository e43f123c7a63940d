package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BeginningOfTime centinela de fecha base cuando no existe toma física previa.
var BeginningOfTime = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// Balance saldo reconstruido (no persistido) de un ítem en una bodega a una fecha.
// ReceiptsTotal incluye todas las entradas posteriores a la base (recepciones y sobrantes);
// IssuesTotal todas las salidas (despachos y faltantes).
type Balance struct {
	StockKey
	ItemCode         string
	ItemName         string
	CanonicalUnit    string
	WarehouseCode    string
	WarehouseName    string
	BaselineDate     time.Time
	HasBaseline      bool
	BaselineQuantity decimal.Decimal
	ReceiptsTotal    decimal.Decimal
	IssuesTotal      decimal.Decimal
	SurplusTotal     decimal.Decimal
	DeficitTotal     decimal.Decimal
	CurrentBalance   decimal.Decimal
	AsOfDate         time.Time
	MovementCount    int
}

// HasActivity indica si el saldo es distinto de cero o hubo movimientos desde la base.
func (b *Balance) HasActivity() bool {
	return !b.CurrentBalance.IsZero() || b.ReceiptsTotal.IsPositive() || b.IssuesTotal.IsPositive()
}

// LedgerEntry movimiento con el saldo acumulado tras aplicarlo.
type LedgerEntry struct {
	Movement
	RunningBalance decimal.Decimal
}

// BalanceDetail variante de detalle: saldo más el kárdex de movimientos posteriores a la base.
type BalanceDetail struct {
	Balance
	Entries []LedgerEntry
}
