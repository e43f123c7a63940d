package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// DateLayout formato de fechas de documento en la API.
const DateLayout = "2006-01-02"

// NormalizeLineRequest body para POST /api/ledger/normalize.
type NormalizeLineRequest struct {
	ItemID    string           `json:"item_id"`
	Unit      string           `json:"unit,omitempty"` // vacío = unidad canónica
	Quantity  decimal.Decimal  `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
	PriceUnit string           `json:"price_unit,omitempty"` // vacío = misma unidad de la cantidad
}

// NormalizedLineResponse línea en unidad canónica; conserva lo digitado.
type NormalizedLineResponse struct {
	ItemID             string           `json:"item_id"`
	CanonicalUnit      string           `json:"canonical_unit"`
	CanonicalQuantity  decimal.Decimal  `json:"canonical_quantity"`
	CanonicalUnitPrice *decimal.Decimal `json:"canonical_unit_price,omitempty"`
	QuantityFactor     decimal.Decimal  `json:"quantity_factor"`
	LineTotal          decimal.Decimal  `json:"line_total"`
	EnteredUnit        string           `json:"entered_unit"`
	EnteredQuantity    decimal.Decimal  `json:"entered_quantity"`
	EnteredPriceUnit   string           `json:"entered_price_unit,omitempty"`
	EnteredUnitPrice   *decimal.Decimal `json:"entered_unit_price,omitempty"`
}

// FactorResponse respuesta de GET /api/ledger/items/:item_id/factor.
type FactorResponse struct {
	Unit          string          `json:"unit"`
	CanonicalUnit string          `json:"canonical_unit"`
	Factor        decimal.Decimal `json:"factor"`
	Fallback      bool            `json:"fallback,omitempty"` // true si se asumió factor 1 (modo permisivo)
}

// BalanceResponse saldo reconstruido de un ítem en una bodega.
type BalanceResponse struct {
	CompanyID             string          `json:"company_id"`
	WarehouseID           string          `json:"warehouse_id"`
	WarehouseCode         string          `json:"warehouse_code"`
	WarehouseName         string          `json:"warehouse_name"`
	ItemID                string          `json:"item_id"`
	ItemCode              string          `json:"item_code"`
	ItemName              string          `json:"item_name"`
	CanonicalUnit         string          `json:"canonical_unit"`
	BaselineDate          string          `json:"baseline_date"`
	HasBaseline           bool            `json:"has_baseline"`
	BaselineQuantity      decimal.Decimal `json:"baseline_quantity"`
	ReceiptsTotal         decimal.Decimal `json:"receipts_total"`
	IssuesTotal           decimal.Decimal `json:"issues_total"`
	SurplusTotal          decimal.Decimal `json:"surplus_total"`
	DeficitTotal          decimal.Decimal `json:"deficit_total"`
	CurrentBalance        decimal.Decimal `json:"current_balance"`
	CurrentBalanceDisplay float64         `json:"current_balance_display"`
	AsOfDate              string          `json:"as_of_date"`
	MovementCount         int             `json:"movement_count"`
}

// LedgerEntryResponse fila del kárdex con saldo acumulado.
type LedgerEntryResponse struct {
	Date           string          `json:"date"`
	Kind           string          `json:"kind"`
	Direction      string          `json:"direction"`
	Source         string          `json:"source,omitempty"`
	DocumentID     string          `json:"document_id,omitempty"`
	DocumentCode   string          `json:"document_code,omitempty"`
	Quantity       decimal.Decimal `json:"quantity"`
	EnteredUnit    string          `json:"entered_unit,omitempty"`
	EnteredQty     decimal.Decimal `json:"entered_quantity"`
	RunningBalance decimal.Decimal `json:"running_balance"`
	CreatedBy      string          `json:"created_by,omitempty"`
}

// BalanceDetailResponse saldo más sus movimientos desde la base.
type BalanceDetailResponse struct {
	BalanceResponse
	Entries []LedgerEntryResponse `json:"entries"`
}

// ItemFailureResponse ítem que no se pudo calcular.
type ItemFailureResponse struct {
	ItemID   string `json:"item_id"`
	ItemCode string `json:"item_code"`
	Error    string `json:"error"`
}

// WarehouseReportResponse reporte de saldos por bodega.
type WarehouseReportResponse struct {
	CompanyID           string                `json:"company_id"`
	WarehouseID         string                `json:"warehouse_id"`
	WarehouseCode       string                `json:"warehouse_code"`
	WarehouseName       string                `json:"warehouse_name"`
	AsOfDate            string                `json:"as_of_date"`
	Rows                []BalanceResponse     `json:"rows"`
	Failures            []ItemFailureResponse `json:"failures"`
	TotalBalance        decimal.Decimal       `json:"total_balance"`
	TotalBalanceDisplay float64               `json:"total_balance_display"`
	GeneratedAt         time.Time             `json:"generated_at"`
}

// LowStockResponse ítem por debajo del umbral.
type LowStockResponse struct {
	BalanceResponse
	Threshold decimal.Decimal `json:"threshold"`
	Shortfall decimal.Decimal `json:"shortfall"`
}

// NewNormalizedLineResponse mapea la línea normalizada.
func NewNormalizedLineResponse(l *entity.NormalizedLine) NormalizedLineResponse {
	return NormalizedLineResponse{
		ItemID:             l.ItemID,
		CanonicalUnit:      l.CanonicalUnit,
		CanonicalQuantity:  l.CanonicalQuantity,
		CanonicalUnitPrice: l.CanonicalUnitPrice,
		QuantityFactor:     l.QuantityFactor,
		LineTotal:          l.LineTotal(),
		EnteredUnit:        l.EnteredUnit,
		EnteredQuantity:    l.EnteredQuantity,
		EnteredPriceUnit:   l.EnteredPriceUnit,
		EnteredUnitPrice:   l.EnteredUnitPrice,
	}
}

// NewBalanceResponse mapea un saldo. Las fechas salen como YYYY-MM-DD.
func NewBalanceResponse(b *entity.Balance) BalanceResponse {
	return BalanceResponse{
		CompanyID:             b.CompanyID,
		WarehouseID:           b.WarehouseID,
		WarehouseCode:         b.WarehouseCode,
		WarehouseName:         b.WarehouseName,
		ItemID:                b.ItemID,
		ItemCode:              b.ItemCode,
		ItemName:              b.ItemName,
		CanonicalUnit:         b.CanonicalUnit,
		BaselineDate:          b.BaselineDate.Format(DateLayout),
		HasBaseline:           b.HasBaseline,
		BaselineQuantity:      b.BaselineQuantity,
		ReceiptsTotal:         b.ReceiptsTotal,
		IssuesTotal:           b.IssuesTotal,
		SurplusTotal:          b.SurplusTotal,
		DeficitTotal:          b.DeficitTotal,
		CurrentBalance:        b.CurrentBalance,
		CurrentBalanceDisplay: b.CurrentBalance.InexactFloat64(),
		AsOfDate:              b.AsOfDate.Format(DateLayout),
		MovementCount:         b.MovementCount,
	}
}

// NewBalanceDetailResponse mapea saldo y kárdex.
func NewBalanceDetailResponse(d *entity.BalanceDetail) BalanceDetailResponse {
	out := BalanceDetailResponse{
		BalanceResponse: NewBalanceResponse(&d.Balance),
		Entries:         make([]LedgerEntryResponse, 0, len(d.Entries)),
	}
	for _, e := range d.Entries {
		out.Entries = append(out.Entries, LedgerEntryResponse{
			Date:           e.Date.Format(DateLayout),
			Kind:           string(e.Kind),
			Direction:      string(e.Direction),
			Source:         string(e.Source),
			DocumentID:     e.DocumentID,
			DocumentCode:   e.DocumentCode,
			Quantity:       e.Quantity,
			EnteredUnit:    e.EnteredUnit,
			EnteredQty:     e.EnteredQty,
			RunningBalance: e.RunningBalance,
			CreatedBy:      e.CreatedBy,
		})
	}
	return out
}

// NewWarehouseReportResponse mapea el reporte completo.
func NewWarehouseReportResponse(r *entity.WarehouseReport) WarehouseReportResponse {
	out := WarehouseReportResponse{
		CompanyID:           r.CompanyID,
		WarehouseID:         r.WarehouseID,
		WarehouseCode:       r.WarehouseCode,
		WarehouseName:       r.WarehouseName,
		AsOfDate:            r.AsOfDate.Format(DateLayout),
		Rows:                make([]BalanceResponse, 0, len(r.Rows)),
		Failures:            make([]ItemFailureResponse, 0, len(r.Failures)),
		TotalBalance:        r.TotalBalance,
		TotalBalanceDisplay: r.TotalBalance.InexactFloat64(),
		GeneratedAt:         r.GeneratedAt,
	}
	for i := range r.Rows {
		out.Rows = append(out.Rows, NewBalanceResponse(&r.Rows[i]))
	}
	for _, f := range r.Failures {
		out.Failures = append(out.Failures, ItemFailureResponse{ItemID: f.ItemID, ItemCode: f.ItemCode, Error: f.Error})
	}
	return out
}

// NewLowStockResponse mapea las filas de stock bajo.
func NewLowStockResponse(rows []entity.LowStockRow) []LowStockResponse {
	out := make([]LowStockResponse, 0, len(rows))
	for i := range rows {
		out = append(out, LowStockResponse{
			BalanceResponse: NewBalanceResponse(&rows[i].Balance),
			Threshold:       rows[i].Threshold,
			Shortfall:       rows[i].Shortfall,
		})
	}
	return out
}
