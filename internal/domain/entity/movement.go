package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind clasificación uniforme de las líneas de documentos bloqueados.
type MovementKind string

// Tipos de movimiento del libro de stock.
const (
	MovementKindReceipt MovementKind = "receipt" // recepción (permanente o consignación)
	MovementKindIssue   MovementKind = "issue"   // salida (permanente, consumo o consignación)
	MovementKindSurplus MovementKind = "surplus" // sobrante de toma física
	MovementKindDeficit MovementKind = "deficit" // faltante de toma física
)

// AllMovementKinds orden fijo usado por las consultas.
var AllMovementKinds = []MovementKind{
	MovementKindReceipt, MovementKindIssue, MovementKindSurplus, MovementKindDeficit,
}

// SnapshotKinds tipos que anclan una línea base (ajustes de toma física).
var SnapshotKinds = []MovementKind{MovementKindSurplus, MovementKindDeficit}

// Direction sentido del movimiento.
type Direction string

const (
	DirectionIN  Direction = "IN"
	DirectionOUT Direction = "OUT"
)

// MovementSource tabla de documento de la que proviene la línea.
type MovementSource string

const (
	SourceReceiptPermanent   MovementSource = "receipt_permanent"
	SourceReceiptConsignment MovementSource = "receipt_consignment"
	SourceIssuePermanent     MovementSource = "issue_permanent"
	SourceIssueConsumption   MovementSource = "issue_consumption"
	SourceIssueConsignment   MovementSource = "issue_consignment"
	SourceStocktakingSurplus MovementSource = "stocktaking_surplus"
	SourceStocktakingDeficit MovementSource = "stocktaking_deficit"
)

// StockKey identifica el par (ítem, bodega) dentro de una empresa.
type StockKey struct {
	CompanyID   string
	WarehouseID string
	ItemID      string
}

// Movement hecho inmutable derivado de una línea de documento bloqueado.
// Quantity siempre está en la unidad canónica del ítem y es positiva; Direction define el signo.
type Movement struct {
	StockKey
	Seq          int64 // orden de inserción, desempate estable dentro de la misma fecha
	Date         time.Time
	Kind         MovementKind
	Source       MovementSource
	Direction    Direction
	Quantity     decimal.Decimal
	Locked       bool
	DocumentID   string
	DocumentCode string
	EnteredUnit  string
	EnteredQty   decimal.Decimal
	CreatedBy    string
}

// IsSnapshot indica si el movimiento es un ajuste de toma física.
func (m Movement) IsSnapshot() bool {
	return m.Kind == MovementKindSurplus || m.Kind == MovementKindDeficit
}
