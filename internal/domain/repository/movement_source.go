package repository

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// MovementQuery rango (After, Through] de movimientos bloqueados de un par ítem-bodega.
// After nil significa desde el inicio; Kinds vacío significa todos los tipos.
type MovementQuery struct {
	Key     entity.StockKey
	After   *time.Time
	Through time.Time
	Kinds   []entity.MovementKind
}

// MovementSource única abstracción sobre las tablas de documentos (recepciones, salidas, tomas físicas).
// Solo devuelve líneas de documentos bloqueados, en cantidades canónicas, ordenadas por (fecha, secuencia).
// Es de solo lectura: este subsistema nunca modifica el libro.
type MovementSource interface {
	// LatestSnapshotDate fecha del último sobrante o faltante bloqueado con fecha ≤ asOf; nil si no hay.
	LatestSnapshotDate(ctx context.Context, key entity.StockKey, asOf time.Time) (*time.Time, error)
	Locked(ctx context.Context, q MovementQuery) ([]entity.Movement, error)
}
