package postgres

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

var _ repository.MovementSource = (*MovementSourceRepo)(nil)

// MovementSourceRepo lee las líneas de documentos bloqueados de todas las tablas de origen
// como un único flujo de movimientos (UNION ALL). Solo lectura.
type MovementSourceRepo struct {
	q Querier
}

// NewMovementSource construye el adaptador. Pasar pool o tx (Querier).
func NewMovementSource(q Querier) *MovementSourceRepo {
	return &MovementSourceRepo{q: q}
}

// LatestSnapshotDate fecha del último sobrante o faltante bloqueado con fecha ≤ asOf.
func (r *MovementSourceRepo) LatestSnapshotDate(ctx context.Context, key entity.StockKey, asOf time.Time) (*time.Time, error) {
	inner, args, ok := lockedLinesSQL(repository.MovementQuery{
		Key:     key,
		Through: asOf,
		Kinds:   entity.SnapshotKinds,
	})
	if !ok {
		return nil, nil
	}
	query := `SELECT MAX(document_date) FROM (` + inner + `) s`
	var latest *time.Time
	if err := r.q.QueryRow(ctx, query, args...).Scan(&latest); err != nil {
		return nil, fmt.Errorf("latest snapshot date: %w", err)
	}
	if latest == nil {
		return nil, nil
	}
	d := inventory.DateOnly(*latest)
	return &d, nil
}

// Locked movimientos bloqueados del par ítem-bodega en (After, Through], ordenados por (fecha, seq).
func (r *MovementSourceRepo) Locked(ctx context.Context, q repository.MovementQuery) ([]entity.Movement, error) {
	inner, args, ok := lockedLinesSQL(q)
	if !ok {
		return nil, nil
	}
	rows, err := r.q.Query(ctx, inner+` ORDER BY document_date, seq`, args...)
	if err != nil {
		return nil, fmt.Errorf("locked movements: %w", err)
	}
	defer rows.Close()

	var list []entity.Movement
	for rows.Next() {
		m := entity.Movement{StockKey: q.Key, Locked: true}
		var source string
		if err := rows.Scan(
			&m.Seq, &m.Date, &source, &m.Quantity, &m.DocumentID, &m.DocumentCode,
			&m.EnteredUnit, &m.EnteredQty, &m.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.Date = inventory.DateOnly(m.Date)
		m.Source = entity.MovementSource(source)
		m.Kind, err = inventory.KindOf(m.Source)
		if err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// lockedLinesSQL arma el UNION ALL de las tablas de líneas que corresponden a q.Kinds.
// Parámetros: $1 empresa, $2 bodega, $3 ítem, $4 Through y, si aplica, $5 After.
// ok=false si ningún origen corresponde a los tipos pedidos.
func lockedLinesSQL(q repository.MovementQuery) (sql string, args []any, ok bool) {
	args = []any{q.Key.CompanyID, q.Key.WarehouseID, q.Key.ItemID, inventory.DateOnly(q.Through)}
	afterCond := ""
	if q.After != nil {
		args = append(args, inventory.DateOnly(*q.After))
		afterCond = ` AND d.document_date > $5`
	}

	parts := make([]string, 0, len(lineTables))
	for _, lt := range lineTables {
		if len(q.Kinds) > 0 {
			kind, _ := inventory.KindOf(lt.source)
			if !slices.Contains(q.Kinds, kind) {
				continue
			}
		}
		parts = append(parts, fmt.Sprintf(`
		SELECT l.seq, d.document_date, '%s' AS source, l.quantity, d.id::text AS document_id, d.document_code,
		       l.entered_unit, l.entered_quantity, d.created_by
		FROM %s l
		JOIN stock_documents d ON d.id = l.document_id AND d.company_id = l.company_id
		WHERE l.company_id = $1 AND l.warehouse_id = $2 AND l.item_id = $3
		  AND d.is_locked AND d.is_enabled
		  AND d.document_date <= $4%s`, lt.source, lt.table, afterCond))
	}
	if len(parts) == 0 {
		return "", nil, false
	}
	return strings.Join(parts, "\n\t\tUNION ALL"), args, true
}

// activeItemsSQL ítems con alguna línea bloqueada en la bodega hasta $3 (empresa $1, bodega $2).
func activeItemsSQL() string {
	parts := make([]string, 0, len(lineTables))
	for _, lt := range lineTables {
		parts = append(parts, fmt.Sprintf(`
			SELECT l.item_id FROM %s l
			JOIN stock_documents d ON d.id = l.document_id AND d.company_id = l.company_id
			WHERE l.company_id = $1 AND l.warehouse_id = $2
			  AND d.is_locked AND d.is_enabled AND d.document_date <= $3`, lt.table))
	}
	return strings.Join(parts, "\n\t\t\tUNION ALL")
}
