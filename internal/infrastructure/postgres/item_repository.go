package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador del maestro de ítems. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `i.id::text, i.company_id::text, i.code, i.name, COALESCE(i.type_id::text, ''),
	COALESCE(i.category_id::text, ''), i.canonical_unit, i.reporting_unit, i.min_stock,
	i.is_enabled, i.version, i.created_at, i.updated_at`

// GetByID obtiene un ítem de la empresa. Devuelve nil, nil si no existe.
func (r *ItemRepo) GetByID(ctx context.Context, companyID, itemID string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items i WHERE i.company_id = $1 AND i.id = $2`
	it, err := scanItem(r.q.QueryRow(ctx, query, companyID, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

// ListForWarehouse ítems asignados (habilitados) a la bodega más los que tienen actividad bloqueada en ella.
func (r *ItemRepo) ListForWarehouse(ctx context.Context, f repository.ItemFilter) ([]*entity.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items i
		WHERE i.company_id = $1
		  AND ($4 = '' OR i.type_id::text = $4)
		  AND ($5 = '' OR i.category_id::text = $5)
		  AND (
		    (i.is_enabled AND EXISTS (
		        SELECT 1 FROM item_warehouses iw
		        WHERE iw.item_id = i.id AND iw.warehouse_id = $2 AND iw.is_enabled))
		    OR i.id IN (` + activeItemsSQL() + `
		    )
		  )
		ORDER BY i.code, i.id`
	rows, err := r.q.Query(ctx, query, f.CompanyID, f.WarehouseID, inventory.DateOnly(f.AsOf), f.TypeID, f.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("list items for warehouse: %w", err)
	}
	defer rows.Close()

	var list []*entity.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

func scanItem(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	err := row.Scan(
		&it.ID, &it.CompanyID, &it.Code, &it.Name, &it.TypeID, &it.CategoryID,
		&it.CanonicalUnit, &it.ReportingUnit, &it.MinStock,
		&it.Enabled, &it.Version, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}
