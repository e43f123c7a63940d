package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

var _ repository.UnitConversionRepository = (*UnitConversionRepo)(nil)

// UnitConversionRepo conversiones de unidad por ítem sobre PostgreSQL (usable con pool o tx).
type UnitConversionRepo struct {
	q Querier
}

// NewUnitConversionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUnitConversionRepository(q Querier) *UnitConversionRepo {
	return &UnitConversionRepo{q: q}
}

// ListByItem aristas del ítem en orden de creación (el orden de las unidades permitidas depende de él).
func (r *UnitConversionRepo) ListByItem(ctx context.Context, companyID, itemID string) ([]entity.UnitConversionEdge, error) {
	query := `
		SELECT id::text, company_id::text, item_id::text, from_unit, to_unit, from_quantity, to_quantity, created_at
		FROM item_unit_conversions
		WHERE company_id = $1 AND item_id = $2
		ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, companyID, itemID)
	if err != nil {
		return nil, fmt.Errorf("list unit conversions: %w", err)
	}
	defer rows.Close()

	var list []entity.UnitConversionEdge
	for rows.Next() {
		var e entity.UnitConversionEdge
		if err := rows.Scan(
			&e.ID, &e.CompanyID, &e.ItemID, &e.FromUnit, &e.ToUnit,
			&e.FromQuantity, &e.ToQuantity, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan unit conversion: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Create inserta la arista e incrementa items.version en una sola sentencia.
func (r *UnitConversionRepo) Create(ctx context.Context, e *entity.UnitConversionEdge) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	query := `
		WITH ins AS (
			INSERT INTO item_unit_conversions (id, company_id, item_id, from_unit, to_unit, from_quantity, to_quantity, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING item_id, company_id
		)
		UPDATE items SET version = items.version + 1, updated_at = now()
		FROM ins WHERE items.id = ins.item_id AND items.company_id = ins.company_id`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.CompanyID, e.ItemID, e.FromUnit, e.ToUnit, e.FromQuantity, e.ToQuantity, e.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: conversión %s duplicada", domain.ErrInvalidInput, e.ID)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: ítem %s", domain.ErrNotFound, e.ItemID)
		}
		return fmt.Errorf("create unit conversion: %w", err)
	}
	return nil
}
