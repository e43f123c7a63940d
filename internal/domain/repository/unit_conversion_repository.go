package repository

import (
	"context"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// UnitConversionRepository define el puerto de persistencia para las conversiones de unidad por ítem.
type UnitConversionRepository interface {
	ListByItem(ctx context.Context, companyID, itemID string) ([]entity.UnitConversionEdge, error)
	// Create persiste la arista e incrementa la versión del ítem en la misma operación.
	Create(ctx context.Context, edge *entity.UnitConversionEdge) error
}
