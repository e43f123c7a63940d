package repository

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// ItemFilter criterios para listar los ítems candidatos de una bodega.
type ItemFilter struct {
	CompanyID   string
	WarehouseID string
	AsOf        time.Time
	TypeID      string // opcional
	CategoryID  string // opcional
}

// ItemRepository define el puerto de lectura del maestro de ítems (DIP).
type ItemRepository interface {
	// GetByID devuelve nil, nil si el ítem no existe en la empresa.
	GetByID(ctx context.Context, companyID, itemID string) (*entity.Item, error)
	// ListForWarehouse devuelve los ítems asignados a la bodega (habilitados) más los ítems con
	// actividad bloqueada en ella hasta AsOf (habilitados o no).
	ListForWarehouse(ctx context.Context, filter ItemFilter) ([]*entity.Item, error)
}
