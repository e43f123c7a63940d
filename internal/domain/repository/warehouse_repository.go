package repository

import (
	"context"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// WarehouseRepository define el puerto de lectura de bodegas (DIP).
type WarehouseRepository interface {
	// GetByID devuelve nil, nil si la bodega no existe en la empresa.
	GetByID(ctx context.Context, companyID, warehouseID string) (*entity.Warehouse, error)
}
