package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

// BalanceQuery identifica el saldo a reconstruir. AsOf cero = hoy.
type BalanceQuery struct {
	CompanyID   string
	WarehouseID string
	ItemID      string
	AsOf        time.Time
}

// BalanceReconstructor reconstruye saldos a partir de la última toma física y los documentos bloqueados.
// No guarda nada: el mismo estado del libro produce siempre el mismo saldo.
type BalanceReconstructor struct {
	items      repository.ItemRepository
	warehouses repository.WarehouseRepository
	movements  repository.MovementSource
	clock      Clock
}

// NewBalanceReconstructor construye el caso de uso. clock nil = time.Now.
func NewBalanceReconstructor(
	items repository.ItemRepository,
	warehouses repository.WarehouseRepository,
	movements repository.MovementSource,
	clock Clock,
) *BalanceReconstructor {
	return &BalanceReconstructor{
		items:      items,
		warehouses: warehouses,
		movements:  movements,
		clock:      clock,
	}
}

// Compute saldo de un ítem en una bodega a la fecha indicada.
func (r *BalanceReconstructor) Compute(ctx context.Context, q BalanceQuery) (*entity.Balance, error) {
	item, wh, asOf, err := r.load(ctx, q)
	if err != nil {
		return nil, err
	}
	d, err := r.computeFor(ctx, item, wh, asOf, false)
	if err != nil {
		return nil, err
	}
	return &d.Balance, nil
}

// Detail igual que Compute pero incluye cada movimiento posterior a la base con su saldo acumulado.
func (r *BalanceReconstructor) Detail(ctx context.Context, q BalanceQuery) (*entity.BalanceDetail, error) {
	item, wh, asOf, err := r.load(ctx, q)
	if err != nil {
		return nil, err
	}
	return r.computeFor(ctx, item, wh, asOf, true)
}

func (r *BalanceReconstructor) load(ctx context.Context, q BalanceQuery) (*entity.Item, *entity.Warehouse, time.Time, error) {
	if q.CompanyID == "" || q.WarehouseID == "" || q.ItemID == "" {
		return nil, nil, time.Time{}, domain.ErrInvalidInput
	}
	item, err := r.items.GetByID(ctx, q.CompanyID, q.ItemID)
	if err != nil {
		return nil, nil, time.Time{}, err
	}
	if item == nil {
		return nil, nil, time.Time{}, fmt.Errorf("%w: ítem %s", domain.ErrNotFound, q.ItemID)
	}
	wh, err := r.warehouses.GetByID(ctx, q.CompanyID, q.WarehouseID)
	if err != nil {
		return nil, nil, time.Time{}, err
	}
	if wh == nil {
		return nil, nil, time.Time{}, fmt.Errorf("%w: bodega %s", domain.ErrNotFound, q.WarehouseID)
	}
	return item, wh, r.asOf(q.AsOf), nil
}

func (r *BalanceReconstructor) asOf(t time.Time) time.Time {
	if t.IsZero() {
		return inventory.DateOnly(r.clock.now())
	}
	return inventory.DateOnly(t)
}

// computeFor carga base y movimientos y pliega. Lo usa también el reporte por bodega.
func (r *BalanceReconstructor) computeFor(
	ctx context.Context,
	item *entity.Item,
	wh *entity.Warehouse,
	asOf time.Time,
	withEntries bool,
) (*entity.BalanceDetail, error) {
	key := entity.StockKey{CompanyID: item.CompanyID, WarehouseID: wh.ID, ItemID: item.ID}

	latest, err := r.movements.LatestSnapshotDate(ctx, key, asOf)
	if err != nil {
		return nil, fmt.Errorf("última toma física: %w", err)
	}
	var snapshots []entity.Movement
	if latest != nil {
		snapshots, err = r.movements.Locked(ctx, repository.MovementQuery{
			Key:     key,
			Through: *latest,
			Kinds:   entity.SnapshotKinds,
		})
		if err != nil {
			return nil, fmt.Errorf("ajustes de toma física: %w", err)
		}
	}
	movs, err := r.movements.Locked(ctx, repository.MovementQuery{
		Key:     key,
		After:   latest,
		Through: asOf,
	})
	if err != nil {
		return nil, fmt.Errorf("movimientos posteriores a la base: %w", err)
	}

	rec, err := inventory.Reconstruct(asOf, latest, snapshots, movs)
	if err != nil {
		return nil, err
	}

	out := &entity.BalanceDetail{
		Balance: entity.Balance{
			StockKey:         key,
			ItemCode:         item.Code,
			ItemName:         item.Name,
			CanonicalUnit:    item.BaseUnit(),
			WarehouseCode:    wh.Code,
			WarehouseName:    wh.Name,
			BaselineDate:     rec.Baseline.Date,
			HasBaseline:      rec.Baseline.Found,
			BaselineQuantity: rec.Baseline.Quantity,
			ReceiptsTotal:    rec.Totals.Inbound,
			IssuesTotal:      rec.Totals.Outbound,
			SurplusTotal:     rec.Totals.Surplus,
			DeficitTotal:     rec.Totals.Deficit,
			CurrentBalance:   rec.Balance,
			AsOfDate:         asOf,
			MovementCount:    len(rec.Entries),
		},
	}
	if withEntries {
		out.Entries = rec.Entries
	}
	return out, nil
}
