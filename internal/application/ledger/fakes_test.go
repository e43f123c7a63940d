package ledger

import (
	"context"
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func fixedClock(s string) Clock {
	return func() time.Time { return day(s).Add(15 * time.Hour) }
}

func mov(item string, seq int64, date string, source entity.MovementSource, qty string) entity.Movement {
	return entity.Movement{
		StockKey:     entity.StockKey{CompanyID: "c1", WarehouseID: "w1", ItemID: item},
		Seq:          seq,
		Date:         day(date),
		Source:       source,
		Quantity:     d(qty),
		Locked:       true,
		DocumentCode: "DOC-" + item,
	}
}

// fakeItems maestro de ítems en memoria.
type fakeItems struct {
	items   []*entity.Item
	err     error
	listErr error
}

func (f *fakeItems) GetByID(_ context.Context, companyID, itemID string) (*entity.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, it := range f.items {
		if it.CompanyID == companyID && it.ID == itemID {
			return it, nil
		}
	}
	return nil, nil
}

func (f *fakeItems) ListForWarehouse(_ context.Context, filter repository.ItemFilter) ([]*entity.Item, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*entity.Item
	for _, it := range f.items {
		if it.CompanyID != filter.CompanyID {
			continue
		}
		if filter.CategoryID != "" && it.CategoryID != filter.CategoryID {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

type fakeWarehouses struct {
	warehouses []*entity.Warehouse
}

func (f *fakeWarehouses) GetByID(_ context.Context, companyID, warehouseID string) (*entity.Warehouse, error) {
	for _, w := range f.warehouses {
		if w.CompanyID == companyID && w.ID == warehouseID {
			return w, nil
		}
	}
	return nil, nil
}

// fakeMovements libro en memoria con inyección de fallos por ítem.
type fakeMovements struct {
	history []entity.Movement
	failOn  map[string]error
	panicOn string
	onCall  func(itemID string)
	calls   atomic.Int64
}

func (f *fakeMovements) LatestSnapshotDate(ctx context.Context, key entity.StockKey, asOf time.Time) (*time.Time, error) {
	f.calls.Add(1)
	if f.onCall != nil {
		f.onCall(key.ItemID)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if key.ItemID == f.panicOn {
		panic("fallo inesperado")
	}
	if err := f.failOn[key.ItemID]; err != nil {
		return nil, err
	}
	latest, ok := inventory.LatestSnapshotDate(f.forKey(key), asOf)
	if !ok {
		return nil, nil
	}
	return &latest, nil
}

func (f *fakeMovements) Locked(_ context.Context, q repository.MovementQuery) ([]entity.Movement, error) {
	f.calls.Add(1)
	var out []entity.Movement
	for _, m := range f.forKey(q.Key) {
		dt := inventory.DateOnly(m.Date)
		if !m.Locked || dt.After(q.Through) {
			continue
		}
		if q.After != nil && !dt.After(*q.After) {
			continue
		}
		if len(q.Kinds) > 0 {
			c, err := inventory.ClassifyMovement(m)
			if err != nil || !slices.Contains(q.Kinds, c.Kind) {
				continue
			}
		}
		out = append(out, m)
	}
	inventory.SortMovements(out)
	return out, nil
}

func (f *fakeMovements) forKey(key entity.StockKey) []entity.Movement {
	var out []entity.Movement
	for _, m := range f.history {
		if m.StockKey == key {
			m := m
			if m.Kind == "" {
				if k, err := inventory.KindOf(m.Source); err == nil {
					m.Kind = k
				}
			}
			out = append(out, m)
		}
	}
	return out
}

// fakeEdges conversiones en memoria; cuenta lecturas para verificar el cache.
type fakeEdges struct {
	mu        sync.Mutex
	edges     map[string][]entity.UnitConversionEdge
	reads     int
	createErr error
}

func newFakeEdges() *fakeEdges {
	return &fakeEdges{edges: make(map[string][]entity.UnitConversionEdge)}
}

func (f *fakeEdges) ListByItem(_ context.Context, _, itemID string) ([]entity.UnitConversionEdge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	return slices.Clone(f.edges[itemID]), nil
}

func (f *fakeEdges) Create(_ context.Context, e *entity.UnitConversionEdge) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.edges[e.ItemID] = append(f.edges[e.ItemID], *e)
	return nil
}

func (f *fakeEdges) readCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reads
}

// fakeTx ejecuta la función sobre una copia y solo la publica si no hubo error.
type fakeTx struct {
	target *fakeEdges
}

func (t *fakeTx) Run(ctx context.Context, fn func(edges repository.UnitConversionRepository) error) error {
	staged := newFakeEdges()
	staged.createErr = t.target.createErr
	if err := fn(staged); err != nil {
		return err
	}
	t.target.mu.Lock()
	defer t.target.mu.Unlock()
	for k, v := range staged.edges {
		t.target.edges[k] = append(t.target.edges[k], v...)
	}
	return nil
}

var errBoom = errors.New("boom")
