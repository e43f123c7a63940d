package ledger

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// ExclusionRule devuelve true si la fila debe quedar fuera del reporte.
type ExclusionRule func(b *entity.Balance) bool

// ExcludeIdle omite filas sin saldo ni movimientos desde la base (regla por defecto).
func ExcludeIdle(b *entity.Balance) bool { return !b.HasActivity() }

// IncludeAll no omite nada.
func IncludeAll(*entity.Balance) bool { return false }

// WarehouseReportQuery parámetros del reporte por bodega.
type WarehouseReportQuery struct {
	CompanyID   string
	WarehouseID string
	AsOf        time.Time
	ItemTypeID  string
	CategoryID  string
	Exclude     ExclusionRule // nil = ExcludeIdle
}

// LowStockQuery parámetros de la alerta de stock bajo.
type LowStockQuery struct {
	CompanyID   string
	WarehouseID string
	AsOf        time.Time
	Threshold   decimal.Decimal
}

// WarehouseBalanceReport calcula el saldo de todos los ítems de una bodega con un pool acotado.
// Un ítem que falla queda registrado en Failures y no detiene el lote; la cancelación del contexto sí.
type WarehouseBalanceReport struct {
	balances   *BalanceReconstructor
	items      repository.ItemRepository
	warehouses repository.WarehouseRepository
	workers    int
	log        *logger.Logger
}

// NewWarehouseBalanceReport construye el reporte. workers < 1 se trata como 1.
func NewWarehouseBalanceReport(
	balances *BalanceReconstructor,
	items repository.ItemRepository,
	warehouses repository.WarehouseRepository,
	workers int,
	log *logger.Logger,
) *WarehouseBalanceReport {
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = logger.Nop()
	}
	return &WarehouseBalanceReport{
		balances:   balances,
		items:      items,
		warehouses: warehouses,
		workers:    workers,
		log:        log.Component("warehouse_report"),
	}
}

// Generate devuelve las filas ordenadas por código de ítem, los fallos por ítem y el total.
func (r *WarehouseBalanceReport) Generate(ctx context.Context, q WarehouseReportQuery) (*entity.WarehouseReport, error) {
	report, _, err := r.generate(ctx, q)
	return report, err
}

// LowStock filas cuyo saldo es menor que max(mínimo del ítem, umbral), incluidas las inactivas.
func (r *WarehouseBalanceReport) LowStock(ctx context.Context, q LowStockQuery) ([]entity.LowStockRow, error) {
	if q.Threshold.IsNegative() {
		return nil, fmt.Errorf("%w: umbral negativo", domain.ErrInvalidInput)
	}
	report, items, err := r.generate(ctx, WarehouseReportQuery{
		CompanyID:   q.CompanyID,
		WarehouseID: q.WarehouseID,
		AsOf:        q.AsOf,
		Exclude:     IncludeAll,
	})
	if err != nil {
		return nil, err
	}
	out := make([]entity.LowStockRow, 0)
	for _, b := range report.Rows {
		threshold := q.Threshold
		if it := items[b.ItemID]; it != nil && it.MinStock != nil && it.MinStock.GreaterThan(threshold) {
			threshold = *it.MinStock
		}
		if b.CurrentBalance.LessThan(threshold) {
			out = append(out, entity.LowStockRow{
				Balance:   b,
				Threshold: threshold,
				Shortfall: threshold.Sub(b.CurrentBalance),
			})
		}
	}
	return out, nil
}

func (r *WarehouseBalanceReport) generate(
	ctx context.Context,
	q WarehouseReportQuery,
) (*entity.WarehouseReport, map[string]*entity.Item, error) {
	if q.CompanyID == "" || q.WarehouseID == "" {
		return nil, nil, domain.ErrInvalidInput
	}
	exclude := q.Exclude
	if exclude == nil {
		exclude = ExcludeIdle
	}
	wh, err := r.warehouses.GetByID(ctx, q.CompanyID, q.WarehouseID)
	if err != nil {
		return nil, nil, err
	}
	if wh == nil {
		return nil, nil, fmt.Errorf("%w: bodega %s", domain.ErrNotFound, q.WarehouseID)
	}
	asOf := r.balances.asOf(q.AsOf)

	items, err := r.items.ListForWarehouse(ctx, repository.ItemFilter{
		CompanyID:   q.CompanyID,
		WarehouseID: q.WarehouseID,
		AsOf:        asOf,
		TypeID:      q.ItemTypeID,
		CategoryID:  q.CategoryID,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("ítems de la bodega: %w", err)
	}

	// Cada worker escribe solo en su índice.
	rows := make([]*entity.Balance, len(items))
	failures := make([]*entity.ItemFailure, len(items))

	var g errgroup.Group
	g.SetLimit(r.workers)
	for i, item := range items {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() (err error) {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			defer func() {
				if p := recover(); p != nil {
					failures[i] = r.fail(wh, item, fmt.Errorf("panic: %v", p))
					err = nil
				}
			}()
			d, cerr := r.balances.computeFor(ctx, item, wh, asOf, false)
			if cerr != nil {
				if ctx.Err() != nil || errors.Is(cerr, context.Canceled) || errors.Is(cerr, context.DeadlineExceeded) {
					return cerr
				}
				failures[i] = r.fail(wh, item, cerr)
				return nil
			}
			rows[i] = &d.Balance
			return nil
		})
	}
	werr := g.Wait()
	if ctx.Err() != nil {
		return nil, nil, ctx.Err()
	}
	if werr != nil {
		return nil, nil, werr
	}

	report := &entity.WarehouseReport{
		CompanyID:     q.CompanyID,
		WarehouseID:   q.WarehouseID,
		WarehouseCode: wh.Code,
		WarehouseName: wh.Name,
		AsOfDate:      asOf,
		Rows:          make([]entity.Balance, 0, len(items)),
		Failures:      make([]entity.ItemFailure, 0),
		TotalBalance:  decimal.Zero,
		GeneratedAt:   r.balances.clock.now(),
	}
	byID := make(map[string]*entity.Item, len(items))
	for i, item := range items {
		byID[item.ID] = item
		if failures[i] != nil {
			report.Failures = append(report.Failures, *failures[i])
			continue
		}
		b := rows[i]
		if b == nil || exclude(b) {
			continue
		}
		report.Rows = append(report.Rows, *b)
		report.TotalBalance = report.TotalBalance.Add(b.CurrentBalance)
	}
	sort.SliceStable(report.Rows, func(i, j int) bool {
		if report.Rows[i].ItemCode != report.Rows[j].ItemCode {
			return report.Rows[i].ItemCode < report.Rows[j].ItemCode
		}
		return report.Rows[i].ItemID < report.Rows[j].ItemID
	})
	sort.SliceStable(report.Failures, func(i, j int) bool {
		if report.Failures[i].ItemCode != report.Failures[j].ItemCode {
			return report.Failures[i].ItemCode < report.Failures[j].ItemCode
		}
		return report.Failures[i].ItemID < report.Failures[j].ItemID
	})

	r.log.Info().
		Str("company_id", q.CompanyID).
		Str("warehouse_id", q.WarehouseID).
		Time("as_of", asOf).
		Int("items", len(items)).
		Int("rows", len(report.Rows)).
		Int("failures", len(report.Failures)).
		Msg("reporte de saldos generado")
	return report, byID, nil
}

func (r *WarehouseBalanceReport) fail(wh *entity.Warehouse, item *entity.Item, err error) *entity.ItemFailure {
	r.log.Warn().
		Err(err).
		Str("company_id", item.CompanyID).
		Str("warehouse_id", wh.ID).
		Str("item_id", item.ID).
		Str("item_code", item.Code).
		Msg("no se pudo calcular el saldo del ítem")
	return &entity.ItemFailure{ItemID: item.ID, ItemCode: item.Code, Error: err.Error()}
}
