package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// ConversionInput equivalencia a registrar: FromQuantity FromUnit = ToQuantity ToUnit.
type ConversionInput struct {
	CompanyID    string
	ItemID       string
	FromUnit     string
	ToUnit       string
	FromQuantity decimal.Decimal
	ToQuantity   decimal.Decimal
}

// ConversionUseCase registra conversiones de unidad por ítem y mantiene coherente el cache de grafos.
type ConversionUseCase struct {
	tx     TxRunner
	items  repository.ItemRepository
	graphs *GraphProvider
	clock  Clock
	log    *logger.Logger
}

// NewConversionUseCase construye el caso de uso.
func NewConversionUseCase(
	tx TxRunner,
	items repository.ItemRepository,
	graphs *GraphProvider,
	clock Clock,
	log *logger.Logger,
) *ConversionUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ConversionUseCase{tx: tx, items: items, graphs: graphs, clock: clock, log: log.Component("conversions")}
}

// Import valida todas las filas y las persiste en una sola transacción (todo o nada).
// Devuelve la cantidad de aristas creadas.
func (uc *ConversionUseCase) Import(ctx context.Context, rows []ConversionInput) (int, error) {
	edges := make([]*entity.UnitConversionEdge, 0, len(rows))
	for i, in := range rows {
		e, err := uc.toEdge(ctx, in)
		if err != nil {
			return 0, fmt.Errorf("fila %d: %w", i+1, err)
		}
		edges = append(edges, e)
	}
	if len(edges) == 0 {
		return 0, nil
	}

	err := uc.tx.Run(ctx, func(repo repository.UnitConversionRepository) error {
		for _, e := range edges {
			if err := repo.Create(ctx, e); err != nil {
				return fmt.Errorf("conversión %s→%s del ítem %s: %w", e.FromUnit, e.ToUnit, e.ItemID, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	for _, e := range edges {
		uc.graphs.Invalidate(e.CompanyID, e.ItemID)
	}
	uc.log.Info().Int("edges", len(edges)).Msg("conversiones importadas")
	return len(edges), nil
}

func (uc *ConversionUseCase) toEdge(ctx context.Context, in ConversionInput) (*entity.UnitConversionEdge, error) {
	if in.CompanyID == "" || in.ItemID == "" {
		return nil, domain.ErrInvalidInput
	}
	e := &entity.UnitConversionEdge{
		ID:           uuid.NewString(),
		CompanyID:    in.CompanyID,
		ItemID:       in.ItemID,
		FromUnit:     inventory.NormalizeUnit(in.FromUnit),
		ToUnit:       inventory.NormalizeUnit(in.ToUnit),
		FromQuantity: in.FromQuantity,
		ToQuantity:   in.ToQuantity,
		CreatedAt:    uc.clock.now(),
	}
	if !e.Valid() || e.FromUnit == e.ToUnit {
		return nil, fmt.Errorf("%w: %s %s = %s %s", domain.ErrInvalidQuantity,
			in.FromQuantity, in.FromUnit, in.ToQuantity, in.ToUnit)
	}
	item, err := uc.items.GetByID(ctx, in.CompanyID, in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: ítem %s", domain.ErrNotFound, in.ItemID)
	}
	return e, nil
}
