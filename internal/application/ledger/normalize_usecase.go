package ledger

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// NormalizeUseCase convierte líneas digitadas a la unidad canónica del ítem.
type NormalizeUseCase struct {
	items      repository.ItemRepository
	graphs     *GraphProvider
	resolver   inventory.ConversionResolver
	normalizer *inventory.QuantityNormalizer
	log        *logger.Logger
}

// NewNormalizeUseCase construye el caso de uso. strict=false reproduce el factor 1 del sistema heredado.
func NewNormalizeUseCase(
	items repository.ItemRepository,
	graphs *GraphProvider,
	strict bool,
	log *logger.Logger,
) *NormalizeUseCase {
	resolver := inventory.NewConversionResolver(strict)
	if log == nil {
		log = logger.Nop()
	}
	return &NormalizeUseCase{
		items:      items,
		graphs:     graphs,
		resolver:   resolver,
		normalizer: inventory.NewQuantityNormalizer(resolver),
		log:        log.Component("normalize"),
	}
}

// Normalize valida la línea contra las unidades configuradas del ítem y la lleva a la unidad canónica.
func (uc *NormalizeUseCase) Normalize(ctx context.Context, in entity.LineEntry) (*entity.NormalizedLine, error) {
	g, err := uc.graph(ctx, in.CompanyID, in.ItemID)
	if err != nil {
		return nil, err
	}
	out, err := uc.normalizer.Normalize(g, in)
	if err != nil {
		return nil, err
	}
	uc.warnFallback(g, in.CompanyID, in.ItemID, out.EnteredUnit)
	if out.EnteredPriceUnit != "" && out.EnteredPriceUnit != out.EnteredUnit {
		uc.warnFallback(g, in.CompanyID, in.ItemID, out.EnteredPriceUnit)
	}
	return &out, nil
}

// Factor devuelve el factor de unit hacia la unidad canónica del ítem (unit vacía = canónica).
func (uc *NormalizeUseCase) Factor(ctx context.Context, companyID, itemID, unit string) (*inventory.Resolution, error) {
	g, err := uc.graph(ctx, companyID, itemID)
	if err != nil {
		return nil, err
	}
	unit = inventory.NormalizeUnit(unit)
	if unit == "" {
		unit = g.CanonicalUnit()
	}
	if !g.Allows(unit) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnitNotConfigured, unit)
	}
	res, err := uc.resolver.Resolve(g, unit)
	if err != nil {
		return nil, err
	}
	if res.Fallback {
		uc.warnFallback(g, companyID, itemID, unit)
	}
	return &res, nil
}

// CanonicalUnit unidad canónica efectiva del ítem (EA si no tiene ninguna).
func (uc *NormalizeUseCase) CanonicalUnit(ctx context.Context, companyID, itemID string) (string, error) {
	g, err := uc.graph(ctx, companyID, itemID)
	if err != nil {
		return "", err
	}
	return g.CanonicalUnit(), nil
}

func (uc *NormalizeUseCase) graph(ctx context.Context, companyID, itemID string) (*inventory.UnitGraph, error) {
	if companyID == "" || itemID == "" {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.items.GetByID(ctx, companyID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return uc.graphs.Graph(ctx, item)
}

func (uc *NormalizeUseCase) warnFallback(g *inventory.UnitGraph, companyID, itemID, unit string) {
	if uc.resolver.Strict {
		return
	}
	if _, ok := g.Factor(unit); ok {
		return
	}
	uc.log.Warn().
		Str("company_id", companyID).
		Str("item_id", itemID).
		Str("unit", unit).
		Str("canonical_unit", g.CanonicalUnit()).
		Msg("sin ruta de conversión, se asume factor 1")
}
