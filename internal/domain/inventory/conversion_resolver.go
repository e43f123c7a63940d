package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/domain"
)

// ConversionResolver resuelve factores sobre un UnitGraph.
// En modo estricto una unidad sin ruta hacia la canónica es un error (ErrConversionPathNotFound).
// En modo permisivo se devuelve factor 1, como hacía el sistema heredado, y Resolution.Fallback queda en true.
type ConversionResolver struct {
	Strict bool
}

// NewConversionResolver construye el resolvedor.
func NewConversionResolver(strict bool) ConversionResolver {
	return ConversionResolver{Strict: strict}
}

// Resolution resultado de resolver una unidad.
type Resolution struct {
	Unit     string
	Factor   decimal.Decimal
	Fallback bool // true si no hubo ruta y se asumió factor 1 (modo permisivo)
}

// Resolve calcula el factor de unit hacia la unidad canónica del grafo.
func (r ConversionResolver) Resolve(g *UnitGraph, unit string) (Resolution, error) {
	f, ok := g.Factor(unit)
	if ok {
		return Resolution{Unit: unit, Factor: f}, nil
	}
	if r.Strict {
		return Resolution{}, fmt.Errorf("%w: %s → %s", domain.ErrConversionPathNotFound, unit, g.CanonicalUnit())
	}
	return Resolution{Unit: unit, Factor: decimal.NewFromInt(1), Fallback: true}, nil
}

// Factor atajo que devuelve solo el factor.
func (r ConversionResolver) Factor(g *UnitGraph, unit string) (decimal.Decimal, error) {
	res, err := r.Resolve(g, unit)
	if err != nil {
		return decimal.Zero, err
	}
	return res.Factor, nil
}

// ToCanonical convierte una cantidad en unit a la unidad canónica: qty × f.
func (r ConversionResolver) ToCanonical(g *UnitGraph, unit string, qty decimal.Decimal) (decimal.Decimal, error) {
	f, err := r.Factor(g, unit)
	if err != nil {
		return decimal.Zero, err
	}
	return qty.Mul(f), nil
}

// FromCanonical convierte una cantidad canónica de vuelta a unit: qty / f.
func (r ConversionResolver) FromCanonical(g *UnitGraph, unit string, qty decimal.Decimal) (decimal.Decimal, error) {
	f, err := r.Factor(g, unit)
	if err != nil {
		return decimal.Zero, err
	}
	return qty.DivRound(f, ConversionScale), nil
}

// PriceToCanonical convierte un precio por unit a precio por unidad canónica: price / f.
// Una unidad más grande implica un precio canónico menor.
func (r ConversionResolver) PriceToCanonical(g *UnitGraph, unit string, price decimal.Decimal) (decimal.Decimal, error) {
	f, err := r.Factor(g, unit)
	if err != nil {
		return decimal.Zero, err
	}
	return InvertPrice(price, f), nil
}

// InvertPrice precio por unidad canónica a partir del precio por unidad digitada y su factor.
func InvertPrice(price, factor decimal.Decimal) decimal.Decimal {
	if factor.IsZero() {
		return price
	}
	return price.DivRound(factor, ConversionScale)
}
