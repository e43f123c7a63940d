package inventory

import (
	"fmt"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// QuantityNormalizer transforma una línea digitada (unidad, cantidad, precio) en su forma canónica.
// Transformación pura: no persiste nada.
type QuantityNormalizer struct {
	resolver ConversionResolver
}

// NewQuantityNormalizer construye el normalizador con el resolvedor indicado.
func NewQuantityNormalizer(resolver ConversionResolver) *QuantityNormalizer {
	return &QuantityNormalizer{resolver: resolver}
}

// Normalize valida y convierte la línea.
// La cantidad debe ser positiva y el precio, si viene, no negativo.
// Los códigos de unidad se comparan en mayúsculas y sin espacios.
// La unidad de precio se resuelve de forma independiente a la de cantidad (ej. cantidad en EA y precio por BOX).
func (n *QuantityNormalizer) Normalize(g *UnitGraph, in entity.LineEntry) (entity.NormalizedLine, error) {
	if !in.EnteredQuantity.IsPositive() {
		return entity.NormalizedLine{}, domain.ErrInvalidQuantity
	}
	if in.EnteredUnitPrice != nil && in.EnteredUnitPrice.IsNegative() {
		return entity.NormalizedLine{}, domain.ErrInvalidQuantity
	}

	qtyUnit := NormalizeUnit(in.EnteredUnit)
	if qtyUnit == "" {
		qtyUnit = g.CanonicalUnit()
	}
	if !g.Allows(qtyUnit) {
		return entity.NormalizedLine{}, fmt.Errorf("%w: %s", domain.ErrUnitNotConfigured, qtyUnit)
	}
	qtyFactor, err := n.resolver.Factor(g, qtyUnit)
	if err != nil {
		return entity.NormalizedLine{}, err
	}

	out := entity.NormalizedLine{
		ItemID:            in.ItemID,
		CanonicalUnit:     g.CanonicalUnit(),
		CanonicalQuantity: in.EnteredQuantity.Mul(qtyFactor),
		QuantityFactor:    qtyFactor,
		EnteredUnit:       qtyUnit,
		EnteredQuantity:   in.EnteredQuantity,
		EnteredPriceUnit:  NormalizeUnit(in.EnteredPriceUnit),
		EnteredUnitPrice:  in.EnteredUnitPrice,
	}
	if in.EnteredUnitPrice == nil {
		return out, nil
	}

	priceUnit := out.EnteredPriceUnit
	priceFactor := qtyFactor
	if priceUnit == "" {
		priceUnit = qtyUnit
	} else if priceUnit != qtyUnit {
		if !g.Allows(priceUnit) {
			return entity.NormalizedLine{}, fmt.Errorf("%w: %s", domain.ErrUnitNotConfigured, priceUnit)
		}
		priceFactor, err = n.resolver.Factor(g, priceUnit)
		if err != nil {
			return entity.NormalizedLine{}, err
		}
	}
	price := InvertPrice(*in.EnteredUnitPrice, priceFactor)
	out.PriceFactor = priceFactor
	out.CanonicalUnitPrice = &price
	return out, nil
}
