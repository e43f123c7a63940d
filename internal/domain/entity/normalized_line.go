package entity

import "github.com/shopspring/decimal"

// LineEntry línea tal como la digita el usuario en un documento.
type LineEntry struct {
	CompanyID        string
	ItemID           string
	EnteredUnit      string
	EnteredQuantity  decimal.Decimal
	EnteredUnitPrice *decimal.Decimal
	EnteredPriceUnit string // vacío = misma unidad de la cantidad
}

// NormalizedLine representación canónica de una línea; conserva lo digitado para auditoría.
type NormalizedLine struct {
	ItemID             string
	CanonicalUnit      string
	CanonicalQuantity  decimal.Decimal
	CanonicalUnitPrice *decimal.Decimal
	QuantityFactor     decimal.Decimal
	PriceFactor        decimal.Decimal
	EnteredUnit        string
	EnteredQuantity    decimal.Decimal
	EnteredPriceUnit   string
	EnteredUnitPrice   *decimal.Decimal
}

// StorageScale decimales con que se almacenan cantidades y valores.
const StorageScale int32 = 6

// LineTotal valor de la línea (cero si no hay precio).
// Con precio y cantidad en la misma unidad es exactamente cantidad × precio digitados;
// si no, se calcula en unidad canónica y se redondea a StorageScale.
func (l NormalizedLine) LineTotal() decimal.Decimal {
	if l.CanonicalUnitPrice == nil || l.EnteredUnitPrice == nil {
		return decimal.Zero
	}
	if l.EnteredPriceUnit == "" || l.EnteredPriceUnit == l.EnteredUnit {
		return l.EnteredQuantity.Mul(*l.EnteredUnitPrice)
	}
	return l.CanonicalQuantity.Mul(*l.CanonicalUnitPrice).Round(StorageScale)
}
