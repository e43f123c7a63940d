package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// KindOf mapea la tabla de origen del documento a uno de los cuatro tipos del libro.
func KindOf(source entity.MovementSource) (entity.MovementKind, error) {
	switch source {
	case entity.SourceReceiptPermanent, entity.SourceReceiptConsignment:
		return entity.MovementKindReceipt, nil
	case entity.SourceIssuePermanent, entity.SourceIssueConsumption, entity.SourceIssueConsignment:
		return entity.MovementKindIssue, nil
	case entity.SourceStocktakingSurplus:
		return entity.MovementKindSurplus, nil
	case entity.SourceStocktakingDeficit:
		return entity.MovementKindDeficit, nil
	}
	return "", fmt.Errorf("%w: origen de movimiento %q", domain.ErrInvalidInput, source)
}

// Classify devuelve el sentido del movimiento: recepciones y sobrantes entran, salidas y faltantes salen.
func Classify(kind entity.MovementKind) (entity.Direction, error) {
	switch kind {
	case entity.MovementKindReceipt, entity.MovementKindSurplus:
		return entity.DirectionIN, nil
	case entity.MovementKindIssue, entity.MovementKindDeficit:
		return entity.DirectionOUT, nil
	}
	return "", fmt.Errorf("%w: tipo de movimiento %q", domain.ErrInvalidInput, kind)
}

// ClassifyMovement completa Kind (desde Source si falta) y Direction.
// Rechaza movimientos de documentos no bloqueados y cantidades negativas.
func ClassifyMovement(m entity.Movement) (entity.Movement, error) {
	if !m.Locked {
		return m, fmt.Errorf("%w: documento %s no está bloqueado", domain.ErrInvalidInput, m.DocumentCode)
	}
	if m.Quantity.IsNegative() {
		return m, fmt.Errorf("%w: cantidad negativa en %s", domain.ErrInvalidQuantity, m.DocumentCode)
	}
	if m.Kind == "" {
		kind, err := KindOf(m.Source)
		if err != nil {
			return m, err
		}
		m.Kind = kind
	}
	dir, err := Classify(m.Kind)
	if err != nil {
		return m, err
	}
	m.Direction = dir
	return m, nil
}

// Signed cantidad con signo según el sentido: + para IN, − para OUT.
func Signed(m entity.Movement) decimal.Decimal {
	if m.Direction == entity.DirectionOUT {
		return m.Quantity.Neg()
	}
	return m.Quantity
}
