package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultUnit unidad implícita cuando el ítem no tiene ninguna unidad configurada.
const DefaultUnit = "EA"

// Item representa un ítem del maestro de inventario (multi-empresa).
// CanonicalUnit es la unidad en la que se guarda y suma todo el stock; ReportingUnit solo se usa para mostrar.
// Version se incrementa cada vez que cambian sus conversiones de unidad.
type Item struct {
	ID            string
	CompanyID     string
	Code          string
	Name          string
	TypeID        string
	CategoryID    string
	CanonicalUnit string
	ReportingUnit string
	MinStock      *decimal.Decimal
	Enabled       bool
	Version       int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BaseUnit devuelve la unidad canónica, o EA si el ítem no tiene ninguna.
func (i *Item) BaseUnit() string {
	if i.CanonicalUnit == "" {
		return DefaultUnit
	}
	return i.CanonicalUnit
}
