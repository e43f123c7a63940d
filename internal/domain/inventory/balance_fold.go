package inventory

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// DateOnly trunca a la fecha calendario (UTC). Las fechas de documento no llevan hora.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Baseline punto de anclaje de la reconstrucción.
type Baseline struct {
	Date     time.Time
	Found    bool
	Quantity decimal.Decimal
}

// Totals acumulados de la fase de repetición.
type Totals struct {
	Inbound  decimal.Decimal // recepciones + sobrantes
	Outbound decimal.Decimal // salidas + faltantes
	Surplus  decimal.Decimal
	Deficit  decimal.Decimal
}

// Reconstruction resultado puro de la reconstrucción de saldo.
type Reconstruction struct {
	Baseline Baseline
	Totals   Totals
	Balance  decimal.Decimal
	Entries  []entity.LedgerEntry
}

// LatestSnapshotDate fecha más reciente de un ajuste de toma física con fecha ≤ asOf.
func LatestSnapshotDate(movs []entity.Movement, asOf time.Time) (time.Time, bool) {
	asOf = DateOnly(asOf)
	var latest time.Time
	found := false
	for _, m := range movs {
		if !m.Locked || !m.IsSnapshot() {
			continue
		}
		d := DateOnly(m.Date)
		if d.After(asOf) {
			continue
		}
		if !found || d.After(latest) {
			latest, found = d, true
		}
	}
	return latest, found
}

// NetBaseline neto de todos los sobrantes menos faltantes con fecha ≤ baselineDate.
// Incluye todos los ajustes hasta esa fecha, no solo el último.
func NetBaseline(snapshots []entity.Movement, baselineDate time.Time) (decimal.Decimal, error) {
	baselineDate = DateOnly(baselineDate)
	net := decimal.Zero
	for _, s := range snapshots {
		if !s.IsSnapshot() || DateOnly(s.Date).After(baselineDate) {
			continue
		}
		c, err := ClassifyMovement(s)
		if err != nil {
			return decimal.Zero, err
		}
		net = net.Add(Signed(c))
	}
	return net, nil
}

// SortMovements orden total reproducible: fecha ascendente y luego secuencia de inserción.
func SortMovements(movs []entity.Movement) {
	sort.SliceStable(movs, func(i, j int) bool {
		di, dj := DateOnly(movs[i].Date), DateOnly(movs[j].Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return movs[i].Seq < movs[j].Seq
	})
}

// Reconstruct pliega la línea base y los movimientos posteriores hasta asOf.
// baselineDate nil significa que no hay toma física previa (centinela BeginningOfTime, cantidad 0).
// Los movimientos con fecha ≤ base o > asOf se descartan para no contarlos dos veces.
func Reconstruct(asOf time.Time, baselineDate *time.Time, snapshots, movements []entity.Movement) (Reconstruction, error) {
	asOf = DateOnly(asOf)
	base := Baseline{Date: entity.BeginningOfTime, Quantity: decimal.Zero}
	if baselineDate != nil {
		base.Date = DateOnly(*baselineDate)
		base.Found = true
		net, err := NetBaseline(snapshots, base.Date)
		if err != nil {
			return Reconstruction{}, err
		}
		base.Quantity = net
	}

	replay := make([]entity.Movement, 0, len(movements))
	for _, m := range movements {
		d := DateOnly(m.Date)
		if base.Found && !d.After(base.Date) {
			continue
		}
		if d.After(asOf) {
			continue
		}
		c, err := ClassifyMovement(m)
		if err != nil {
			return Reconstruction{}, err
		}
		replay = append(replay, c)
	}
	SortMovements(replay)

	out := Reconstruction{
		Baseline: base,
		Totals: Totals{
			Inbound: decimal.Zero, Outbound: decimal.Zero,
			Surplus: decimal.Zero, Deficit: decimal.Zero,
		},
		Entries: make([]entity.LedgerEntry, 0, len(replay)),
	}
	running := base.Quantity
	for _, m := range replay {
		switch m.Direction {
		case entity.DirectionIN:
			out.Totals.Inbound = out.Totals.Inbound.Add(m.Quantity)
		case entity.DirectionOUT:
			out.Totals.Outbound = out.Totals.Outbound.Add(m.Quantity)
		}
		switch m.Kind {
		case entity.MovementKindSurplus:
			out.Totals.Surplus = out.Totals.Surplus.Add(m.Quantity)
		case entity.MovementKindDeficit:
			out.Totals.Deficit = out.Totals.Deficit.Add(m.Quantity)
		}
		running = running.Add(Signed(m))
		out.Entries = append(out.Entries, entity.LedgerEntry{Movement: m, RunningBalance: running})
	}
	out.Balance = base.Quantity.Add(out.Totals.Inbound).Sub(out.Totals.Outbound)
	return out, nil
}

// ReconstructFromHistory variante que recibe toda la historia bloqueada y elige la base por sí misma.
func ReconstructFromHistory(asOf time.Time, history []entity.Movement) (Reconstruction, error) {
	var basePtr *time.Time
	if d, ok := LatestSnapshotDate(history, asOf); ok {
		basePtr = &d
	}
	var locked []entity.Movement
	for _, m := range history {
		if m.Locked {
			locked = append(locked, m)
		}
	}
	return Reconstruct(asOf, basePtr, locked, locked)
}
