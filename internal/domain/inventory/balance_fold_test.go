package inventory_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/inventory"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func mov(seq int64, date string, source entity.MovementSource, qty string) entity.Movement {
	return entity.Movement{
		StockKey: entity.StockKey{CompanyID: "c1", WarehouseID: "w1", ItemID: "x"},
		Seq:      seq,
		Date:     day(date),
		Source:   source,
		Quantity: d(qty),
		Locked:   true,
	}
}

// Escenario de referencia: sobrante 48 EA el 01-01, recepción de 2 BOX (=48 EA) el 01-10, salida 10 EA el 01-15.
func referenceHistory() []entity.Movement {
	return []entity.Movement{
		mov(1, "2024-01-01", entity.SourceStocktakingSurplus, "48"),
		mov(2, "2024-01-10", entity.SourceReceiptPermanent, "48"),
		mov(3, "2024-01-15", entity.SourceIssueConsumption, "10"),
	}
}

func TestReconstruct_EscenarioDeReferencia(t *testing.T) {
	r, err := inventory.ReconstructFromHistory(day("2024-01-20"), referenceHistory())
	require.NoError(t, err)

	assert.True(t, r.Baseline.Found)
	assert.Equal(t, day("2024-01-01"), r.Baseline.Date)
	assert.True(t, r.Baseline.Quantity.Equal(d("48")))
	assert.True(t, r.Totals.Inbound.Equal(d("48")))
	assert.True(t, r.Totals.Outbound.Equal(d("10")))
	assert.True(t, r.Balance.Equal(d("86")), "got %s", r.Balance)
	require.Len(t, r.Entries, 2)
	assert.True(t, r.Entries[0].RunningBalance.Equal(d("96")))
	assert.True(t, r.Entries[1].RunningBalance.Equal(d("86")))
}

func TestReconstruct_FechaIntermedia(t *testing.T) {
	r, err := inventory.ReconstructFromHistory(day("2024-01-12"), referenceHistory())
	require.NoError(t, err)
	assert.True(t, r.Balance.Equal(d("96")))

	r, err = inventory.ReconstructFromHistory(day("2023-12-31"), referenceHistory())
	require.NoError(t, err)
	assert.False(t, r.Baseline.Found)
	assert.Equal(t, entity.BeginningOfTime, r.Baseline.Date)
	assert.True(t, r.Balance.IsZero())
}

func TestReconstruct_SinTomaFisicaSumaTodaLaHistoria(t *testing.T) {
	history := []entity.Movement{
		mov(1, "2024-02-01", entity.SourceReceiptConsignment, "5"),
		mov(2, "2024-02-02", entity.SourceIssueConsignment, "2"),
		mov(3, "2024-02-03", entity.SourceIssuePermanent, "1"),
	}
	r, err := inventory.ReconstructFromHistory(day("2024-03-01"), history)
	require.NoError(t, err)
	assert.False(t, r.Baseline.Found)
	assert.True(t, r.Balance.Equal(d("2")))
}

func TestReconstruct_DominanciaDeLaBase(t *testing.T) {
	// Recepciones el mismo día o antes de la toma física no se repiten.
	history := []entity.Movement{
		mov(1, "2024-01-01", entity.SourceReceiptPermanent, "1000"),
		mov(2, "2024-01-05", entity.SourceReceiptPermanent, "7"),
		mov(3, "2024-01-05", entity.SourceStocktakingDeficit, "3"),
		mov(4, "2024-01-05", entity.SourceStocktakingSurplus, "20"),
		mov(5, "2024-01-06", entity.SourceIssuePermanent, "4"),
	}
	r, err := inventory.ReconstructFromHistory(day("2024-01-31"), history)
	require.NoError(t, err)
	assert.Equal(t, day("2024-01-05"), r.Baseline.Date)
	assert.True(t, r.Baseline.Quantity.Equal(d("17")), "neto de ajustes: 20 − 3")
	assert.True(t, r.Totals.Inbound.IsZero())
	assert.True(t, r.Balance.Equal(d("13")))

	// Aunque la fuente devuelva movimientos anteriores a la base, no se cuentan.
	base := day("2024-01-05")
	r2, err := inventory.Reconstruct(day("2024-01-31"), &base, history, history)
	require.NoError(t, err)
	assert.True(t, r2.Balance.Equal(r.Balance))
}

func TestReconstruct_AjustesHistoricosSeNetean(t *testing.T) {
	history := []entity.Movement{
		mov(1, "2023-06-01", entity.SourceStocktakingSurplus, "10"),
		mov(2, "2023-12-01", entity.SourceStocktakingSurplus, "5"),
		mov(3, "2023-12-10", entity.SourceReceiptPermanent, "100"),
	}
	r, err := inventory.ReconstructFromHistory(day("2024-01-01"), history)
	require.NoError(t, err)
	assert.True(t, r.Baseline.Quantity.Equal(d("15")))
	assert.True(t, r.Balance.Equal(d("115")))
}

func TestReconstruct_SurplusYDeficitPosterioresCuentanComoMovimientos(t *testing.T) {
	history := referenceHistory()
	history = append(history,
		mov(4, "2024-01-25", entity.SourceStocktakingDeficit, "6"),
		mov(5, "2024-01-25", entity.SourceStocktakingSurplus, "1"),
		mov(6, "2024-01-26", entity.SourceReceiptPermanent, "10"),
	)
	// Al 24-01 la base sigue siendo 01-01.
	r, err := inventory.ReconstructFromHistory(day("2024-01-24"), history)
	require.NoError(t, err)
	assert.True(t, r.Balance.Equal(d("86")))

	// Al 31-01 la base pasa a 25-01: neto de todos los ajustes ≤ 25-01 = 48 − 6 + 1.
	r, err = inventory.ReconstructFromHistory(day("2024-01-31"), history)
	require.NoError(t, err)
	assert.Equal(t, day("2024-01-25"), r.Baseline.Date)
	assert.True(t, r.Baseline.Quantity.Equal(d("43")))
	assert.True(t, r.Balance.Equal(d("53")))
}

func TestReconstruct_OrdenEstableYRepetible(t *testing.T) {
	history := []entity.Movement{
		mov(30, "2024-01-02", entity.SourceIssuePermanent, "1"),
		mov(10, "2024-01-02", entity.SourceReceiptPermanent, "5"),
		mov(20, "2024-01-01", entity.SourceReceiptPermanent, "2"),
	}
	first, err := inventory.ReconstructFromHistory(day("2024-01-31"), history)
	require.NoError(t, err)
	second, err := inventory.ReconstructFromHistory(day("2024-01-31"), history)
	require.NoError(t, err)

	require.Len(t, first.Entries, 3)
	assert.Equal(t, []int64{20, 10, 30}, []int64{first.Entries[0].Seq, first.Entries[1].Seq, first.Entries[2].Seq})
	assert.Equal(t, first, second, "dos ejecuciones con los mismos datos deben ser idénticas")
}

func TestReconstruct_IgnoraDocumentosNoBloqueadosEnHistoria(t *testing.T) {
	history := referenceHistory()
	draft := mov(9, "2024-01-16", entity.SourceReceiptPermanent, "999")
	draft.Locked = false
	history = append(history, draft)

	r, err := inventory.ReconstructFromHistory(day("2024-01-20"), history)
	require.NoError(t, err)
	assert.True(t, r.Balance.Equal(d("86")))
}

func TestClassifyMovement(t *testing.T) {
	cases := map[entity.MovementSource]entity.Direction{
		entity.SourceReceiptPermanent:   entity.DirectionIN,
		entity.SourceReceiptConsignment: entity.DirectionIN,
		entity.SourceStocktakingSurplus: entity.DirectionIN,
		entity.SourceIssuePermanent:     entity.DirectionOUT,
		entity.SourceIssueConsumption:   entity.DirectionOUT,
		entity.SourceIssueConsignment:   entity.DirectionOUT,
		entity.SourceStocktakingDeficit: entity.DirectionOUT,
	}
	for source, want := range cases {
		m, err := inventory.ClassifyMovement(mov(1, "2024-01-01", source, "1"))
		require.NoError(t, err, source)
		assert.Equal(t, want, m.Direction, source)
	}

	unlocked := mov(1, "2024-01-01", entity.SourceReceiptPermanent, "1")
	unlocked.Locked = false
	_, err := inventory.ClassifyMovement(unlocked)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = inventory.ClassifyMovement(mov(1, "2024-01-01", "transfer", "1"))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
