package inventory_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/inventory"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func edge(from, fromQty, to, toQty string) entity.UnitConversionEdge {
	return entity.UnitConversionEdge{FromUnit: from, FromQuantity: d(fromQty), ToUnit: to, ToQuantity: d(toQty)}
}

// Grafo de prueba: 1 PALLET = 40 BOX, 1 BOX = 24 EA, 1 KG = 1000 G (componente desconectado).
func sampleGraph() *inventory.UnitGraph {
	return inventory.NewUnitGraph("EA", "BOX", []entity.UnitConversionEdge{
		edge("PALLET", "1", "BOX", "40"),
		edge("BOX", "1", "EA", "24"),
		edge("KG", "1", "G", "1000"),
	})
}

func TestUnitGraph_FactorCanonicalEsUno(t *testing.T) {
	g := sampleGraph()
	f, ok := g.Factor("EA")
	require.True(t, ok)
	assert.True(t, f.Equal(decimal.NewFromInt(1)))

	// Sin aristas también debe ser 1.
	empty := inventory.NewUnitGraph("EA", "", nil)
	f, ok = empty.Factor("EA")
	require.True(t, ok)
	assert.True(t, f.Equal(decimal.NewFromInt(1)))
}

func TestUnitGraph_FactorDirectoEInverso(t *testing.T) {
	g := sampleGraph()

	f, ok := g.Factor("BOX")
	require.True(t, ok)
	assert.True(t, f.Equal(d("24")), "1 BOX = 24 EA, got %s", f)

	f, ok = g.Factor("PALLET")
	require.True(t, ok)
	assert.True(t, f.Equal(d("960")), "1 PALLET = 960 EA, got %s", f)
}

func TestUnitGraph_AristaEnSentidoContrario(t *testing.T) {
	// La arista está declarada EA → BOX; la búsqueda debe usar el arco inverso.
	g := inventory.NewUnitGraph("BOX", "", []entity.UnitConversionEdge{edge("BOX", "1", "EA", "12")})
	f, ok := g.Factor("EA")
	require.True(t, ok)
	assert.True(t, f.Mul(d("12")).Round(12).Equal(decimal.NewFromInt(1)), "12 EA = 1 BOX, got %s", f)
}

func TestUnitGraph_SinRuta(t *testing.T) {
	g := sampleGraph()
	_, ok := g.Factor("KG")
	assert.False(t, ok, "KG no está conectado con EA")
	_, ok = g.Factor("LITRO")
	assert.False(t, ok)
}

func TestUnitGraph_ToleraCiclos(t *testing.T) {
	g := inventory.NewUnitGraph("EA", "", []entity.UnitConversionEdge{
		edge("A", "1", "B", "2"),
		edge("B", "1", "C", "3"),
		edge("C", "1", "A", "1"), // ciclo inconsistente a propósito
		edge("X", "1", "Y", "5"),
	})
	_, ok := g.Factor("A")
	assert.False(t, ok, "un ciclo sin salida no debe colgar la búsqueda")
}

func TestUnitGraph_IgnoraAristasNoPositivas(t *testing.T) {
	g := inventory.NewUnitGraph("EA", "", []entity.UnitConversionEdge{
		edge("BOX", "0", "EA", "24"),
	})
	assert.True(t, g.Allows("BOX"), "la unidad sigue siendo permitida")
	_, ok := g.Factor("BOX")
	assert.False(t, ok, "la arista inválida no aporta ruta")
}

func TestUnitGraph_Units(t *testing.T) {
	g := sampleGraph()
	assert.Equal(t, []string{"EA", "BOX", "PALLET", "KG", "G"}, g.Units())

	fallback := inventory.NewUnitGraph("", "", nil)
	assert.Equal(t, []string{entity.DefaultUnit}, fallback.Units())
	assert.Equal(t, entity.DefaultUnit, fallback.CanonicalUnit())
}

func TestConversionResolver_EstrictoVsPermisivo(t *testing.T) {
	g := sampleGraph()

	strict := inventory.NewConversionResolver(true)
	_, err := strict.Factor(g, "KG")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConversionPathNotFound))

	permissive := inventory.NewConversionResolver(false)
	res, err := permissive.Resolve(g, "KG")
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.True(t, res.Factor.Equal(decimal.NewFromInt(1)))
}

func TestConversionResolver_IdaYVuelta(t *testing.T) {
	g := inventory.NewUnitGraph("G", "", []entity.UnitConversionEdge{
		edge("KG", "1", "G", "1000"),
		edge("LB", "1", "G", "453.59237"),
		edge("OZ", "16", "LB", "1"),
	})
	r := inventory.NewConversionResolver(true)
	for _, unit := range []string{"G", "KG", "LB", "OZ"} {
		for _, qty := range []string{"1", "3.5", "0.125", "1234.567891"} {
			canonical, err := r.ToCanonical(g, unit, d(qty))
			require.NoError(t, err)
			back, err := r.FromCanonical(g, unit, canonical)
			require.NoError(t, err)
			assert.True(t, back.Round(6).Equal(d(qty)), "%s %s → %s → %s", qty, unit, canonical, back)
		}
	}
}

func TestConversionResolver_InversionDePrecio(t *testing.T) {
	g := inventory.NewUnitGraph("EA", "", []entity.UnitConversionEdge{edge("BOX", "1", "EA", "1000")})
	r := inventory.NewConversionResolver(true)
	price, err := r.PriceToCanonical(g, "BOX", d("100000"))
	require.NoError(t, err)
	assert.True(t, price.Equal(d("100")), "precio por EA debe ser 100, got %s", price)
}
