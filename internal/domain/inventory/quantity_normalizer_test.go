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

func ptr(v decimal.Decimal) *decimal.Decimal { return &v }

func boxGraph() *inventory.UnitGraph {
	return inventory.NewUnitGraph("EA", "", []entity.UnitConversionEdge{edge("BOX", "1", "EA", "1000")})
}

func TestQuantityNormalizer_CantidadYPrecioEnMismaUnidad(t *testing.T) {
	n := inventory.NewQuantityNormalizer(inventory.NewConversionResolver(true))
	out, err := n.Normalize(boxGraph(), entity.LineEntry{
		ItemID:           "item-1",
		EnteredUnit:      "BOX",
		EnteredQuantity:  d("2"),
		EnteredUnitPrice: ptr(d("100000")),
	})
	require.NoError(t, err)

	assert.Equal(t, "EA", out.CanonicalUnit)
	assert.True(t, out.CanonicalQuantity.Equal(d("2000")))
	require.NotNil(t, out.CanonicalUnitPrice)
	assert.True(t, out.CanonicalUnitPrice.Equal(d("100")))
	assert.True(t, out.LineTotal().Equal(d("200000")), "el total de la línea no cambia al normalizar")

	// Lo digitado se conserva intacto.
	assert.Equal(t, "BOX", out.EnteredUnit)
	assert.True(t, out.EnteredQuantity.Equal(d("2")))
	assert.True(t, out.EnteredUnitPrice.Equal(d("100000")))
	assert.Equal(t, "", out.EnteredPriceUnit)
}

func TestQuantityNormalizer_PrecioEnOtraUnidad(t *testing.T) {
	n := inventory.NewQuantityNormalizer(inventory.NewConversionResolver(true))
	out, err := n.Normalize(boxGraph(), entity.LineEntry{
		EnteredUnit:      "EA",
		EnteredQuantity:  d("500"),
		EnteredUnitPrice: ptr(d("100000")),
		EnteredPriceUnit: "BOX",
	})
	require.NoError(t, err)
	assert.True(t, out.CanonicalQuantity.Equal(d("500")))
	assert.True(t, out.QuantityFactor.Equal(decimal.NewFromInt(1)))
	assert.True(t, out.PriceFactor.Equal(d("1000")))
	assert.True(t, out.CanonicalUnitPrice.Equal(d("100")))
	assert.Equal(t, "BOX", out.EnteredPriceUnit)
}

func TestQuantityNormalizer_UnidadSinDistinguirMayusculas(t *testing.T) {
	n := inventory.NewQuantityNormalizer(inventory.NewConversionResolver(true))
	out, err := n.Normalize(boxGraph(), entity.LineEntry{
		EnteredUnit:      " box ",
		EnteredQuantity:  d("3"),
		EnteredUnitPrice: ptr(d("50")),
		EnteredPriceUnit: "ea",
	})
	require.NoError(t, err)
	assert.Equal(t, "BOX", out.EnteredUnit)
	assert.Equal(t, "EA", out.EnteredPriceUnit)
	assert.True(t, out.CanonicalQuantity.Equal(d("3000")))
	assert.True(t, out.CanonicalUnitPrice.Equal(d("50")))
}

func TestQuantityNormalizer_UnidadVaciaUsaCanonica(t *testing.T) {
	n := inventory.NewQuantityNormalizer(inventory.NewConversionResolver(true))
	out, err := n.Normalize(boxGraph(), entity.LineEntry{EnteredQuantity: d("7")})
	require.NoError(t, err)
	assert.Equal(t, "EA", out.EnteredUnit)
	assert.True(t, out.CanonicalQuantity.Equal(d("7")))
	assert.Nil(t, out.CanonicalUnitPrice)
}

func TestQuantityNormalizer_Errores(t *testing.T) {
	n := inventory.NewQuantityNormalizer(inventory.NewConversionResolver(true))
	g := inventory.NewUnitGraph("EA", "", []entity.UnitConversionEdge{
		edge("BOX", "1", "EA", "24"),
		edge("KG", "1", "G", "1000"),
	})

	cases := []struct {
		name string
		in   entity.LineEntry
		want error
	}{
		{"cantidad cero", entity.LineEntry{EnteredUnit: "EA", EnteredQuantity: decimal.Zero}, domain.ErrInvalidQuantity},
		{"cantidad negativa", entity.LineEntry{EnteredUnit: "EA", EnteredQuantity: d("-1")}, domain.ErrInvalidQuantity},
		{"precio negativo", entity.LineEntry{EnteredUnit: "EA", EnteredQuantity: d("1"), EnteredUnitPrice: ptr(d("-5"))}, domain.ErrInvalidQuantity},
		{"unidad no configurada", entity.LineEntry{EnteredUnit: "PALLET", EnteredQuantity: d("1")}, domain.ErrUnitNotConfigured},
		{"unidad de precio no configurada", entity.LineEntry{EnteredUnit: "EA", EnteredQuantity: d("1"), EnteredUnitPrice: ptr(d("1")), EnteredPriceUnit: "PALLET"}, domain.ErrUnitNotConfigured},
		{"unidad desconectada", entity.LineEntry{EnteredUnit: "KG", EnteredQuantity: d("1")}, domain.ErrConversionPathNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := n.Normalize(g, tc.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestQuantityNormalizer_PermisivoAsumeFactorUno(t *testing.T) {
	n := inventory.NewQuantityNormalizer(inventory.NewConversionResolver(false))
	g := inventory.NewUnitGraph("EA", "", []entity.UnitConversionEdge{edge("KG", "1", "G", "1000")})
	out, err := n.Normalize(g, entity.LineEntry{EnteredUnit: "KG", EnteredQuantity: d("3")})
	require.NoError(t, err)
	assert.True(t, out.CanonicalQuantity.Equal(d("3")))
}
