package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestParseRows(t *testing.T) {
	in := "item_id;from_unit;to_unit;from_quantity;to_quantity\n" +
		"i1; box ;EA;1;12\n" +
		"i1;PALLET;BOX;1;80\n" +
		"i2;KG;G;0,5;500\n"

	rows, err := parseRows(strings.NewReader(in), "c1", ';', ',')
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "c1", rows[0].CompanyID)
	assert.Equal(t, "i1", rows[0].ItemID)
	assert.Equal(t, "box ", rows[0].FromUnit) // el caso de uso normaliza mayúsculas y espacios
	assert.True(t, rows[0].ToQuantity.Equal(decimal.NewFromInt(12)))
	assert.True(t, rows[2].FromQuantity.Equal(decimal.RequireFromString("0.5")))
}

func TestParseRows_Errores(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"encabezado", "item;from;to;a;b\ni1;BOX;EA;1;12\n"},
		{"columnas", "item_id;from_unit;to_unit;from_quantity;to_quantity\ni1;BOX;EA;1\n"},
		{"cantidad", "item_id;from_unit;to_unit;from_quantity;to_quantity\ni1;BOX;EA;uno;12\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseRows(strings.NewReader(tt.in), "c1", ';', ',')
			assert.Error(t, err)
		})
	}

	rows, err := parseRows(strings.NewReader(""), "c1", ',', '.')
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseRows_SeparadorDecimal(t *testing.T) {
	const hdr = "item_id;from_unit;to_unit;from_quantity;to_quantity\n"

	rows, err := parseRows(strings.NewReader(hdr+"i1;BOX;EA;1;1000.5\n"), "c1", ';', '.')
	require.NoError(t, err)
	assert.True(t, rows[0].ToQuantity.Equal(decimal.RequireFromString("1000.5")))

	// Miles con coma no se aceptan como decimal.
	_, err = parseRows(strings.NewReader(hdr+"i1;BOX;EA;1;1,000\n"), "c1", ';', '.')
	assert.Error(t, err)

	_, err = parseRows(strings.NewReader(hdr+"i1;BOX;EA;1;1.000,5\n"), "c1", ';', ',')
	assert.Error(t, err)
	_, err = parseRows(strings.NewReader(hdr+"i1;BOX;EA;1;1,000,5\n"), "c1", ';', ',')
	assert.Error(t, err)
}

func TestDecodeReader_Latin1(t *testing.T) {
	raw, err := charmap.ISO8859_1.NewEncoder().String("item_id,from_unit,to_unit,from_quantity,to_quantity\ni1,CAJÓN,UND,1,6\n")
	require.NoError(t, err)

	r, err := decodeReader(bytes.NewReader([]byte(raw)), "ISO-8859-1")
	require.NoError(t, err)
	rows, err := parseRows(r, "c1", ',', '.')
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "CAJÓN", rows[0].FromUnit)

	_, err = decodeReader(io.MultiReader(), "ebcdic")
	assert.Error(t, err)
}
