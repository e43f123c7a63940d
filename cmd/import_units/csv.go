package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/inventario-ledger/internal/application/ledger"
)

var header = []string{"item_id", "from_unit", "to_unit", "from_quantity", "to_quantity"}

// decodeReader envuelve r para entregar UTF-8.
func decodeReader(r io.Reader, charset string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "utf-8", "utf8":
		return r, nil
	case "iso-8859-1", "iso8859-1", "latin1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	}
	return nil, fmt.Errorf("charset no soportado: %s", charset)
}

// parseRows lee el CSV completo. decimalSep ('.' o ',') es el único separador aceptado en las cantidades;
// no se admiten separadores de miles.
func parseRows(r io.Reader, companyID string, sep, decimalSep rune) ([]ledger.ConversionInput, error) {
	cr := csv.NewReader(r)
	cr.Comma = sep
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = len(header)

	first, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	for i, h := range header {
		if !strings.EqualFold(strings.TrimPrefix(strings.TrimSpace(first[i]), "\ufeff"), h) {
			return nil, fmt.Errorf("encabezado inválido: se esperaba %s", strings.Join(header, string(sep)))
		}
	}

	var out []ledger.ConversionInput
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		from, err := parseQty(rec[3], decimalSep)
		if err != nil {
			return nil, fmt.Errorf("línea %d: from_quantity: %w", line, err)
		}
		to, err := parseQty(rec[4], decimalSep)
		if err != nil {
			return nil, fmt.Errorf("línea %d: to_quantity: %w", line, err)
		}
		out = append(out, ledger.ConversionInput{
			CompanyID:    companyID,
			ItemID:       strings.TrimSpace(rec[0]),
			FromUnit:     rec[1],
			ToUnit:       rec[2],
			FromQuantity: from,
			ToQuantity:   to,
		})
	}
	return out, nil
}

func parseQty(s string, decimalSep rune) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	switch decimalSep {
	case '.':
		if strings.Contains(s, ",") {
			return decimal.Decimal{}, fmt.Errorf("%q: separador decimal esperado '.'", s)
		}
	case ',':
		if strings.Contains(s, ".") || strings.Count(s, ",") > 1 {
			return decimal.Decimal{}, fmt.Errorf("%q: separador decimal esperado ','", s)
		}
		s = strings.Replace(s, ",", ".", 1)
	default:
		return decimal.Decimal{}, fmt.Errorf("separador decimal no soportado: %q", decimalSep)
	}
	return decimal.NewFromString(s)
}
