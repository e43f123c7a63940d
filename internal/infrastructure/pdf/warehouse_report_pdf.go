// Package pdf genera la representación gráfica del reporte de saldos por bodega.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Bodega (código + nombre)  │  Fecha de corte         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Ítem | Unidad | Base | Entradas | Salidas | Saldo │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                        │
//	│  ÍTEMS NO CALCULADOS (si hubo fallos)                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/inventario-ledger/internal/application/ledger"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

var _ ledger.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa ledger.ReportPDFGenerator con Maroto v2.
type MarotoReportGenerator struct {
	printer *message.Printer
}

// NewMarotoReportGenerator construye el generador; locale define los separadores (ej. es-CO → 1.234,5).
func NewMarotoReportGenerator(locale string) *MarotoReportGenerator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Spanish
	}
	return &MarotoReportGenerator{printer: message.NewPrinter(tag)}
}

// GenerateWarehouseReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateWarehouseReportPDF(_ context.Context, report *entity.WarehouseReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Saldos por bodega", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, b := range report.Rows {
		m.AddRows(g.balanceRow(b))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalRow(report))

	if len(report.Failures) > 0 {
		m.AddRows(line.NewRow(3))
		for _, r := range failureRows(report.Failures) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report *entity.WarehouseReport) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(nonEmpty(report.WarehouseName, report.WarehouseID), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Bodega "+nonEmpty(report.WarehouseCode, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("SALDOS DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Corte: "+report.AsOfDate.Format("02/01/2006"), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Ítem", 3, align.Left),
		h("Unidad", 1, align.Center),
		h("Base", 1, align.Center),
		h("Cant. base", 1, align.Right),
		h("Entradas", 1, align.Right),
		h("Salidas", 1, align.Right),
		h("Saldo", 2, align.Right),
	)
}

func (g *MarotoReportGenerator) balanceRow(b entity.Balance) core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	base := "—"
	if b.HasBaseline {
		base = b.BaselineDate.Format("02/01/2006")
	}
	return row.New(6).Add(
		cell(b.ItemCode, 2, align.Left),
		cell(b.ItemName, 3, align.Left),
		cell(b.CanonicalUnit, 1, align.Center),
		cell(base, 1, align.Center),
		cell(g.formatQty(b.BaselineQuantity), 1, align.Right),
		cell(g.formatQty(b.ReceiptsTotal), 1, align.Right),
		cell(g.formatQty(b.IssuesTotal), 1, align.Right),
		cell(g.formatQty(b.CurrentBalance), 2, align.Right),
	)
}

func (g *MarotoReportGenerator) totalRow(report *entity.WarehouseReport) core.Row {
	return row.New(8).Add(
		col.New(10).Add(text.New(fmt.Sprintf("TOTAL (%d ítems):", len(report.Rows)), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 1,
		})),
		col.New(2).Add(text.New(g.formatQty(report.TotalBalance), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Right: 1, Top: 1,
		})),
	)
}

func failureRows(failures []entity.ItemFailure) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(text.New("ÍTEMS NO CALCULADOS", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorDanger, Top: 1,
		}))),
	}
	for _, f := range failures {
		rows = append(rows, row.New(5).Add(
			col.New(2).Add(text.New(nonEmpty(f.ItemCode, f.ItemID), props.Text{Size: 7, Top: 0.5})),
			col.New(10).Add(text.New(f.Error, props.Text{Size: 7, Color: colorGray, Top: 0.5})),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatQty formatea una cantidad con los separadores del locale. Solo para mostrar.
func (g *MarotoReportGenerator) formatQty(d decimal.Decimal) string {
	return g.printer.Sprintf("%v", number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(6)))
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
