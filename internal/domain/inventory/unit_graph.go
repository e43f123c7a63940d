package inventory

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// ConversionScale decimales usados en las divisiones de conversión (6 de almacenamiento + 12 de guarda).
const ConversionScale int32 = 18

// NormalizeUnit código de unidad en mayúsculas y sin espacios alrededor.
func NormalizeUnit(unit string) string {
	return strings.ToUpper(strings.TrimSpace(unit))
}

// arc arista dirigida: 1 unidad del origen equivale a ratio unidades de to.
type arc struct {
	to    string
	ratio decimal.Decimal
}

// UnitGraph grafo de conversiones de un ítem. Cada arista no dirigida aporta dos arcos:
// from→to con to_qty/from_qty y to→from con from_qty/to_qty.
type UnitGraph struct {
	canonical string
	reporting string
	adj       map[string][]arc
	units     []string
}

// NewUnitGraph construye el grafo para un ítem. Se ignoran aristas con cantidades no positivas.
func NewUnitGraph(canonicalUnit, reportingUnit string, edges []entity.UnitConversionEdge) *UnitGraph {
	g := &UnitGraph{
		canonical: canonicalUnit,
		reporting: reportingUnit,
		adj:       make(map[string][]arc, len(edges)*2),
	}
	g.addUnit(canonicalUnit)
	g.addUnit(reportingUnit)
	for _, e := range edges {
		g.addUnit(e.FromUnit)
		g.addUnit(e.ToUnit)
		if !e.Valid() {
			continue
		}
		g.adj[e.FromUnit] = append(g.adj[e.FromUnit], arc{to: e.ToUnit, ratio: e.ToQuantity.DivRound(e.FromQuantity, ConversionScale)})
		g.adj[e.ToUnit] = append(g.adj[e.ToUnit], arc{to: e.FromUnit, ratio: e.FromQuantity.DivRound(e.ToQuantity, ConversionScale)})
	}
	if len(g.units) == 0 {
		g.canonical = entity.DefaultUnit
		g.units = []string{entity.DefaultUnit}
	}
	return g
}

// NewItemGraph atajo para construir el grafo desde el ítem.
func NewItemGraph(item *entity.Item, edges []entity.UnitConversionEdge) *UnitGraph {
	return NewUnitGraph(item.BaseUnit(), item.ReportingUnit, edges)
}

func (g *UnitGraph) addUnit(code string) {
	if code == "" {
		return
	}
	for _, u := range g.units {
		if u == code {
			return
		}
	}
	g.units = append(g.units, code)
}

// CanonicalUnit unidad base del ítem.
func (g *UnitGraph) CanonicalUnit() string { return g.canonical }

// Units conjunto de unidades permitidas: canónica, de reporte y toda unidad presente en alguna arista.
func (g *UnitGraph) Units() []string {
	out := make([]string, len(g.units))
	copy(out, g.units)
	return out
}

// Allows indica si la unidad pertenece al conjunto permitido del ítem.
func (g *UnitGraph) Allows(unit string) bool {
	for _, u := range g.units {
		if u == unit {
			return true
		}
	}
	return false
}

// Factor busca en anchura (BFS) desde unit hasta la unidad canónica acumulando el producto de ratios.
// Devuelve f tal que cantidad_canónica = cantidad × f. La primera ruta que llega gana.
// El segundo valor es false si no hay ruta.
func (g *UnitGraph) Factor(unit string) (decimal.Decimal, bool) {
	if unit == "" || unit == g.canonical {
		return decimal.NewFromInt(1), true
	}

	type step struct {
		unit   string
		factor decimal.Decimal
	}
	visited := map[string]bool{}
	queue := []step{{unit: unit, factor: decimal.NewFromInt(1)}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.unit == g.canonical {
			return cur.factor, true
		}
		if visited[cur.unit] {
			continue
		}
		visited[cur.unit] = true
		for _, a := range g.adj[cur.unit] {
			if visited[a.to] {
				continue
			}
			queue = append(queue, step{unit: a.to, factor: cur.factor.Mul(a.ratio)})
		}
	}
	return decimal.Zero, false
}
