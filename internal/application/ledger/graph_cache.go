package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

type graphKey struct {
	companyID string
	itemID    string
}

// graphSlot índice de un ítem dentro de la arena de aristas.
type graphSlot struct {
	version    int64
	start, end int
	graph      *inventory.UnitGraph
}

// GraphProvider entrega el grafo de conversiones de un ítem.
// Con cache activo guarda las aristas en una arena plana indexada por ítem y reconstruye el grafo
// de forma perezosa cuando cambia Item.Version o tras Invalidate. Sin cache lo construye en cada llamada.
type GraphProvider struct {
	edges   repository.UnitConversionRepository
	enabled bool

	mu    sync.Mutex
	arena []entity.UnitConversionEdge
	index map[graphKey]graphSlot
	live  int
}

// NewGraphProvider construye el proveedor.
func NewGraphProvider(edges repository.UnitConversionRepository, cacheEnabled bool) *GraphProvider {
	return &GraphProvider{
		edges:   edges,
		enabled: cacheEnabled,
		index:   make(map[graphKey]graphSlot),
	}
}

// Graph devuelve el grafo del ítem, reutilizando el cacheado si la versión coincide.
func (p *GraphProvider) Graph(ctx context.Context, item *entity.Item) (*inventory.UnitGraph, error) {
	key := graphKey{companyID: item.CompanyID, itemID: item.ID}
	if p.enabled {
		p.mu.Lock()
		slot, ok := p.index[key]
		p.mu.Unlock()
		if ok && slot.version == item.Version {
			return slot.graph, nil
		}
	}

	edges, err := p.edges.ListByItem(ctx, item.CompanyID, item.ID)
	if err != nil {
		return nil, fmt.Errorf("conversiones del ítem %s: %w", item.ID, err)
	}
	g := inventory.NewItemGraph(item, edges)
	if !p.enabled {
		return g, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	old, ok := p.index[key]
	if ok && old.version > item.Version {
		// otra llamada ya cacheó una versión más nueva
		return g, nil
	}
	if ok {
		p.live -= old.end - old.start
	}
	start := len(p.arena)
	p.arena = append(p.arena, edges...)
	p.index[key] = graphSlot{version: item.Version, start: start, end: len(p.arena), graph: g}
	p.live += len(edges)
	p.compactLocked()
	return g, nil
}

// Invalidate descarta el grafo cacheado de un ítem (llamar cuando cambian sus aristas).
func (p *GraphProvider) Invalidate(companyID, itemID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	key := graphKey{companyID: companyID, itemID: itemID}
	if old, ok := p.index[key]; ok {
		p.live -= old.end - old.start
		delete(p.index, key)
	}
	p.compactLocked()
}

// Edges copia de las aristas cacheadas de un ítem (nil si no está en cache).
func (p *GraphProvider) Edges(companyID, itemID string) []entity.UnitConversionEdge {
	p.mu.Lock()
	defer p.mu.Unlock()
	slot, ok := p.index[graphKey{companyID: companyID, itemID: itemID}]
	if !ok {
		return nil
	}
	out := make([]entity.UnitConversionEdge, slot.end-slot.start)
	copy(out, p.arena[slot.start:slot.end])
	return out
}

// compactLocked reescribe la arena cuando más de la mitad de sus aristas están obsoletas.
func (p *GraphProvider) compactLocked() {
	if len(p.arena) < 64 || p.live*2 > len(p.arena) {
		return
	}
	arena := make([]entity.UnitConversionEdge, 0, p.live)
	for k, slot := range p.index {
		start := len(arena)
		arena = append(arena, p.arena[slot.start:slot.end]...)
		slot.start, slot.end = start, len(arena)
		p.index[k] = slot
	}
	p.arena = arena
}
