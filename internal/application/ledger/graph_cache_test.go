package ledger

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

func TestGraphProvider_ReutilizaMientrasNoCambieLaVersion(t *testing.T) {
	items, edges := normalizeFixture()
	p := NewGraphProvider(edges, true)
	item := items.items[0]
	ctx := context.Background()

	g1, err := p.Graph(ctx, item)
	require.NoError(t, err)
	g2, err := p.Graph(ctx, item)
	require.NoError(t, err)
	assert.Same(t, g1, g2)
	assert.Equal(t, 1, edges.readCount())
	assert.Len(t, p.Edges("c1", "x"), 3)

	bumped := *item
	bumped.Version++
	g3, err := p.Graph(ctx, &bumped)
	require.NoError(t, err)
	assert.NotSame(t, g1, g3)
	assert.Equal(t, 2, edges.readCount())
}

func TestGraphProvider_NoReemplazaVersionMasNueva(t *testing.T) {
	items, edges := normalizeFixture()
	p := NewGraphProvider(edges, true)
	ctx := context.Background()

	newer := *items.items[0]
	newer.Version = 5
	older := *items.items[0]
	older.Version = 4

	g1, err := p.Graph(ctx, &newer)
	require.NoError(t, err)
	_, err = p.Graph(ctx, &older)
	require.NoError(t, err)
	assert.Equal(t, 2, edges.readCount())

	g2, err := p.Graph(ctx, &newer)
	require.NoError(t, err)
	assert.Same(t, g1, g2, "la versión 5 sigue en cache")
	assert.Equal(t, 2, edges.readCount())
}

func TestGraphProvider_Invalidate(t *testing.T) {
	items, edges := normalizeFixture()
	p := NewGraphProvider(edges, true)
	item := items.items[0]
	ctx := context.Background()

	_, err := p.Graph(ctx, item)
	require.NoError(t, err)
	p.Invalidate("c1", "x")
	assert.Nil(t, p.Edges("c1", "x"))

	edges.edges["x"] = append(edges.edges["x"], entity.UnitConversionEdge{
		ItemID: "x", FromUnit: "KG", ToUnit: "EA", FromQuantity: d("1"), ToQuantity: d("2"),
	})
	g, err := p.Graph(ctx, item)
	require.NoError(t, err)
	f, ok := g.Factor("G")
	require.True(t, ok, "la nueva arista conecta G con EA")
	assert.True(t, f.Equal(d("0.002")))
}

func TestGraphProvider_SinCacheSiempreLee(t *testing.T) {
	items, edges := normalizeFixture()
	p := NewGraphProvider(edges, false)
	for i := 0; i < 3; i++ {
		_, err := p.Graph(context.Background(), items.items[0])
		require.NoError(t, err)
	}
	assert.Equal(t, 3, edges.readCount())
	assert.Nil(t, p.Edges("c1", "x"))
}

func TestGraphProvider_CompactaLaArena(t *testing.T) {
	edges := newFakeEdges()
	p := NewGraphProvider(edges, true)
	ctx := context.Background()

	var items []*entity.Item
	for i := 0; i < 40; i++ {
		id := fmt.Sprintf("it%02d", i)
		edges.edges[id] = []entity.UnitConversionEdge{
			{ItemID: id, FromUnit: "BOX", ToUnit: "EA", FromQuantity: d("1"), ToQuantity: d("12")},
			{ItemID: id, FromUnit: "CASE", ToUnit: "BOX", FromQuantity: d("1"), ToQuantity: d("4")},
		}
		it := &entity.Item{ID: id, CompanyID: "c1", CanonicalUnit: "EA"}
		items = append(items, it)
		_, err := p.Graph(ctx, it)
		require.NoError(t, err)
	}
	for _, it := range items[:20] {
		p.Invalidate("c1", it.ID)
	}

	p.mu.Lock()
	arenaLen, live := len(p.arena), p.live
	p.mu.Unlock()
	assert.Equal(t, 40, live)
	assert.Equal(t, live, arenaLen, "la arena se reescribe al quedar mayormente obsoleta")

	for _, it := range items[20:] {
		got := p.Edges("c1", it.ID)
		require.Len(t, got, 2)
		assert.Equal(t, it.ID, got[0].ItemID)
	}
}
