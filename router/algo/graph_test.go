package algo_test

import (
	"testing"

	"git.fiblab.net/sim/tripplanner/router/algo"
	"github.com/stretchr/testify/assert"
)

func TestEdgeTotalTime(t *testing.T) {
	e := algo.NewEdge(was, algo.ModeAmtrakAcela, 38, 10, 24.5, 0)
	assert.Equal(t, 48, e.TotalTime())
	assert.Equal(t, e.TravelTime()+e.WaitTime(), e.TotalTime())

	g := sampleGraph(t)
	for _, loc := range g.Locations() {
		edges, err := g.Neighbors(loc)
		assert.NoError(t, err)
		for _, e := range edges {
			assert.Equal(t, e.TravelTime()+e.WaitTime(), e.TotalTime(), "%v", e)
		}
	}
}

func TestGraphNeighborsOrder(t *testing.T) {
	g := sampleGraph(t)
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 19, g.EdgeCount())
	assert.Equal(t, []algo.Location{home, bal, was, ncr, ros, arl}, g.Locations())

	edges, err := g.Neighbors(ros)
	assert.NoError(t, err)
	assert.Len(t, edges, 2)
	assert.Equal(t, algo.ModeWalk, edges[0].Mode())
	assert.Equal(t, algo.ModePersonalBike, edges[1].Mode())

	edges, err = g.Neighbors(arl)
	assert.NoError(t, err)
	assert.Empty(t, edges)
}

func TestGraphIntegrity(t *testing.T) {
	_, err := algo.NewGraph(
		algo.NewVertex(home, algo.NewEdge("Nowhere", algo.ModeWalk, 1, 0, 0, 0)),
	)
	assert.ErrorIs(t, err, algo.ErrUnknownLocation)
	var integrity *algo.GraphIntegrityError
	if assert.ErrorAs(t, err, &integrity) {
		assert.Equal(t, algo.Location("Nowhere"), integrity.Location)
		assert.Equal(t, home, integrity.Referrer)
	}

	_, err = algo.NewGraph(algo.NewVertex(home), algo.NewVertex(home))
	assert.ErrorIs(t, err, algo.ErrDuplicateLocation)

	g := sampleGraph(t)
	_, err = g.Neighbors("Nowhere")
	assert.ErrorIs(t, err, algo.ErrUnknownLocation)
	assert.False(t, g.Has("Nowhere"))
	assert.True(t, g.Has(home))
}

func TestModeFromString(t *testing.T) {
	for _, m := range algo.Modes() {
		parsed, err := algo.ModeFromString(m.String())
		assert.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
	m, err := algo.ModeFromString(" Amtrak_Acela ")
	assert.NoError(t, err)
	assert.Equal(t, algo.ModeAmtrakAcela, m)

	_, err = algo.ModeFromString("hovercraft")
	assert.Error(t, err)
}

func TestScratchReset(t *testing.T) {
	g := sampleGraph(t)
	s := algo.NewScratch(g, home)
	assert.Equal(t, 0, s.Get(home).Time)
	assert.True(t, s.Get(home).Reached)
	assert.Equal(t, algo.INF, s.Get(arl).Time)
	assert.False(t, s.Get(arl).Reached)

	s.Set(arl, algo.ScratchEntry{Time: 10, Predecessor: home, Reached: true})
	assert.Equal(t, 10, s.Get(arl).Time)
	// 新的scratch不受之前查询影响
	assert.Equal(t, algo.INF, algo.NewScratch(g, home).Get(arl).Time)
}

func TestPathChains(t *testing.T) {
	g := sampleGraph(t)
	paths, err := algo.EnumeratePaths(g, home, arl)
	assert.NoError(t, err)
	for _, p := range paths {
		assert.True(t, p.Chains(g, home))
		locs := p.Locations(home)
		assert.Equal(t, home, locs[0])
		assert.Equal(t, arl, locs[len(locs)-1])
	}
	broken := algo.Path{
		algo.NewEdge(was, algo.ModeCar, 78, 0, 33.3, 0),
		algo.NewEdge(ncr, algo.ModeMetro, 45, 7, 5.45, 2),
	}
	assert.False(t, broken.Chains(g, home))
}
