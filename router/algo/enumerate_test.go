package algo_test

import (
	"testing"

	"git.fiblab.net/sim/tripplanner/router/algo"
	"github.com/stretchr/testify/assert"
)

func TestEnumerateSampleNetwork(t *testing.T) {
	g := sampleGraph(t)
	paths, err := algo.EnumeratePaths(g, home, arl)
	assert.NoError(t, err)
	// P(ROS)=2, P(WAS)=3+2=5, P(NCR)=3*5+2=17, P(BAL)=5+2*17=39, P(Home)=1+5+3*39+17
	assert.Len(t, paths, 140)
	for _, p := range paths {
		assert.NotEmpty(t, p)
		assert.Equal(t, arl, p[len(p)-1].To())
	}
	// 按邻接顺序深度优先：第一条为Home直接开车到ARL
	assert.Equal(t, algo.Path{algo.NewEdge(arl, algo.ModeCar, 85, 0, 22.03, 7)}, paths[0])
}

func TestEnumerateBranchProduct(t *testing.T) {
	// O有2条边到A，A有3条边到D；O有1条边到B，B有1条边到D
	g := mustGraph(t,
		algo.NewVertex("O",
			algo.NewEdge("A", algo.ModeWalk, 1, 0, 0, 0),
			algo.NewEdge("A", algo.ModeCar, 1, 0, 0, 0),
			algo.NewEdge("B", algo.ModeMetro, 1, 0, 0, 0),
		),
		algo.NewVertex("A",
			algo.NewEdge("D", algo.ModeWalk, 1, 0, 0, 0),
			algo.NewEdge("D", algo.ModeBikeshare, 1, 0, 0, 0),
			algo.NewEdge("D", algo.ModeMetro, 1, 0, 0, 0),
		),
		algo.NewVertex("B", algo.NewEdge("D", algo.ModeWalk, 1, 0, 0, 0)),
		algo.NewVertex("D"),
	)
	paths, err := algo.EnumeratePaths(g, "O", "D")
	assert.NoError(t, err)
	assert.Len(t, paths, 2*3+1)
}

func TestEnumerateCycleTerminates(t *testing.T) {
	g := mustGraph(t,
		algo.NewVertex("O", algo.NewEdge("A", algo.ModeWalk, 1, 0, 0, 0)),
		algo.NewVertex("A",
			algo.NewEdge("B", algo.ModeWalk, 1, 0, 0, 0),
			algo.NewEdge("O", algo.ModeWalk, 1, 0, 0, 0),
		),
		algo.NewVertex("B",
			algo.NewEdge("A", algo.ModeWalk, 1, 0, 0, 0),
			algo.NewEdge("D", algo.ModeWalk, 1, 0, 0, 0),
		),
		algo.NewVertex("D"),
	)
	paths, err := algo.EnumeratePaths(g, "O", "D")
	assert.NoError(t, err)
	assert.Len(t, paths, 1)
	assert.Equal(t, []algo.Location{"O", "A", "B", "D"}, paths[0].Locations("O"))
}

func TestEnumerateMaxLegs(t *testing.T) {
	g := sampleGraph(t)
	paths, err := algo.EnumeratePaths(g, home, arl, algo.WithMaxLegs(1))
	assert.NoError(t, err)
	assert.Len(t, paths, 1)

	paths, err = algo.EnumeratePaths(g, home, arl, algo.WithMaxLegs(2))
	assert.NoError(t, err)
	// Home->ARL, Home->WAS->ARL x3
	assert.Len(t, paths, 4)
	for _, p := range paths {
		assert.LessOrEqual(t, len(p), 2)
	}
}

func TestEnumerateEndpoints(t *testing.T) {
	g := sampleGraph(t)
	_, err := algo.EnumeratePaths(g, "Nowhere", arl)
	assert.ErrorIs(t, err, algo.ErrUnknownLocation)
	_, err = algo.EnumeratePaths(g, home, "Nowhere")
	assert.ErrorIs(t, err, algo.ErrUnknownLocation)

	paths, err := algo.EnumeratePaths(g, home, home)
	assert.NoError(t, err)
	assert.Empty(t, paths)

	// ARL没有出边
	paths, err = algo.EnumeratePaths(g, arl, home)
	assert.NoError(t, err)
	assert.Empty(t, paths)
}

func TestEnumerateIdempotent(t *testing.T) {
	g := sampleGraph(t)
	first, err := algo.EnumeratePaths(g, home, arl)
	assert.NoError(t, err)
	second, err := algo.EnumeratePaths(g, home, arl)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}
