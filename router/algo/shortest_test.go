package algo_test

import (
	"testing"

	"git.fiblab.net/sim/tripplanner/router/algo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortestTimeSample(t *testing.T) {
	g := sampleGraph(t)
	res, err := algo.ShortestTime(g, home, arl)
	require.NoError(t, err)
	assert.True(t, res.Reachable)
	assert.Equal(t, 85, res.Time)
	assert.Equal(t, algo.Path{algo.NewEdge(arl, algo.ModeCar, 85, 0, 22.03, 7)}, res.Path())
	assert.Equal(t, home, res.Entry(arl).Predecessor)
	assert.Equal(t, algo.ModeCar, res.Entry(arl).Mode())
}

func TestShortestTimeAccumulatesWait(t *testing.T) {
	g := sampleGraph(t)
	res, err := algo.ShortestTime(g, home, ros)
	require.NoError(t, err)
	require.True(t, res.Reachable)
	// Home -自行车-> BAL -Acela-> WAS -地铁-> ROS，不检查自行车规则
	assert.Equal(t, 86, res.Time)
	entry := res.Entry(ros)
	assert.Equal(t, 17, entry.WaitTime)
	assert.Equal(t, was, entry.Predecessor)
	assert.Equal(t, algo.ModeMetro, entry.Mode())
	assert.Equal(t, 10, res.Entry(was).WaitTime)
	assert.Equal(t, []algo.Location{home, bal, was, ros}, res.Path().Locations(home))
	assert.True(t, res.Path().Chains(g, home))
}

func TestShortestTimeUniquePath(t *testing.T) {
	g := mustGraph(t,
		algo.NewVertex("A", algo.NewEdge("B", algo.ModeWalk, 3, 1, 0, 0)),
		algo.NewVertex("B", algo.NewEdge("C", algo.ModeMetro, 5, 2, 1, 0)),
		algo.NewVertex("C", algo.NewEdge("D", algo.ModeCar, 7, 0, 4, 0)),
		algo.NewVertex("D"),
	)
	res, err := algo.ShortestTime(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, 18, res.Time)
	assert.Equal(t, algo.Location("C"), res.Entry("D").Predecessor)
	assert.Equal(t, algo.Location("B"), res.Entry("C").Predecessor)
	assert.Equal(t, algo.Location("A"), res.Entry("B").Predecessor)
	assert.Equal(t, 3, res.Entry("D").WaitTime)
	assert.Equal(t, []algo.Mode{algo.ModeWalk, algo.ModeMetro, algo.ModeCar}, res.Path().Modes())
}

func TestShortestTimeUnreachable(t *testing.T) {
	g := sampleGraph(t)
	res, err := algo.ShortestTime(g, arl, home)
	require.NoError(t, err)
	assert.False(t, res.Reachable)
	assert.Equal(t, algo.INF, res.Time)
	assert.Nil(t, res.Path())
	assert.False(t, res.Entry(home).Reached)
}

func TestShortestTimeSameEndpoints(t *testing.T) {
	g := sampleGraph(t)
	res, err := algo.ShortestTime(g, was, was)
	require.NoError(t, err)
	assert.True(t, res.Reachable)
	assert.Equal(t, 0, res.Time)
	assert.Empty(t, res.Path())
}

func TestShortestTimeIdempotent(t *testing.T) {
	g := sampleGraph(t)
	first, err := algo.ShortestTime(g, home, ros)
	require.NoError(t, err)
	second, err := algo.ShortestTime(g, home, ros)
	require.NoError(t, err)
	assert.Equal(t, first.Time, second.Time)
	assert.Equal(t, first.Path(), second.Path())
}

func TestShortestTimeErrors(t *testing.T) {
	g := sampleGraph(t)
	_, err := algo.ShortestTime(g, home, "Nowhere")
	assert.ErrorIs(t, err, algo.ErrUnknownLocation)

	neg := mustGraph(t,
		algo.NewVertex("A", algo.NewEdge("B", algo.ModeWalk, -5, 0, 0, 0)),
		algo.NewVertex("B"),
	)
	_, err = algo.ShortestTime(neg, "A", "B")
	assert.ErrorIs(t, err, algo.ErrNegativeTime)
}

func TestShortestTimeIgnoresBikeRules(t *testing.T) {
	g := bikeShortcutGraph(t)
	res, err := algo.ShortestTime(g, "O", "D")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Time)
	_, err = algo.Evaluate("O", res.Path())
	assert.ErrorIs(t, err, algo.ErrBikeForbidden)
}
