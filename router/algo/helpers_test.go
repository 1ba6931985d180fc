package algo_test

import (
	"testing"

	"git.fiblab.net/sim/tripplanner/router/algo"
	"github.com/stretchr/testify/require"
)

const (
	home algo.Location = "Home"
	bal  algo.Location = "BAL"
	was  algo.Location = "WAS"
	ncr  algo.Location = "NCR"
	ros  algo.Location = "ROS"
	arl  algo.Location = "ARL"
)

// 华盛顿地区示例路网
func sampleGraph(t testing.TB) *algo.Graph {
	g, err := algo.NewGraph(
		algo.NewVertex(home,
			algo.NewEdge(arl, algo.ModeCar, 85, 0, 22.03, 7),
			algo.NewEdge(was, algo.ModeCar, 78, 0, 33.3, 0),
			algo.NewEdge(bal, algo.ModeWalk, 18, 0, 0, -7),
			algo.NewEdge(bal, algo.ModePersonalBike, 7, 0, 0, -2),
			algo.NewEdge(bal, algo.ModeCar, 8, 0, 28.22, 2),
			algo.NewEdge(ncr, algo.ModeCar, 58, 0, 11.99, 0),
		),
		algo.NewVertex(bal,
			algo.NewEdge(was, algo.ModeAmtrakAcela, 38, 10, 24.50, 0),
			algo.NewEdge(ncr, algo.ModeAmtrakNE, 30, 10, 12.00, 0),
			algo.NewEdge(ncr, algo.ModeMarc, 40, 10, 9.0, 1),
		),
		algo.NewVertex(was,
			algo.NewEdge(arl, algo.ModePersonalBike, 40, 0, 0, -5),
			algo.NewEdge(arl, algo.ModeBikeshare, 40, 0, 3.00, -1),
			algo.NewEdge(arl, algo.ModeElectricBikeshare, 40, 0, 7.00, -1),
			algo.NewEdge(ros, algo.ModeMetro, 24, 7, 2.55, 2),
		),
		algo.NewVertex(ncr,
			algo.NewEdge(was, algo.ModeMetro, 45, 7, 5.45, 2),
			algo.NewEdge(was, algo.ModeMarc, 17, 10, 9.0, 1),
			algo.NewEdge(was, algo.ModeAmtrakNE, 17, 10, 12.00, 0),
			algo.NewEdge(ros, algo.ModeMetro, 35, 7, 6.60, 2),
		),
		algo.NewVertex(ros,
			algo.NewEdge(arl, algo.ModeWalk, 5, 0, 0, 0),
			algo.NewEdge(arl, algo.ModePersonalBike, 4, 0, 0, 0),
		),
		algo.NewVertex(arl),
	)
	require.NoError(t, err)
	return g
}

func mustGraph(t testing.TB, vertices ...*algo.Vertex) *algo.Graph {
	g, err := algo.NewGraph(vertices...)
	require.NoError(t, err)
	return g
}
