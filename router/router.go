package router

import (
	"fmt"
	"time"

	"git.fiblab.net/sim/tripplanner/router/algo"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("module", "router")

// Router answers trip queries on one immutable network.
// A Router is safe for concurrent use.
type Router struct {
	name  string
	graph *algo.Graph
}

func New(doc *NetworkDoc) (*Router, error) {
	g, err := buildGraph(doc)
	if err != nil {
		return nil, fmt.Errorf("build network %s: %w", doc.Name, err)
	}
	log.Infof("network %s loaded: %d locations, %d edges", doc.Name, g.VertexCount(), g.EdgeCount())
	return &Router{name: doc.Name, graph: g}, nil
}

// Plan runs q with the named strategy ("" for exhaustive).
func (r *Router) Plan(q Query, strategy string) (*Plan, error) {
	s, err := StrategyByName(strategy)
	if err != nil {
		return nil, err
	}
	sortKey, err := ParseSortKey(string(q.Sort))
	if err != nil {
		return nil, err
	}
	q.Sort = sortKey
	start := time.Now()
	plan, err := s.Find(r.graph, q)
	PlanSeconds.WithLabelValues(s.Name()).Observe(time.Since(start).Seconds())
	if err != nil {
		PlanQueries.WithLabelValues(s.Name(), "error").Inc()
		return nil, err
	}
	PlanQueries.WithLabelValues(s.Name(), "ok").Inc()
	PathsExplored.Add(float64(plan.Explored))
	for reason, n := range plan.Rejections {
		PathsRejected.WithLabelValues(reason.String()).Add(float64(n))
	}
	log.Debugf("plan %s->%s by %s: %d trips of %d paths, rejected %v",
		q.Origin, q.Destination, s.Name(), len(plan.Trips), plan.Explored, plan.Rejections)
	return plan, nil
}

// Fastest is the time-only search. The returned path may break the bike rules.
func (r *Router) Fastest(origin, target algo.Location) (*algo.ShortestPathResult, error) {
	res, err := algo.ShortestTime(r.graph, origin, target)
	if err != nil {
		return nil, err
	}
	if !res.Reachable {
		log.Debugf("no path from %s to %s", origin, target)
	}
	return res, nil
}

func (r *Router) Name() string {
	return r.name
}

func (r *Router) Graph() *algo.Graph {
	return r.graph
}

func (r *Router) HasLocation(loc algo.Location) bool {
	return r.graph.Has(loc)
}

func (r *Router) Locations() []algo.Location {
	return r.graph.Locations()
}

// Close only logs: the graph lives in memory and is released with the Router,
// while queries still running on it finish normally.
func (r *Router) Close() {
	log.Debugf("network %s closed", r.name)
}
