package main

import (
	"git.fiblab.net/sim/tripplanner/router"
	"git.fiblab.net/sim/tripplanner/router/algo"
	"github.com/samber/lo"
)

type PlanTripsRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	// exhaustive | search，为空时为exhaustive
	Strategy string `json:"strategy,omitempty"`
	// time | cost | hassle | pareto，为空时为time
	Sort    string `json:"sort,omitempty"`
	MaxLegs int    `json:"max_legs,omitempty"`
	Limit   int    `json:"limit,omitempty"`
}

type PlanTripsResponse struct {
	Strategy   string         `json:"strategy"`
	Trips      []*Trip        `json:"trips"`
	Rejections map[string]int `json:"rejections,omitempty"`
	Explored   int            `json:"explored"`
}

type FastestTimeRequest struct {
	Origin string `json:"origin"`
	Target string `json:"target"`
}

type FastestTimeResponse struct {
	Reachable bool `json:"reachable"`
	// 不可达时为0
	Time     int    `json:"time"`
	WaitTime int    `json:"wait_time"`
	Legs     []*Leg `json:"legs,omitempty"`
}

type Trip struct {
	Legs        []*Leg  `json:"legs"`
	Time        int     `json:"time"`
	WaitTime    int     `json:"wait_time"`
	Cost        float64 `json:"cost"`
	HassleUnits int     `json:"hassle_units"`
}

type Leg struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Mode   string  `json:"mode"`
	Travel int     `json:"travel"`
	Wait   int     `json:"wait"`
	Cost   float64 `json:"cost"`
	Hassle int     `json:"hassle"`
}

func newLegs(origin algo.Location, path algo.Path) []*Leg {
	locs := path.Locations(origin)
	return lo.Map(path, func(e algo.Edge, i int) *Leg {
		return &Leg{
			From:   string(locs[i]),
			To:     string(e.To()),
			Mode:   e.Mode().String(),
			Travel: e.TravelTime(),
			Wait:   e.WaitTime(),
			Cost:   e.Cost(),
			Hassle: e.HassleUnits(),
		}
	})
}

func newPlanTripsResponse(origin algo.Location, plan *router.Plan) *PlanTripsResponse {
	return &PlanTripsResponse{
		Strategy: plan.Strategy,
		Trips: lo.Map(plan.Trips, func(t algo.Trip, _ int) *Trip {
			return &Trip{
				Legs:        newLegs(origin, t.Path),
				Time:        t.Metrics.Time,
				WaitTime:    t.Metrics.WaitTime,
				Cost:        t.Metrics.Cost,
				HassleUnits: t.Metrics.HassleUnits,
			}
		}),
		Rejections: lo.MapKeys(plan.Rejections, func(_ int, r algo.Reason) string {
			return r.String()
		}),
		Explored: plan.Explored,
	}
}

// limited 返回只含前n条行程的浅拷贝，n<=0表示全部
func (r *PlanTripsResponse) limited(n int) *PlanTripsResponse {
	if n <= 0 || n >= len(r.Trips) {
		return r
	}
	out := *r
	out.Trips = lo.Subset(r.Trips, 0, uint(n))
	return &out
}
