package algo

import (
	"errors"
	"sort"

	"github.com/samber/lo"
)

// Evaluation pairs a path with the outcome of Evaluate.
type Evaluation struct {
	Path    Path
	Metrics Metrics
	Err     error
}

func (e Evaluation) OK() bool { return e.Err == nil }

func EvaluateAll(origin Location, paths []Path) []Evaluation {
	return lo.Map(paths, func(p Path, _ int) Evaluation {
		m, err := Evaluate(origin, p)
		return Evaluation{Path: p, Metrics: m, Err: err}
	})
}

// Less orders two trips. It is injected into Rank so the sort key can change
// without touching the filtering step.
type Less func(a, b *Trip) bool

var (
	ByTime   Less = func(a, b *Trip) bool { return a.Metrics.Time < b.Metrics.Time }
	ByCost   Less = func(a, b *Trip) bool { return a.Metrics.Cost < b.Metrics.Cost }
	ByHassle Less = func(a, b *Trip) bool { return a.Metrics.HassleUnits < b.Metrics.HassleUnits }
)

// Then breaks ties of first with the following comparators in order.
func Then(first Less, rest ...Less) Less {
	all := append([]Less{first}, rest...)
	return func(a, b *Trip) bool {
		for _, less := range all {
			if less(a, b) {
				return true
			}
			if less(b, a) {
				return false
			}
		}
		return false
	}
}

// Rank drops failed evaluations and stable-sorts the rest, ByTime when less is nil.
// Trips that tie keep their enumeration order.
func Rank(evals []Evaluation, less Less) []Trip {
	if less == nil {
		less = ByTime
	}
	trips := lo.FilterMap(evals, func(e Evaluation, _ int) (Trip, bool) {
		return Trip{Path: e.Path, Metrics: e.Metrics}, e.OK()
	})
	Sort(trips, less)
	return trips
}

// Sort reorders trips in place without changing membership.
func Sort(trips []Trip, less Less) {
	sort.SliceStable(trips, func(i, j int) bool {
		return less(&trips[i], &trips[j])
	})
}

// ParetoFrontier keeps the trips no other trip dominates on (time, cost, hassle).
// Input order is preserved.
func ParetoFrontier(trips []Trip) []Trip {
	return lo.Filter(trips, func(t Trip, i int) bool {
		for j := range trips {
			if j != i && trips[j].Metrics.Dominates(t.Metrics) {
				return false
			}
		}
		return true
	})
}

// Rejections counts failed evaluations by reason.
func Rejections(evals []Evaluation) map[Reason]int {
	failed := lo.Filter(evals, func(e Evaluation, _ int) bool { return !e.OK() })
	groups := lo.GroupBy(failed, func(e Evaluation) Reason {
		var v *ConstraintViolation
		if errors.As(e.Err, &v) {
			return v.Reason
		}
		return 0
	})
	return lo.MapValues(groups, func(es []Evaluation, _ Reason) int { return len(es) })
}
