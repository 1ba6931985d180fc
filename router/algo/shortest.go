package algo

import (
	"container/heap"

	"github.com/samber/lo"
)

// ShortestPathResult is the outcome of ShortestTime. Unreachable targets are
// reported with Reachable == false rather than an error.
type ShortestPathResult struct {
	Origin    Location
	Target    Location
	Reachable bool
	// 到达终点的累计用时，不可达时为INF
	Time    int
	scratch Scratch
}

// Entry returns the search state recorded for loc.
func (r *ShortestPathResult) Entry(loc Location) ScratchEntry {
	return r.scratch.Get(loc)
}

// Path rebuilds the edge chain to the target from the predecessors.
func (r *ShortestPathResult) Path() Path {
	if !r.Reachable {
		return nil
	}
	reversed := Path{}
	for cur := r.Target; cur != r.Origin; {
		entry := r.scratch.Get(cur)
		reversed = append(reversed, entry.Via)
		cur = entry.Predecessor
	}
	return lo.Reverse(reversed)
}

// candidate 队列中的一条候选边及其出发地点
type candidate struct {
	from Location
	edge Edge
}

// ShortestTime finds the minimum cumulative time from origin to target with a
// lazy min-heap Dijkstra and stops as soon as the target is settled.
// It ignores the mode-transition rules of Evaluate: the returned path may be
// an illegal trip. Use ConstrainedShortestTime for a feasible one.
func ShortestTime(g *Graph, origin, target Location) (*ShortestPathResult, error) {
	if err := g.checkEndpoints(origin, target); err != nil {
		return nil, err
	}
	if err := g.checkNonNegative(); err != nil {
		return nil, err
	}
	scratch := NewScratch(g, origin)
	res := &ShortestPathResult{Origin: origin, Target: target, Time: INF, scratch: scratch}
	if origin == target {
		res.Reachable = true
		res.Time = 0
		return res, nil
	}

	candidates := make([]candidate, 0, g.EdgeCount())
	pq := make(PriorityQueue, 0, g.EdgeCount())
	push := func(from Location, e Edge, key int) {
		candidates = append(candidates, candidate{from: from, edge: e})
		heap.Push(&pq, &Item{Value: len(candidates) - 1, Priority: float64(key)})
	}
	finalized := map[Location]bool{origin: true}
	edges, err := g.Neighbors(origin)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		push(origin, e, e.total)
	}

	for pq.Len() > 0 {
		c := candidates[heap.Pop(&pq).(*Item).Value]
		to := c.edge.to
		if finalized[to] {
			continue
		}
		finalized[to] = true
		from := scratch.Get(c.from)
		t := from.Time + c.edge.total
		if t < scratch.Get(to).Time {
			scratch.Set(to, ScratchEntry{
				Time:        t,
				WaitTime:    from.WaitTime + c.edge.wait,
				Predecessor: c.from,
				Via:         c.edge,
				Reached:     true,
			})
		}
		if to == target {
			res.Reachable = true
			res.Time = scratch.Get(to).Time
			break
		}
		next, err := g.Neighbors(to)
		if err != nil {
			return nil, err
		}
		cur := scratch.Get(to).Time
		for _, e := range next {
			if !finalized[e.to] {
				push(to, e, cur+e.total)
			}
		}
	}
	return res, nil
}
