package algo

import (
	"container/heap"
	"fmt"

	"github.com/samber/lo"
)

// searchState 乘积状态：地点 × 是否携带自行车 × 当前交通方式
type searchState struct {
	at      Location
	hasBike bool
	mode    Mode
}

type stateLabel struct {
	time    int
	prev    int // 前驱状态在states中的下标，-1表示起点
	via     Edge
	settled bool
}

// ConstrainedShortestTime is ShortestTime over product states (location,
// has-bike, current mode), so every transition obeys the rules of Evaluate.
// Edges back into the origin are never taken. The bike state only changes at
// the origin, so any other revisit can be cut out without breaking a rule or
// adding time, and the result is as fast as the best simple path.
// It returns the fastest legal trip, or nil when no legal trip exists.
func ConstrainedShortestTime(g *Graph, origin, target Location) (*Trip, error) {
	if err := g.checkEndpoints(origin, target); err != nil {
		return nil, err
	}
	if err := g.checkNonNegative(); err != nil {
		return nil, err
	}
	if origin == target {
		return nil, nil
	}

	start := tripState{origin: origin, at: origin, mode: modeNone}
	states := []tripState{start}
	labels := []stateLabel{{time: 0, prev: -1}}
	index := map[searchState]int{{at: origin, mode: modeNone}: 0}

	pq := PriorityQueue{{Value: 0, Priority: 0}}
	heap.Init(&pq)
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*Item)
		i := item.Value
		if labels[i].settled || float64(labels[i].time) < item.Priority {
			continue
		}
		labels[i].settled = true
		s := states[i]
		if s.at == target {
			path := rebuildStatePath(labels, i)
			m, err := Evaluate(origin, path)
			if err != nil {
				// 状态转移与Evaluate使用同一套规则，不应出现
				return nil, fmt.Errorf("constrained search produced an illegal trip: %w", err)
			}
			return &Trip{Path: path, Metrics: m}, nil
		}
		edges, err := g.Neighbors(s.at)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			// 回到起点会重新取车，只允许简单路径，与EnumeratePaths一致
			if e.to == origin {
				continue
			}
			next, reason := s.advance(e)
			if reason != 0 {
				continue
			}
			t := labels[i].time + e.total
			key := searchState{at: next.at, hasBike: next.hasBike, mode: next.mode}
			j, seen := index[key]
			if seen && (labels[j].settled || labels[j].time <= t) {
				continue
			}
			if !seen {
				j = len(states)
				index[key] = j
				states = append(states, next)
				labels = append(labels, stateLabel{})
			}
			labels[j] = stateLabel{time: t, prev: i, via: e}
			heap.Push(&pq, &Item{Value: j, Priority: float64(t)})
		}
	}
	return nil, nil
}

func rebuildStatePath(labels []stateLabel, i int) Path {
	reversed := Path{}
	for ; labels[i].prev >= 0; i = labels[i].prev {
		reversed = append(reversed, labels[i].via)
	}
	return lo.Reverse(reversed)
}
