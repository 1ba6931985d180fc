package router

import (
	"errors"
	"fmt"
	"strings"

	"git.fiblab.net/sim/tripplanner/router/algo"
	"github.com/samber/lo"
)

var (
	// 错误：未知的排序方式
	ErrUnknownSort = errors.New("unknown sort key")
	// 错误：未知的搜索策略
	ErrUnknownStrategy = errors.New("unknown strategy")
)

type SortKey string

const (
	SortTime   SortKey = "time"
	SortCost   SortKey = "cost"
	SortHassle SortKey = "hassle"
	// 只保留不被支配的行程，按时间排序
	SortPareto SortKey = "pareto"
)

func ParseSortKey(s string) (SortKey, error) {
	key := SortKey(strings.ToLower(strings.TrimSpace(s)))
	switch key {
	case "":
		return SortTime, nil
	case SortTime, SortCost, SortHassle, SortPareto:
		return key, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSort, s)
}

// 同值时依次比较其余指标，保证结果稳定可读
func (k SortKey) less() algo.Less {
	switch k {
	case SortCost:
		return algo.Then(algo.ByCost, algo.ByTime)
	case SortHassle:
		return algo.Then(algo.ByHassle, algo.ByTime)
	default:
		return algo.ByTime
	}
}

// Query is one trip planning request.
type Query struct {
	Origin      algo.Location
	Destination algo.Location
	Sort        SortKey
	// 单条路径的最大边数，0表示不限
	MaxLegs int
	// 返回的行程数上限，0表示不限
	Limit int
}

// Plan is the ranked answer to a Query.
type Plan struct {
	Strategy   string
	Trips      []algo.Trip
	Rejections map[algo.Reason]int
	// 枚举出的候选路径数
	Explored int
}

// Strategy finds the ranked trips of a query on a graph.
type Strategy interface {
	Name() string
	Find(g *algo.Graph, q Query) (*Plan, error)
}

const (
	STRATEGY_EXHAUSTIVE = "exhaustive"
	STRATEGY_SEARCH     = "search"
)

// StrategyByName resolves a strategy name, "" selects the exhaustive strategy.
func StrategyByName(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", STRATEGY_EXHAUSTIVE:
		return ExhaustiveStrategy{}, nil
	case STRATEGY_SEARCH:
		return SearchStrategy{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// ExhaustiveStrategy enumerates every path, drops the illegal ones and ranks
// the rest. Exact, but the path count grows exponentially with the network.
type ExhaustiveStrategy struct{}

func (ExhaustiveStrategy) Name() string { return STRATEGY_EXHAUSTIVE }

func (ExhaustiveStrategy) Find(g *algo.Graph, q Query) (*Plan, error) {
	paths, err := algo.EnumeratePaths(g, q.Origin, q.Destination, algo.WithMaxLegs(q.MaxLegs))
	if err != nil {
		return nil, err
	}
	evals := algo.EvaluateAll(q.Origin, paths)
	trips := algo.Rank(evals, q.Sort.less())
	if q.Sort == SortPareto {
		trips = algo.ParetoFrontier(trips)
	}
	return &Plan{
		Strategy:   STRATEGY_EXHAUSTIVE,
		Trips:      limit(trips, q.Limit),
		Rejections: algo.Rejections(evals),
		Explored:   len(paths),
	}, nil
}

// SearchStrategy returns only the fastest legal trip, found by a product-state
// search. The sort key and leg limit of the query do not apply.
type SearchStrategy struct{}

func (SearchStrategy) Name() string { return STRATEGY_SEARCH }

func (SearchStrategy) Find(g *algo.Graph, q Query) (*Plan, error) {
	trip, err := algo.ConstrainedShortestTime(g, q.Origin, q.Destination)
	if err != nil {
		return nil, err
	}
	plan := &Plan{Strategy: STRATEGY_SEARCH, Rejections: map[algo.Reason]int{}}
	if trip != nil {
		plan.Trips = []algo.Trip{*trip}
	}
	return plan, nil
}

func limit(trips []algo.Trip, n int) []algo.Trip {
	if n <= 0 || n >= len(trips) {
		return trips
	}
	return lo.Subset(trips, 0, uint(n))
}
