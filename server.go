package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	"git.fiblab.net/sim/tripplanner/router"
	"git.fiblab.net/sim/tripplanner/router/algo"
	"github.com/puzpuzpuz/xsync/v3"
)

const (
	TripServiceName = "tripplanner.v1.TripService"

	TripServicePlanTripsProcedure   = "/" + TripServiceName + "/PlanTrips"
	TripServiceFastestTimeProcedure = "/" + TripServiceName + "/FastestTime"
)

type TripServer struct {
	// 热加载时替换router，请求处理期间持有读锁
	mu     *xsync.RBMutex
	router *router.Router

	// 完整排序结果的缓存，limit在读取后再截断；路网替换或条目超过上限时清空
	plans         *xsync.MapOf[planKey, *PlanTripsResponse]
	planCacheSize int
}

// 缓存上限，超过后整体清空
const PLAN_CACHE_SIZE = 4096

// planKey 规范化后的请求，不含limit
type planKey struct {
	origin, destination string
	strategy            string
	sort                router.SortKey
	maxLegs             int
}

func NewTripServer(r *router.Router) *TripServer {
	return &TripServer{
		mu:     xsync.NewRBMutex(),
		router: r,
		plans:  xsync.NewMapOf[planKey, *PlanTripsResponse](),

		planCacheSize: PLAN_CACHE_SIZE,
	}
}

// Reload 替换路网，正在处理的请求完成后生效
func (s *TripServer) Reload(r *router.Router) {
	s.mu.Lock()
	old := s.router
	s.router = r
	s.plans.Clear()
	s.mu.Unlock()
	old.Close()
	log.Infof("network reloaded: %s", r.Name())
}

func (s *TripServer) checkLocation(r *router.Router, field, loc string) error {
	if strings.TrimSpace(loc) == "" {
		return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("%s is required", field))
	}
	if !r.HasLocation(algo.Location(loc)) {
		return connect.NewError(
			connect.CodeInvalidArgument,
			fmt.Errorf("no %s location: %v", field, loc),
		)
	}
	return nil
}

func (s *TripServer) PlanTrips(
	ctx context.Context,
	req *connect.Request[PlanTripsRequest],
) (*connect.Response[PlanTripsResponse], error) {
	in := *req.Msg
	t := s.mu.RLock()
	defer s.mu.RUnlock(t)
	r := s.router

	if err := s.checkLocation(r, "origin", in.Origin); err != nil {
		return nil, err
	}
	if err := s.checkLocation(r, "destination", in.Destination); err != nil {
		return nil, err
	}
	sortKey, err := router.ParseSortKey(in.Sort)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if in.MaxLegs < 0 || in.Limit < 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("max_legs and limit must not be negative"))
	}
	strategy, err := router.StrategyByName(in.Strategy)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	key := newPlanKey(r, in, strategy.Name(), sortKey)
	if cached, ok := s.plans.Load(key); ok {
		log.Debugf("plan cache hit %+v", key)
		return connect.NewResponse(cached.limited(in.Limit)), nil
	}
	log.Debugf("plan trips from %v to %v", in.Origin, in.Destination)
	plan, err := r.Plan(router.Query{
		Origin:      algo.Location(in.Origin),
		Destination: algo.Location(in.Destination),
		Sort:        key.sort,
		MaxLegs:     key.maxLegs,
	}, key.strategy)
	if err != nil {
		return nil, toConnectError(err)
	}
	out := newPlanTripsResponse(algo.Location(in.Origin), plan)
	if s.plans.Size() >= s.planCacheSize {
		log.Debugf("plan cache is full (%d entries), clear it", s.plans.Size())
		s.plans.Clear()
	}
	s.plans.Store(key, out)
	return connect.NewResponse(out.limited(in.Limit)), nil
}

// 不影响结果的参数取统一值：search策略忽略排序与边数，
// 简单路径最多VertexCount-1条边，更大的max_legs等价于不限
func newPlanKey(r *router.Router, in PlanTripsRequest, strategy string, sortKey router.SortKey) planKey {
	key := planKey{
		origin:      in.Origin,
		destination: in.Destination,
		strategy:    strategy,
		sort:        sortKey,
		maxLegs:     in.MaxLegs,
	}
	if strategy == router.STRATEGY_SEARCH {
		key.sort = router.SortTime
		key.maxLegs = 0
	}
	if key.maxLegs >= r.Graph().VertexCount()-1 {
		key.maxLegs = 0
	}
	return key
}

func (s *TripServer) FastestTime(
	ctx context.Context,
	req *connect.Request[FastestTimeRequest],
) (*connect.Response[FastestTimeResponse], error) {
	in := req.Msg
	t := s.mu.RLock()
	defer s.mu.RUnlock(t)
	r := s.router

	if err := s.checkLocation(r, "origin", in.Origin); err != nil {
		return nil, err
	}
	if err := s.checkLocation(r, "target", in.Target); err != nil {
		return nil, err
	}
	res, err := r.Fastest(algo.Location(in.Origin), algo.Location(in.Target))
	if err != nil {
		return nil, toConnectError(err)
	}
	if !res.Reachable {
		// 无法找到通路，返回空响应
		return connect.NewResponse(&FastestTimeResponse{}), nil
	}
	return connect.NewResponse(&FastestTimeResponse{
		Reachable: true,
		Time:      res.Time,
		WaitTime:  res.Entry(res.Target).WaitTime,
		Legs:      newLegs(res.Origin, res.Path()),
	}), nil
}

func toConnectError(err error) error {
	switch {
	case errors.Is(err, router.ErrUnknownStrategy), errors.Is(err, router.ErrUnknownSort):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, algo.ErrNegativeTime):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	default:
		// 图完整性错误等
		return connect.NewError(connect.CodeInternal, err)
	}
}

func (s *TripServer) Close() {
	t := s.mu.RLock()
	defer s.mu.RUnlock(t)
	s.router.Close()
}

// NewTripServiceHandler 返回服务的路由前缀与handler，用法同connect生成代码
func NewTripServiceHandler(s *TripServer, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)
	mux := http.NewServeMux()
	mux.Handle(TripServicePlanTripsProcedure, connect.NewUnaryHandler(
		TripServicePlanTripsProcedure, s.PlanTrips, opts...,
	))
	mux.Handle(TripServiceFastestTimeProcedure, connect.NewUnaryHandler(
		TripServiceFastestTimeProcedure, s.FastestTime, opts...,
	))
	return "/" + TripServiceName + "/", mux
}

type TripServiceClient struct {
	planTrips   *connect.Client[PlanTripsRequest, PlanTripsResponse]
	fastestTime *connect.Client[FastestTimeRequest, FastestTimeResponse]
}

func NewTripServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *TripServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)
	return &TripServiceClient{
		planTrips: connect.NewClient[PlanTripsRequest, PlanTripsResponse](
			httpClient, baseURL+TripServicePlanTripsProcedure, opts...,
		),
		fastestTime: connect.NewClient[FastestTimeRequest, FastestTimeResponse](
			httpClient, baseURL+TripServiceFastestTimeProcedure, opts...,
		),
	}
}

func (c *TripServiceClient) PlanTrips(ctx context.Context, req *connect.Request[PlanTripsRequest]) (*connect.Response[PlanTripsResponse], error) {
	return c.planTrips.CallUnary(ctx, req)
}

func (c *TripServiceClient) FastestTime(ctx context.Context, req *connect.Request[FastestTimeRequest]) (*connect.Response[FastestTimeResponse], error) {
	return c.fastestTime.CallUnary(ctx, req)
}
