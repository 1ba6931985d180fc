package main

import (
	"context"
	"flag"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"math/rand"

	"connectrpc.com/connect"
	"github.com/sirupsen/logrus"
)

var (
	benchmarkCount    = flag.Int("benchmark.count", 1000, "the random planning count for benchmark")
	benchmarkSeed     = flag.Int64("benchmark.seed", 0, "the seed for benchmark")
	benchmarkCPU      = flag.Int("benchmark.cpu", 1, "the cpu count for benchmark")
	benchmarkStrategy = flag.String("benchmark.strategy", "exhaustive", "the strategy for benchmark [exhaustive, search]")
)

type benchmarkResult struct {
	count   int
	success int32
	cost    time.Duration
}

func runBenchmark(server *TripServer) benchmarkResult {
	if *benchmarkCount <= 0 {
		return benchmarkResult{}
	}
	log.Logger.SetLevel(logrus.WarnLevel)
	// 设置随机种子
	e := rand.New(rand.NewSource(*benchmarkSeed))
	t := server.mu.RLock()
	locations := server.router.Locations()
	server.mu.RUnlock(t)
	// 随机生成benchmarkCount个规划请求，每个请求的起点和终点都是随机的
	reqs := make([]*connect.Request[PlanTripsRequest], *benchmarkCount)
	for i := 0; i < *benchmarkCount; i++ {
		reqs[i] = connect.NewRequest(&PlanTripsRequest{
			Origin:      string(locations[e.Intn(len(locations))]),
			Destination: string(locations[e.Intn(len(locations))]),
			Strategy:    *benchmarkStrategy,
		})
	}

	// 开始benchmark
	start := time.Now()
	var wg sync.WaitGroup
	var success atomic.Int32
	run := func(req *connect.Request[PlanTripsRequest]) {
		res, err := server.PlanTrips(context.Background(), req)
		if err != nil {
			log.Error("benchmark failed, err:", err)
			return
		}
		if len(res.Msg.Trips) > 0 {
			success.Add(1)
		}
	}
	if *benchmarkCPU == 1 {
		for _, req := range reqs {
			run(req)
		}
	} else {
		// 设置cpu数量
		runtime.GOMAXPROCS(*benchmarkCPU)
		wg.Add(*benchmarkCount)
		for _, req := range reqs {
			go func(req *connect.Request[PlanTripsRequest]) {
				defer wg.Done()
				run(req)
			}(req)
		}
		wg.Wait()
	}
	timeCost := time.Since(start) * time.Duration(*benchmarkCPU)
	log.Error(
		"benchmark finished", "\n",
		"count:", *benchmarkCount, "\n",
		"time:", timeCost, "\n",
		"avg:", timeCost/time.Duration(*benchmarkCount), "\n",
		"success:", success.Load(), "\n",
	)
	return benchmarkResult{count: *benchmarkCount, success: success.Load(), cost: timeCost}
}
