package main

import (
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"git.fiblab.net/sim/tripplanner/router"
	"git.fiblab.net/sim/tripplanner/router/algo"
	easy "git.fiblab.net/utils/logrus-easy-formatter"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

var (
	// 配置信息
	mongoURI       = flag.String("mongo_uri", "", "mongo db uri (default: $MONGO_URI)")
	networkPathStr = flag.String("network", "", "network yaml file or database and collection, empty means the builtin sample [format: {fspath} or {db}.{col}]")
	cacheDir       = flag.String("cache", "", "input cache dir path (empty means disable cache)")
	grpcEndpoint   = flag.String("listen", "localhost:52101", "connect listening address")
	logLevel       = flag.String("log-level", "info", "log level [debug, info, warn, error, fatal, panic]")

	// 命令行规划模式
	plan        = flag.Bool("plan", false, "print ranked trips and exit")
	origin      = flag.String("origin", "Home", "origin location for -plan")
	destination = flag.String("destination", "ARL", "destination location for -plan")
	sortKey     = flag.String("sort", "time", "trip order for -plan [time, cost, hassle, pareto]")
	strategy    = flag.String("strategy", "exhaustive", "path-finding strategy for -plan [exhaustive, search]")
	maxLegs     = flag.Int("max-legs", 0, "max legs per trip for -plan (0 means no limit)")
	limit       = flag.Int("limit", 0, "max trips printed by -plan (0 means all)")

	// 性能测试
	benchmark = flag.Bool("benchmark", false, "benchmark mode")
	pprofAddr = flag.String("pprof", "localhost:52102", "pprof and metrics listening address")

	LOG_LEVELS = map[string]logrus.Level{
		"debug": logrus.DebugLevel,
		"info":  logrus.InfoLevel,
		"warn":  logrus.WarnLevel,
		"error": logrus.ErrorLevel,
		"fatal": logrus.FatalLevel,
		"panic": logrus.PanicLevel,
	}

	log = logrus.WithField("module", "tripplanner")
)

func newRouter(networkPath *Path) (*router.Router, error) {
	doc, err := loadNetwork(*mongoURI, networkPath, *cacheDir)
	if err != nil {
		return nil, err
	}
	return router.New(doc)
}

func runPlan(r *router.Router) error {
	key, err := router.ParseSortKey(*sortKey)
	if err != nil {
		return err
	}
	q := router.Query{
		Origin:      algo.Location(*origin),
		Destination: algo.Location(*destination),
		Sort:        key,
		MaxLegs:     *maxLegs,
		Limit:       *limit,
	}
	p, err := r.Plan(q, *strategy)
	if err != nil {
		return err
	}
	writePlan(os.Stdout, q, p)
	return nil
}

func main() {
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using environment variables")
	}
	flag.Parse()
	if level, ok := LOG_LEVELS[*logLevel]; ok {
		logrus.SetLevel(level)
	} else {
		logrus.Fatalf("invalid log level: %s", *logLevel)
	}
	if *mongoURI == "" {
		*mongoURI = os.Getenv("MONGO_URI")
	}

	networkPath, err := NewPath(*networkPathStr)
	if err != nil {
		logrus.Fatalf("invalid network path: %s", err)
	}
	r, err := newRouter(networkPath)
	if err != nil {
		logrus.Fatalf("failed to load network from %s: %v", networkPath, err)
	}

	if *plan {
		if err := runPlan(r); err != nil {
			logrus.Fatalf("plan failed: %v", err)
		}
		return
	}

	// 启动规划服务
	server := NewTripServer(r)

	if *pprofAddr != "" {
		// 启动pprof
		startHTTPDebugger(*pprofAddr)
	}

	if *benchmark {
		// 性能测试
		runBenchmark(server)
		return
	}

	// 启动tcp监听和初始化connect服务端
	mux := http.NewServeMux()
	mux.Handle(NewTripServiceHandler(server))

	addr := *grpcEndpoint
	// 使用HTTP/2 w.o. TLS
	s := &http.Server{
		Addr:    addr,
		Handler: h2c.NewHandler(mux, &http2.Server{}),
	}

	// SIGHUP重新加载路网
	reloadCh := make(chan os.Signal, 1)
	signal.Notify(reloadCh, syscall.SIGHUP)
	go func() {
		for range reloadCh {
			r, err := newRouter(networkPath)
			if err != nil {
				log.Errorf("reload failed, keep the current network: %v", err)
				continue
			}
			server.Reload(r)
		}
	}()

	// 优雅退出
	// 创建监听退出chan
	signalCh := make(chan os.Signal, 1)
	//监听指定信号 ctrl+c kill
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signalCh
		log.Info("stopping...")
		go func() {
			<-signalCh
			os.Exit(1) // 强制结束
		}()
		// 退出connect-go
		s.Close()
		// 退出规划服务
		server.Close()
		os.Exit(0)
	}()

	// 启动connect server
	log.Infof("server listening at %v", s.Addr)
	if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("failed to serve: %v", err)
	}
	time.Sleep(1 * time.Second) // 延迟等待"优雅退出"
	log.Info("tripplanner closes")
}
