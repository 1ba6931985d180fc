package algo

import (
	"errors"
	"math"
)

const (
	// 不可达的累计用时
	INF = math.MaxInt

	// 等待时间附加的hassle（单位：分钟）
	// (0, 15] -> +1, [16, 60] -> +3, 其余不附加
	SHORT_WAIT_LIMIT  = 15
	LONG_WAIT_START   = 16
	LONG_WAIT_LIMIT   = 60
	SHORT_WAIT_HASSLE = 1
	LONG_WAIT_HASSLE  = 3
)

var (
	// 错误：在起点之外第一次使用个人自行车
	ErrBikeUnavailable = errors.New("personal bike is not available on this path")
	// 错误：携带个人自行车乘坐禁止自行车的线路
	ErrBikeForbidden = errors.New("personal bike is not allowed on this service")
	// 错误：引用了图中不存在的地点
	ErrUnknownLocation = errors.New("location has no vertex in graph")
	// 错误：同一地点重复建点
	ErrDuplicateLocation = errors.New("location is defined more than once")
	// 错误：边的总用时为负数，最短路提前结束不再正确
	ErrNegativeTime = errors.New("edge total time is negative")
)
