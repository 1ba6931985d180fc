package algo

import (
	"fmt"
)

// GraphIntegrityError reports a location that is referenced but has no vertex.
// It aborts the whole query: skipping the location would silently drop trips.
type GraphIntegrityError struct {
	Location Location
	// 引用该地点的出发地点，为空表示查询参数本身
	Referrer Location
}

func (e *GraphIntegrityError) Error() string {
	if e.Referrer == "" {
		return fmt.Sprintf("graph integrity: %q: %v", e.Location, ErrUnknownLocation)
	}
	return fmt.Sprintf("graph integrity: %q referenced by %q: %v", e.Location, e.Referrer, ErrUnknownLocation)
}

func (e *GraphIntegrityError) Is(target error) bool {
	return target == ErrUnknownLocation
}

// Graph is the read-only network topology. It is built once by NewGraph and
// never mutated afterwards, so it can be shared by concurrent queries.
type Graph struct {
	// 地点 -> 出边
	vertices map[Location]*Vertex
	// 建图顺序，保证遍历结果确定
	order []Location
	edges int
}

func NewGraph(vertices ...*Vertex) (*Graph, error) {
	g := &Graph{
		vertices: make(map[Location]*Vertex, len(vertices)),
		order:    make([]Location, 0, len(vertices)),
	}
	for _, v := range vertices {
		if _, ok := g.vertices[v.location]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLocation, v.location)
		}
		g.vertices[v.location] = v
		g.order = append(g.order, v.location)
		g.edges += len(v.edges)
	}
	// 检查所有边的终点都存在
	for _, loc := range g.order {
		for _, e := range g.vertices[loc].edges {
			if _, ok := g.vertices[e.to]; !ok {
				return nil, &GraphIntegrityError{Location: e.to, Referrer: loc}
			}
		}
	}
	return g, nil
}

// Neighbors returns the outgoing edges of loc in construction order.
// The returned slice must not be modified.
func (g *Graph) Neighbors(loc Location) ([]Edge, error) {
	v, ok := g.vertices[loc]
	if !ok {
		return nil, &GraphIntegrityError{Location: loc}
	}
	return v.edges, nil
}

func (g *Graph) Has(loc Location) bool {
	_, ok := g.vertices[loc]
	return ok
}

func (g *Graph) Vertex(loc Location) (*Vertex, bool) {
	v, ok := g.vertices[loc]
	return v, ok
}

// Locations returns all locations in construction order.
func (g *Graph) Locations() []Location {
	return append([]Location(nil), g.order...)
}

func (g *Graph) VertexCount() int { return len(g.order) }
func (g *Graph) EdgeCount() int { return g.edges }

func (g *Graph) checkEndpoints(origin, destination Location) error {
	if !g.Has(origin) {
		return &GraphIntegrityError{Location: origin}
	}
	if !g.Has(destination) {
		return &GraphIntegrityError{Location: destination}
	}
	return nil
}

// 最短路提前结束要求边权非负
func (g *Graph) checkNonNegative() error {
	for _, loc := range g.order {
		for _, e := range g.vertices[loc].edges {
			if e.total < 0 {
				return fmt.Errorf("%w: %s->%s total=%d", ErrNegativeTime, loc, e.to, e.total)
			}
		}
	}
	return nil
}

// ScratchEntry is the per-location state of one shortest-path search.
type ScratchEntry struct {
	// 累计用时与累计等待时间（分钟）
	Time     int
	WaitTime int
	// 前驱地点及到达所用的边
	Predecessor Location
	Via         Edge
	Reached     bool
}

func (s ScratchEntry) Mode() Mode {
	if !s.Reached || s.Via.IsZero() {
		return modeNone
	}
	return s.Via.mode
}

// Scratch holds search results keyed by location. Every search owns a fresh
// Scratch, so repeated or concurrent queries never see each other's state.
type Scratch map[Location]ScratchEntry

// NewScratch resets every location to an infinite time except the origin.
func NewScratch(g *Graph, origin Location) Scratch {
	s := make(Scratch, len(g.order))
	for _, loc := range g.order {
		s[loc] = ScratchEntry{Time: INF}
	}
	s[origin] = ScratchEntry{Time: 0, Reached: true}
	return s
}

func (s Scratch) Get(loc Location) ScratchEntry {
	if entry, ok := s[loc]; ok {
		return entry
	}
	return ScratchEntry{Time: INF}
}

func (s Scratch) Set(loc Location, entry ScratchEntry) {
	s[loc] = entry
}
