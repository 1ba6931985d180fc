package algo

import "fmt"

type enumerateOptions struct {
	maxLegs int
}

type EnumerateOption func(*enumerateOptions)

// WithMaxLegs stops branches longer than n edges. n <= 0 means no limit.
func WithMaxLegs(n int) EnumerateOption {
	return func(o *enumerateOptions) {
		o.maxLegs = n
	}
}

// pathWalker 深度优先枚举的状态：只读共享图 + 每条分支独占的边序列
type pathWalker struct {
	g           *Graph
	destination Location
	opts        enumerateOptions
	// 当前分支上已经访问过的地点，回溯时移除
	onBranch map[Location]bool
	current  Path
	paths    []Path
}

// EnumeratePaths returns every simple directed path from origin to destination,
// explored depth-first in adjacency order. A location is never repeated within
// one path, so the walk terminates on cyclic graphs too; on loop-free graphs
// this is exactly the set of all paths.
func EnumeratePaths(g *Graph, origin, destination Location, opts ...EnumerateOption) ([]Path, error) {
	if err := g.checkEndpoints(origin, destination); err != nil {
		return nil, err
	}
	o := enumerateOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if origin == destination {
		return nil, nil
	}
	w := &pathWalker{
		g:           g,
		destination: destination,
		opts:        o,
		onBranch:    map[Location]bool{origin: true},
		current:     make(Path, 0, g.VertexCount()),
	}
	if err := w.walk(origin); err != nil {
		return nil, fmt.Errorf("enumerate paths %s->%s: %w", origin, destination, err)
	}
	return w.paths, nil
}

func (w *pathWalker) walk(cur Location) error {
	if cur == w.destination {
		w.paths = append(w.paths, append(Path(nil), w.current...))
		return nil
	}
	if w.opts.maxLegs > 0 && len(w.current) >= w.opts.maxLegs {
		return nil
	}
	edges, err := w.g.Neighbors(cur)
	if err != nil {
		return err
	}
	for _, e := range edges {
		if w.onBranch[e.to] {
			continue
		}
		w.onBranch[e.to] = true
		w.current = append(w.current, e)
		err := w.walk(e.to)
		w.current = w.current[:len(w.current)-1]
		delete(w.onBranch, e.to)
		if err != nil {
			return err
		}
	}
	return nil
}
