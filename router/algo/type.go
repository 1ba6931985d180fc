package algo

import (
	"fmt"
	"strings"
)

// Location is a named site of the network, e.g. "Home" or "ARL".
type Location string

// Mode is the transportation mode used on one edge.
type Mode int8

const (
	ModeWalk Mode = iota
	ModePersonalBike
	ModeBikeshare
	ModeElectricBikeshare
	ModeCar
	ModeAmtrakAcela
	ModeAmtrakNE
	ModeMarc
	ModeMetro

	// 尚未使用任何交通方式
	modeNone Mode = -1
)

var modeNames = map[Mode]string{
	ModeWalk:              "walk",
	ModePersonalBike:      "personal_bike",
	ModeBikeshare:         "bikeshare",
	ModeElectricBikeshare: "electric_bikeshare",
	ModeCar:               "car",
	ModeAmtrakAcela:       "amtrak_acela",
	ModeAmtrakNE:          "amtrak_ne",
	ModeMarc:              "marc",
	ModeMetro:             "metro",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	if m == modeNone {
		return "none"
	}
	return fmt.Sprintf("mode(%d)", int8(m))
}

// Modes returns every mode in declaration order.
func Modes() []Mode {
	return []Mode{
		ModeWalk, ModePersonalBike, ModeBikeshare, ModeElectricBikeshare,
		ModeCar, ModeAmtrakAcela, ModeAmtrakNE, ModeMarc, ModeMetro,
	}
}

func ModeFromString(s string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for m, name := range modeNames {
		if name == key {
			return m, nil
		}
	}
	return modeNone, fmt.Errorf("unknown transportation mode: %q", s)
}

// Edge is an immutable directed connection. Times are in minutes.
type Edge struct {
	to     Location
	mode   Mode
	travel int
	wait   int
	total  int
	cost   float64
	hassle int
}

func NewEdge(to Location, mode Mode, travelTime, waitTime int, cost float64, hassleUnits int) Edge {
	return Edge{
		to:     to,
		mode:   mode,
		travel: travelTime,
		wait:   waitTime,
		total:  travelTime + waitTime,
		cost:   cost,
		hassle: hassleUnits,
	}
}

func (e Edge) To() Location { return e.to }
func (e Edge) Mode() Mode { return e.mode }
func (e Edge) TravelTime() int { return e.travel }
func (e Edge) WaitTime() int { return e.wait }
func (e Edge) TotalTime() int { return e.total }
func (e Edge) Cost() float64 { return e.cost }
func (e Edge) HassleUnits() int { return e.hassle }
func (e Edge) IsZero() bool { return e.to == "" }
func (e Edge) String() string {
	return fmt.Sprintf("Edge{to: %s, mode: %s, travel: %d, wait: %d, total: %d, cost: %.2f, hassle: %d}",
		e.to, e.mode, e.travel, e.wait, e.total, e.cost, e.hassle)
}

// Vertex is a location with its outgoing edges in exploration order.
type Vertex struct {
	location Location
	edges    []Edge
}

func NewVertex(location Location, edges ...Edge) *Vertex {
	return &Vertex{location: location, edges: edges}
}

func (v *Vertex) Location() Location { return v.location }
func (v *Vertex) Edges() []Edge { return v.edges }

// Path is a chain of edges starting at the origin: edge i+1 leaves edge i's destination.
type Path []Edge

// Locations lists the visited locations, origin first.
func (p Path) Locations(origin Location) []Location {
	locs := make([]Location, 0, len(p)+1)
	locs = append(locs, origin)
	for _, e := range p {
		locs = append(locs, e.to)
	}
	return locs
}

func (p Path) Modes() []Mode {
	modes := make([]Mode, len(p))
	for i, e := range p {
		modes[i] = e.mode
	}
	return modes
}

// Chains reports whether every edge leaves the destination of the previous one.
func (p Path) Chains(g *Graph, origin Location) bool {
	cur := origin
	for _, e := range p {
		v, ok := g.vertices[cur]
		if !ok {
			return false
		}
		found := false
		for _, out := range v.edges {
			if out == e {
				found = true
				break
			}
		}
		if !found {
			return false
		}
		cur = e.to
	}
	return true
}

// Metrics aggregates a valid path. Time and WaitTime are in minutes.
type Metrics struct {
	Time        int
	WaitTime    int
	Cost        float64
	HassleUnits int
}

// Dominates reports whether m is no worse than o on time, cost and hassle and strictly better on one.
func (m Metrics) Dominates(o Metrics) bool {
	if m.Time > o.Time || m.Cost > o.Cost || m.HassleUnits > o.HassleUnits {
		return false
	}
	return m.Time < o.Time || m.Cost < o.Cost || m.HassleUnits < o.HassleUnits
}

// Trip is a valid path with its metrics.
type Trip struct {
	Path    Path
	Metrics Metrics
}
