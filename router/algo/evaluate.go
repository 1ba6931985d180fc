package algo

import "fmt"

// Reason classifies why a path violates the mode-transition rules.
type Reason int8

const (
	ReasonBikeUnavailable Reason = iota + 1
	ReasonBikeForbidden
)

func (r Reason) String() string {
	switch r {
	case ReasonBikeUnavailable:
		return "bike_unavailable"
	case ReasonBikeForbidden:
		return "bike_forbidden"
	default:
		return fmt.Sprintf("reason(%d)", int8(r))
	}
}

func (r Reason) sentinel() error {
	switch r {
	case ReasonBikeUnavailable:
		return ErrBikeUnavailable
	case ReasonBikeForbidden:
		return ErrBikeForbidden
	default:
		return nil
	}
}

// ConstraintViolation rejects a single path. Other paths are unaffected.
type ConstraintViolation struct {
	Reason Reason
	// 违规边在路径中的下标及其出发地点
	Leg  int
	From Location
	Mode Mode
}

func (v *ConstraintViolation) Error() string {
	return fmt.Sprintf("leg %d (%s from %s): %v", v.Leg, v.Mode, v.From, v.Reason.sentinel())
}

func (v *ConstraintViolation) Is(target error) bool {
	return target != nil && target == v.Reason.sentinel()
}

// tripState 校验路径时随边推进的状态
type tripState struct {
	origin  Location
	at      Location
	mode    Mode
	hasBike bool
}

func newTripState(origin Location) tripState {
	return tripState{origin: origin, at: origin, mode: modeNone}
}

// advance applies the mode-transition rules to e and returns the state after it.
func (s tripState) advance(e Edge) (tripState, Reason) {
	if e.mode == ModePersonalBike {
		if !s.hasBike && s.at != s.origin {
			return s, ReasonBikeUnavailable
		}
		// 在起点第一次骑车即取得自行车
		if s.at == s.origin {
			s.hasBike = true
		}
	}
	if s.hasBike && e.mode == ModeAmtrakAcela {
		return s, ReasonBikeForbidden
	}
	s.mode = e.mode
	s.at = e.to
	return s, 0
}

// Evaluate walks path from origin and returns its metrics, or a
// *ConstraintViolation when the mode sequence is not a legal trip.
// Fares are charged once per block of consecutive same-mode edges.
func Evaluate(origin Location, path Path) (Metrics, error) {
	var m Metrics
	state := newTripState(origin)
	for i, e := range path {
		next, reason := state.advance(e)
		if reason != 0 {
			return Metrics{}, &ConstraintViolation{Reason: reason, Leg: i, From: state.at, Mode: e.mode}
		}
		if e.mode != state.mode {
			m.Cost += e.cost
		}
		m.Time += e.total
		m.WaitTime += e.wait
		m.HassleUnits += e.hassle
		state = next
	}
	m.HassleUnits += WaitHassle(m.WaitTime)
	return m, nil
}

// WaitHassle is the surcharge applied once per trip for its total wait time.
func WaitHassle(wait int) int {
	switch {
	case wait > 0 && wait <= SHORT_WAIT_LIMIT:
		return SHORT_WAIT_HASSLE
	case wait >= LONG_WAIT_START && wait <= LONG_WAIT_LIMIT:
		return LONG_WAIT_HASSLE
	default:
		return 0
	}
}
