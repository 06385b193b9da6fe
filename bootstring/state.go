package bootstring

import (
	"math"
	"math/bits"
)

// State is the mutable state threaded through one encode or decode pass.
type State struct {
	N       uint32 // current code point threshold, never decreases
	Delta   uint32 // weighted accumulator, reset after each extended code point
	Bias    uint32 // adaptive threshold seed
	Handled uint32 // code points emitted so far
}

// NewState returns the initial state of a pass that has already handled the
// given number of basic code points.
func (p Params) NewState(handled uint32) State {
	return State{
		N:       p.InitialN,
		Bias:    p.InitialBias,
		Handled: handled,
	}
}

// addDelta adds x*y to Delta and reports false on overflow.
func (s *State) addDelta(x, y uint32) bool {
	inc, ok := mulUint32(x, y)
	if !ok {
		return false
	}
	s.Delta, ok = addUint32(s.Delta, inc)

	return ok
}

// incDelta increments Delta and reports false on overflow.
func (s *State) incDelta() bool {
	if s.Delta == math.MaxUint32 {
		return false
	}
	s.Delta++

	return true
}

// incN increments N and reports false on overflow.
func (s *State) incN() bool {
	if s.N == math.MaxUint32 {
		return false
	}
	s.N++

	return true
}

func mulUint32(x, y uint32) (uint32, bool) {
	hi, lo := bits.Mul32(x, y)
	return lo, hi == 0
}

func addUint32(x, y uint32) (uint32, bool) {
	sum, carry := bits.Add32(x, y, 0)
	return sum, carry == 0
}
