package bootstring

// Adapt returns the bias to use after a code point has been encoded or decoded.
//
// delta is the value just emitted, numPoints the number of code points handled
// so far including the current one. firstTime must be true only for the first
// extended code point of a pass, which damps the first delta much harder than
// the following ones.
func (p Params) Adapt(delta, numPoints uint32, firstTime bool) uint32 {
	if firstTime {
		delta /= p.Damp
	} else {
		delta /= 2
	}
	delta += delta / numPoints

	var k uint32
	threshold := ((p.Base - p.TMin) * p.TMax) / 2
	for delta > threshold {
		delta /= p.Base - p.TMin
		k += p.Base
	}

	return k + ((p.Base-p.TMin+1)*delta)/(delta+p.Skew)
}
