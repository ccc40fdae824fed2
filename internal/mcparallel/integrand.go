package mcparallel

import (
	"math"
	"sort"
)

// Func is the bounded function whose area is estimated, f(x) must stay in [0, YMax].
type Func func(x float64) float64

// Domain is the sampling rectangle [0, XMax) x [0, YMax).
type Domain struct {
	XMax float64 `json:"xMax"`
	YMax float64 `json:"yMax"`
}

// Measure is the area of the sampling rectangle.
func (d Domain) Measure() float64 { return d.XMax * d.YMax }

func (d Domain) validate() error {
	if !(d.XMax > 0) || !(d.YMax > 0) || math.IsInf(d.XMax, 0) || math.IsInf(d.YMax, 0) {
		return invalidf("domain bounds must be finite and > 0, got %+v", d)
	}
	return nil
}

// Hit is the acceptance predicate: the point lies under the curve.
func Hit(f Func, x, y float64) bool { return y < f(x) }

func original(x float64) float64 {
	s := math.Sin(1 / (x * (2 - x)))
	return s * s
}

func square(x float64) float64 { return x * x }

func quarterCircle(x float64) float64 {
	if x >= 1 {
		return 0
	}
	return math.Sqrt(1 - x*x)
}

type integrand struct {
	f      Func
	domain Domain
	exact  float64 // NaN when no closed form is known
}

var integrands = map[string]integrand{
	"original":       {original, Domain{XMax: XMax, YMax: YMax}, math.NaN()},
	"square":         {square, Domain{XMax: 1, YMax: 1}, 1.0 / 3.0},
	"quarter-circle": {quarterCircle, Domain{XMax: 1, YMax: 1}, math.Pi / 4},
}

// LookupFunc returns the named function.
func LookupFunc(name string) (Func, error) {
	in, ok := integrands[name]
	if !ok {
		return nil, invalidf("unknown integrand %q (known: %v)", name, FuncNames())
	}
	return in.f, nil
}

// DefaultDomain is the natural sampling rectangle of the named function.
func DefaultDomain(name string) Domain {
	if in, ok := integrands[name]; ok {
		return in.domain
	}
	return Domain{XMax: XMax, YMax: YMax}
}

// Exact returns the analytic integral over the default domain, if known.
func Exact(name string) (float64, bool) {
	in, ok := integrands[name]
	if !ok || math.IsNaN(in.exact) {
		return 0, false
	}
	return in.exact, true
}

func FuncNames() []string {
	names := make([]string, 0, len(integrands))
	for k := range integrands {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
