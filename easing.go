package cadence

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// Curve identifies an easing curve. Curves are pure functions of normalized
// progress and carry no per-instance state, so a Curve is just an index into
// a lookup table.
type Curve uint8

const (
	Linear Curve = iota
	InQuad
	OutQuad
	InOutQuad
	InCubic
	OutCubic
	InOutCubic
	InQuart
	OutQuart
	InOutQuart
	InQuint
	OutQuint
	InOutQuint
	InSine
	OutSine
	InOutSine
	InExpo
	OutExpo
	InOutExpo
	InCirc
	OutCirc
	InOutCirc
	InBack
	OutBack
	InOutBack
	InElastic
	OutElastic
	InOutElastic
	InBounce
	OutBounce
	InOutBounce
	Oscillate1
	Oscillate3
	Oscillate5
	OscillateInfinite

	curveCount
)

// oscillateInfiniteCycles stands in for "keep oscillating for the life of
// the job".
const oscillateInfiniteCycles = 9999

type curveEntry struct {
	name     string
	fn       func(t float64) float64
	periodic bool
}

// penner adapts a gween easing function to normalized progress.
func penner(fn ease.TweenFunc) func(float64) float64 {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// Exponential curves without gween's 0.001 offset, so they stay in [0, 1]
// and meet their endpoints.
func inExpo(t float64) float64  { return math.Pow(2, 10*t-10) }
func outExpo(t float64) float64 { return 1 - math.Pow(2, -10*t) }

func inOutExpo(t float64) float64 {
	if t < 0.5 {
		return math.Pow(2, 20*t-10) / 2
	}
	return (2 - math.Pow(2, -20*t+10)) / 2
}

// inOutElastic uses a period of 0.45 rather than gween's 0.3.
func inOutElastic(t float64) float64 {
	const c5 = 2 * math.Pi / 4.5
	if t < 0.5 {
		return -(math.Pow(2, 20*t-10) * math.Sin((20*t-11.125)*c5)) / 2
	}
	return math.Pow(2, -20*t+10)*math.Sin((20*t-11.125)*c5)/2 + 1
}

func oscillate(cycles float64) func(float64) float64 {
	return func(t float64) float64 {
		return (1 - math.Cos(t*cycles*2*math.Pi)) / 2
	}
}

var curves = [curveCount]curveEntry{
	Linear:            {name: "linear", fn: func(t float64) float64 { return t }},
	InQuad:            {name: "in_quad", fn: penner(ease.InQuad)},
	OutQuad:           {name: "out_quad", fn: penner(ease.OutQuad)},
	InOutQuad:         {name: "in_out_quad", fn: penner(ease.InOutQuad)},
	InCubic:           {name: "in_cubic", fn: penner(ease.InCubic)},
	OutCubic:          {name: "out_cubic", fn: penner(ease.OutCubic)},
	InOutCubic:        {name: "in_out_cubic", fn: penner(ease.InOutCubic)},
	InQuart:           {name: "in_quart", fn: penner(ease.InQuart)},
	OutQuart:          {name: "out_quart", fn: penner(ease.OutQuart)},
	InOutQuart:        {name: "in_out_quart", fn: penner(ease.InOutQuart)},
	InQuint:           {name: "in_quint", fn: penner(ease.InQuint)},
	OutQuint:          {name: "out_quint", fn: penner(ease.OutQuint)},
	InOutQuint:        {name: "in_out_quint", fn: penner(ease.InOutQuint)},
	InSine:            {name: "in_sine", fn: penner(ease.InSine)},
	OutSine:           {name: "out_sine", fn: penner(ease.OutSine)},
	InOutSine:         {name: "in_out_sine", fn: penner(ease.InOutSine)},
	InExpo:            {name: "in_expo", fn: inExpo},
	OutExpo:           {name: "out_expo", fn: outExpo},
	InOutExpo:         {name: "in_out_expo", fn: inOutExpo},
	InCirc:            {name: "in_circ", fn: penner(ease.InCirc)},
	OutCirc:           {name: "out_circ", fn: penner(ease.OutCirc)},
	InOutCirc:         {name: "in_out_circ", fn: penner(ease.InOutCirc)},
	InBack:            {name: "in_back", fn: penner(ease.InBack)},
	OutBack:           {name: "out_back", fn: penner(ease.OutBack)},
	InOutBack:         {name: "in_out_back", fn: penner(ease.InOutBack)},
	InElastic:         {name: "in_elastic", fn: penner(ease.InElastic)},
	OutElastic:        {name: "out_elastic", fn: penner(ease.OutElastic)},
	InOutElastic:      {name: "in_out_elastic", fn: inOutElastic},
	InBounce:          {name: "in_bounce", fn: penner(ease.InBounce)},
	OutBounce:         {name: "out_bounce", fn: penner(ease.OutBounce)},
	InOutBounce:       {name: "in_out_bounce", fn: penner(ease.InOutBounce)},
	Oscillate1:        {name: "oscillate_1", fn: oscillate(1), periodic: true},
	Oscillate3:        {name: "oscillate_3", fn: oscillate(3), periodic: true},
	Oscillate5:        {name: "oscillate_5", fn: oscillate(5), periodic: true},
	OscillateInfinite: {name: "oscillate_infinite", fn: oscillate(oscillateInfiniteCycles), periodic: true},
}

// Evaluate maps normalized progress t in [0, 1] through the curve.
//
// Endpoints bypass the formulas: non-periodic curves return exactly 0 at
// t <= 0 and exactly 1 at t >= 1; periodic curves return 0 at both ends.
// An out-of-range Curve evaluates as Linear.
func Evaluate(c Curve, t float64) float64 {
	if c >= curveCount {
		c = Linear
	}
	e := &curves[c]
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		if e.periodic {
			return 0
		}
		return 1
	}
	return e.fn(t)
}

// Periodic reports whether the curve oscillates rather than travelling from
// 0 to 1.
func (c Curve) Periodic() bool {
	return c < curveCount && curves[c].periodic
}

// String returns the configuration name of the curve, e.g. "in_out_quad".
func (c Curve) String() string {
	if c >= curveCount {
		return fmt.Sprintf("Curve(%d)", uint8(c))
	}
	return curves[c].name
}

// ParseCurve returns the curve with the given configuration name.
func ParseCurve(name string) (Curve, error) {
	for i := range curves {
		if curves[i].name == name {
			return Curve(i), nil
		}
	}
	return Linear, fmt.Errorf("unknown easing curve %q", name)
}

// Curves returns every defined curve in declaration order.
func Curves() []Curve {
	out := make([]Curve, curveCount)
	for i := range out {
		out[i] = Curve(i)
	}
	return out
}

// UnmarshalText implements encoding.TextUnmarshaler so curves can be named
// in YAML configuration.
func (c *Curve) UnmarshalText(text []byte) error {
	v, err := ParseCurve(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Curve) MarshalText() ([]byte, error) {
	if c >= curveCount {
		return nil, fmt.Errorf("invalid easing curve %d", uint8(c))
	}
	return []byte(curves[c].name), nil
}
