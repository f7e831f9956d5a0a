package scene

import "math"

// TicksPerSecond is the FBX time base.
const TicksPerSecond = 46186158000

// DefaultFrameRate is used when a scene does not declare one.
const DefaultFrameRate = 30.0

// Time is a key time in ticks.
type Time int64

// Seconds returns t in seconds.
func (t Time) Seconds() float64 {
	return float64(t) / TicksPerSecond
}

// Frame returns t as a frame count at rate frames per second, and whether t
// falls exactly on that frame.
func (t Time) Frame(rate float64) (frame int64, exact bool) {
	if rate <= 0 {
		rate = DefaultFrameRate
	}
	if step, ok := ticksPerFrame(rate); ok {
		frame, rem := int64(t)/step, int64(t)%step
		if rem < 0 {
			frame--
			rem += step
		}
		return frame, rem == 0
	}
	f := float64(t) * rate / TicksPerSecond
	r := math.Round(f)
	if math.Abs(f-r) < 1e-6 {
		return int64(r), true
	}
	return int64(math.Floor(f)), false
}

// ticksPerFrame returns the frame length in ticks when it is a whole number.
func ticksPerFrame(rate float64) (int64, bool) {
	tpf := TicksPerSecond / rate
	if tpf < 1 || tpf != math.Trunc(tpf) || tpf > math.MaxInt64 {
		return 0, false
	}
	return int64(tpf), true
}

// Unknown is the label of any key enum value missing from its table.
const Unknown = "?"

// Interpolation is how a curve evaluates between a key and the next one.
type Interpolation int

// Interpolation kinds. The zero value is unrecognized.
const (
	InterpolationConstant Interpolation = iota + 1
	InterpolationLinear
	InterpolationCubic
)

var interpolationLabels = map[Interpolation]string{
	InterpolationConstant: "constant",
	InterpolationLinear:   "linear",
	InterpolationCubic:    "cubic",
}

func (i Interpolation) String() string { return label(interpolationLabels, i) }

// TangentMode shapes a cubic key's tangents.
type TangentMode int

// Tangent modes. The zero value is unrecognized.
const (
	TangentAuto TangentMode = iota + 1
	TangentAutoBreak
	TangentTCB
	TangentUser
	TangentGenericBreak
	TangentBreak
)

var tangentLabels = map[TangentMode]string{
	TangentAuto:         "Auto",
	TangentAutoBreak:    "AutoBreak",
	TangentTCB:          "TCB",
	TangentUser:         "User",
	TangentGenericBreak: "GenericBreak",
	TangentBreak:        "Break",
}

func (m TangentMode) String() string { return label(tangentLabels, m) }

// WeightMode says which tangents of a cubic key are weighted.
type WeightMode int

// Weight modes. The zero value is unrecognized.
const (
	WeightNone WeightMode = iota + 1
	WeightRight
	WeightNextLeft
	WeightAll
)

var weightLabels = map[WeightMode]string{
	WeightNone:     "None",
	WeightRight:    "WeightedRight",
	WeightNextLeft: "WeightedNextLeft",
	WeightAll:      "WeightedAll",
}

func (m WeightMode) String() string { return label(weightLabels, m) }

// ConstantMode selects the value held by a constant key.
type ConstantMode int

// Constant modes. The zero value is unrecognized.
const (
	ConstantStandard ConstantMode = iota + 1
	ConstantNext
)

var constantLabels = map[ConstantMode]string{
	ConstantStandard: "ConstantStandard",
	ConstantNext:     "ConstantNext",
}

func (m ConstantMode) String() string { return label(constantLabels, m) }

func label[K comparable](table map[K]string, k K) string {
	if s, ok := table[k]; ok {
		return s
	}
	return Unknown
}

// Key is one keyframe. TangentMode and WeightMode are meaningful only for
// cubic keys, ConstantMode only for constant keys.
type Key struct {
	Time          Time
	Value         float32
	Interpolation Interpolation
	TangentMode   TangentMode
	WeightMode    WeightMode
	ConstantMode  ConstantMode
}

// Curve is an ordered sequence of keys.
type Curve struct {
	Keys []Key
}

// KeyCount returns the number of keys.
func (c *Curve) KeyCount() int { return len(c.Keys) }
