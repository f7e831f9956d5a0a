// Package curveinfo renders an animation curve's keys as HTML-like table
// rows for Graphviz labels.
//
// The fragment starts with a key-count row followed by one row per key in the
// curve's native order:
//
//	<tr><td align='left'><b>Key counts= <font color='red'><b>2</b></font></b></td></tr>
//	<tr><td align='left'>Key Time= <font color='red'><b>0</b></font> , Key Value= ... </td></tr>
//
// Cubic keys add their tangent mode and tangent weight mode, constant keys add
// their constant mode, other keys add nothing.
package curveinfo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/fbxgraph/pkg/scene"
)

// TimeMode selects how key times are printed.
type TimeMode string

// Supported time modes.
const (
	// TimeModeFrames prints the frame number, with a trailing "*" when the
	// key lies between frames.
	TimeModeFrames TimeMode = "frames"
	// TimeModeSeconds prints seconds with millisecond precision, e.g. "1.250s".
	TimeModeSeconds TimeMode = "seconds"
)

// ParseTimeMode validates s. The empty string selects TimeModeFrames.
func ParseTimeMode(s string) (TimeMode, error) {
	switch TimeMode(s) {
	case "", TimeModeFrames:
		return TimeModeFrames, nil
	case TimeModeSeconds:
		return TimeModeSeconds, nil
	default:
		return "", fmt.Errorf("invalid time mode: %s (must be 'frames' or 'seconds')", s)
	}
}

// Options configures Format.
type Options struct {
	TimeMode  TimeMode
	FrameRate float64 // frames per second; scene.DefaultFrameRate when <= 0
}

// Format renders c. A nil curve renders as a zero key count.
func Format(c *scene.Curve, opts Options) string {
	var b strings.Builder
	var keys []scene.Key
	if c != nil {
		keys = c.Keys
	}

	b.WriteString("<tr><td align='left'><b>Key counts= ")
	b.WriteString(highlight(strconv.Itoa(len(keys))))
	b.WriteString("</b></td></tr>\n")

	for _, k := range keys {
		writeKey(&b, k, opts)
	}
	return b.String()
}

func writeKey(b *strings.Builder, k scene.Key, opts Options) {
	b.WriteString("<tr><td align='left'>")
	b.WriteString("Key Time= ")
	b.WriteString(highlight(FormatTime(k.Time, opts)))
	b.WriteString(" , Key Value= ")
	b.WriteString(highlight(fmt.Sprintf("%f", k.Value)))
	b.WriteString(" , InterpolationType= ")
	b.WriteString(highlight(k.Interpolation.String()))

	switch k.Interpolation {
	case scene.InterpolationCubic:
		b.WriteString(" , TangentMode= ")
		b.WriteString(highlight(k.TangentMode.String()))
		b.WriteString(", TangentWeight= ")
		b.WriteString(highlight(k.WeightMode.String()))
	case scene.InterpolationConstant:
		b.WriteString(" , ")
		b.WriteString(highlight(k.ConstantMode.String()))
		b.WriteString(", ")
	}
	b.WriteString("</td></tr>\n")
}

func highlight(s string) string {
	return "<font color='red'><b>" + s + "</b></font>"
}

// FormatTime renders t according to opts.
func FormatTime(t scene.Time, opts Options) string {
	if opts.TimeMode == TimeModeSeconds {
		return fmt.Sprintf("%.3fs", t.Seconds())
	}
	frame, exact := t.Frame(opts.FrameRate)
	if exact {
		return strconv.FormatInt(frame, 10)
	}
	return strconv.FormatInt(frame, 10) + "*"
}
