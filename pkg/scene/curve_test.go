package scene

import "testing"

func TestKeyEnumLabels(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"constant", InterpolationConstant.String(), "constant"},
		{"linear", InterpolationLinear.String(), "linear"},
		{"cubic", InterpolationCubic.String(), "cubic"},
		{"interpolation zero", Interpolation(0).String(), "?"},
		{"auto", TangentAuto.String(), "Auto"},
		{"auto break", TangentAutoBreak.String(), "AutoBreak"},
		{"tcb", TangentTCB.String(), "TCB"},
		{"user", TangentUser.String(), "User"},
		{"generic break", TangentGenericBreak.String(), "GenericBreak"},
		{"break", TangentBreak.String(), "Break"},
		{"tangent unknown", TangentMode(42).String(), "?"},
		{"weight none", WeightNone.String(), "None"},
		{"weight right", WeightRight.String(), "WeightedRight"},
		{"weight next left", WeightNextLeft.String(), "WeightedNextLeft"},
		{"weight all", WeightAll.String(), "WeightedAll"},
		{"weight unknown", WeightMode(0).String(), "?"},
		{"constant standard", ConstantStandard.String(), "ConstantStandard"},
		{"constant next", ConstantNext.String(), "ConstantNext"},
		{"constant unknown", ConstantMode(9).String(), "?"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestTimeFrame(t *testing.T) {
	second := Time(TicksPerSecond)
	tests := []struct {
		name      string
		t         Time
		rate      float64
		wantFrame int64
		wantExact bool
	}{
		{"zero", 0, 30, 0, true},
		{"one second at 30", second, 30, 30, true},
		{"one second at 24", second, 24, 24, true},
		{"half frame", second / 60, 30, 0, false},
		{"default rate", second, 0, 30, true},
		{"one frame at 30", second / 30, 30, 1, true},
		{"few ticks after a frame", 5, 30, 0, false},
		{"few ticks before a frame", second/30 - 3, 30, 0, false},
		{"one tick before zero", -1, 30, -1, false},
		{"negative frame", -second / 30, 30, -1, true},
		{"non-integral frame length", 0, 29.97, 0, true},
		{"non-integral frame length, between", second / 60, 29.97, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, exact := tt.t.Frame(tt.rate)
			if frame != tt.wantFrame || exact != tt.wantExact {
				t.Errorf("Frame(%v) = (%d, %v), want (%d, %v)", tt.rate, frame, exact, tt.wantFrame, tt.wantExact)
			}
		})
	}
}

func TestTimeSeconds(t *testing.T) {
	if got := Time(TicksPerSecond * 2).Seconds(); got != 2 {
		t.Errorf("Seconds() = %v, want 2", got)
	}
}
