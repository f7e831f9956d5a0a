package fbx

import "github.com/matzehuels/fbxgraph/pkg/scene"

// KeyAttrFlags bits.
const (
	flagInterpolationConstant = 0x00000002
	flagInterpolationLinear   = 0x00000004
	flagInterpolationCubic    = 0x00000008
	flagInterpolationMask     = 0x0000000e

	flagTangentAuto         = 0x00000100
	flagTangentTCB          = 0x00000200
	flagTangentUser         = 0x00000400
	flagTangentGenericBreak = 0x00000800
	flagTangentBreak        = flagTangentGenericBreak | flagTangentUser
	flagTangentAutoBreak    = flagTangentGenericBreak | flagTangentAuto
	flagTangentMask         = 0x00000f00

	flagConstantNext = 0x00000100

	flagWeightedRight    = 0x01000000
	flagWeightedNextLeft = 0x02000000
	flagWeightedMask     = flagWeightedRight | flagWeightedNextLeft
)

// decodeKeyFlags fills the interpolation metadata of k from a KeyAttrFlags
// value.
func decodeKeyFlags(k *scene.Key, flags uint32) {
	switch flags & flagInterpolationMask {
	case flagInterpolationConstant:
		k.Interpolation = scene.InterpolationConstant
	case flagInterpolationLinear:
		k.Interpolation = scene.InterpolationLinear
	case flagInterpolationCubic:
		k.Interpolation = scene.InterpolationCubic
	}

	switch k.Interpolation {
	case scene.InterpolationCubic:
		k.TangentMode = tangentModes[flags&flagTangentMask]
		switch flags & flagWeightedMask {
		case 0:
			k.WeightMode = scene.WeightNone
		case flagWeightedRight:
			k.WeightMode = scene.WeightRight
		case flagWeightedNextLeft:
			k.WeightMode = scene.WeightNextLeft
		default:
			k.WeightMode = scene.WeightAll
		}
	case scene.InterpolationConstant:
		if flags&flagConstantNext != 0 {
			k.ConstantMode = scene.ConstantNext
		} else {
			k.ConstantMode = scene.ConstantStandard
		}
	}
}

// tangentModes maps masked tangent bits to modes. Missing entries stay
// unrecognized.
var tangentModes = map[uint32]scene.TangentMode{
	flagTangentAuto:         scene.TangentAuto,
	flagTangentAutoBreak:    scene.TangentAutoBreak,
	flagTangentTCB:          scene.TangentTCB,
	flagTangentUser:         scene.TangentUser,
	flagTangentGenericBreak: scene.TangentGenericBreak,
	flagTangentBreak:        scene.TangentBreak,
}

// encodeKeyFlags is the inverse of decodeKeyFlags for recognized values.
func encodeKeyFlags(k scene.Key) uint32 {
	var flags uint32
	switch k.Interpolation {
	case scene.InterpolationConstant:
		flags |= flagInterpolationConstant
		if k.ConstantMode == scene.ConstantNext {
			flags |= flagConstantNext
		}
	case scene.InterpolationLinear:
		flags |= flagInterpolationLinear
	case scene.InterpolationCubic:
		flags |= flagInterpolationCubic
		for bits, m := range tangentModes {
			if m == k.TangentMode {
				flags |= bits
			}
		}
		switch k.WeightMode {
		case scene.WeightRight:
			flags |= flagWeightedRight
		case scene.WeightNextLeft:
			flags |= flagWeightedNextLeft
		case scene.WeightAll:
			flags |= flagWeightedMask
		}
	}
	return flags
}
