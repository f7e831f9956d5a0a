package scene

import (
	"fmt"
	"math"

	"github.com/matzehuels/fbxgraph/pkg/errors"
)

// Validate checks the structural integrity of s:
//   - the hierarchy is a tree (no node reachable twice, no nil children)
//   - every layer belongs to exactly one stack
//   - curve keys are in non-decreasing time order with finite values
//
// Violations are reported as ErrCodeSceneInvalid.
func Validate(s *Scene) error {
	if s.FrameRate < 0 || math.IsNaN(s.FrameRate) || math.IsInf(s.FrameRate, 0) {
		return errors.New(errors.ErrCodeSceneInvalid, "invalid frame rate %v", s.FrameRate)
	}

	owners := make(map[*AnimLayer]string)
	for i, st := range s.Stacks {
		if st == nil {
			return errors.New(errors.ErrCodeSceneInvalid, "animation stack %d is nil", i)
		}
		for _, l := range st.Layers {
			if l == nil {
				return errors.New(errors.ErrCodeSceneInvalid, "stack %q has a nil layer", st.Name)
			}
			if prev, ok := owners[l]; ok {
				return errors.New(errors.ErrCodeSceneInvalid, "layer %q shared by stacks %q and %q", l.Name, prev, st.Name)
			}
			owners[l] = st.Name
		}
	}

	if s.Root == nil {
		return nil
	}

	seen := make(map[*Node]bool)
	stack := []*Node{s.Root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[n] {
			return errors.New(errors.ErrCodeSceneInvalid, "node %q appears more than once in the hierarchy", n.Name)
		}
		seen[n] = true

		if err := validateCurves(n); err != nil {
			return err
		}
		for _, c := range n.Children {
			if c == nil {
				return errors.New(errors.ErrCodeSceneInvalid, "node %q has a nil child", n.Name)
			}
			stack = append(stack, c)
		}
	}
	return nil
}

func validateCurves(n *Node) error {
	for layer, set := range n.curves {
		for ch, c := range set {
			if c == nil {
				continue
			}
			if err := validateKeys(c.Keys); err != nil {
				return errors.Wrap(errors.ErrCodeSceneInvalid, err, "curve %s_%s in layer %q", n.Name, Channel(ch), layer.Name)
			}
		}
	}
	return nil
}

func validateKeys(keys []Key) error {
	for i, k := range keys {
		if math.IsNaN(float64(k.Value)) || math.IsInf(float64(k.Value), 0) {
			return fmt.Errorf("key %d has non-finite value", i)
		}
		if i > 0 && k.Time < keys[i-1].Time {
			return fmt.Errorf("key %d time %d before previous key time %d", i, k.Time, keys[i-1].Time)
		}
	}
	return nil
}
