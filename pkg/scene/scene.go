package scene

// Channel is one tracked animation channel of a node's local transform.
type Channel int

// Channels in projection order.
const (
	ChannelTX Channel = iota
	ChannelTY
	ChannelTZ
	ChannelRX
	ChannelRY
	ChannelRZ
	ChannelSX
	ChannelSY
	ChannelSZ

	// NumChannels is the number of tracked channels.
	NumChannels = 9
)

var channelSuffixes = [NumChannels]string{"TX", "TY", "TZ", "RX", "RY", "RZ", "SX", "SY", "SZ"}

// Channels returns all tracked channels in projection order.
func Channels() []Channel {
	out := make([]Channel, NumChannels)
	for i := range out {
		out[i] = Channel(i)
	}
	return out
}

// String returns the channel suffix, e.g. "TX".
func (c Channel) String() string {
	if c < 0 || int(c) >= NumChannels {
		return Unknown
	}
	return channelSuffixes[c]
}

// Scene is a loaded scene. Root may be nil.
type Scene struct {
	Root      *Node
	Stacks    []*AnimStack
	FrameRate float64
}

// RootNode returns s.Root. Together with AnimStacks it lets *Scene serve as a
// projection source.
func (s *Scene) RootNode() *Node { return s.Root }

// AnimStacks returns the animation stacks in scene order.
func (s *Scene) AnimStacks() []*AnimStack { return s.Stacks }

// Walk visits every node of the hierarchy in depth-first pre-order. It stops
// early when fn returns false.
func (s *Scene) Walk(fn func(n *Node, depth int) bool) {
	if s.Root == nil {
		return
	}
	type item struct {
		node  *Node
		depth int
	}
	stack := []item{{s.Root, 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(it.node, it.depth) {
			return
		}
		for i := len(it.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, item{it.node.Children[i], it.depth + 1})
		}
	}
}

// Node is an entity of the scene hierarchy.
type Node struct {
	Name       string
	Attributes []Attribute
	Children   []*Node

	curves map[*AnimLayer]*[NumChannels]*Curve
}

// NewNode creates a node with the given attributes.
func NewNode(name string, attrs ...Attribute) *Node {
	return &Node{Name: name, Attributes: attrs}
}

// AddChild appends child and returns it.
func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return child
}

// TypeLabel returns the concatenated attribute labels of n.
func (n *Node) TypeLabel() string { return TypeLabel(n.Attributes) }

// SetCurve attaches c to channel ch of n under layer.
func (n *Node) SetCurve(layer *AnimLayer, ch Channel, c *Curve) {
	if ch < 0 || int(ch) >= NumChannels {
		return
	}
	if n.curves == nil {
		n.curves = make(map[*AnimLayer]*[NumChannels]*Curve)
	}
	set, ok := n.curves[layer]
	if !ok {
		set = new([NumChannels]*Curve)
		n.curves[layer] = set
	}
	set[ch] = c
}

// Curve returns the curve of channel ch under layer, or nil.
func (n *Node) Curve(layer *AnimLayer, ch Channel) *Curve {
	if ch < 0 || int(ch) >= NumChannels {
		return nil
	}
	set, ok := n.curves[layer]
	if !ok {
		return nil
	}
	return set[ch]
}

// Animated reports whether n has at least one channel curve under layer.
func (n *Node) Animated(layer *AnimLayer) bool {
	set, ok := n.curves[layer]
	if !ok {
		return false
	}
	for _, c := range set {
		if c != nil {
			return true
		}
	}
	return false
}

// CurveCount returns the number of channel curves of n across all layers.
func (n *Node) CurveCount() int {
	count := 0
	for _, set := range n.curves {
		for _, c := range set {
			if c != nil {
				count++
			}
		}
	}
	return count
}

// AnimStack is one take: an ordered list of layers.
type AnimStack struct {
	Name   string
	Layers []*AnimLayer
}

// AddLayer creates a layer named name and appends it.
func (s *AnimStack) AddLayer(name string) *AnimLayer {
	l := &AnimLayer{Name: name}
	s.Layers = append(s.Layers, l)
	return l
}

// AnimLayer groups the curves of one animation layer.
type AnimLayer struct {
	Name string
}
