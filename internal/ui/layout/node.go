package layout

// Node is the resolved geometry of one element and its children.
// Child bounds are absolute once the root has been positioned with Move.
type Node struct {
	bounds   Rectangle
	children []*Node
}

// NewNode creates a leaf node of the given size at the origin.
func NewNode(size Size) *Node {
	return &Node{bounds: Rectangle{Width: size.Width, Height: size.Height}}
}

// WithChildren creates a node of the given size holding children.
// Children keep positions relative to the new node until it is moved.
func WithChildren(size Size, children []*Node) *Node {
	n := NewNode(size)
	n.children = children
	return n
}

// Bounds returns the node rectangle.
func (n *Node) Bounds() Rectangle {
	return n.bounds
}

// Size returns the node dimensions.
func (n *Node) Size() Size {
	return n.bounds.Size()
}

// Children returns the child nodes in layout order.
func (n *Node) Children() []*Node {
	return n.children
}

// Child returns the child at index i, or nil when i is out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Move places the node at p, carrying its children along.
func (n *Node) Move(p Point) *Node {
	n.Translate(p.X-n.bounds.X, p.Y-n.bounds.Y)
	return n
}

// Translate shifts the node and all of its descendants.
func (n *Node) Translate(dx, dy int) *Node {
	n.bounds.X += dx
	n.bounds.Y += dy
	for _, child := range n.children {
		child.Translate(dx, dy)
	}
	return n
}

// Align positions the node inside space, relative to its current position.
func (n *Node) Align(horizontal, vertical Alignment, space Size) *Node {
	return n.Translate(
		horizontal.offset(space.Width, n.bounds.Width),
		vertical.offset(space.Height, n.bounds.Height),
	)
}
