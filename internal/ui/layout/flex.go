package layout

// Axis is the direction children are laid out along.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) main(s Size) int {
	if a == Horizontal {
		return s.Width
	}
	return s.Height
}

func (a Axis) cross(s Size) int {
	if a == Horizontal {
		return s.Height
	}
	return s.Width
}

func (a Axis) size(main, cross int) Size {
	if a == Horizontal {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

func (a Axis) point(main, cross int) Point {
	if a == Horizontal {
		return Point{X: main, Y: cross}
	}
	return Point{X: cross, Y: main}
}

func (a Axis) lengths(width, height Length) (main, cross Length) {
	if a == Horizontal {
		return width, height
	}
	return height, width
}

// Item is anything the flex pass can measure and lay out.
type Item interface {
	Size() (width, height Length)
	Layout(limits Limits) *Node
}

// Flex arranges items in a single direction.
//
// Items with a non-fill main length are laid out first in order, each
// receiving whatever main-axis space is left. The space remaining after them
// is split between fill items by portion; the last fill item absorbs the
// rounding remainder. Items are then placed start to end with Spacing
// between them and aligned on the cross axis by Align.
type Flex struct {
	Axis    Axis
	Width   Length
	Height  Length
	Padding Padding
	Spacing int
	Align   Alignment
}

// Resolve lays out items within limits and returns the container node.
func (f Flex) Resolve(limits Limits, items []Item) *Node {
	limits = limits.Width(f.Width).Height(f.Height)
	inner := limits.Shrink(f.Padding)

	spacing := 0
	if len(items) > 1 {
		spacing = f.Spacing * (len(items) - 1)
	}
	available := max(f.Axis.main(inner.Max)-spacing, 0)
	maxCross := f.Axis.cross(inner.Max)

	nodes := make([]*Node, len(items))
	used, totalFill, crossSize := 0, 0, 0

	for i, item := range items {
		mainLength, _ := f.Axis.lengths(item.Size())
		if mainLength.IsFill() {
			totalFill += mainLength.FillFactor()
			continue
		}
		childLimits := NewLimits(Size{}, f.Axis.size(max(available-used, 0), maxCross))
		node := item.Layout(childLimits)
		used += f.Axis.main(node.Size())
		crossSize = max(crossSize, f.Axis.cross(node.Size()))
		nodes[i] = node
	}

	if totalFill > 0 {
		remaining := max(available-used, 0)
		distributed, seen := 0, 0
		for i, item := range items {
			mainLength, _ := f.Axis.lengths(item.Size())
			if !mainLength.IsFill() {
				continue
			}
			seen += mainLength.FillFactor()
			share := remaining*seen/totalFill - distributed
			distributed += share

			childLimits := NewLimits(f.Axis.size(share, 0), f.Axis.size(share, maxCross))
			node := item.Layout(childLimits)
			used += f.Axis.main(node.Size())
			crossSize = max(crossSize, f.Axis.cross(node.Size()))
			nodes[i] = node
		}
	}

	intrinsic := f.Axis.size(used+spacing, crossSize)
	intrinsic.Width += f.Padding.Horizontal()
	intrinsic.Height += f.Padding.Vertical()
	size := limits.Resolve(f.Width, f.Height, intrinsic)

	contentCross := f.Axis.cross(size) - f.Axis.cross(Size{
		Width:  f.Padding.Horizontal(),
		Height: f.Padding.Vertical(),
	})
	mainStart := f.Padding.Left
	crossStart := f.Padding.Top
	if f.Axis == Vertical {
		mainStart, crossStart = f.Padding.Top, f.Padding.Left
	}

	offset := mainStart
	for _, node := range nodes {
		cross := crossStart + f.Align.offset(contentCross, f.Axis.cross(node.Size()))
		node.Move(f.Axis.point(offset, cross))
		offset += f.Axis.main(node.Size()) + f.Spacing
	}

	return WithChildren(size, nodes)
}

// Single lays out one child inside limits shrunk by padding and aligns it
// within the resolved content box.
func Single(limits Limits, width, height Length, padding Padding, alignX, alignY Alignment, child Item) *Node {
	limits = limits.Width(width).Height(height)
	inner := limits.Shrink(padding)

	node := child.Layout(inner.Loose())
	content := node.Size()
	size := limits.Resolve(width, height, Size{
		Width:  content.Width + padding.Horizontal(),
		Height: content.Height + padding.Vertical(),
	})

	space := Size{
		Width:  max(size.Width-padding.Horizontal(), 0),
		Height: max(size.Height-padding.Vertical(), 0),
	}
	node.Move(Point{X: padding.Left, Y: padding.Top})
	node.Align(alignX, alignY, space)

	return WithChildren(size, []*Node{node})
}
