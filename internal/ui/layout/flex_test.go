package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type box struct {
	width  Length
	height Length
	size   Size
}

func (b box) Size() (Length, Length) {
	return b.width, b.height
}

func (b box) Layout(limits Limits) *Node {
	return NewNode(limits.Resolve(b.width, b.height, b.size))
}

func fixedBox(w, h int) box {
	return box{width: Fixed(w), height: Fixed(h)}
}

func TestFlexHorizontalFixed(t *testing.T) {
	limits := NewLimits(Size{}, Size{Width: 1000, Height: 10})
	node := Flex{Axis: Horizontal, Width: Fill(), Height: Shrink()}.Resolve(limits, []Item{
		fixedBox(100, 1), fixedBox(200, 1), fixedBox(300, 1),
	})

	require.Len(t, node.Children(), 3)
	assert.Equal(t, Rectangle{X: 0, Y: 0, Width: 100, Height: 1}, node.Child(0).Bounds())
	assert.Equal(t, Rectangle{X: 100, Y: 0, Width: 200, Height: 1}, node.Child(1).Bounds())
	assert.Equal(t, Rectangle{X: 300, Y: 0, Width: 300, Height: 1}, node.Child(2).Bounds())
	assert.Equal(t, Size{Width: 1000, Height: 1}, node.Size())
}

func TestFlexSpacingAndPadding(t *testing.T) {
	limits := NewLimits(Size{}, Size{Width: 100, Height: 10})
	node := Flex{
		Axis:    Horizontal,
		Width:   Shrink(),
		Height:  Shrink(),
		Padding: Padding{Left: 2, Right: 3, Top: 1},
		Spacing: 1,
	}.Resolve(limits, []Item{fixedBox(10, 1), fixedBox(20, 2)})

	assert.Equal(t, Rectangle{X: 2, Y: 1, Width: 10, Height: 1}, node.Child(0).Bounds())
	assert.Equal(t, Rectangle{X: 13, Y: 1, Width: 20, Height: 2}, node.Child(1).Bounds())
	assert.Equal(t, Size{Width: 36, Height: 3}, node.Size())
}

func TestFlexFillSharesRemainder(t *testing.T) {
	limits := NewLimits(Size{}, Size{Width: 50, Height: 1})
	fill := box{width: Fill(), height: Fixed(1)}
	node := Flex{Axis: Horizontal, Width: Fill(), Height: Shrink()}.Resolve(limits, []Item{
		fill, fixedBox(10, 1), fill, fill,
	})

	widths := []int{}
	for _, child := range node.Children() {
		widths = append(widths, child.Bounds().Width)
	}
	assert.Equal(t, []int{13, 10, 13, 14}, widths)
	assert.Equal(t, 10+13, node.Child(2).Bounds().X)
}

func TestFlexFillPortion(t *testing.T) {
	limits := NewLimits(Size{}, Size{Width: 30, Height: 1})
	node := Flex{Axis: Horizontal, Width: Fill()}.Resolve(limits, []Item{
		box{width: FillPortion(1), height: Fixed(1)},
		box{width: FillPortion(2), height: Fixed(1)},
	})

	assert.Equal(t, 10, node.Child(0).Bounds().Width)
	assert.Equal(t, 20, node.Child(1).Bounds().Width)
}

func TestFlexVerticalCrossAlignment(t *testing.T) {
	limits := NewLimits(Size{}, Size{Width: 20, Height: 20})
	node := Flex{Axis: Vertical, Width: Fill(), Height: Shrink(), Align: AlignCenter}.Resolve(limits, []Item{
		fixedBox(10, 2), fixedBox(4, 3),
	})

	assert.Equal(t, Rectangle{X: 5, Y: 0, Width: 10, Height: 2}, node.Child(0).Bounds())
	assert.Equal(t, Rectangle{X: 8, Y: 2, Width: 4, Height: 3}, node.Child(1).Bounds())
	assert.Equal(t, Size{Width: 20, Height: 5}, node.Size())
}

func TestFlexOverflowTruncatesLaterItems(t *testing.T) {
	limits := NewLimits(Size{}, Size{Width: 25, Height: 1})
	node := Flex{Axis: Horizontal, Width: Fill()}.Resolve(limits, []Item{
		fixedBox(20, 1), fixedBox(20, 1),
	})

	assert.Equal(t, 20, node.Child(0).Bounds().Width)
	assert.Equal(t, 5, node.Child(1).Bounds().Width)
}

func TestSingleAlignsChild(t *testing.T) {
	limits := NewLimits(Size{}, Size{Width: 40, Height: 10})
	node := Single(limits, Fixed(20), Fixed(5), UniformPadding(1), AlignCenter, AlignEnd, fixedBox(6, 1))

	assert.Equal(t, Size{Width: 20, Height: 5}, node.Size())
	require.Len(t, node.Children(), 1)
	assert.Equal(t, Rectangle{X: 7, Y: 3, Width: 6, Height: 1}, node.Child(0).Bounds())
}

func TestNodeMoveCarriesChildren(t *testing.T) {
	child := NewNode(Size{Width: 2, Height: 1}).Move(Point{X: 3, Y: 1})
	parent := WithChildren(Size{Width: 10, Height: 4}, []*Node{child})
	parent.Move(Point{X: 5, Y: 5})

	assert.Equal(t, Rectangle{X: 5, Y: 5, Width: 10, Height: 4}, parent.Bounds())
	assert.Equal(t, Rectangle{X: 8, Y: 6, Width: 2, Height: 1}, child.Bounds())
	assert.Nil(t, parent.Child(1))
	assert.Nil(t, parent.Child(-1))
}

func TestLimitsResolve(t *testing.T) {
	limits := NewLimits(Size{Width: 5}, Size{Width: 50, Height: 3})

	tests := []struct {
		name   string
		width  Length
		height Length
		want   Size
	}{
		{name: "fill takes max", width: Fill(), height: Fill(), want: Size{Width: 50, Height: 3}},
		{name: "fixed clamps", width: Fixed(80), height: Fixed(2), want: Size{Width: 50, Height: 2}},
		{name: "shrink honours min", width: Shrink(), height: Shrink(), want: Size{Width: 5, Height: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := limits.Resolve(tt.width, tt.height, Size{Width: 1, Height: 1})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRectangleContainsIsHalfOpen(t *testing.T) {
	r := Rectangle{X: 10, Y: 2, Width: 5, Height: 1}

	assert.True(t, r.Contains(Point{X: 10, Y: 2}))
	assert.True(t, r.Contains(Point{X: 14, Y: 2}))
	assert.False(t, r.Contains(Point{X: 15, Y: 2}))
	assert.False(t, r.Contains(Point{X: 12, Y: 3}))
	assert.False(t, Rectangle{}.Contains(Point{}))
}
