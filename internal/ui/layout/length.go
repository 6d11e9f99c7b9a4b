package layout

import "fmt"

type lengthKind int

const (
	lengthShrink lengthKind = iota
	lengthFill
	lengthFixed
)

// Length describes how much space an element wants along one axis.
// The zero value is Shrink.
type Length struct {
	kind  lengthKind
	value int
}

// Shrink sizes an element to its content.
func Shrink() Length {
	return Length{kind: lengthShrink}
}

// Fill takes an equal share of the remaining space.
func Fill() Length {
	return Length{kind: lengthFill, value: 1}
}

// FillPortion takes a share of the remaining space weighted by portion.
func FillPortion(portion int) Length {
	if portion < 1 {
		portion = 1
	}
	return Length{kind: lengthFill, value: portion}
}

// Fixed requests an exact number of cells. Negative values are treated as 0.
func Fixed(cells int) Length {
	if cells < 0 {
		cells = 0
	}
	return Length{kind: lengthFixed, value: cells}
}

// IsFill reports whether the length takes remaining space.
func (l Length) IsFill() bool {
	return l.kind == lengthFill
}

// IsFixed reports whether the length is an exact size.
func (l Length) IsFixed() bool {
	return l.kind == lengthFixed
}

// FillFactor returns the fill portion, or 0 for non-fill lengths.
func (l Length) FillFactor() int {
	if l.kind != lengthFill {
		return 0
	}
	return l.value
}

// Cells returns the fixed size, or 0 for non-fixed lengths.
func (l Length) Cells() int {
	if l.kind != lengthFixed {
		return 0
	}
	return l.value
}

func (l Length) String() string {
	switch l.kind {
	case lengthFill:
		if l.value == 1 {
			return "fill"
		}
		return fmt.Sprintf("fill(%d)", l.value)
	case lengthFixed:
		return fmt.Sprintf("%d", l.value)
	default:
		return "shrink"
	}
}
