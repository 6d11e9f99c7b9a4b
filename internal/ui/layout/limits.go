package layout

// Limits bounds the size a node may take during layout.
type Limits struct {
	Min Size
	Max Size
}

// NewLimits creates limits with the given minimum and maximum sizes.
// A minimum larger than the maximum is lowered to the maximum.
func NewLimits(minSize, maxSize Size) Limits {
	maxSize.Width = max(maxSize.Width, 0)
	maxSize.Height = max(maxSize.Height, 0)
	minSize.Width = clampInt(minSize.Width, 0, maxSize.Width)
	minSize.Height = clampInt(minSize.Height, 0, maxSize.Height)
	return Limits{Min: minSize, Max: maxSize}
}

// Loose drops the minimum size.
func (l Limits) Loose() Limits {
	l.Min = Size{}
	return l
}

// Width narrows the limits to a fixed width when w is Fixed.
func (l Limits) Width(w Length) Limits {
	if w.IsFixed() {
		n := clampInt(w.Cells(), l.Min.Width, l.Max.Width)
		l.Min.Width, l.Max.Width = n, n
	}
	return l
}

// Height narrows the limits to a fixed height when h is Fixed.
func (l Limits) Height(h Length) Limits {
	if h.IsFixed() {
		n := clampInt(h.Cells(), l.Min.Height, l.Max.Height)
		l.Min.Height, l.Max.Height = n, n
	}
	return l
}

// MaxWidth caps the maximum width.
func (l Limits) MaxWidth(width int) Limits {
	l.Max.Width = clampInt(width, 0, l.Max.Width)
	l.Min.Width = min(l.Min.Width, l.Max.Width)
	return l
}

// MaxHeight caps the maximum height.
func (l Limits) MaxHeight(height int) Limits {
	l.Max.Height = clampInt(height, 0, l.Max.Height)
	l.Min.Height = min(l.Min.Height, l.Max.Height)
	return l
}

// Shrink removes padding from both bounds.
func (l Limits) Shrink(p Padding) Limits {
	l.Max.Width = max(l.Max.Width-p.Horizontal(), 0)
	l.Max.Height = max(l.Max.Height-p.Vertical(), 0)
	l.Min.Width = clampInt(l.Min.Width-p.Horizontal(), 0, l.Max.Width)
	l.Min.Height = clampInt(l.Min.Height-p.Vertical(), 0, l.Max.Height)
	return l
}

// Resolve picks the final size for a node whose content measured intrinsic.
func (l Limits) Resolve(width, height Length, intrinsic Size) Size {
	return Size{
		Width:  resolveAxis(width, intrinsic.Width, l.Min.Width, l.Max.Width),
		Height: resolveAxis(height, intrinsic.Height, l.Min.Height, l.Max.Height),
	}
}

func resolveAxis(length Length, intrinsic, lo, hi int) int {
	switch {
	case length.IsFill():
		return hi
	case length.IsFixed():
		return clampInt(length.Cells(), lo, hi)
	default:
		return clampInt(intrinsic, lo, hi)
	}
}

// clampInt bounds v to [lo, hi]. When the range is inverted hi wins.
func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
