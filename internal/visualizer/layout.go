package visualizer

// Rect is a bar's pixel box, origin top-left.
type Rect struct {
	X, Y, W, H int32
}

// BarRect places bar i of n along the bottom edge. Columns are split
// proportionally so the full width is covered even when width%n != 0, and
// the tallest bar (value n) leaves headroom pixels free at the top.
func BarRect(i, value, n, width, height, headroom int) Rect {
	if n < 1 {
		return Rect{}
	}
	x0 := i * width / n
	x1 := (i + 1) * width / n
	usable := max(height-headroom, 0)
	h := value * usable / n
	return Rect{
		X: int32(x0),
		Y: int32(height - h),
		W: int32(max(x1-x0, 1)),
		H: int32(h),
	}
}
