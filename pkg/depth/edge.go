package depth

// neighbors are the 8 surrounding offsets, row by row.
var neighbors = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// IsEdge reports whether any in-bounds 8-neighbor of (x, y) is transparent.
// Neighbors outside the image are ignored, so the image border alone never
// makes a pixel an edge.
func (r *RawImage) IsEdge(x, y int) bool {
	for _, d := range neighbors {
		nx, ny := x+d[0], y+d[1]
		if !r.inBounds(nx, ny) {
			continue
		}
		if r.IsTransparent(r.Offset(nx, ny)) {
			return true
		}
	}
	return false
}
