package geometry

// The canvas coordinate system has its origin at the top-left corner with y growing downwards,
// while the graph coordinate system sits at the canvas center with y growing upwards.
// The transforms below convert single coordinates between the two systems.
// NOTE : the dimension argument is the canvas extent along the corresponding axis
// and is expected to be positive. Behaviour for non-positive dimensions is undefined.

// ToGraph converts a canvas coordinate to a graph coordinate along the x-axis.
func ToGraph(dim int, v float64) float64 {
	return v - float64(dim)/2
}

// ToGraphY converts a canvas coordinate to a graph coordinate along the y-axis,
// flipping the axis direction.
func ToGraphY(dim int, v float64) float64 {
	return -1 * ToGraph(dim, v)
}

// ToCanvas converts a graph coordinate to a canvas coordinate along the x-axis.
func ToCanvas(dim int, v float64) float64 {
	return float64(dim)/2 + v
}

// ToCanvasY converts a graph coordinate to a canvas coordinate along the y-axis,
// flipping the axis direction.
func ToCanvasY(dim int, v float64) float64 {
	return ToCanvas(dim, -1*v)
}
