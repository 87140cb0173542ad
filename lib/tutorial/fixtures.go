package tutorial

// Vertex data of the individual chapters. Positions are in normalised
// device coordinates.

// TriangleVertices: x, y, z
var TriangleVertices = []float32{
	-0.5, -0.5, 0.0, // left
	0.5, -0.5, 0.0, // right
	0.0, 0.5, 0.0, // top
}

// RectangleVertices: x, y, z; drawn through RectangleIndices
var RectangleVertices = []float32{
	0.5, 0.5, 0.0, // top right
	0.5, -0.5, 0.0, // bottom right
	-0.5, -0.5, 0.0, // bottom left
	-0.5, 0.5, 0.0, // top left
}

var RectangleIndices = []uint32{
	0, 1, 3, // first triangle
	1, 2, 3, // second triangle
}

// ColoredTriangleVertices: x, y, z, r, g, b
var ColoredTriangleVertices = []float32{
	0.5, -0.5, 0.0, 1.0, 0.0, 0.0, // bottom right
	-0.5, -0.5, 0.0, 0.0, 1.0, 0.0, // bottom left
	0.0, 0.5, 0.0, 0.0, 0.0, 1.0, // top
}

// TexturedRectangleVertices: x, y, z, r, g, b, s, t; drawn through
// RectangleIndices
var TexturedRectangleVertices = []float32{
	0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0, // top right
	0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 1.0, 0.0, // bottom right
	-0.5, -0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, // bottom left
	-0.5, 0.5, 0.0, 1.0, 1.0, 0.0, 0.0, 1.0, // top left
}
