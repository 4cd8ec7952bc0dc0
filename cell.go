package voronoi2d

// Cell is the closed polygon of HalfEdges surrounding one Site. CloseMe is
// set once any incident edge is connected or clipped against the
// viewport; only such cells require border closure.
type Cell struct {
	Site      int
	HalfEdges []HalfEdge
	CloseMe   bool
}
