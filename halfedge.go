package voronoi2d

// HalfEdge is the directed view of an Edge from one of the two Cells it
// borders: Site names the owning cell's site, Edge indexes the shared
// edge, and Angle is the bearing used to sort a cell's half-edges into
// counter-clockwise order around its site.
type HalfEdge struct {
	Site  int
	Edge  int
	Angle float32
}
