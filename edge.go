package voronoi2d

// Edge is the locus of points equidistant from LeftSite and RightSite,
// clipped to the viewport. RightSite == -1 marks a border edge, synthesized
// along the viewport wall during cell closure, with no second site.
//
// Invariant during the sweep: at most one of P0, P1 is undefined at a
// time. After clipEdges, a surviving edge has both endpoints defined and
// within the viewport; a dead edge (clipped away entirely) has both
// endpoints undefined.
type Edge struct {
	LeftSite, RightSite int
	P0, P1              Vertex
}

func newEdge(leftSite, rightSite int) Edge {
	return Edge{LeftSite: leftSite, RightSite: rightSite, P0: UndefinedVertex, P1: UndefinedVertex}
}

func newBorderEdge(site int) Edge {
	return Edge{LeftSite: site, RightSite: -1, P0: UndefinedVertex, P1: UndefinedVertex}
}

// dead reports whether the edge was clipped away entirely.
func (e *Edge) dead() bool {
	return !e.P0.Defined() && !e.P1.Defined()
}

// setStartpoint assigns v as an endpoint of e, choosing which one per the
// edge's current state:
//   - if e has no endpoint yet, v becomes p0 and e adopts (leftSite, rightSite);
//   - else if e's leftSite equals the given rightSite, v becomes p1;
//   - else v becomes p0.
func (e *Edge) setStartpoint(leftSite, rightSite int, v Vertex) {
	if !e.P0.Defined() && !e.P1.Defined() {
		e.P0 = v
		e.LeftSite = leftSite
		e.RightSite = rightSite
		return
	}
	if e.LeftSite == rightSite {
		e.P1 = v
		return
	}
	e.P0 = v
}

// setEndpoint is setStartpoint with leftSite/rightSite swapped.
func (e *Edge) setEndpoint(leftSite, rightSite int, v Vertex) {
	e.setStartpoint(rightSite, leftSite, v)
}
