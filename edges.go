package voronoi2d

import "github.com/cinekine/voronoi2d/numeric"

// connectEdge extends a dangling edge (one whose end point was never set
// during the sweep) along the perpendicular bisector of its two sites
// until it meets the viewport. Returns false when no part of the bisector
// crosses the viewport; clipEdges then marks the edge dead.
//
// Direction conventions, relative to the left site:
// the bisector runs upward when left.x < right.x, downward when
// left.x > right.x, leftward when left.y > right.y, rightward when
// left.y < right.y.
func (g *Graph) connectEdge(edgeIdx int) bool {
	edge := &g.edges[edgeIdx]

	// skip if end point already connected
	if edge.P1.Defined() {
		return true
	}

	yt := float32(0)
	yb := g.yBound
	xl := float32(0)
	xr := g.xBound

	lSite := g.sites[edge.LeftSite]
	rSite := g.sites[edge.RightSite]
	lx, ly := lSite.X, lSite.Y
	rx, ry := rSite.X, rSite.Y
	fx := (lx + rx) / 2
	fy := (ly + ry) / 2

	// reaching here means the cells on either side need closure, whether
	// the edge survives connection or not
	g.cells[lSite.Cell].CloseMe = true
	g.cells[rSite.Cell].CloseMe = true

	var p1 Vertex
	p0 := edge.P0

	// vertical bisector: the sites share a y, so the bisector cannot be
	// expressed as a slope; intersect with the top/bottom walls directly
	if ry == ly {
		if fx < xl || fx >= xr {
			return false
		}
		if lx <= rx {
			// upward
			if !p0.Defined() || p0.Y > yb {
				p0 = Vertex{X: fx, Y: yb}
			} else if p0.Y < yt {
				return false
			}
			p1 = Vertex{X: fx, Y: yt}
		} else {
			// downward
			if !p0.Defined() || p0.Y < yt {
				p0 = Vertex{X: fx, Y: yt}
			} else if p0.Y >= yb {
				return false
			}
			p1 = Vertex{X: fx, Y: yb}
		}
		edge.P0 = p0
		edge.P1 = p1
		return true
	}

	fm := (lx - rx) / (ry - ly)
	fb := fy - fm*fx

	if fm < -1 || fm > 1 {
		// closer to vertical than horizontal: connect to top/bottom
		if lx <= rx {
			// upward
			if !p0.Defined() || p0.Y > yb {
				p0 = Vertex{X: (yb - fb) / fm, Y: yb}
			} else if p0.Y < yt {
				return false
			}
			p1 = Vertex{X: (yt - fb) / fm, Y: yt}
		} else {
			// downward
			if !p0.Defined() || p0.Y < yt {
				p0 = Vertex{X: (yt - fb) / fm, Y: yt}
			} else if p0.Y >= yb {
				return false
			}
			p1 = Vertex{X: (yb - fb) / fm, Y: yb}
		}
	} else {
		// closer to horizontal than vertical: connect to left/right
		if ly >= ry {
			// leftward
			if !p0.Defined() || p0.X > xr {
				p0 = Vertex{X: xr, Y: fm*xr + fb}
			} else if p0.X < xl {
				return false
			}
			p1 = Vertex{X: xl, Y: fm*xl + fb}
		} else {
			// rightward
			if !p0.Defined() || p0.X < xl {
				p0 = Vertex{X: xl, Y: fm*xl + fb}
			} else if p0.X >= xr {
				return false
			}
			p1 = Vertex{X: xr, Y: fm*xr + fb}
		}
	}

	edge.P0 = p0
	edge.P1 = p1
	return true
}

// clipEdge clips an edge against the viewport using the Liang-Barsky
// parametric scheme: each of the four half-planes tightens the segment
// parameters t0/t1, and the edge is rejected outright when it lies wholly
// outside one of them. Returns false on rejection.
func (g *Graph) clipEdge(edgeIdx int) bool {
	edge := &g.edges[edgeIdx]
	ax, ay := edge.P0.X, edge.P0.Y
	bx, by := edge.P1.X, edge.P1.Y

	dx := bx - ax
	dy := by - ay
	t0 := float32(0)
	t1 := float32(1)

	// left
	q := ax
	if dx == 0 && q < 0 {
		return false
	}
	r := -q / dx
	if dx < 0 {
		if r < t0 {
			return false
		}
		if r < t1 {
			t1 = r
		}
	} else if dx > 0 {
		if r > t1 {
			return false
		}
		if r > t0 {
			t0 = r
		}
	}

	// right
	q = g.xBound - ax
	if dx == 0 && q < 0 {
		return false
	}
	r = q / dx
	if dx < 0 {
		if r > t1 {
			return false
		}
		if r > t0 {
			t0 = r
		}
	} else if dx > 0 {
		if r < t0 {
			return false
		}
		if r < t1 {
			t1 = r
		}
	}

	// top
	q = ay
	if dy == 0 && q < 0 {
		return false
	}
	r = -q / dy
	if dy < 0 {
		if r < t0 {
			return false
		}
		if r < t1 {
			t1 = r
		}
	} else if dy > 0 {
		if r > t1 {
			return false
		}
		if r > t0 {
			t0 = r
		}
	}

	// bottom
	q = g.yBound - ay
	if dy == 0 && q < 0 {
		return false
	}
	r = q / dy
	if dy < 0 {
		if r > t1 {
			return false
		}
		if r > t0 {
			t0 = r
		}
	} else if dy > 0 {
		if r < t0 {
			return false
		}
		if r < t1 {
			t1 = r
		}
	}

	// the edge crosses the viewport; replace whichever endpoints the
	// parameters moved, snapping coordinates within epsilon of the
	// left/top walls to exactly zero
	if t0 > 0 {
		edge.P0 = Vertex{X: ax + t0*dx, Y: ay + t0*dy}
		if edge.P0.X < g.epsilon {
			edge.P0.X = 0
		}
		if edge.P0.Y < g.epsilon {
			edge.P0.Y = 0
		}
	}
	if t1 < 1 {
		edge.P1 = Vertex{X: ax + t1*dx, Y: ay + t1*dy}
		if edge.P1.X < g.epsilon {
			edge.P1.X = 0
		}
		if edge.P1.Y < g.epsilon {
			edge.P1.Y = 0
		}
	}

	if t0 > 0 || t1 < 1 {
		g.cells[g.sites[edge.LeftSite].Cell].CloseMe = true
		g.cells[g.sites[edge.RightSite].Cell].CloseMe = true
	}

	return true
}

// clipEdges connects every dangling edge to the viewport and clips all
// edges against it. An edge that cannot be connected, lies wholly
// outside, or degenerates to a point is killed in place by setting both
// endpoints undefined; the edge slice itself never shrinks or reorders,
// since half-edges reference edges by index.
func (g *Graph) clipEdges() {
	numEdges := len(g.edges)
	for i := 0; i < numEdges; i++ {
		edge := &g.edges[i]
		if !g.connectEdge(i) ||
			!g.clipEdge(i) ||
			(numeric.Abs(edge.P0.X-edge.P1.X) < g.epsilon &&
				numeric.Abs(edge.P0.Y-edge.P1.Y) < g.epsilon) {
			logDebugf("edge %d dropped during clipping", i)
			edge.P0 = UndefinedVertex
			edge.P1 = UndefinedVertex
		}
	}
}
