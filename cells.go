package voronoi2d

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/cinekine/voronoi2d/numeric"
)

// prepareHalfEdgesForCell drops the cell's half-edges whose edge did not
// survive clipping and sorts the remainder descending by angle, which is
// counter-clockwise order around the cell's site. Reports whether any
// half-edges remain.
func (g *Graph) prepareHalfEdgesForCell(cellIdx int) bool {
	cell := &g.cells[cellIdx]

	cell.HalfEdges = slices.DeleteFunc(cell.HalfEdges, func(h HalfEdge) bool {
		edge := g.edges[h.Edge]
		return !edge.P0.Defined() || !edge.P1.Defined()
	})

	slices.SortFunc(cell.HalfEdges, func(a, b HalfEdge) int {
		return cmp.Compare(b.Angle, a.Angle)
	})

	return len(cell.HalfEdges) > 0
}

// closeCells closes every cell marked during edge connection/clipping by
// synthesizing border edges along the viewport walls wherever consecutive
// half-edges leave a gap, walking the walls in left, bottom, right, top
// order (counter-clockwise with y growing downward). A gap can wrap past
// corners, so the walk may go around the viewport up to twice; a walk
// that fails to terminate within two rounds is an invariant violation.
func (g *Graph) closeCells() {
	yt := float32(0)
	yb := g.yBound
	xl := float32(0)
	xr := g.xBound

	// a diagram with a single cell has no edges at all; the cell is the
	// whole viewport
	if len(g.cells) == 1 && len(g.cells[0].HalfEdges) == 0 {
		cell := &g.cells[0]
		corners := [...]Vertex{
			{X: xl, Y: yt},
			{X: xl, Y: yb},
			{X: xr, Y: yb},
			{X: xr, Y: yt},
			{X: xl, Y: yt},
		}
		for i := 0; i < 4; i++ {
			edgeIdx := g.createBorderEdge(cell.Site, corners[i], corners[i+1])
			cell.HalfEdges = append(cell.HalfEdges, g.createHalfEdge(edgeIdx, cell.Site, -1))
		}
		cell.CloseMe = false
		return
	}

	for iCell := range g.cells {
		cell := &g.cells[iCell]

		if !g.prepareHalfEdgesForCell(iCell) {
			continue
		}
		if !cell.CloseMe {
			continue
		}

		// find each 'unclosed' point: the end point of a half-edge that
		// does not match the start point of the half-edge that follows
		iLeft := 0
		for iLeft < len(cell.HalfEdges) {
			va := g.HalfEdgeEnd(cell.HalfEdges[iLeft])
			vz := g.HalfEdgeStart(cell.HalfEdges[(iLeft+1)%len(cell.HalfEdges)])

			if numeric.Abs(va.X-vz.X) >= g.epsilon || numeric.Abs(va.Y-vz.Y) >= g.epsilon {
				logDebugf("cell %d: gap from (%v,%v) to (%v,%v)", iCell, va.X, va.Y, vz.X, vz.Y)

				appendBorder := func(vb Vertex) {
					edgeIdx := g.createBorderEdge(cell.Site, va, vb)
					iLeft++
					cell.HalfEdges = slices.Insert(cell.HalfEdges, iLeft,
						g.createHalfEdge(edgeIdx, cell.Site, -1))
					va = vb
				}

				// the first round only walks a wall va actually lies on,
				// with room to move; once the walk is underway va sits on
				// a corner and the second round proceeds unconditionally
				closed := false
				for round := 0; round < 2 && !closed; round++ {
					guarded := round == 0

					// downward along the left wall
					if !closed && (!guarded ||
						(numeric.Abs(va.X-xl) < g.epsilon && yb-va.Y > g.epsilon)) {
						closed = numeric.Abs(vz.X-xl) < g.epsilon
						vb := Vertex{X: xl, Y: yb}
						if closed {
							vb.Y = vz.Y
						}
						appendBorder(vb)
					}
					// rightward along the bottom wall
					if !closed && (!guarded ||
						(numeric.Abs(va.Y-yb) < g.epsilon && xr-va.X > g.epsilon)) {
						closed = numeric.Abs(vz.Y-yb) < g.epsilon
						vb := Vertex{X: xr, Y: yb}
						if closed {
							vb.X = vz.X
						}
						appendBorder(vb)
					}
					// upward along the right wall
					if !closed && (!guarded ||
						(numeric.Abs(va.X-xr) < g.epsilon && va.Y-yt > g.epsilon)) {
						closed = numeric.Abs(vz.X-xr) < g.epsilon
						vb := Vertex{X: xr, Y: yt}
						if closed {
							vb.Y = vz.Y
						}
						appendBorder(vb)
					}
					// leftward along the top wall
					if !closed && (!guarded ||
						(numeric.Abs(va.Y-yt) < g.epsilon && va.X-xl > g.epsilon)) {
						closed = numeric.Abs(vz.Y-yt) < g.epsilon
						vb := Vertex{X: xl, Y: yt}
						if closed {
							vb.X = vz.X
						}
						appendBorder(vb)
					}
				}
				if !closed {
					panic(fmt.Errorf(
						"voronoi2d: cell %d: border walk failed to reach (%v,%v) after two rounds",
						iCell, vz.X, vz.Y))
				}
			}
			iLeft++
		}

		cell.CloseMe = false
	}
}
