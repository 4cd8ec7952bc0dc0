package voronoi2d

import (
	"math"

	"github.com/cinekine/voronoi2d/internal/rbtree"
)

// beachArc is a node of the beachline tree: one parabolic arc, focused at
// sites[site], currently part of the lower envelope under the sweep
// directrix. edge is the index of the edge born at this arc's left
// break-point, or -1 if none has been created yet. circleEvent points to
// the currently attached collapse prediction, if any. refcnt governs the
// arc's logical lifetime: it starts at 1 on allocation, gains 1 for every
// attached circle event, and must reach 0 exactly when the beachline and
// every circle event referencing it have released it.
type beachArc struct {
	rbtree.Links
	site        int
	edge        int
	circleEvent *circleEvent
	refcnt      int
}

func newBeachArc(site int) *beachArc {
	return &beachArc{site: site, edge: -1, refcnt: 1}
}

// asNode lifts a possibly-nil *beachArc into the rbtree.Node interface,
// preserving a true nil interface rather than a non-nil interface wrapping
// a nil pointer.
func asNode(a *beachArc) rbtree.Node {
	if a == nil {
		return nil
	}
	return a
}

func prevArc(a *beachArc) *beachArc {
	n := rbtree.Prev(a)
	if n == nil {
		return nil
	}
	return n.(*beachArc)
}

func nextArc(a *beachArc) *beachArc {
	n := rbtree.Next(a)
	if n == nil {
		return nil
	}
	return n.(*beachArc)
}

// leftBreakPoint returns the x coordinate where arc meets its left
// neighbor on the beachline under the given directrix (current sweep y).
func leftBreakPoint(sites Sites, arc *beachArc, directrix float32) float32 {
	focus := sites[arc.site].Vertex
	pby2 := focus.Y - directrix
	if pby2 == 0 {
		// degenerate parabola: focus lies on the directrix, a vertical half-line.
		return focus.X
	}

	left := prevArc(arc)
	if left == nil {
		return float32(math.Inf(-1))
	}

	leftFocus := sites[left.site].Vertex
	plby2 := leftFocus.Y - directrix
	if plby2 == 0 {
		return leftFocus.X
	}

	hl := leftFocus.X - focus.X
	a := 1/pby2 - 1/plby2
	b := hl / plby2
	if a == 0 {
		return (focus.X + leftFocus.X) / 2
	}

	dist := float32(math.Sqrt(float64(
		b*b - 2*a*(hl*hl/(-2*plby2)-leftFocus.Y+plby2/2+focus.Y-pby2/2),
	)))
	return (-b+dist)/a + focus.X
}

// rightBreakPoint returns the x coordinate where arc meets its right
// neighbor, or +Inf if arc is the rightmost arc and its site is not
// resting on the directrix.
func rightBreakPoint(sites Sites, arc *beachArc, directrix float32) float32 {
	if right := nextArc(arc); right != nil {
		return leftBreakPoint(sites, right, directrix)
	}
	site := sites[arc.site].Vertex
	if site.Y == directrix {
		return site.X
	}
	return float32(math.Inf(1))
}
