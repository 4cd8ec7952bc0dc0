package voronoi2d

import "github.com/cinekine/voronoi2d/internal/rbtree"

// circleEvent predicts the y coordinate at which arc will be squeezed out
// of the beachline by its two neighbors converging on a single point: the
// circumcenter of the three sites. x/y is the bottom of the circumcircle
// (where the sweep directrix triggers the collapse) and yCenter is the
// circumcenter's own y, needed to place the resulting vertex.
type circleEvent struct {
	rbtree.Links
	arc     *beachArc
	site    int
	x       float32
	y       float32
	yCenter float32
}

// attachCircleEvent computes whether arc's two neighbors predict its
// removal from the beachline and, if so, inserts a circleEvent into the
// event queue and records it on arc. A non-convergent triple (neighbors
// sharing a site, or a left turn rather than a right turn) attaches
// nothing.
func (s *sweepState) attachCircleEvent(arc *beachArc) {
	left := prevArc(arc)
	right := nextArc(arc)
	if left == nil || right == nil {
		return
	}

	lSite := s.graph.sites[left.site].Vertex
	cSite := s.graph.sites[arc.site].Vertex
	rSite := s.graph.sites[right.site].Vertex

	if lSite.Eq(rSite) {
		return
	}

	bx := cSite.X
	by := cSite.Y
	ax := lSite.X - bx
	ay := lSite.Y - by
	cx := rSite.X - bx
	cy := rSite.Y - by

	// d is twice the cross product (left - center) x (right - center).
	// A non-negative d means the sites do not turn right, so the arcs
	// diverge rather than converge and no collapse is predicted.
	d := 2 * (ax*cy - ay*cx)
	if d >= -s.convergenceEpsilon {
		return
	}

	ha := ax*ax + ay*ay
	hc := cx*cx + cy*cy
	x := (cy*ha - ay*hc) / d
	y := (ax*hc - cx*ha) / d
	yCenter := y + by

	ev := &circleEvent{
		arc:     arc,
		site:    arc.site,
		x:       x + bx,
		yCenter: yCenter,
	}
	ev.y = yCenter + sqrt32(x*x+y*y)
	arc.circleEvent = ev
	arc.refcnt++

	// Descend from the root, as 4.C §5 describes: go left while the new
	// event sorts at-or-before the current node, right otherwise. The
	// node on which descent stops fixes the insertion point; its in-order
	// predecessor (when we stopped going left) or itself (when we stopped
	// going right) is the successor InsertAfter wants.
	var after rbtree.Node
	node := s.circleEvents.Root()
	for node != nil {
		existing := node.(*circleEvent)
		if ev.y < existing.y || (ev.y == existing.y && ev.x <= existing.x) {
			if left := rbtree.Left(node); left != nil {
				node = left
				continue
			}
			after = rbtree.Prev(node)
			break
		}
		if right := rbtree.Right(node); right != nil {
			node = right
			continue
		}
		after = node
		break
	}
	s.circleEvents.InsertAfter(after, ev)

	if after == nil {
		s.topCircleEvent = ev
	}
}

// detachCircleEvent removes arc's attached circle event, if any, from the
// event queue and releases arc's corresponding reference.
func (s *sweepState) detachCircleEvent(arc *beachArc) {
	ev := arc.circleEvent
	if ev == nil {
		return
	}
	if s.topCircleEvent == ev {
		if next := rbtree.Next(ev); next != nil {
			s.topCircleEvent = next.(*circleEvent)
		} else {
			s.topCircleEvent = nil
		}
	}
	s.circleEvents.Remove(ev)
	s.releaseArc(arc)
	arc.circleEvent = nil
}
