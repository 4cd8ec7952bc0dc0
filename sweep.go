package voronoi2d

import (
	"fmt"
	"slices"

	"github.com/cinekine/voronoi2d/internal/rbtree"
	"github.com/cinekine/voronoi2d/numeric"
	"github.com/google/btree"
)

// siteEvent is one entry in the site-event queue: a site whose parabola
// has yet to join the beachline, keyed by the site's position.
type siteEvent struct {
	site int
	x, y float32
}

// siteEventLess orders site events ascending by (y, x), the sweep's
// processing order. Coordinate ties cannot survive deduplication when
// adjacent in the input, but the site index keeps the order
// deterministic for non-adjacent duplicates.
func siteEventLess(a, b siteEvent) bool {
	if a.y != b.y {
		return a.y < b.y
	}
	if a.x != b.x {
		return a.x < b.x
	}
	return a.site < b.site
}

// newSiteEventQueue builds the ordered site-event queue from the graph's
// sites, eliding runs of bit-equal duplicate points in input order before
// queueing.
func newSiteEventQueue(sites Sites) *btree.BTreeG[siteEvent] {
	queue := btree.NewG[siteEvent](2, siteEventLess)
	for i := range sites {
		if i > 0 && sites[i].Vertex.Eq(sites[i-1].Vertex) {
			continue
		}
		queue.ReplaceOrInsert(siteEvent{site: i, x: sites[i].X, y: sites[i].Y})
	}
	return queue
}

// sweepState is the transient state of one Fortune sweep over a graph's
// sites: the beachline of parabolic arcs in left-to-right order, the
// circle-event queue in ascending (y, x) order, and a cached pointer to
// the next circle event to fire (the event tree's first node).
type sweepState struct {
	graph              *Graph
	beachline          rbtree.Tree
	circleEvents       rbtree.Tree
	topCircleEvent     *circleEvent
	epsilon            float32
	convergenceEpsilon float32
}

// releaseArc drops one reference to arc. The arc's storage is managed by
// the garbage collector; the count only asserts the beachline/circle-event
// lifetime contract.
func (s *sweepState) releaseArc(arc *beachArc) {
	if arc.refcnt <= 0 {
		panic(fmt.Errorf("voronoi2d: releasing beach arc for site %d after refcnt reached zero", arc.site))
	}
	arc.refcnt--
}

// run drives the sweep: site events and circle events are merged in
// ascending (y, x) order; a site event fires first only when it is strictly
// earlier, so the circle event wins when both coordinates tie. Site events
// append a cell and a beach section; circle events collapse a beach
// section into a Voronoi vertex.
func (s *sweepState) run(queue *btree.BTreeG[siteEvent]) {
	g := s.graph

	site, haveSite := queue.DeleteMin()
	for {
		circle := s.topCircleEvent
		if haveSite && (circle == nil ||
			site.y < circle.y ||
			(site.y == circle.y && site.x < circle.x)) {
			g.cells = append(g.cells, Cell{Site: site.site})
			g.sites[site.site].Cell = len(g.cells) - 1
			logDebugf("site event (%v,%v), cell %d", site.x, site.y, g.sites[site.site].Cell)
			s.addBeachSection(site.site)
			site, haveSite = queue.DeleteMin()
		} else if circle != nil {
			logDebugf("circle event (%v,%v) for site %d", circle.x, circle.y, circle.site)
			s.removeBeachSection(circle.arc)
		} else {
			break
		}
	}

	s.drain()
}

// addBeachSection inserts the parabolic arc for a freshly processed site
// into the beachline and records the edge transitions the insertion
// creates.
func (s *sweepState) addBeachSection(siteIndex int) {
	sites := s.graph.sites
	site := sites[siteIndex].Vertex
	x, directrix := site.X, site.Y

	// locate the arc directly above the new site. dxl/dxr compare x
	// against the arc's left/right break-points under the current
	// directrix, with the epsilon band treated as "on the break-point".
	var leftArc, rightArc *beachArc
	node := s.beachline.Root()
	for node != nil {
		arc := node.(*beachArc)
		dxl := leftBreakPoint(sites, arc, directrix) - x
		if dxl > s.epsilon {
			node = rbtree.Left(node)
			continue
		}
		dxr := x - rightBreakPoint(sites, arc, directrix)
		if dxr > s.epsilon {
			if rbtree.Right(node) == nil {
				leftArc = arc
				break
			}
			node = rbtree.Right(node)
			continue
		}
		switch {
		case dxl > -s.epsilon:
			// x falls on the arc's left break-point
			leftArc = prevArc(arc)
			rightArc = arc
		case dxr > -s.epsilon:
			// x falls on the arc's right break-point
			leftArc = arc
			rightArc = nextArc(arc)
		default:
			// x falls inside the arc
			leftArc = arc
			rightArc = arc
		}
		break
	}

	newArc := newBeachArc(siteIndex)
	s.beachline.InsertAfter(asNode(leftArc), newArc)

	// first arc on the beachline: no transition, no edge
	if leftArc == nil && rightArc == nil {
		return
	}

	// the new arc splits an existing arc in two: one new transition, a
	// duplicate right half sharing the split arc's site, and one new edge
	// shared by both new transitions
	if leftArc == rightArc {
		s.detachCircleEvent(leftArc)

		rightArc = newBeachArc(leftArc.site)
		s.beachline.InsertAfter(newArc, rightArc)

		edge := s.graph.createEdge(leftArc.site, newArc.site, UndefinedVertex, UndefinedVertex)
		newArc.edge = edge
		rightArc.edge = edge

		s.attachCircleEvent(leftArc)
		s.attachCircleEvent(rightArc)
		return
	}

	// the new arc is the last on the beachline, which happens only while
	// every prior site shares the new site's y: one new transition, no
	// collapse possible
	if leftArc != nil && rightArc == nil {
		newArc.edge = s.graph.createEdge(leftArc.site, newArc.site, UndefinedVertex, UndefinedVertex)
		return
	}

	// the new arc lands exactly on the break-point between two existing
	// arcs: that transition disappears into a vertex at the circumcenter
	// of the three sites, and two new transitions replace it
	s.detachCircleEvent(leftArc)
	s.detachCircleEvent(rightArc)

	leftSite := sites[leftArc.site].Vertex
	ax, ay := leftSite.X, leftSite.Y
	bx, by := site.X-ax, site.Y-ay
	rightSite := sites[rightArc.site].Vertex
	cx, cy := rightSite.X-ax, rightSite.Y-ay
	d := 2 * (bx*cy - by*cx)
	hb := bx*bx + by*by
	hc := cx*cx + cy*cy
	v := Vertex{X: ax + (cy*hb-by*hc)/d, Y: ay + (bx*hc-cx*hb)/d}

	s.graph.edges[rightArc.edge].setStartpoint(leftArc.site, rightArc.site, v)

	newArc.edge = s.graph.createEdge(leftArc.site, siteIndex, UndefinedVertex, v)
	rightArc.edge = s.graph.createEdge(siteIndex, rightArc.site, UndefinedVertex, v)

	s.attachCircleEvent(leftArc)
	s.attachCircleEvent(rightArc)
}

// removeBeachSection collapses arc at its circle event's vertex, together
// with any neighboring arcs collapsing at the same vertex, and joins the
// two surviving flanks with a new edge.
func (s *sweepState) removeBeachSection(arc *beachArc) {
	circle := arc.circleEvent
	x, y := circle.x, circle.yCenter
	v := Vertex{X: x, Y: y}

	previous := prevArc(arc)
	next := nextArc(arc)

	// arcs staged for removal; the edge bookkeeping below still refers to
	// them after they leave the beachline, so each holds an extra
	// reference until then
	detached := []*beachArc{arc}
	arc.refcnt++
	s.detachBeachSection(arc)

	// more than one arc collapses at the same vertex when more than three
	// sites are cocircular; collect the whole run on both sides. A
	// collapsing arc always has neighbors on both sides -- the first and
	// last arcs of the beachline are unconstrained and cannot collapse.
	leftArc := previous
	for leftArc.circleEvent != nil &&
		numeric.Abs(x-leftArc.circleEvent.x) < s.epsilon &&
		numeric.Abs(y-leftArc.circleEvent.yCenter) < s.epsilon {
		previous = prevArc(leftArc)
		detached = slices.Insert(detached, 0, leftArc)
		leftArc.refcnt++
		s.detachBeachSection(leftArc)
		leftArc = previous
	}
	// the surviving arc flanking the run on the left participates too: it
	// is the left site of an edge gaining a start point at v
	detached = slices.Insert(detached, 0, leftArc)
	s.detachCircleEvent(leftArc)

	rightArc := next
	for rightArc.circleEvent != nil &&
		numeric.Abs(x-rightArc.circleEvent.x) < s.epsilon &&
		numeric.Abs(y-rightArc.circleEvent.yCenter) < s.epsilon {
		next = nextArc(rightArc)
		detached = append(detached, rightArc)
		rightArc.refcnt++
		s.detachBeachSection(rightArc)
		rightArc = next
	}
	detached = append(detached, rightArc)
	s.detachCircleEvent(rightArc)

	// every transition between adjacent arcs in the run disappears at v
	for i := 1; i < len(detached); i++ {
		r := detached[i]
		l := detached[i-1]
		s.graph.edges[r.edge].setStartpoint(l.site, r.site, v)
	}

	leftArc = detached[0]
	rightArc = detached[len(detached)-1]
	for _, section := range detached[1 : len(detached)-1] {
		s.releaseArc(section)
	}

	// the two survivors are now adjacent: a new transition, hence a new
	// edge ending at v relative to the left site
	rightArc.edge = s.graph.createEdge(leftArc.site, rightArc.site, UndefinedVertex, v)

	s.attachCircleEvent(leftArc)
	s.attachCircleEvent(rightArc)
}

// detachBeachSection removes arc from the beachline, invalidating its
// circle event first and releasing the beachline's arc reference.
func (s *sweepState) detachBeachSection(arc *beachArc) {
	s.detachCircleEvent(arc)
	s.beachline.Remove(arc)
	s.releaseArc(arc)
}

// drain releases whatever the event loop left behind once both event
// sources are exhausted: circle events that never fired (each holding an
// arc reference) and the arcs still resident on the final beachline.
func (s *sweepState) drain() {
	for s.circleEvents.Root() != nil {
		ev := s.circleEvents.First().(*circleEvent)
		s.detachCircleEvent(ev.arc)
	}
	for s.beachline.Root() != nil {
		arc := s.beachline.First().(*beachArc)
		s.beachline.Remove(arc)
		s.releaseArc(arc)
	}
}
