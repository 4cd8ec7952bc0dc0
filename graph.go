package voronoi2d

import (
	"github.com/cinekine/voronoi2d/options"
)

// DefaultEpsilon is the general position/coordinate comparison tolerance
// used throughout the sweep, edge clipping, and cell closure. Callers may
// override it per-build via [options.WithEpsilon].
const DefaultEpsilon = 1e-4

// defaultConvergenceEpsilon is the cutoff for the circumcircle convergence
// test: a beach-section triplet whose doubled cross product of translated
// site vectors is above -defaultConvergenceEpsilon does not converge and
// registers no circle event. Unlike DefaultEpsilon this is not a caller
// tunable; the sweep's event set is sensitive to it.
const defaultConvergenceEpsilon = 2e-9

// Graph is a bounded Voronoi diagram: the input sites, the edges
// equidistant between site pairs (clipped to the viewport), and one cell
// per processed site, each a counter-clockwise ring of half-edges.
//
// All cross-references between sites, edges, and cells are integer
// indices into the slices the accessors expose; the slices only grow
// during a build, so indices are stable.
type Graph struct {
	sites   Sites
	edges   []Edge
	cells   []Cell
	xBound  float32
	yBound  float32
	epsilon float32
}

// Cells returns the diagram's cells, one per processed site. Sites elided
// as duplicates have no cell.
func (g *Graph) Cells() []Cell { return g.cells }

// Sites returns the input sites, each annotated with the index of the
// cell it seeds (-1 for duplicates the sweep skipped).
func (g *Graph) Sites() Sites { return g.sites }

// Edges returns the diagram's edges. An edge whose endpoints are both
// undefined was clipped away entirely; consumers skip half-edges that
// reference such edges.
func (g *Graph) Edges() []Edge { return g.edges }

// HalfEdgeStart returns the point at which h begins when walking its
// cell's boundary counter-clockwise: the underlying edge's P0 when the
// cell's site is the edge's left site, P1 otherwise.
func (g *Graph) HalfEdgeStart(h HalfEdge) Vertex {
	edge := g.edges[h.Edge]
	if edge.LeftSite == h.Site {
		return edge.P0
	}
	return edge.P1
}

// HalfEdgeEnd returns the point at which h ends when walking its cell's
// boundary counter-clockwise.
func (g *Graph) HalfEdgeEnd(h HalfEdge) Vertex {
	edge := g.edges[h.Edge]
	if edge.LeftSite == h.Site {
		return edge.P1
	}
	return edge.P0
}

// createEdge appends a new edge between two sites, assigning va/vb as its
// start/end points when defined, and pushes the edge's two half-edges
// onto the incident cells.
func (g *Graph) createEdge(left, right int, va, vb Vertex) int {
	g.edges = append(g.edges, newEdge(left, right))
	edge := len(g.edges) - 1

	if va.Defined() {
		g.edges[edge].setStartpoint(left, right, va)
	}
	if vb.Defined() {
		g.edges[edge].setEndpoint(left, right, vb)
	}

	l := g.sites[left]
	r := g.sites[right]
	g.cells[l.Cell].HalfEdges = append(g.cells[l.Cell].HalfEdges, g.createHalfEdge(edge, left, right))
	g.cells[r.Cell].HalfEdges = append(g.cells[r.Cell].HalfEdges, g.createHalfEdge(edge, right, left))

	return edge
}

// createBorderEdge appends an edge lying on the viewport border, owned by
// a single cell. Its right site is absent (-1).
func (g *Graph) createBorderEdge(site int, va, vb Vertex) int {
	g.edges = append(g.edges, newBorderEdge(site))
	edge := len(g.edges) - 1
	g.edges[edge].P0 = va
	g.edges[edge].P1 = vb
	return edge
}

// createHalfEdge builds the directed view of an edge as seen from lSite's
// cell. The angle is the bearing from the owning site toward the
// opposing site, or, for a border edge, the direction perpendicular to
// the edge segment oriented to keep the owning site on the correct side;
// sorting a cell's half-edges descending by angle yields counter-clockwise
// order around the site.
func (g *Graph) createHalfEdge(edge, lSite, rSite int) HalfEdge {
	halfEdge := HalfEdge{Site: lSite, Edge: edge}

	l := g.sites[lSite].Vertex
	if rSite >= 0 {
		r := g.sites[rSite].Vertex
		halfEdge.Angle = atan232(r.Y-l.Y, r.X-l.X)
		return halfEdge
	}

	e := g.edges[edge]
	if e.LeftSite != lSite {
		halfEdge.Angle = atan232(e.P0.X-e.P1.X, e.P1.Y-e.P0.Y)
	} else {
		halfEdge.Angle = atan232(e.P1.X-e.P0.X, e.P0.Y-e.P1.Y)
	}
	return halfEdge
}

// Build computes the Voronoi diagram of sites within the viewport
// [0, xBound] × [0, yBound] and returns the resulting graph.
//
// The input slice is adopted by the graph (not copied); a site bit-equal
// to the site just before it in the input is kept in the returned
// [Graph.Sites] view but skipped by the sweep, so it seeds no cell.
// Equal sites that are not adjacent in the input are not skipped. Degenerate inputs are not errors: zero sites
// produce an empty graph, and sites on the viewport border are accepted.
//
// Behavior can be tuned with functional options, e.g.
// [options.WithEpsilon] to change the position-comparison tolerance from
// [DefaultEpsilon].
func Build(sites Sites, xBound, yBound float32, opts ...options.GeometryOptionsFunc) Graph {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: DefaultEpsilon}, opts...)

	g := Graph{
		sites:   sites,
		xBound:  xBound,
		yBound:  yBound,
		epsilon: float32(geoOpts.Epsilon),
	}
	for i := range g.sites {
		g.sites[i].Cell = -1
	}

	queue := newSiteEventQueue(g.sites)
	g.cells = make([]Cell, 0, queue.Len())

	sweep := &sweepState{
		graph:              &g,
		epsilon:            g.epsilon,
		convergenceEpsilon: defaultConvergenceEpsilon,
	}
	sweep.run(queue)

	g.clipEdges()
	g.closeCells()

	return g
}
