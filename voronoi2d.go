// Package voronoi2d computes bounded planar Voronoi diagrams from a set of
// sites using Fortune's sweep-line algorithm.
//
// The package is built around a sweep that advances a horizontal line down
// the plane, maintaining a "beachline" of parabolic arcs (one per site that
// has begun contributing to the diagram) and a priority queue of predicted
// circle events (arcs about to be squeezed out of the beachline). Both
// structures are backed by the same ordered-tree implementation in
// [github.com/cinekine/voronoi2d/internal/rbtree], which augments a
// red-black tree with O(1) cached in-order predecessor/successor links —
// the beachline needs constant-time access to an arc's neighbours far more
// often than it needs to walk from the root.
//
// # Coordinate System
//
// This library assumes a standard Cartesian coordinate system where the
// x-axis increases to the right and the y-axis increases downward, matching
// the sweep direction: the sweep line travels from low y to high y, and
// site/circle events are ordered primarily by y and secondarily by x.
//
// # Core Types
//
//   - [Vertex]: A single point in the plane, with a NaN-sentinel "undefined" state.
//   - [Site]: An input point together with the index of the [Cell] it seeds.
//   - [Edge]: A Voronoi edge between two cells, defined by up to two endpoints.
//   - [HalfEdge]: One directed side of an [Edge], as seen from a particular [Cell].
//   - [Cell]: The closed polygon of [HalfEdge]s surrounding one [Site].
//   - [Graph]: The fully built diagram, exposing [Graph.Cells], [Graph.Sites], and [Graph.Edges].
//
// # Precision Control with Epsilon
//
// Floating-point comparisons throughout the sweep compare a difference,
// taken with [github.com/cinekine/voronoi2d/numeric.Abs], against an epsilon.
// The sweep itself is tuned around two epsilons: a general-purpose
// tolerance used for beachline and clipping comparisons, and a tighter
// tolerance used only to decide whether three sites are circumcircle-
// convergent enough to register a circle event. See [options.WithEpsilon]
// for how callers can adjust the general-purpose tolerance.
//
// # Acknowledgments
//
// voronoi2d's sweep driver, beachline management, and cell-closure logic
// are a Go-native rework of the sweep-line architecture found in
// cinekine's C++ Voronoi_Diagram implementation, which in turn traces its
// lineage to Raymond Hill's rhill-voronoi-core and the D3.js voronoi
// module. The red-black tree in internal/rbtree is a direct port of that
// implementation's intrusive RBTree<RBNode> base.
package voronoi2d

func init() {
	logDebugf("debug logging enabled")
}
