package voronoi2d_test

import (
	"fmt"

	"github.com/cinekine/voronoi2d"
)

func ExampleBuild() {
	sites := voronoi2d.Sites{
		{Vertex: voronoi2d.Vertex{X: 100, Y: 100}, Cell: -1},
		{Vertex: voronoi2d.Vertex{X: 400, Y: 100}, Cell: -1},
	}

	graph := voronoi2d.Build(sites, 500, 500)

	for _, cell := range graph.Cells() {
		site := graph.Sites()[cell.Site]
		fmt.Printf("cell for site (%.0f,%.0f) has %d half-edges\n",
			site.X, site.Y, len(cell.HalfEdges))
	}
	// Output:
	// cell for site (100,100) has 4 half-edges
	// cell for site (400,100) has 4 half-edges
}

func ExampleGraph_HalfEdgeStart() {
	sites := voronoi2d.Sites{
		{Vertex: voronoi2d.Vertex{X: 250, Y: 250}, Cell: -1},
	}

	graph := voronoi2d.Build(sites, 500, 500)

	for _, h := range graph.Cells()[0].HalfEdges {
		start := graph.HalfEdgeStart(h)
		end := graph.HalfEdgeEnd(h)
		fmt.Printf("(%.0f,%.0f) -> (%.0f,%.0f)\n", start.X, start.Y, end.X, end.Y)
	}
	// Output:
	// (0,0) -> (0,500)
	// (0,500) -> (500,500)
	// (500,500) -> (500,0)
	// (500,0) -> (0,0)
}
