package voronoi2d

// Site is an input point together with the index (into Graph.cells) of the
// Cell it seeds. Cell is -1 until the sweep processes this site's event.
type Site struct {
	Vertex
	Cell int
}

// Sites is an ordered sequence of Site, consumed by Build.
type Sites []Site
