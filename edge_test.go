package voronoi2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgeSetStartpoint(t *testing.T) {
	v1 := Vertex{X: 10, Y: 20}
	v2 := Vertex{X: 30, Y: 40}

	t.Run("first endpoint adopts sites and becomes p0", func(t *testing.T) {
		e := newEdge(3, 7)
		e.setStartpoint(5, 9, v1)
		assert.Equal(t, 5, e.LeftSite)
		assert.Equal(t, 9, e.RightSite)
		assert.True(t, e.P0.Eq(v1))
		assert.False(t, e.P1.Defined())
	})

	t.Run("matching right site sets p1", func(t *testing.T) {
		e := newEdge(3, 7)
		e.setStartpoint(3, 7, v1)
		// leftSite is now 3; a start point named from the opposite
		// orientation lands on p1
		e.setStartpoint(7, 3, v2)
		assert.True(t, e.P0.Eq(v1))
		assert.True(t, e.P1.Eq(v2))
	})

	t.Run("same orientation overwrites p0", func(t *testing.T) {
		e := newEdge(3, 7)
		e.setStartpoint(3, 7, v1)
		e.setStartpoint(3, 7, v2)
		assert.True(t, e.P0.Eq(v2))
		assert.False(t, e.P1.Defined())
	})
}

func TestEdgeSetEndpoint(t *testing.T) {
	v := Vertex{X: 10, Y: 20}

	// an end point on a fresh edge is a start point with the sites
	// swapped, flipping the edge's orientation
	e := newEdge(3, 7)
	e.setEndpoint(3, 7, v)
	assert.Equal(t, 7, e.LeftSite)
	assert.Equal(t, 3, e.RightSite)
	assert.True(t, e.P0.Eq(v))
}

func TestEdgeDead(t *testing.T) {
	e := newEdge(0, 1)
	assert.True(t, e.dead())
	e.setStartpoint(0, 1, Vertex{X: 1, Y: 1})
	assert.False(t, e.dead())
	e.P0 = UndefinedVertex
	e.P1 = UndefinedVertex
	assert.True(t, e.dead())
}
