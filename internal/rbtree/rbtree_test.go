package rbtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testNode struct {
	Links
	value int
}

// insertSorted walks the in-order sequence to find the node value should
// follow, then inserts after it. This exercises InsertAfter the way a real
// caller (beachline x-descent, event (y,x) descent) would: the tree itself
// never compares values.
func insertSorted(t *Tree, value int) *testNode {
	n := &testNode{value: value}
	if t.Root() == nil {
		t.InsertAfter(nil, n)
		return n
	}
	var after Node
	for cur := t.First(); cur != nil; cur = Next(cur) {
		if cur.(*testNode).value > value {
			break
		}
		after = cur
	}
	t.InsertAfter(after, n)
	return n
}

func inOrderValues(t *Tree) []int {
	var out []int
	for cur := t.First(); cur != nil; cur = Next(cur) {
		out = append(out, cur.(*testNode).value)
	}
	return out
}

func blackHeight(t *testing.T, n Node) int {
	t.Helper()
	if n == nil {
		return 1
	}
	left := blackHeight(t, leftOf(n))
	right := blackHeight(t, rightOf(n))
	require.Equal(t, left, right, "unequal black-height under node with value %v", n.(*testNode).value)
	if isRed(n) {
		require.False(t, isRed(leftOf(n)) || isRed(rightOf(n)), "red node has a red child")
		return left
	}
	return left + 1
}

func TestInsertAfter_OrdersByInsertionPoint(t *testing.T) {
	tr := &Tree{}
	values := []int{5, 3, 8, 1, 4, 7, 9, 2, 6, 0}
	for _, v := range values {
		insertSorted(tr, v)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, inOrderValues(tr))
	assert.False(t, tr.Root() == nil)
	assert.False(t, isRed(tr.Root()), "root must be black")
	blackHeight(t, tr.Root())
}

func TestInsertAfter_EmptyTreeBecomesRoot(t *testing.T) {
	tr := &Tree{}
	n := &testNode{value: 42}
	tr.InsertAfter(nil, n)
	assert.Equal(t, Node(n), tr.Root())
	assert.Nil(t, Prev(n))
	assert.Nil(t, Next(n))
}

func TestInsertAfter_NilSuccessorPrepends(t *testing.T) {
	tr := &Tree{}
	a := insertSorted(tr, 10)
	b := &testNode{value: 5}
	tr.InsertAfter(nil, b)
	assert.Equal(t, []int{5, 10}, inOrderValues(tr))
	assert.Equal(t, Node(b), Prev(a))
	assert.Equal(t, Node(a), Next(b))
}

func TestRemove_PreservesOrderAndLinks(t *testing.T) {
	tr := &Tree{}
	nodes := map[int]*testNode{}
	for _, v := range []int{5, 3, 8, 1, 4, 7, 9, 2, 6, 0} {
		nodes[v] = insertSorted(tr, v)
	}

	tr.Remove(nodes[4])
	assert.Equal(t, []int{0, 1, 2, 3, 5, 6, 7, 8, 9}, inOrderValues(tr))
	assert.Nil(t, Prev(nodes[4]))
	assert.Nil(t, Next(nodes[4]))
	blackHeight(t, tr.Root())

	tr.Remove(nodes[0])
	assert.Equal(t, []int{1, 2, 3, 5, 6, 7, 8, 9}, inOrderValues(tr))
	blackHeight(t, tr.Root())

	tr.Remove(nodes[9])
	assert.Equal(t, []int{1, 2, 3, 5, 6, 7, 8}, inOrderValues(tr))
	blackHeight(t, tr.Root())
}

func TestRemove_AllNodesEmptiesTree(t *testing.T) {
	tr := &Tree{}
	var all []*testNode
	for _, v := range []int{4, 2, 6, 1, 3, 5, 7} {
		all = append(all, insertSorted(tr, v))
	}
	for _, n := range all {
		tr.Remove(n)
	}
	assert.Nil(t, tr.Root())
	assert.Nil(t, tr.First())
}

func TestFirst_IsLeftmostInOrder(t *testing.T) {
	tr := &Tree{}
	insertSorted(tr, 10)
	insertSorted(tr, 3)
	insertSorted(tr, 7)
	n := insertSorted(tr, 1)
	assert.Equal(t, Node(n), tr.First())
}
