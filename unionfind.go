package main

import "fmt"

// UnionFind is a disjoint-set forest over the labels 0..n. Label 0 is a
// placeholder so callers can use 1-based vertex numbers directly.
type UnionFind struct {
	parent []int
	size   []int
	sets   int
}

func NewUnionFind(n int) *UnionFind {
	if n < 0 {
		panic(fmt.Sprintf("negative union-find size: %d", n))
	}
	u := &UnionFind{
		parent: make([]int, n+1),
		size:   make([]int, n+1),
		sets:   n + 1,
	}
	for i := range u.parent {
		u.parent[i] = i
		u.size[i] = 1
	}
	return u
}

// Len returns the number of usable labels, excluding the placeholder.
func (u *UnionFind) Len() int {
	return len(u.parent) - 1
}

func (u *UnionFind) check(x int) {
	if x < 0 || x >= len(u.parent) {
		panic(fmt.Sprintf("label out of range: %d not in [0, %d]", x, u.Len()))
	}
}

// Find returns the representative of the set containing x, halving the
// path along the way.
func (u *UnionFind) Find(x int) int {
	u.check(x)
	for x != u.parent[x] {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

// Union merges the sets containing x and y. It returns false if they
// were already in the same set.
func (u *UnionFind) Union(x, y int) bool {
	rx := u.Find(x)
	ry := u.Find(y)
	if rx == ry {
		return false
	}
	if u.size[rx] < u.size[ry] {
		rx, ry = ry, rx
	}
	u.parent[ry] = rx
	u.size[rx] += u.size[ry]
	u.sets--
	return true
}

func (u *UnionFind) Connected(x, y int) bool {
	return u.Find(x) == u.Find(y)
}

// SetSize returns the number of elements in the set containing x.
func (u *UnionFind) SetSize(x int) int {
	return u.size[u.Find(x)]
}

// Sets returns the number of disjoint sets among labels 1..n.
func (u *UnionFind) Sets() int {
	if u.SetSize(0) == 1 {
		return u.sets - 1
	}
	return u.sets
}
