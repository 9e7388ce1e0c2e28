package main

import (
	"sort"

	"github.com/pkg/errors"
)

var ErrInfeasible = errors.New("alice and bob cannot both traverse the whole graph")

// Plan describes which input edges survive a maximal removal. Indices
// refer to the edge slice passed to PlanRemoval.
type Plan struct {
	Removable int   `json:"removable"`
	AliceKept int   `json:"aliceKept"`
	BobKept   int   `json:"bobKept"`
	Kept      []int `json:"kept,omitempty"`
	Removed   []int `json:"removed,omitempty"`
}

// PlanRemoval finds the largest set of edges which can be removed while
// keeping the graph connected for both Alice and Bob. Shared edges are
// considered first: one of them may replace a private edge for each
// party, while a private edge only ever helps its owner.
func PlanRemoval(n int, edges []Edge) (*Plan, error) {
	if err := ValidateEdges(n, edges); err != nil {
		return nil, err
	}
	alice := NewUnionFind(n)
	bob := NewUnionFind(n)
	var aliceOnly, bobOnly, shared []int
	for i, e := range edges {
		switch e.Owner {
		case Alice:
			aliceOnly = append(aliceOnly, i)
		case Bob:
			bobOnly = append(bobOnly, i)
		case Shared:
			shared = append(shared, i)
		}
	}

	plan := &Plan{}
	keep := func(i int, kept bool) {
		if kept {
			plan.Kept = append(plan.Kept, i)
		} else {
			plan.Removed = append(plan.Removed, i)
		}
	}
	for _, i := range shared {
		e := edges[i]
		a := alice.Union(e.U, e.V)
		b := bob.Union(e.U, e.V)
		if a {
			plan.AliceKept++
		}
		if b {
			plan.BobKept++
		}
		keep(i, a || b)
	}
	for _, i := range aliceOnly {
		e := edges[i]
		a := alice.Union(e.U, e.V)
		if a {
			plan.AliceKept++
		}
		keep(i, a)
	}
	for _, i := range bobOnly {
		e := edges[i]
		b := bob.Union(e.U, e.V)
		if b {
			plan.BobKept++
		}
		keep(i, b)
	}
	if plan.AliceKept != n-1 || plan.BobKept != n-1 {
		return nil, errors.Wrapf(ErrInfeasible, "alice spans %d/%d, bob spans %d/%d",
			plan.AliceKept, n-1, plan.BobKept, n-1)
	}
	plan.Removable = len(plan.Removed)
	sort.Ints(plan.Kept)
	sort.Ints(plan.Removed)
	return plan, nil
}

// MaxRemovableEdges returns the maximum number of removable edges, or -1
// if Alice and Bob cannot both reach every vertex. Edges are [tag, u, v]
// triples, tag being 1 for Alice, 2 for Bob and 3 for both. It panics on
// malformed input.
func MaxRemovableEdges(n int, raw [][]int) int {
	edges, err := ParseEdges(raw)
	if err != nil {
		panic(err)
	}
	plan, err := PlanRemoval(n, edges)
	if err != nil {
		if errors.Is(err, ErrInfeasible) {
			return -1
		}
		panic(err)
	}
	return plan.Removable
}

// Apply returns the edges kept by the plan, in input order.
func (p *Plan) Apply(edges []Edge) []Edge {
	kept := make([]Edge, 0, len(p.Kept))
	for _, i := range p.Kept {
		kept = append(kept, edges[i])
	}
	return kept
}

// Connected reports whether the edges usable by party span the n
// vertices.
func Connected(n int, edges []Edge, party Owner) bool {
	uf := NewUnionFind(n)
	for _, e := range edges {
		if e.Owner.Uses(party) {
			uf.Union(e.U, e.V)
		}
	}
	return uf.Sets() <= 1
}

// VerifyPlan checks the plan against the edges it was computed from and
// confirms both parties stay connected once removed edges are dropped.
func VerifyPlan(n int, edges []Edge, plan *Plan) error {
	if plan.Removable != len(plan.Removed) {
		return errors.Errorf("plan removes %d edges but lists %d",
			plan.Removable, len(plan.Removed))
	}
	seen := make([]bool, len(edges))
	for _, list := range [][]int{plan.Kept, plan.Removed} {
		for _, i := range list {
			if i < 0 || i >= len(edges) {
				return errors.Errorf("plan references unknown edge %d", i)
			}
			if seen[i] {
				return errors.Errorf("plan references edge %d twice", i)
			}
			seen[i] = true
		}
	}
	for i, ok := range seen {
		if !ok {
			return errors.Errorf("plan does not account for edge %d", i)
		}
	}
	kept := plan.Apply(edges)
	for _, party := range []Owner{Alice, Bob} {
		if !Connected(n, kept, party) {
			return errors.Errorf("%s is disconnected once %d edges are removed",
				party, plan.Removable)
		}
	}
	return nil
}
