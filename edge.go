package main

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

var ErrInvalidInput = errors.New("invalid input")

// Owner tells who may traverse an edge.
type Owner int

const (
	Alice  Owner = 1
	Bob    Owner = 2
	Shared Owner = 3
)

func (o Owner) String() string {
	switch o {
	case Alice:
		return "alice"
	case Bob:
		return "bob"
	case Shared:
		return "shared"
	}
	return fmt.Sprintf("owner(%d)", int(o))
}

func (o Owner) Valid() bool {
	return o == Alice || o == Bob || o == Shared
}

// Uses reports whether party can traverse edges tagged with o.
func (o Owner) Uses(party Owner) bool {
	return o == Shared || o == party
}

type Edge struct {
	Owner Owner
	U     int
	V     int
}

func (e Edge) String() string {
	return fmt.Sprintf("%s(%d-%d)", e.Owner, e.U, e.V)
}

func (e Edge) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]int{int(e.Owner), e.U, e.V})
}

func (e *Edge) UnmarshalJSON(data []byte) error {
	var raw []int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	edge, err := ParseEdge(raw)
	if err != nil {
		return err
	}
	*e = edge
	return nil
}

// ParseEdge decodes a [tag, u, v] triple. Vertex ranges are checked by
// ValidateEdges since they depend on the vertex count.
func ParseEdge(raw []int) (Edge, error) {
	if len(raw) != 3 {
		return Edge{}, errors.Wrapf(ErrInvalidInput,
			"edge must have 3 elements, got %d", len(raw))
	}
	e := Edge{
		Owner: Owner(raw[0]),
		U:     raw[1],
		V:     raw[2],
	}
	if !e.Owner.Valid() {
		return Edge{}, errors.Wrapf(ErrInvalidInput, "unknown owner tag: %d", raw[0])
	}
	return e, nil
}

func ParseEdges(raw [][]int) ([]Edge, error) {
	edges := make([]Edge, 0, len(raw))
	for i, r := range raw {
		e, err := ParseEdge(r)
		if err != nil {
			return nil, errors.WithMessagef(err, "edge %d", i)
		}
		edges = append(edges, e)
	}
	return edges, nil
}

// ValidateEdges checks the vertex count and that every edge has a known
// owner and endpoints in 1..n.
func ValidateEdges(n int, edges []Edge) error {
	if n < 1 {
		return errors.Wrapf(ErrInvalidInput, "vertex count must be positive, got %d", n)
	}
	for i, e := range edges {
		if !e.Owner.Valid() {
			return errors.Wrapf(ErrInvalidInput, "edge %d: unknown owner tag: %d", i, int(e.Owner))
		}
		if e.U < 1 || e.U > n || e.V < 1 || e.V > n {
			return errors.Wrapf(ErrInvalidInput, "edge %d: %s has vertex outside [1, %d]", i, e, n)
		}
	}
	return nil
}
