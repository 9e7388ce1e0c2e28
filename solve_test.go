package main

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func TestSolveProblems(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	problems := []*Problem{}
	for i := 0; i < 250; i++ {
		n := 1 + rng.Intn(8)
		problems = append(problems, &Problem{
			Id:    int64(i),
			N:     n,
			Edges: randomEdges(rng, n, rng.Intn(20)),
		})
	}
	db := openTestDb(t)
	for _, workers := range []int{0, 1, 4} {
		results, err := SolveProblems(problems, workers, db, zap.NewNop())
		require.NoError(t, err)
		require.Len(t, results, len(problems))
		for i, rs := range results {
			p := problems[i]
			require.Same(t, p, rs.Problem)
			raw := make([][]int, 0, len(p.Edges))
			for _, e := range p.Edges {
				raw = append(raw, []int{int(e.Owner), e.U, e.V})
			}
			require.Equal(t, MaxRemovableEdges(p.N, raw), rs.Removable())

			stored, err := db.GetPlan(p.Id)
			require.NoError(t, err)
			require.Equal(t, rs.Removable(), stored.Removable)
		}
	}
}

func TestSolveProblemsErrors(t *testing.T) {
	problems := []*Problem{
		{Id: 1, N: 2, Edges: []Edge{{Shared, 1, 2}}},
		{Id: 2, N: 2, Edges: []Edge{{Shared, 1, 3}}},
		{Id: 3, N: 3, Edges: []Edge{{Shared, 1, 2}}},
		{Id: 4, N: 0},
	}
	results, err := SolveProblems(problems, 2, nil, zap.NewNop())
	require.Error(t, err)
	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	for _, e := range errs {
		require.True(t, errors.Is(e, ErrInvalidInput))
	}

	require.NoError(t, results[0].Err)
	require.Equal(t, 0, results[0].Removable())
	require.Error(t, results[1].Err)
	require.NoError(t, results[2].Err)
	require.Nil(t, results[2].Plan)
	require.Equal(t, -1, results[2].Removable())
	require.Error(t, results[3].Err)
}
