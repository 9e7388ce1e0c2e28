package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestDb(t *testing.T) *ResultsDb {
	db, err := OpenResultsDb(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})
	return db
}

func TestResultsDb(t *testing.T) {
	db := openTestDb(t)

	p := &Problem{
		Id:    -3,
		N:     2,
		Edges: []Edge{{Shared, 1, 2}, {Alice, 1, 2}},
	}
	plan, err := PlanRemoval(p.N, p.Edges)
	require.NoError(t, err)
	require.NoError(t, db.PutProblem(p))
	require.NoError(t, db.PutPlan(p.Id, plan))

	got, err := db.GetProblem(p.Id)
	require.NoError(t, err)
	require.Equal(t, p, got)
	gotPlan, err := db.GetPlan(p.Id)
	require.NoError(t, err)
	require.Equal(t, plan, gotPlan)

	// Infeasible.
	require.NoError(t, db.PutPlan(7, nil))
	gotPlan, err = db.GetPlan(7)
	require.NoError(t, err)
	require.Equal(t, &Plan{Removable: -1}, gotPlan)

	got, err = db.GetProblem(42)
	require.NoError(t, err)
	require.Nil(t, got)
	gotPlan, err = db.GetPlan(42)
	require.NoError(t, err)
	require.Nil(t, gotPlan)
}

func TestResultsDbReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")
	db, err := OpenResultsDb(path)
	require.NoError(t, err)
	require.NoError(t, db.PutPlan(1, &Plan{Removable: 0, AliceKept: 1, BobKept: 1, Kept: []int{0}}))
	require.NoError(t, db.Close())

	db, err = OpenResultsDb(path)
	require.NoError(t, err)
	defer db.Close()
	plan, err := db.GetPlan(1)
	require.NoError(t, err)
	require.Equal(t, []int{0}, plan.Kept)
}
