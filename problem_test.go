package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadProblems(t *testing.T) {
	input := `{"id": 1, "n": 4, "edges": [[3,1,2],[3,2,3],[1,1,4],[2,1,4]]}

{"id": 2, "n": 1, "edges": []}
`
	problems, err := ReadProblems(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, problems, 2)
	require.Equal(t, int64(1), problems[0].Id)
	require.Equal(t, 4, problems[0].N)
	require.Len(t, problems[0].Edges, 4)
	require.Equal(t, Edge{Bob, 1, 4}, problems[0].Edges[3])
	require.Empty(t, problems[1].Edges)

	buf := &bytes.Buffer{}
	for _, p := range problems {
		require.NoError(t, WriteProblem(buf, p))
	}
	again, err := ReadProblems(buf)
	require.NoError(t, err)
	require.Equal(t, problems, again)
}

func TestReadProblemsErrors(t *testing.T) {
	_, err := ReadProblems(strings.NewReader("{\"id\": 1, \"n\": 2, \"edges\": []}\n{\"id\": 2"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 2")

	_, err = ReadProblems(strings.NewReader(`{"id": 1, "n": 2, "edges": [[5,1,2]]}`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 1")
}
