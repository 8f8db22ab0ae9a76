package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cespare/satsolve/encode/allocate"
	"github.com/cespare/satsolve/encode/packages"
)

func TestLoadPackageProblemFileDependencyChain(t *testing.T) {
	doc, err := LoadPackageProblemFile("testdata/dependency_chain.yaml")
	require.NoError(t, err)

	p := doc.Problem()
	require.Len(t, p.Conflicts, 1)
	assert.Equal(t, "libE1", p.Conflicts[0].A)
	assert.Equal(t, "libE2", p.Conflicts[0].B)
	require.Len(t, p.Dependencies, 3)
	require.Len(t, p.Requirements, 1)
	assert.Equal(t, []string{"progA"}, p.Requirements[0])
}

func TestLoadPackageProblemFileDiamondIsUnsolvable(t *testing.T) {
	doc, err := LoadPackageProblemFile("testdata/diamond_unsolvable.yaml")
	require.NoError(t, err)

	p := doc.Problem()
	require.Len(t, p.Dependencies, 3)

	enc, err := packages.Solve(p)
	require.NoError(t, err)
	assert.False(t, enc.Result.Ok)
}

func TestLoadAllocationProblemFileS6(t *testing.T) {
	doc, err := LoadAllocationProblemFile("testdata/allocation_s6.yaml")
	require.NoError(t, err)

	p := doc.Problem()
	assert.Equal(t, 3, p.NumTasks)
	assert.Equal(t, 3, p.NumMachines)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {0, 2}}, p.Conflicts)

	enc, err := allocate.Build(p)
	require.NoError(t, err)
	assert.Len(t, enc.Enumerate(), 6)
}

func TestLoadPackageProblemFileSolvesEndToEnd(t *testing.T) {
	doc, err := LoadPackageProblemFile("testdata/dependency_chain.yaml")
	require.NoError(t, err)

	enc, err := packages.Solve(doc.Problem())
	require.NoError(t, err)
	require.True(t, enc.Result.Ok)
	named := enc.NamedResult()
	assert.True(t, named["progA"])
}
