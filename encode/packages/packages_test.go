package packages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test 1 from the original packages.py: following dependency chains.
func TestFollowingDependencyChains(t *testing.T) {
	p := Problem{
		Conflicts: []Conflict{{A: "libE1", B: "libE2"}},
		Dependencies: []Dependency{
			{Package: "progA", DependsOn: []string{"libC", "libD"}},
			{Package: "libC", DependsOn: []string{"libE1"}},
			{Package: "libD", DependsOn: []string{"libE1"}},
		},
		Requirements: [][]string{{"progA"}},
	}
	enc, err := Solve(p)
	require.NoError(t, err)
	require.True(t, enc.Result.Ok)

	named := enc.NamedResult()
	assert.True(t, named["progA"])
	assert.True(t, named["libC"])
	assert.True(t, named["libD"])
	assert.True(t, named["libE1"])
	assert.False(t, named["libE2"])
}

// Test 2 from the original packages.py: unsolvable diamond dependency.
func TestUnsolvableDiamondDependency(t *testing.T) {
	p := Problem{
		Conflicts: []Conflict{{A: "libE1", B: "libE2"}},
		Dependencies: []Dependency{
			{Package: "progA", DependsOn: []string{"libC", "libD"}},
			{Package: "libC", DependsOn: []string{"libE2"}},
			{Package: "libD", DependsOn: []string{"libE1"}},
		},
		Requirements: [][]string{{"progA"}},
	}
	enc, err := Solve(p)
	require.NoError(t, err)
	assert.False(t, enc.Result.Ok)
}

// Test 3 from the original packages.py: upgrading a package resolves a
// dependency conflict that an older version of the same package could not.
func TestUpgradedPackageSolvesDependencyIssue(t *testing.T) {
	p := Problem{
		Conflicts: []Conflict{
			{A: "libE1", B: "libE2"},
			{A: "libD1", B: "libD2"},
		},
		Dependencies: []Dependency{
			{Package: "progA1", DependsOn: []string{"libC", "libD1"}},
			{Package: "progA2", DependsOn: []string{"libC", "libD2"}},
			{Package: "libC", DependsOn: []string{"libE2"}},
			{Package: "libD1", DependsOn: []string{"libE1"}},
			{Package: "libD2", DependsOn: []string{"libE2"}},
		},
		Requirements: [][]string{{"progA1", "progA2"}},
	}
	enc, err := Solve(p)
	require.NoError(t, err)
	require.True(t, enc.Result.Ok)

	named := enc.NamedResult()
	// Exactly one of progA1/progA2 must be installed.
	installed := 0
	if named["progA1"] {
		installed++
	}
	if named["progA2"] {
		installed++
	}
	assert.Equal(t, 1, installed)
	// libD2 and libE2 satisfy libC's dependency without conflicting.
	assert.True(t, named["libC"])
}

func TestVersionAwareConflictOnlyFiresWhenVersionsDiffer(t *testing.T) {
	p := Problem{
		Conflicts: []Conflict{
			{A: "foo", B: "foo-shim", VersionA: "1.0.0", VersionB: "1.0.0"},
		},
		Requirements: [][]string{{"foo"}, {"foo-shim"}},
	}
	enc, err := Solve(p)
	require.NoError(t, err)
	require.True(t, enc.Result.Ok)
	named := enc.NamedResult()
	assert.True(t, named["foo"])
	assert.True(t, named["foo-shim"])
}

func TestVersionAwareConflictFiresWhenVersionsDiffer(t *testing.T) {
	p := Problem{
		Conflicts: []Conflict{
			{A: "foo", B: "foo-legacy", VersionA: "2.0.0", VersionB: "1.0.0"},
		},
		Requirements: [][]string{{"foo"}, {"foo-legacy"}},
	}
	enc, err := Solve(p)
	require.NoError(t, err)
	assert.False(t, enc.Result.Ok)
}

func TestMalformedVersionIsAnError(t *testing.T) {
	p := Problem{
		Conflicts: []Conflict{
			{A: "foo", B: "bar", VersionA: "not-a-version", VersionB: "1.0.0"},
		},
	}
	_, err := Solve(p)
	require.Error(t, err)
}
