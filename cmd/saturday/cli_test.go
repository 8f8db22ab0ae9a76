package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	require.NoError(t, err)
	return out.String()
}

func TestSolveCommandOnSatisfiableFixture(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"solve", "../../testdata/chain.sat.cnf"})
	require.NoError(t, cmd.Execute())
}

func TestSolveCommandOnUnsatisfiableFixture(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"solve", "../../testdata/basic.unsat.cnf"})
	require.NoError(t, cmd.Execute())
}

func TestEnumerateCommandOnSatisfiableFixture(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"enumerate", "../../testdata/chain.sat.cnf"})
	require.NoError(t, cmd.Execute())
}

func TestPackageCommandOnDependencyChain(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"package", "../../config/testdata/dependency_chain.yaml"})
	require.NoError(t, cmd.Execute())
}

func TestAllocateCommandOnS6(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"allocate", "../../config/testdata/allocation_s6.yaml"})
	require.NoError(t, cmd.Execute())
}

func TestNoUnitPropFlagIsAccepted(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--no-unit-prop", "solve", "../../testdata/chain.sat.cnf"})
	require.NoError(t, cmd.Execute())
}

func TestHelpMentionsAllSubcommands(t *testing.T) {
	out := runCLI(t, "--help")
	for _, sub := range []string{"solve", "enumerate", "package", "allocate"} {
		assert.True(t, strings.Contains(out, sub), "help output missing %q", sub)
	}
}
