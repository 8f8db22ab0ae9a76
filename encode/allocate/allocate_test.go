package allocate

import (
	"testing"

	"github.com/mitchellh/hashstructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 1 from the original resource_allocation.py: 3 tasks, 1 machine,
// no conflicts.
func TestThreeTasksOneMachineNoConflicts(t *testing.T) {
	enc, err := Build(Problem{NumTasks: 3, NumMachines: 1})
	require.NoError(t, err)
	allocation, ok := enc.Solve()
	require.True(t, ok)
	for task := 0; task < 3; task++ {
		assert.Equal(t, 0, allocation[task])
	}
}

// Scenario 2 from the original resource_allocation.py: 3 tasks, 1 machine,
// tasks 0 and 1 conflict. Unsolvable, since both must share the lone
// machine.
func TestThreeTasksOneMachineConflictIsUnsolvable(t *testing.T) {
	enc, err := Build(Problem{
		NumTasks:    3,
		NumMachines: 1,
		Conflicts:   [][2]int{{0, 1}},
	})
	require.NoError(t, err)
	_, ok := enc.Solve()
	assert.False(t, ok)
}

// Scenario 3 from the original resource_allocation.py: 3 tasks, 3 machines,
// tasks 0/1, 1/2 and 0/2 conflict. Every pair conflicts, so every valid
// allocation is a permutation of the 3 tasks across the 3 machines: exactly
// 6 models.
func TestThreeTasksThreeMachinesAllPairsConflict(t *testing.T) {
	enc, err := Build(Problem{
		NumTasks:    3,
		NumMachines: 3,
		Conflicts:   [][2]int{{0, 1}, {1, 2}, {0, 2}},
	})
	require.NoError(t, err)

	allocations := enc.Enumerate()
	assert.Len(t, allocations, 6)

	seen := make(map[uint64]bool)
	for _, a := range allocations {
		assert.Len(t, a, 3)
		machines := make(map[int]bool)
		for _, m := range a {
			machines[m] = true
		}
		assert.Len(t, machines, 3, "every machine must be distinct: %v", a)

		h, err := hashstructure.Hash(a, nil)
		require.NoError(t, err)
		assert.False(t, seen[h], "duplicate allocation: %v", a)
		seen[h] = true
	}
}

func TestAssignmentUserDataAvoidsParsingIdentifiers(t *testing.T) {
	enc, err := Build(Problem{NumTasks: 2, NumMachines: 2})
	require.NoError(t, err)

	ident := identifier(1, 0)
	data, ok := enc.Table.Data(ident)
	require.True(t, ok)
	assert.Equal(t, Assignment{Task: 1, Machine: 0}, data)
}
