package executive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMicroSteps(t *testing.T) {
	steps := BuildMicroSteps("  Revise chapter 3 of biology ")
	assert.Equal(t, []string{
		"Define success for “Revise chapter 3”",
		"Break “Revise chapter 3” into 10-min moves",
		"Check-in with energy meter after progress",
	}, steps)

	assert.Equal(t, "Define success for “task”", BuildMicroSteps("   ")[0])
}

func TestNextStatus(t *testing.T) {
	assert.Equal(t, TaskInProgress, NextStatus(TaskNotStarted))
	assert.Equal(t, TaskDone, NextStatus(TaskInProgress))
	assert.Equal(t, TaskInProgress, NextStatus(TaskDone))
}

func TestChecklistToggleAndClear(t *testing.T) {
	c := NewChecklist()

	checked, err := c.Toggle(RoutineEvening, 1)
	require.NoError(t, err)
	assert.True(t, checked)
	assert.True(t, c.View()[RoutineEvening][1].Checked)
	assert.Equal(t, "Set tomorrow’s top 3", c.View()[RoutineEvening][1].Label)

	checked, _ = c.Toggle(RoutineEvening, 1)
	assert.False(t, checked)

	c.Toggle(RoutineMorning, 0)
	c.Clear()
	for _, steps := range c.View() {
		for _, s := range steps {
			assert.False(t, s.Checked)
		}
	}
}

func TestChecklistToggleErrors(t *testing.T) {
	c := NewChecklist()
	_, err := c.Toggle("afternoon", 0)
	assert.Error(t, err)
	_, err = c.Toggle(RoutineMorning, 3)
	assert.Error(t, err)
	_, err = c.Toggle(RoutineMorning, -1)
	assert.Error(t, err)
}
