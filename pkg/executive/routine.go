package executive

import "fmt"

type RoutineBlock string

const (
	RoutineMorning RoutineBlock = "morning"
	RoutineEvening RoutineBlock = "evening"
)

var RoutineBlocks = []RoutineBlock{RoutineMorning, RoutineEvening}

// RoutineBlueprint is the fixed set of steps per block.
var RoutineBlueprint = map[RoutineBlock][]string{
	RoutineMorning: {"Check today’s focus cue", "Skim schedule visual", "Complete grounding exercise"},
	RoutineEvening: {"Log wins in journal", "Set tomorrow’s top 3", "Run 5-min calm down audio"},
}

type RoutineStep struct {
	Label   string `json:"label"`
	Checked bool   `json:"checked"`
}

// Checklist tracks which blueprint steps are ticked off today.
type Checklist struct {
	checked map[RoutineBlock][]bool
}

func NewChecklist() *Checklist {
	c := &Checklist{checked: make(map[RoutineBlock][]bool, len(RoutineBlueprint))}
	c.Clear()
	return c
}

func (c *Checklist) Clear() {
	for block, steps := range RoutineBlueprint {
		c.checked[block] = make([]bool, len(steps))
	}
}

// Toggle flips one step and returns its new value.
func (c *Checklist) Toggle(block RoutineBlock, index int) (bool, error) {
	steps, ok := c.checked[block]
	if !ok {
		return false, fmt.Errorf("unknown routine block %q", block)
	}
	if index < 0 || index >= len(steps) {
		return false, fmt.Errorf("routine step %d out of range for %s", index, block)
	}
	steps[index] = !steps[index]
	return steps[index], nil
}

func (c *Checklist) View() map[RoutineBlock][]RoutineStep {
	out := make(map[RoutineBlock][]RoutineStep, len(RoutineBlueprint))
	for block, labels := range RoutineBlueprint {
		steps := make([]RoutineStep, len(labels))
		for i, label := range labels {
			steps[i] = RoutineStep{Label: label, Checked: c.checked[block][i]}
		}
		out[block] = steps
	}
	return out
}
