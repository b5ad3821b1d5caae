// Package executive holds the executive-function helpers: task breakdown and
// daily routine checklists.
package executive

import (
	"fmt"
	"strings"
)

type TaskStatus string

const (
	TaskNotStarted TaskStatus = "not-started"
	TaskInProgress TaskStatus = "in-progress"
	TaskDone       TaskStatus = "done"
)

// NextStatus is the checkbox cycle: done reopens, anything else moves forward.
func NextStatus(s TaskStatus) TaskStatus {
	switch s {
	case TaskDone:
		return TaskInProgress
	case TaskInProgress:
		return TaskDone
	default:
		return TaskInProgress
	}
}

// BuildMicroSteps splits a task into three short moves named after the first
// three words of its title.
func BuildMicroSteps(title string) []string {
	words := strings.Fields(title)
	if len(words) > 3 {
		words = words[:3]
	}
	base := strings.Join(words, " ")
	if base == "" {
		base = "task"
	}
	return []string{
		fmt.Sprintf("Define success for “%s”", base),
		fmt.Sprintf("Break “%s” into 10-min moves", base),
		"Check-in with energy meter after progress",
	}
}
