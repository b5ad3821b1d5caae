// Package energy converts check-in slider readings into logged energy levels.
package energy

import "math"

const (
	MinLevel = 1
	MaxLevel = 5

	SliderMin = 0
	SliderMax = 100
)

// ScaleSlider maps a 0-100 slider reading onto the 1-5 level scale.
func ScaleSlider(slider int) int {
	if slider < SliderMin {
		slider = SliderMin
	}
	if slider > SliderMax {
		slider = SliderMax
	}
	return ClampLevel(1 + int(math.Round(float64(slider)/25)))
}

func ClampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

type Band string

const (
	BandBright   Band = "bright"
	BandModerate Band = "moderate"
	BandLow      Band = "low"
)

type Suggestion struct {
	Band    Band   `json:"band"`
	Message string `json:"message"`
}

// Suggest returns the pacing hint for a slider reading.
func Suggest(slider int) Suggestion {
	switch {
	case slider > 70:
		return Suggestion{Band: BandBright, Message: "Energy is bright — schedule deeper work or a creative sprint."}
	case slider > 40:
		return Suggestion{Band: BandModerate, Message: "Moderate energy — mix focus with short movement or hydration breaks."}
	default:
		return Suggestion{Band: BandLow, Message: "Low energy — switch to review tasks, journaling, or grounding exercises."}
	}
}
