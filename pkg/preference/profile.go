package preference

import "math"

type Theme string

const (
	ThemeCalm     Theme = "calm"
	ThemeContrast Theme = "contrast"
	ThemeDark     Theme = "dark"
)

func (t Theme) Valid() bool {
	switch t {
	case ThemeCalm, ThemeContrast, ThemeDark:
		return true
	}
	return false
}

type FontFamily string

const (
	FontLexend       FontFamily = "lexend"
	FontAtkinson     FontFamily = "atkinson"
	FontOpenDyslexic FontFamily = "opendyslexic"
	FontSpaceGrotesk FontFamily = "space-grotesk"
)

// FontChoices lists the selectable families in display order.
var FontChoices = []FontFamily{FontLexend, FontAtkinson, FontOpenDyslexic, FontSpaceGrotesk}

func (f FontFamily) Valid() bool {
	for _, c := range FontChoices {
		if c == f {
			return true
		}
	}
	return false
}

// Range is an inclusive numeric bound for a slider-backed field.
type Range struct {
	Min float64
	Max float64
}

func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return r.Min
	}
	return math.Min(r.Max, math.Max(r.Min, v))
}

var (
	TextScaleRange     = Range{Min: 0.8, Max: 1.6}
	LetterSpacingRange = Range{Min: 0, Max: 3}
	LineHeightRange    = Range{Min: 1.2, Max: 2.4}
)

// Profile is the in-memory preference shape owned by a learner session.
type Profile struct {
	UserID         string     `json:"user_id"`
	FontFamily     FontFamily `json:"font_family"`
	TextScale      float64    `json:"text_scale"`
	LetterSpacing  float64    `json:"letter_spacing"`
	LineHeight     float64    `json:"line_height"`
	Theme          Theme      `json:"theme"`
	SensoryReduced bool       `json:"sensory_reduced"`
	FocusMode      bool       `json:"focus_mode"`
	Version        int64      `json:"version"`
}

// Defaults returns the profile applied on first sign-in.
func Defaults(userId string) Profile {
	return Profile{
		UserID:        userId,
		FontFamily:    FontLexend,
		TextScale:     1,
		LetterSpacing: 0.5,
		LineHeight:    1.6,
		Theme:         ThemeCalm,
	}
}

// Clamp pulls every numeric field into range and normalises unknown enums.
func (p Profile) Clamp() Profile {
	p.TextScale = TextScaleRange.Clamp(p.TextScale)
	p.LetterSpacing = LetterSpacingRange.Clamp(p.LetterSpacing)
	p.LineHeight = LineHeightRange.Clamp(p.LineHeight)
	if !p.Theme.Valid() {
		p.Theme = ThemeCalm
	}
	if !p.FontFamily.Valid() {
		p.FontFamily = FontLexend
	}
	return p
}
