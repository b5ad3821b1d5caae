package preference

// Updates is a partial profile. Nil fields leave the current value untouched.
type Updates struct {
	FontFamily     *FontFamily `json:"font_family,omitempty"`
	TextScale      *float64    `json:"text_scale,omitempty"`
	LetterSpacing  *float64    `json:"letter_spacing,omitempty"`
	LineHeight     *float64    `json:"line_height,omitempty"`
	Theme          *Theme      `json:"theme,omitempty"`
	SensoryReduced *bool       `json:"sensory_reduced,omitempty"`
	FocusMode      *bool       `json:"focus_mode,omitempty"`
}

func (u Updates) IsEmpty() bool {
	return u.FontFamily == nil &&
		u.TextScale == nil &&
		u.LetterSpacing == nil &&
		u.LineHeight == nil &&
		u.Theme == nil &&
		u.SensoryReduced == nil &&
		u.FocusMode == nil
}

// Merge overwrites the fields present in u and clamps the result.
func Merge(p Profile, u Updates) Profile {
	if u.FontFamily != nil {
		p.FontFamily = *u.FontFamily
	}
	if u.TextScale != nil {
		p.TextScale = *u.TextScale
	}
	if u.LetterSpacing != nil {
		p.LetterSpacing = *u.LetterSpacing
	}
	if u.LineHeight != nil {
		p.LineHeight = *u.LineHeight
	}
	if u.Theme != nil {
		p.Theme = *u.Theme
	}
	if u.SensoryReduced != nil {
		p.SensoryReduced = *u.SensoryReduced
	}
	if u.FocusMode != nil {
		p.FocusMode = *u.FocusMode
	}
	return p.Clamp()
}

func Ptr[T any](v T) *T {
	return &v
}
