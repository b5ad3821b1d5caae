// Package pomodoro implements the focus/break countdown.
package pomodoro

import (
	"fmt"
	"time"
)

type Mode string

const (
	ModeFocus Mode = "focus"
	ModeBreak Mode = "break"
)

func (m Mode) Valid() bool {
	return m == ModeFocus || m == ModeBreak
}

func (m Mode) Next() Mode {
	if m == ModeFocus {
		return ModeBreak
	}
	return ModeFocus
}

// Presets holds the named durations in minutes.
type Presets struct {
	Focus int `json:"focus"`
	Break int `json:"break"`
}

var DefaultPresets = Presets{Focus: 25, Break: 5}

func (p Presets) Minutes(m Mode) int {
	if m == ModeBreak {
		return p.Break
	}
	return p.Focus
}

func (p Presets) Seconds(m Mode) int {
	return p.Minutes(m) * 60
}

// Completion describes a countdown that reached zero.
type Completion struct {
	Mode    Mode      `json:"mode"`
	Minutes int       `json:"minutes"`
	At      time.Time `json:"at"`
}

// State is a read-only snapshot of a Timer.
type State struct {
	Mode             Mode   `json:"mode"`
	SecondsRemaining int    `json:"seconds_remaining"`
	Running          bool   `json:"running"`
	Display          string `json:"display"`
}

// Timer is not safe for concurrent use; owners serialize access.
type Timer struct {
	presets   Presets
	mode      Mode
	remaining int
	running   bool
	now       func() time.Time
}

func NewTimer(presets Presets) *Timer {
	return &Timer{
		presets:   presets,
		mode:      ModeFocus,
		remaining: presets.Seconds(ModeFocus),
		now:       time.Now,
	}
}

func (t *Timer) State() State {
	return State{
		Mode:             t.mode,
		SecondsRemaining: t.remaining,
		Running:          t.running,
		Display:          FormatRemaining(t.remaining),
	}
}

func (t *Timer) Presets() Presets { return t.presets }
func (t *Timer) Running() bool    { return t.running }

func (t *Timer) Start() { t.running = true }
func (t *Timer) Pause() { t.running = false }

func (t *Timer) Toggle() {
	t.running = !t.running
}

// Reset stops the timer and restores the current mode's full duration.
func (t *Timer) Reset() {
	t.running = false
	t.remaining = t.presets.Seconds(t.mode)
}

// SetMode switches mode and restores its full duration. A running countdown
// keeps running from the new duration.
func (t *Timer) SetMode(m Mode) bool {
	if !m.Valid() {
		return false
	}
	t.mode = m
	t.remaining = t.presets.Seconds(m)
	return true
}

// Tick advances one second. When the countdown hits zero the timer stops,
// flips mode, reloads the new mode's duration and returns the completion.
func (t *Timer) Tick() *Completion {
	if !t.running {
		return nil
	}
	if t.remaining > 1 {
		t.remaining--
		return nil
	}

	done := &Completion{
		Mode:    t.mode,
		Minutes: t.presets.Minutes(t.mode),
		At:      t.now(),
	}
	t.running = false
	t.mode = t.mode.Next()
	t.remaining = t.presets.Seconds(t.mode)
	return done
}

// FormatRemaining renders seconds as MM:SS.
func FormatRemaining(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
