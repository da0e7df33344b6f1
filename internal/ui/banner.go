package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// bannerPhase is where the error banner is in its show/dismiss cycle
type bannerPhase int

const (
	bannerHidden  bannerPhase = iota
	bannerShaking             // visible, attention animation running
	bannerSteady              // visible
	bannerFading              // visible, fading out
)

const (
	bannerDwell        = 4000 * time.Millisecond // from Show to start of fade
	bannerFade         = 500 * time.Millisecond
	shakeFrameInterval = 50 * time.Millisecond
)

// Horizontal offset per shake frame; len(shakeOffsets) frames make one shake
var shakeOffsets = []int{0, 4, 0, 4, 0, 3, 0, 2, 0, 1}

// Timer messages carry the generation of the Show call that scheduled them
type (
	bannerShakeMsg struct{ gen int }
	bannerDwellMsg struct{ gen int }
	bannerFadeMsg  struct{ gen int }
)

// Banner is the transient, self-dismissing error notifier
type Banner struct {
	phase   bannerPhase
	message string
	frame   int
	gen     int
}

// Show displays message with a fresh attention animation and schedules
// dismissal. Any banner already showing is replaced, and its pending timers
// become stale.
func (b Banner) Show(message string) (Banner, tea.Cmd) {
	b.gen++
	b.phase = bannerShaking
	b.message = message
	b.frame = 0

	gen := b.gen
	return b, tea.Batch(
		shakeTick(gen),
		tea.Tick(bannerDwell, func(time.Time) tea.Msg { return bannerDwellMsg{gen: gen} }),
	)
}

// Hide removes the banner immediately and cancels its pending transitions
func (b Banner) Hide() Banner {
	b.gen++
	return b.reset()
}

// Update advances the banner state machine on timer messages
func (b Banner) Update(msg tea.Msg) (Banner, tea.Cmd) {
	switch msg := msg.(type) {
	case bannerShakeMsg:
		if msg.gen != b.gen || b.phase != bannerShaking {
			return b, nil
		}
		b.frame++
		if b.frame >= len(shakeOffsets) {
			b.phase = bannerSteady
			b.frame = 0
			return b, nil
		}
		return b, shakeTick(b.gen)

	case bannerDwellMsg:
		if msg.gen != b.gen || b.phase == bannerHidden {
			return b, nil
		}
		b.phase = bannerFading
		b.frame = 0
		gen := b.gen
		return b, tea.Tick(bannerFade, func(time.Time) tea.Msg { return bannerFadeMsg{gen: gen} })

	case bannerFadeMsg:
		if msg.gen != b.gen || b.phase != bannerFading {
			return b, nil
		}
		return b.reset(), nil
	}

	return b, nil
}

// Visible reports whether the banner is on screen
func (b Banner) Visible() bool {
	return b.phase != bannerHidden
}

// Message returns the message currently shown
func (b Banner) Message() string {
	return b.message
}

// View renders the banner, or "" when hidden
func (b Banner) View() string {
	if !b.Visible() {
		return ""
	}

	style := bannerStyle
	switch b.phase {
	case bannerShaking:
		style = style.MarginLeft(shakeOffsets[b.frame])
	case bannerFading:
		style = style.Faint(true).BorderForeground(colorMuted)
	}

	return style.Render("✗ " + b.message)
}

func (b Banner) reset() Banner {
	b.phase = bannerHidden
	b.message = ""
	b.frame = 0
	return b
}

func shakeTick(gen int) tea.Cmd {
	return tea.Tick(shakeFrameInterval, func(time.Time) tea.Msg {
		return bannerShakeMsg{gen: gen}
	})
}
