package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// shakeThrough delivers one full shake animation for the current generation
func shakeThrough(b Banner) Banner {
	for range shakeOffsets {
		b, _ = b.Update(bannerShakeMsg{gen: b.gen})
	}
	return b
}

func TestBanner_Lifecycle(t *testing.T) {
	var b Banner
	if b.Visible() {
		t.Fatal("zero Banner should be hidden")
	}

	b, cmd := b.Show("Please enter a city name")
	if cmd == nil {
		t.Fatal("Show should schedule timers")
	}
	if b.phase != bannerShaking {
		t.Errorf("phase after Show = %v, want bannerShaking", b.phase)
	}

	b = shakeThrough(b)
	if b.phase != bannerSteady {
		t.Errorf("phase after shake = %v, want bannerSteady", b.phase)
	}

	b, cmd = b.Update(bannerDwellMsg{gen: b.gen})
	if b.phase != bannerFading {
		t.Errorf("phase after dwell = %v, want bannerFading", b.phase)
	}
	if cmd == nil {
		t.Error("dwell should schedule the fade")
	}
	if !b.Visible() {
		t.Error("banner should remain visible while fading")
	}

	b, _ = b.Update(bannerFadeMsg{gen: b.gen})
	if b.Visible() {
		t.Error("banner should be hidden after the fade")
	}
	if b.Message() != "" {
		t.Errorf("Message() = %q, want empty after dismissal", b.Message())
	}
}

func TestBanner_ShakeStopsAfterAllFrames(t *testing.T) {
	b, _ := Banner{}.Show("x")

	for i := 0; i < len(shakeOffsets)-1; i++ {
		var cmd tea.Cmd
		b, cmd = b.Update(bannerShakeMsg{gen: b.gen})
		if cmd == nil {
			t.Fatalf("frame %d: expected another shake tick", i)
		}
	}

	b, cmd := b.Update(bannerShakeMsg{gen: b.gen})
	if cmd != nil {
		t.Error("last frame should not schedule another tick")
	}
	if b.phase != bannerSteady {
		t.Errorf("phase = %v, want bannerSteady", b.phase)
	}
}

func TestBanner_LatestShowWins(t *testing.T) {
	b, _ := Banner{}.Show("first")
	firstGen := b.gen

	b, _ = b.Show("second")

	// Timers from the first Show fire but must not dismiss the second message
	b, _ = b.Update(bannerDwellMsg{gen: firstGen})
	if b.phase != bannerShaking {
		t.Errorf("stale dwell changed phase to %v", b.phase)
	}
	b, _ = b.Update(bannerFadeMsg{gen: firstGen})
	if !b.Visible() || b.Message() != "second" {
		t.Errorf("banner = (%v, %q), want visible second", b.Visible(), b.Message())
	}

	b, _ = b.Update(bannerShakeMsg{gen: firstGen})
	if b.frame != 0 {
		t.Errorf("stale shake advanced frame to %d", b.frame)
	}
}

func TestBanner_ShowRestartsWhileFading(t *testing.T) {
	b, _ := Banner{}.Show("first")
	b = shakeThrough(b)
	b, _ = b.Update(bannerDwellMsg{gen: b.gen})
	if b.phase != bannerFading {
		t.Fatalf("phase = %v, want bannerFading", b.phase)
	}

	b, _ = b.Show("second")
	if b.phase != bannerShaking {
		t.Errorf("phase after re-Show = %v, want bannerShaking", b.phase)
	}

	b, _ = b.Update(bannerFadeMsg{gen: b.gen - 1})
	if !b.Visible() {
		t.Error("fade from the replaced banner should be ignored")
	}
}

func TestBanner_HideCancelsTimers(t *testing.T) {
	b, _ := Banner{}.Show("oops")
	gen := b.gen

	b = b.Hide()
	if b.Visible() {
		t.Fatal("Hide should remove the banner immediately")
	}

	for _, msg := range []tea.Msg{
		bannerShakeMsg{gen: gen},
		bannerDwellMsg{gen: gen},
		bannerFadeMsg{gen: gen},
	} {
		var cmd tea.Cmd
		b, cmd = b.Update(msg)
		if cmd != nil {
			t.Errorf("%T after Hide scheduled a command", msg)
		}
		if b.Visible() {
			t.Errorf("%T after Hide made the banner visible", msg)
		}
	}
}

func TestBanner_View(t *testing.T) {
	var b Banner
	if b.View() != "" {
		t.Error("hidden banner should render nothing")
	}

	b, _ = b.Show("Failed to fetch weather: timeout")
	if !strings.Contains(b.View(), "Failed to fetch weather: timeout") {
		t.Errorf("View() = %q, want it to contain the message", b.View())
	}

	b = shakeThrough(b)
	b, _ = b.Update(bannerDwellMsg{gen: b.gen})
	if !strings.Contains(b.View(), "timeout") {
		t.Error("fading banner should still render the message")
	}
}
