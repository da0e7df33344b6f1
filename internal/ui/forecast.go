package ui

import (
	"regexp"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/weather-terminal/internal/models"
)

// Delay between consecutive forecast cards appearing
const forecastStagger = 100 * time.Millisecond

// forecastItem is one rendered forecast entry
type forecastItem struct {
	Index       int // presentation order, drives the staggered reveal
	Day         string
	Date        string
	IconRef     string
	Description string
	High        string
	Low         string
}

// TempRange joins the high and low temperatures
func (f forecastItem) TempRange() string {
	return f.High + "/" + f.Low
}

// renderForecast builds one item per day, in input order. Nothing is
// filtered or reordered, and the day icon is taken from the provider as is.
func renderForecast(days []models.ForecastDay) []forecastItem {
	items := make([]forecastItem, len(days))
	for i, day := range days {
		items[i] = forecastItem{
			Index:       i,
			Day:         day.DayLabel(),
			Date:        day.Date,
			IconRef:     day.Icon,
			Description: day.Description,
			High:        day.HighTemp,
			Low:         day.LowTemp,
		}
	}
	return items
}

// forecastRevealMsg reveals the next forecast card
type forecastRevealMsg struct {
	gen int
}

// forecastList is the forecast region of the surface
type forecastList struct {
	items    []forecastItem
	revealed int
	gen      int
}

// Replace swaps in a new set of items and restarts the staggered reveal
func (f forecastList) Replace(items []forecastItem) (forecastList, tea.Cmd) {
	f.items = items
	f.revealed = 0
	f.gen++
	if len(items) == 0 {
		return f, nil
	}
	return f, revealTick(f.gen, 0)
}

// Update advances the reveal. Ticks from a replaced list are ignored.
func (f forecastList) Update(msg forecastRevealMsg) (forecastList, tea.Cmd) {
	if msg.gen != f.gen || f.revealed >= len(f.items) {
		return f, nil
	}
	f.revealed++
	if f.revealed < len(f.items) {
		return f, revealTick(f.gen, f.items[f.revealed].Index)
	}
	return f, nil
}

// Items returns every item, revealed or not
func (f forecastList) Items() []forecastItem {
	return f.items
}

// View renders the revealed cards side by side
func (f forecastList) View() string {
	if len(f.items) == 0 {
		return mutedStyle.Render("No forecast available")
	}

	cards := make([]string, 0, f.revealed)
	for _, item := range f.items[:f.revealed] {
		cards = append(cards, renderForecastCard(item))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func revealTick(gen, index int) tea.Cmd {
	// First card shows immediately, later ones one stagger apart
	delay := forecastStagger
	if index == 0 {
		delay = time.Millisecond
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return forecastRevealMsg{gen: gen}
	})
}

func renderForecastCard(item forecastItem) string {
	temps := forecastHighStyle.Render(item.High) + "/" + forecastLowStyle.Render(item.Low)

	return forecastCardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		forecastDayStyle.Render(item.Day),
		mutedStyle.Render(item.Date),
		iconRefGlyph(item.IconRef)+" "+item.Description,
		temps,
	))
}

var iconCodePattern = regexp.MustCompile(`/wn/(\d{2})[dn]`)

// iconRefGlyph draws a provider icon URL as a terminal glyph using the
// OpenWeatherMap icon code embedded in it
func iconRefGlyph(ref string) string {
	match := iconCodePattern.FindStringSubmatch(ref)
	if match == nil {
		return "·"
	}

	switch match[1] {
	case "01":
		return "☀"
	case "02":
		return "⛅"
	case "03", "04":
		return "☁"
	case "09", "10":
		return "☂"
	case "11":
		return "⚡"
	case "13":
		return "❄"
	case "50":
		return "≡"
	default:
		return "·"
	}
}
