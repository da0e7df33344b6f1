package ui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/weather-terminal/internal/config"
	"github.com/ngmaloney/weather-terminal/internal/provider"
)

// viewMode is which screen has keyboard focus
type viewMode int

const (
	modeWeather viewMode = iota // Location input and weather surface
	modeHistory                 // Recent locations picker
)

// Model represents the application's state
type Model struct {
	mode   viewMode
	width  int
	height int

	// Trigger
	input textinput.Model

	// Display
	spinner spinner.Model
	surface Surface
	banner  Banner

	// Collaborators
	provider provider.Provider
	history  LocationHistory

	displayZone     *time.Location
	defaultLocation string
	timeout         time.Duration

	// Sequence number of the most recent fetch
	requestSeq int

	historyList   list.Model
	historyLoaded bool
}

// NewModel creates a new application model. h may be nil, in which case the
// history picker is unavailable.
func NewModel(cfg *config.Config, p provider.Provider, h LocationHistory) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter a city name (e.g. Tokyo, London, 大阪)..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 60

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}

	return Model{
		mode:            modeWeather,
		input:           ti,
		spinner:         s,
		provider:        p,
		history:         h,
		displayZone:     cfg.Location,
		defaultLocation: cfg.DefaultLocation,
		timeout:         timeout,
	}
}

// Init submits the default location
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, submit(m.defaultLocation))
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.historyLoaded {
			m.historyList.SetSize(m.historyListSize())
		}
		return m, nil

	case submitMsg:
		m.input.SetValue(msg.location)
		return m.requestWeather(msg.location)

	case weatherFetchedMsg:
		return m.handleWeatherFetched(msg)

	case bannerShakeMsg, bannerDwellMsg, bannerFadeMsg:
		m.banner, cmd = m.banner.Update(msg)
		return m, cmd

	case forecastRevealMsg:
		m.surface.forecast, cmd = m.surface.forecast.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		// Let the tick chain die once nothing is loading
		if !m.surface.Loading() {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case historyLoadedMsg:
		if msg.err != nil {
			slog.Error("loading location history failed", "err", msg.err)
			return m.leaveHistory(), nil
		}
		width, height := m.historyListSize()
		m.historyList = createHistoryList(msg.locations, width, height)
		m.historyLoaded = true
		return m, nil

	case historyRecordedMsg:
		if msg.err != nil {
			slog.Warn("recording location history failed", "query", msg.query, "err", msg.err)
		}
		return m, nil

	case historyDeletedMsg:
		if msg.err != nil {
			slog.Warn("deleting location history failed", "query", msg.query, "err", msg.err)
		}
		if m.mode == modeHistory && m.history != nil {
			return m, loadHistory(m.history)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		switch m.mode {
		case modeHistory:
			return m.handleHistoryKeys(msg)
		default:
			return m.handleWeatherKeys(msg)
		}
	}

	if m.mode == modeWeather {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

// handleWeatherKeys handles keyboard input on the weather screen
func (m Model) handleWeatherKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.Type {
	case tea.KeyEnter:
		return m.requestWeather(m.input.Value())

	case tea.KeyCtrlR:
		if m.history == nil {
			return m, nil
		}
		m.mode = modeHistory
		m.historyLoaded = false
		m.input.Blur()
		return m, loadHistory(m.history)
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleHistoryKeys handles keyboard input in the history picker
func (m Model) handleHistoryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case msg.Type == tea.KeyEsc:
		return m.leaveHistory(), textinput.Blink

	case !m.historyLoaded:
		return m, nil

	case msg.Type == tea.KeyEnter:
		item, ok := m.historyList.SelectedItem().(locationItem)
		if !ok {
			return m, nil
		}
		m = m.leaveHistory()
		m.input.SetValue(item.location.Query)
		return m.requestWeather(item.location.Query)

	case msg.String() == "d":
		item, ok := m.historyList.SelectedItem().(locationItem)
		if !ok {
			return m, nil
		}
		return m, deleteHistory(m.history, item.location.Query)
	}

	m.historyList, cmd = m.historyList.Update(msg)
	return m, cmd
}

func (m Model) historyListSize() (width, height int) {
	return max(m.width-4, 20), max(m.height-8, 5)
}

func (m Model) leaveHistory() Model {
	m.mode = modeWeather
	m.historyLoaded = false
	m.input.Focus()
	return m
}

// VisualState reports what the surface is currently showing. Loading takes
// precedence over the banner, which takes precedence over content.
func (m Model) VisualState() VisualState {
	switch {
	case m.surface.Loading():
		return StateLoading
	case m.banner.Visible():
		return StateError
	case m.surface.Content():
		return StateContent
	default:
		return StateIdle
	}
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.mode == modeHistory {
		return m.viewHistory()
	}
	return m.viewWeather()
}

// viewWeather renders the location input and the weather surface
func (m Model) viewWeather() string {
	var sections []string

	sections = append(sections,
		titleStyle.Render("☂ Weather Terminal"),
		mutedStyle.Render("Current conditions & forecast"),
		"",
		searchBoxStyle.Render(m.input.View()),
	)

	if banner := m.banner.View(); banner != "" {
		sections = append(sections, "", banner)
	}

	if m.surface.Loading() {
		sections = append(sections, "", fmt.Sprintf("%s Fetching weather...", m.spinner.View()))
	}

	if m.surface.Content() {
		sections = append(sections, "", m.viewCurrent())
		sections = append(sections,
			sectionHeaderStyle.Render("FORECAST"),
			m.surface.forecast.View(),
		)
	}

	help := "Enter: Search • Ctrl+C: Quit"
	if m.history != nil {
		help = "Enter: Search • Ctrl+R: Recent locations • Ctrl+C: Quit"
	}
	sections = append(sections, helpStyle.Render(help))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewCurrent renders the current-conditions block
func (m Model) viewCurrent() string {
	s := m.surface

	header := lipgloss.JoinVertical(lipgloss.Left,
		locationStyle.Render(s.location),
		mutedStyle.Render(s.updatedAt),
	)

	headline := lipgloss.JoinHorizontal(lipgloss.Center,
		glyphStyle.Render(s.icon),
		temperatureStyle.Render(s.temperature),
		"  ",
		valueStyle.Render(s.description),
	)

	details := lipgloss.JoinVertical(lipgloss.Left,
		mutedStyle.Render(s.feelsLike),
		labelStyle.Render("Humidity: ")+valueStyle.Render(s.humidity),
		labelStyle.Render("Wind: ")+valueStyle.Render(s.windSpeed),
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, "", headline, "", details)
}

// viewHistory renders the recent locations picker
func (m Model) viewHistory() string {
	if !m.historyLoaded {
		return lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Recent Locations"),
			"",
			mutedStyle.Render("Loading history..."),
		)
	}

	var body string
	if len(m.historyList.Items()) == 0 {
		body = lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Recent Locations"),
			"",
			mutedStyle.Render("No locations searched yet"),
		)
	} else {
		body = m.historyList.View()
	}

	help := helpStyle.Render("↑/↓: Navigate • Enter: Show weather • D: Delete • Esc: Back")
	return lipgloss.JoinVertical(lipgloss.Left, body, "", help)
}
