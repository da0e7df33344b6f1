// Package icon classifies free-text weather descriptions into a fixed set of
// icon categories
package icon

import "strings"

// Category is one of the fixed iconographic classes used for current conditions
type Category int

const (
	Clear Category = iota
	PartlyCloudy
	Cloudy
	Rain
	Thunderstorm
	Snow
	Fog
)

type rule struct {
	category Category
	keywords []string
}

// Evaluated in order, first match wins. "partly cloudy" must precede
// "cloudy" and "clear" must precede everything.
var rules = []rule{
	{Clear, []string{"sunny", "clear", "晴れ"}},
	{PartlyCloudy, []string{"partly cloudy", "一部曇り"}},
	{Cloudy, []string{"cloudy", "曇り"}},
	{Rain, []string{"rain", "rainy", "雨"}},
	{Thunderstorm, []string{"thunderstorm", "雷雨"}},
	{Snow, []string{"snow", "snowy", "雪"}},
	{Fog, []string{"mist", "fog", "霧"}},
}

// Classify maps a weather description to an icon category. Matching is
// case-insensitive substring search; descriptions that match no rule
// classify as Clear.
func Classify(description string) Category {
	desc := strings.ToLower(description)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(desc, kw) {
				return r.category
			}
		}
	}
	return Clear
}

// String returns a human-readable category name
func (c Category) String() string {
	switch c {
	case Clear:
		return "Clear"
	case PartlyCloudy:
		return "Partly Cloudy"
	case Cloudy:
		return "Cloudy"
	case Rain:
		return "Rain"
	case Thunderstorm:
		return "Thunderstorm"
	case Snow:
		return "Snow"
	case Fog:
		return "Fog"
	default:
		return "Unknown"
	}
}

// Glyph returns the terminal glyph drawn for the category
func (c Category) Glyph() string {
	switch c {
	case PartlyCloudy:
		return "⛅"
	case Cloudy:
		return "☁"
	case Rain:
		return "☂"
	case Thunderstorm:
		return "⚡"
	case Snow:
		return "❄"
	case Fog:
		return "≡"
	default:
		return "☀"
	}
}
