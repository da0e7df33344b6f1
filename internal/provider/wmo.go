package provider

import "fmt"

const iconURLFormat = "https://openweathermap.org/img/wn/%s@2x.png"

// describeWeatherCode maps a WMO weather code to a description and an
// OpenWeatherMap-style icon code
func describeWeatherCode(code int) (string, string) {
	switch {
	case code == 0:
		return "Clear sky", "01d"
	case code == 1:
		return "Mainly clear", "01d"
	case code == 2:
		return "Partly cloudy", "02d"
	case code == 3:
		return "Cloudy", "04d"
	case code == 45 || code == 48:
		return "Fog", "50d"
	case code >= 51 && code <= 57:
		return "Light rain", "09d"
	case code == 61:
		return "Light rain", "10d"
	case code == 63:
		return "Rain", "10d"
	case code == 65:
		return "Heavy rain", "10d"
	case code == 66 || code == 67:
		return "Freezing rain", "13d"
	case code >= 71 && code <= 77:
		return "Snow", "13d"
	case code >= 80 && code <= 82:
		return "Rain showers", "09d"
	case code == 85 || code == 86:
		return "Snow showers", "13d"
	case code >= 95:
		return "Thunderstorm", "11d"
	default:
		return "Unknown", "01d"
	}
}

// iconURL builds the icon URL for an OpenWeatherMap icon code
func iconURL(code string) string {
	return fmt.Sprintf(iconURLFormat, code)
}
