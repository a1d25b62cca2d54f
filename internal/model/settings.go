package model

// Theme selects the color scheme preference
type Theme string

const (
	ThemeSystem Theme = "system"
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
)

// Language selects the interface language
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageRussian Language = "ru"
	LanguageSpanish Language = "es"
)

const (
	// MinTextScale and MaxTextScale bound the text scale preference
	MinTextScale = 0.9
	MaxTextScale = 1.3
)

// Settings holds the single user profile, mutated in place
type Settings struct {
	DisplayName string   `json:"display_name"`
	Avatar      string   `json:"avatar"`
	Theme       Theme    `json:"theme"`
	Language    Language `json:"language"`
	TextScale   float64  `json:"text_scale"`
}

// DefaultSettings returns the settings used before the user customizes anything
func DefaultSettings() Settings {
	return Settings{
		Avatar:    "luggage",
		Theme:     ThemeLight,
		Language:  LanguageRussian,
		TextScale: 1.0,
	}
}

// ClampTextScale bounds a text scale to the supported range
func ClampTextScale(v float64) float64 {
	if v < MinTextScale {
		return MinTextScale
	}
	if v > MaxTextScale {
		return MaxTextScale
	}
	return v
}
