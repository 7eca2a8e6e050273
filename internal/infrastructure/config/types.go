package config

// AppConfig holds all loaded configurations
type AppConfig struct {
	Display *DisplayConfig
	Theme   *ThemeConfig
	Logging *LoggingConfig
}

// DisplayConfig is the root config for display.json
type DisplayConfig struct {
	Title        string     `json:"title"`
	ScreenWidth  int        `json:"screenWidth"`
	ScreenHeight int        `json:"screenHeight"`
	Scale        int        `json:"scale"`
	Framerate    int        `json:"framerate"`
	Viewport     RectConfig `json:"viewport"` // Rect the root is laid out into (pixels)
}

type RectConfig struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ViewportRect returns the layout viewport. A zero width or height extends to
// the screen edge.
func (d *DisplayConfig) ViewportRect() RectConfig {
	v := d.Viewport
	if v.Width <= 0 {
		v.Width = max(0, float64(d.ScreenWidth)-v.X)
	}
	if v.Height <= 0 {
		v.Height = max(0, float64(d.ScreenHeight)-v.Y)
	}
	return v
}

// ThemeConfig is the root config for theme.json.
// Colors are hex strings: #RGB, #RRGGBB or #RRGGBBAA.
type ThemeConfig struct {
	Background string `json:"background"`
	Panel      string `json:"panel"`
	Canvas     string `json:"canvas"`
	StackPanel string `json:"stackPanel"`
	Image      string `json:"image"`
	Selection  string `json:"selection"`
	Text       string `json:"text"`
}

// LoggingConfig is the root config for logging.json
type LoggingConfig struct {
	Level       string `json:"level"`       // debug, info, warn, error
	Development bool   `json:"development"` // Console encoder with caller and stack traces
	Encoding    string `json:"encoding"`    // json or console; empty picks by Development
}

// DefaultDisplay returns the display used when display.json is absent
func DefaultDisplay() *DisplayConfig {
	return &DisplayConfig{
		Title:        "mgui showcase",
		ScreenWidth:  900,
		ScreenHeight: 700,
		Scale:        1,
		Framerate:    60,
		Viewport:     RectConfig{X: 50, Y: 50, Width: 800, Height: 600},
	}
}

// DefaultTheme returns the theme used when theme.json is absent
func DefaultTheme() *ThemeConfig {
	return &ThemeConfig{
		Background: "#101018",
		Panel:      "#ff000080",
		Canvas:     "#ff000080",
		StackPanel: "#ff000080",
		Image:      "#00ffff",
		Selection:  "#ffff00",
		Text:       "#ffffff",
	}
}

// DefaultLogging returns the logging setup used when logging.json is absent
func DefaultLogging() *LoggingConfig {
	return &LoggingConfig{
		Level: "info",
	}
}
