package config

// Default configuration constants
const (
	configName     = "config"
	configFileName = configName + ".toml"
	schemaFileName = configName + ".schema.json"

	// Layout defaults
	defaultDirection = "row"

	// Resize defaults
	defaultKeyboardStepPercent = 5.0

	// Appearance defaults
	defaultDecimals     = 2
	defaultRowHandle    = "│"
	defaultColumnHandle = "─"

	// Logging defaults
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultMaxLogSizeMB  = 10
	defaultMaxLogBackups = 3
	defaultMaxLogAgeDays = 7
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the default configuration values for splitter.
func DefaultConfig() *Config {
	return &Config{
		Layout: DefaultLayout(),
		Resize: ResizeConfig{
			KeyboardStepPercent: defaultKeyboardStepPercent,
		},
		Appearance: AppearanceConfig{
			Decimals:     defaultDecimals,
			ShowSizes:    true,
			RowHandle:    defaultRowHandle,
			ColumnHandle: defaultColumnHandle,
			Palette: ColorPalette{
				Background: "#1e1e2e",
				Text:       "#cdd6f4",
				Muted:      "#6c7086",
				Accent:     "#89b4fa",
				Border:     "#45475a",
			},
		},
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			EnableFileLog: true,
			LogDir:        getDefaultLogDir(),
			MaxSizeMB:     defaultMaxLogSizeMB,
			MaxBackups:    defaultMaxLogBackups,
			MaxAge:        defaultMaxLogAgeDays,
		},
	}
}

// DefaultLayout is three equal side-by-side panes.
func DefaultLayout() LayoutConfig {
	return LayoutConfig{
		Direction: defaultDirection,
		Panes: []PaneConfig{
			{Title: "left"},
			{Title: "center"},
			{Title: "right"},
		},
	}
}
