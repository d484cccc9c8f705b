package config

// Config represents the complete configuration for splitter.
type Config struct {
	// Layout is the split shown by the demo when no flags override it.
	Layout LayoutConfig `mapstructure:"layout" yaml:"layout" toml:"layout"`
	// Resize controls keyboard resizing.
	Resize ResizeConfig `mapstructure:"resize" yaml:"resize" toml:"resize"`
	// Appearance controls how panes and handles are drawn.
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" toml:"logging"`
}

// LayoutConfig describes one split container. Panes may hold a nested split.
type LayoutConfig struct {
	// ID names the split in logs and change notifications. Optional.
	ID string `mapstructure:"id" yaml:"id" toml:"id,omitempty" jsonschema:"description=Name of the split in logs"`
	// Direction is "row" (side by side) or "column" (stacked).
	Direction string `mapstructure:"direction" yaml:"direction" toml:"direction" jsonschema:"enum=row,enum=column,default=row"`
	// Percentages sizes the panes: either every pane but the last, or every
	// pane adding up to 100. Empty means an equal split.
	Percentages []float64 `mapstructure:"percentages" yaml:"percentages" toml:"percentages"`
	Panes       []PaneConfig `mapstructure:"panes" yaml:"panes" toml:"panes" jsonschema:"minItems=2"`
}

// PaneConfig is one pane of a split.
type PaneConfig struct {
	Title string        `mapstructure:"title" yaml:"title" toml:"title"`
	Split *LayoutConfig `mapstructure:"split" yaml:"split" toml:"split,omitempty"`
}

// ResizeConfig holds keyboard resize preferences.
type ResizeConfig struct {
	// KeyboardStepPercent is how far one arrow key press moves the focused handle.
	KeyboardStepPercent float64 `mapstructure:"keyboard_step_percent" yaml:"keyboard_step_percent" toml:"keyboard_step_percent" jsonschema:"exclusiveMinimum=0,maximum=100"` //nolint:lll // struct tags must stay on one line
}

// AppearanceConfig holds presentation preferences.
type AppearanceConfig struct {
	// Decimals is the number of digits shown for pane sizes.
	Decimals int `mapstructure:"decimals" yaml:"decimals" toml:"decimals" jsonschema:"minimum=0,maximum=6"`
	// ShowSizes prints each pane's percentage in its title.
	ShowSizes bool `mapstructure:"show_sizes" yaml:"show_sizes" toml:"show_sizes"`
	// RowHandle and ColumnHandle are the glyphs drawn for handles of row and column splits.
	RowHandle    string       `mapstructure:"row_handle" yaml:"row_handle" toml:"row_handle"`
	ColumnHandle string       `mapstructure:"column_handle" yaml:"column_handle" toml:"column_handle"`
	Palette      ColorPalette `mapstructure:"palette" yaml:"palette" toml:"palette"`
}

// ColorPalette holds the demo colors as #RRGGBB.
type ColorPalette struct {
	Background string `mapstructure:"background" yaml:"background" toml:"background"`
	Text       string `mapstructure:"text" yaml:"text" toml:"text"`
	Muted      string `mapstructure:"muted" yaml:"muted" toml:"muted"`
	Accent     string `mapstructure:"accent" yaml:"accent" toml:"accent"`
	Border     string `mapstructure:"border" yaml:"border" toml:"border"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" jsonschema:"enum=console,enum=json"`

	// File output configuration. The demo owns the terminal, so it only logs to file.
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups"`
	MaxAge        int    `mapstructure:"max_age" yaml:"max_age" toml:"max_age"`
	Compress      bool   `mapstructure:"compress" yaml:"compress" toml:"compress"`
}
