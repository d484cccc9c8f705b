package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	logger    zerolog.Logger
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager reading from the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerAt(configDir)
}

// NewManagerAt creates a configuration manager reading config.toml from configDir.
func NewManagerAt(configDir string) (*Manager, error) {
	v := viper.New()

	// Configure Viper for TOML as default format
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// Set up environment variable support
	v.SetEnvPrefix("SPLITTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Logging environment variable bindings
	if err := v.BindEnv("logging.level", "SPLITTER_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind SPLITTER_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "SPLITTER_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind SPLITTER_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
		logger:    zerolog.Nop(),
		callbacks: make([]func(*Config), 0),
	}, nil
}

// SetLogger sets the logger used for reloads and saves. The default logger
// discards everything.
func (m *Manager) SetLogger(logger zerolog.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger = logger
}

// Load loads the configuration from file and environment variables.
// A default config file is written on first run.
func (m *Manager) Load() error {
	return m.load(true)
}

// Read is Load without side effects: a missing config file leaves the
// defaults and environment in effect and nothing is written.
func (m *Manager) Read() error {
	return m.load(false)
}

func (m *Manager) load(create bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if create {
		if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
			return fmt.Errorf("failed to ensure config directory: %w", err)
		}
	}

	m.setDefaults()

	if err := m.readConfigFile(create); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	m.logger.Debug().Str("file", m.viper.ConfigFileUsed()).Msg("config loaded")
	return nil
}

func (m *Manager) readConfigFile(create bool) error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			configFile := m.viper.ConfigFileUsed()
			if configFile == "" {
				configFile = m.ConfigFilePath()
			}
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
		}

		if createErr := m.createDefaultConfig(); createErr != nil {
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				m.configDir,
				createErr,
			)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf(
				"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
				rereadErr,
			)
		}
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		configFile := m.viper.ConfigFileUsed()
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			configFile,
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	normalizeLayout(&config.Layout)

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}
	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = defaultLogFormat
	}
	if config.Logging.LogDir == "" {
		config.Logging.LogDir = getDefaultLogDir()
	}

	if config.Appearance.RowHandle == "" {
		config.Appearance.RowHandle = defaultRowHandle
	}
	if config.Appearance.ColumnHandle == "" {
		config.Appearance.ColumnHandle = defaultColumnHandle
	}
}

func normalizeLayout(layout *LayoutConfig) {
	layout.ID = strings.TrimSpace(layout.ID)
	layout.Direction = strings.ToLower(strings.TrimSpace(layout.Direction))
	if layout.Direction == "" {
		layout.Direction = defaultDirection
	}
	for i := range layout.Panes {
		if layout.Panes[i].Split != nil {
			normalizeLayout(layout.Panes[i].Split)
		}
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	return m.config.Clone()
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	// Validate before writing so callers get immediate errors.
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := WriteConfigOrdered(cfg, m.ConfigFilePath()); err != nil {
		return err
	}
	m.logger.Debug().Str("file", m.ConfigFilePath()).Msg("config saved")

	// A watcher sees the write too and reloads the same content.
	return m.reload()
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// ConfigFilePath returns where the config file lives, whether or not it exists yet.
func (m *Manager) ConfigFilePath() string {
	return ConfigFileIn(m.configDir)
}

// createDefaultConfig writes the default configuration and its JSON schema.
func (m *Manager) createDefaultConfig() error {
	configFile := m.ConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	if _, err := WriteSchemaFile(m.configDir); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setLayoutDefaults(defaults)
	m.setResizeDefaults(defaults)
	m.setAppearanceDefaults(defaults)
	m.setLoggingDefaults(defaults)
}

func (m *Manager) setLayoutDefaults(defaults *Config) {
	m.viper.SetDefault("layout.direction", defaults.Layout.Direction)
	m.viper.SetDefault("layout.panes", defaults.Layout.Panes)
}

func (m *Manager) setResizeDefaults(defaults *Config) {
	m.viper.SetDefault("resize.keyboard_step_percent", defaults.Resize.KeyboardStepPercent)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	m.viper.SetDefault("appearance.decimals", defaults.Appearance.Decimals)
	m.viper.SetDefault("appearance.show_sizes", defaults.Appearance.ShowSizes)
	m.viper.SetDefault("appearance.row_handle", defaults.Appearance.RowHandle)
	m.viper.SetDefault("appearance.column_handle", defaults.Appearance.ColumnHandle)
	m.viper.SetDefault("appearance.palette.background", defaults.Appearance.Palette.Background)
	m.viper.SetDefault("appearance.palette.text", defaults.Appearance.Palette.Text)
	m.viper.SetDefault("appearance.palette.muted", defaults.Appearance.Palette.Muted)
	m.viper.SetDefault("appearance.palette.accent", defaults.Appearance.Palette.Accent)
	m.viper.SetDefault("appearance.palette.border", defaults.Appearance.Palette.Border)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}
