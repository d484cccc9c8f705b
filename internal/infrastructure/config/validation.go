package config

import (
	"fmt"
	"strings"

	"github.com/bnema/splitter/internal/domain/entity"
	domainvalidation "github.com/bnema/splitter/internal/domain/validation"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLayout("layout", &config.Layout)...)
	validationErrors = append(validationErrors, validateResize(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	// If there are validation errors, return them
	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLayout(prefix string, layout *LayoutConfig) []string {
	var validationErrors []string

	if _, err := entity.ParseLayoutDirection(layout.Direction); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("%s.direction must be row or column (got %q)", prefix, layout.Direction))
	}
	if _, err := entity.NewPercentages(len(layout.Panes), layout.Percentages); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("%s: %v", prefix, err))
	}

	for i, pane := range layout.Panes {
		if pane.Split != nil {
			validationErrors = append(validationErrors, validateLayout(fmt.Sprintf("%s.panes[%d].split", prefix, i), pane.Split)...)
		}
	}
	return validationErrors
}

func validateResize(config *Config) []string {
	step := config.Resize.KeyboardStepPercent
	if !(step > 0 && step <= entity.PercentTotal) {
		return []string{"resize.keyboard_step_percent must be greater than 0 and at most 100"}
	}
	return nil
}

func validateAppearance(config *Config) []string {
	var validationErrors []string
	if config.Appearance.Decimals < 0 || config.Appearance.Decimals > 6 {
		validationErrors = append(validationErrors, "appearance.decimals must be between 0 and 6")
	}
	validationErrors = append(validationErrors, domainvalidation.ValidateGlyph("appearance.row_handle", config.Appearance.RowHandle)...)
	validationErrors = append(validationErrors, domainvalidation.ValidateGlyph("appearance.column_handle", config.Appearance.ColumnHandle)...)

	palette := config.Appearance.Palette
	validationErrors = append(validationErrors, domainvalidation.ValidatePaletteHex(
		"appearance.palette",
		map[string]string{
			"background": palette.Background,
			"text":       palette.Text,
			"muted":      palette.Muted,
			"accent":     palette.Accent,
			"border":     palette.Border,
		},
	)...)
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level %q is not a known level", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, "logging.format must be console or json")
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	return validationErrors
}
