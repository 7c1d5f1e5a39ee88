package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Export format constants for the export_format preference.
const (
	ExportFormatText = "text"
	ExportFormatPDF  = "pdf"
)

// Settings holds the user preferences read by the engine, the section
// derivation and the export boundary. They are owned by the settings file,
// not computed by the core.
type Settings struct {
	// MoveCheckedToBottom reorders packed items to the bottom of each
	// section.
	MoveCheckedToBottom bool `mapstructure:"move_checked_to_bottom" yaml:"move_checked_to_bottom"`

	// HapticsEnabled gates the fire-and-forget feedback side effect
	// triggered by mutations.
	HapticsEnabled bool `mapstructure:"haptics_enabled" yaml:"haptics_enabled"`

	// CollapsePacked hides packed items from the "All" filter view and
	// shows a count hint instead.
	CollapsePacked bool `mapstructure:"collapse_packed" yaml:"collapse_packed"`

	// UncheckAllOnReset controls whether resetting a pack unchecks
	// every item.
	UncheckAllOnReset bool `mapstructure:"uncheck_all_on_reset" yaml:"uncheck_all_on_reset"`

	// CombinePinned merges all pinned items into a single "Pinned"
	// section instead of one "(Pinned)" section per category.
	CombinePinned bool `mapstructure:"combine_pinned" yaml:"combine_pinned"`

	// ExportFormat selects the default export renderer ("text" or "pdf").
	ExportFormat string `mapstructure:"export_format" yaml:"export_format"`

	// ProActive is the stub entitlement flag gating PDF export.
	ProActive bool `mapstructure:"pro_active" yaml:"pro_active"`
}

// DefaultSettingsPath returns the default path for the settings file,
// located at ~/.config/packonce/settings.yaml.
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "settings.yaml")
	}
	return filepath.Join(home, ".config", "packonce", "settings.yaml")
}

// DefaultSettings returns the out-of-the-box preferences.
func DefaultSettings() *Settings {
	return &Settings{
		MoveCheckedToBottom: true,
		HapticsEnabled:      true,
		CollapsePacked:      false,
		UncheckAllOnReset:   false,
		CombinePinned:       false,
		ExportFormat:        ExportFormatText,
		ProActive:           false,
	}
}

// LoadSettings reads preferences from the given YAML file path using Viper.
// If the file does not exist, it returns the defaults.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("move_checked_to_bottom", true)
	v.SetDefault("haptics_enabled", true)
	v.SetDefault("collapse_packed", false)
	v.SetDefault("uncheck_all_on_reset", false)
	v.SetDefault("combine_pinned", false)
	v.SetDefault("export_format", ExportFormatText)
	v.SetDefault("pro_active", false)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return DefaultSettings(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultSettings(), nil
		}
		return nil, fmt.Errorf("reading settings %s: %w", path, err)
	}

	cfg := DefaultSettings()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", path, err)
	}

	if cfg.ExportFormat != ExportFormatText && cfg.ExportFormat != ExportFormatPDF {
		cfg.ExportFormat = ExportFormatText
	}

	return cfg, nil
}

// SaveSettings writes the given preferences to a YAML file at path,
// creating parent directories if needed.
func SaveSettings(path string, cfg *Settings) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating settings directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("move_checked_to_bottom", cfg.MoveCheckedToBottom)
	v.Set("haptics_enabled", cfg.HapticsEnabled)
	v.Set("collapse_packed", cfg.CollapsePacked)
	v.Set("uncheck_all_on_reset", cfg.UncheckAllOnReset)
	v.Set("combine_pinned", cfg.CombinePinned)
	v.Set("export_format", cfg.ExportFormat)
	v.Set("pro_active", cfg.ProActive)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing settings to %s: %w", path, err)
	}

	return nil
}
