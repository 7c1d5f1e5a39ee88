package model

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	cfg, err := LoadSettings(path)
	require.NoError(t, err)

	assert.True(t, cfg.MoveCheckedToBottom)
	assert.True(t, cfg.HapticsEnabled)
	assert.False(t, cfg.CollapsePacked)
	assert.False(t, cfg.UncheckAllOnReset)
	assert.False(t, cfg.CombinePinned)
	assert.Equal(t, ExportFormatText, cfg.ExportFormat)
	assert.False(t, cfg.ProActive)
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	cfg := DefaultSettings()
	cfg.MoveCheckedToBottom = false
	cfg.CollapsePacked = true
	cfg.ExportFormat = ExportFormatPDF
	cfg.ProActive = true
	require.NoError(t, SaveSettings(path, cfg))

	loaded, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadSettingsRejectsUnknownExportFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	cfg := DefaultSettings()
	cfg.ExportFormat = "docx"
	require.NoError(t, SaveSettings(path, cfg))

	loaded, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, ExportFormatText, loaded.ExportFormat)
}
