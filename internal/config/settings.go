package config

import (
	"fmt"

	"github.com/watchfire-io/cubetimer/internal/models"
)

// LoadSettings loads the global settings from ~/.cubetimer/settings.yaml.
// If the file doesn't exist, returns default settings. Fields missing from
// the file fall back to their defaults.
func LoadSettings() (*models.Settings, error) {
	path, err := GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	settings, err := LoadYAMLOrDefault(path, models.NewSettings)
	if err != nil {
		return nil, err
	}
	settings.ApplyDefaults()
	if err := ValidateSettings(settings); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return settings, nil
}

// SaveSettings saves the global settings to ~/.cubetimer/settings.yaml.
func SaveSettings(settings *models.Settings) error {
	path, err := GlobalSettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}

// ValidateSettings rejects values no component can honour.
func ValidateSettings(s *models.Settings) error {
	switch s.Storage.Backend {
	case models.StorageBackendFile, models.StorageBackendSQLite:
	default:
		return fmt.Errorf("unknown storage backend %q", s.Storage.Backend)
	}
	if !models.ValidSlotName(s.Storage.Slot) {
		return fmt.Errorf("invalid storage slot %q (letters, digits, '_', '.' and '-' only)", s.Storage.Slot)
	}
	switch s.Scramble.Renderer {
	case models.RendererVisualCube, models.RendererNet:
	default:
		return fmt.Errorf("unknown scramble renderer %q", s.Scramble.Renderer)
	}
	if s.Scramble.Size != 3 {
		return fmt.Errorf("unsupported cube size %d (only 3 is supported)", s.Scramble.Size)
	}
	return nil
}
