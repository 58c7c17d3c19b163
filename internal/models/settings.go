package models

import (
	"regexp"
	"time"
)

// Storage backends for the session slot.
const (
	StorageBackendFile   = "file"
	StorageBackendSQLite = "sqlite"
)

// Scramble renderers.
const (
	RendererVisualCube = "visualcube"
	RendererNet        = "net"
)

// DefaultSlot is the name of the slot holding the session log.
const DefaultSlot = "cubingTimes"

var slotNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]{0,127}$`)

// ValidSlotName reports whether name can address a storage slot. Slot
// names double as file names, so path separators are never allowed.
func ValidSlotName(name string) bool {
	return slotNamePattern.MatchString(name)
}

// StorageConfig selects where the session log is persisted.
type StorageConfig struct {
	Backend string `yaml:"backend"` // "file" | "sqlite"
	Slot    string `yaml:"slot"`
}

// ScrambleConfig holds scramble generation settings.
type ScrambleConfig struct {
	Size     int    `yaml:"size"`
	Length   int    `yaml:"length"`
	Renderer string `yaml:"renderer"` // "visualcube" | "net"
}

// VisualCubeConfig holds the fixed request parameters for the image service.
type VisualCubeConfig struct {
	BaseURL    string        `yaml:"base_url"`
	Format     string        `yaml:"format"`
	Size       int           `yaml:"size"`
	Background string        `yaml:"background"`
	Stage      string        `yaml:"stage"`
	View       string        `yaml:"view"`
	Flag       string        `yaml:"flag"`
	Fetch      bool          `yaml:"fetch"`
	Timeout    time.Duration `yaml:"timeout"`
}

// TimerConfig holds display settings for the running timer.
type TimerConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // zerolog level name
}

// Settings represents global application settings.
// This corresponds to ~/.cubetimer/settings.yaml.
type Settings struct {
	Version    int              `yaml:"version"`
	Storage    StorageConfig    `yaml:"storage"`
	Scramble   ScrambleConfig   `yaml:"scramble"`
	VisualCube VisualCubeConfig `yaml:"visualcube"`
	Timer      TimerConfig      `yaml:"timer"`
	Log        LogConfig        `yaml:"log"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Storage: StorageConfig{
			Backend: StorageBackendFile,
			Slot:    DefaultSlot,
		},
		Scramble: ScrambleConfig{
			Size:     3,
			Length:   20,
			Renderer: RendererVisualCube,
		},
		VisualCube: VisualCubeConfig{
			BaseURL:    "https://visualcube.online/visualcube.php",
			Format:     "svg",
			Size:       150,
			Background: "transparent",
			Stage:      "full",
			View:       "plan",
			Flag:       "showall",
			Fetch:      true,
			Timeout:    5 * time.Second,
		},
		Timer: TimerConfig{
			TickInterval: 10 * time.Millisecond,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ApplyDefaults fills zero-valued fields left empty by a partial settings file.
func (s *Settings) ApplyDefaults() {
	d := NewSettings()
	if s.Version == 0 {
		s.Version = d.Version
	}
	if s.Storage.Backend == "" {
		s.Storage.Backend = d.Storage.Backend
	}
	if s.Storage.Slot == "" {
		s.Storage.Slot = d.Storage.Slot
	}
	if s.Scramble.Size == 0 {
		s.Scramble.Size = d.Scramble.Size
	}
	if s.Scramble.Length <= 0 {
		s.Scramble.Length = d.Scramble.Length
	}
	if s.Scramble.Renderer == "" {
		s.Scramble.Renderer = d.Scramble.Renderer
	}
	vc := &s.VisualCube
	if vc.BaseURL == "" {
		vc.BaseURL = d.VisualCube.BaseURL
	}
	if vc.Format == "" {
		vc.Format = d.VisualCube.Format
	}
	if vc.Size == 0 {
		vc.Size = d.VisualCube.Size
	}
	if vc.Background == "" {
		vc.Background = d.VisualCube.Background
	}
	if vc.Stage == "" {
		vc.Stage = d.VisualCube.Stage
	}
	if vc.View == "" {
		vc.View = d.VisualCube.View
	}
	if vc.Flag == "" {
		vc.Flag = d.VisualCube.Flag
	}
	if vc.Timeout <= 0 {
		vc.Timeout = d.VisualCube.Timeout
	}
	if s.Timer.TickInterval <= 0 {
		s.Timer.TickInterval = d.Timer.TickInterval
	}
	if s.Log.Level == "" {
		s.Log.Level = d.Log.Level
	}
}
