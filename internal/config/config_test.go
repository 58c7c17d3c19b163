package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/watchfire-io/cubetimer/internal/models"
)

func withHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	homeOverride = home
	t.Cleanup(func() { homeOverride = "" })
	return home
}

func TestLoadSettingsDefaultsWhenMissing(t *testing.T) {
	withHome(t)

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error: %v", err)
	}
	if s.Storage.Backend != models.StorageBackendFile {
		t.Errorf("Backend = %q, want %q", s.Storage.Backend, models.StorageBackendFile)
	}
	if s.Storage.Slot != models.DefaultSlot {
		t.Errorf("Slot = %q, want %q", s.Storage.Slot, models.DefaultSlot)
	}
}

func TestSaveAndLoadSettings(t *testing.T) {
	home := withHome(t)

	s := models.NewSettings()
	s.Storage.Backend = models.StorageBackendSQLite
	s.Scramble.Renderer = models.RendererNet
	s.Timer.TickInterval = 20 * time.Millisecond
	if err := SaveSettings(s); err != nil {
		t.Fatalf("SaveSettings() error: %v", err)
	}

	if !FileExists(filepath.Join(home, GlobalDirName, SettingsFileName)) {
		t.Fatal("settings file was not written")
	}

	loaded, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error: %v", err)
	}
	if loaded.Storage.Backend != models.StorageBackendSQLite {
		t.Errorf("Backend = %q, want sqlite", loaded.Storage.Backend)
	}
	if loaded.Scramble.Renderer != models.RendererNet {
		t.Errorf("Renderer = %q, want net", loaded.Scramble.Renderer)
	}
	if loaded.Timer.TickInterval != 20*time.Millisecond {
		t.Errorf("TickInterval = %v, want 20ms", loaded.Timer.TickInterval)
	}
}

func TestLoadSettingsPartialFile(t *testing.T) {
	home := withHome(t)

	path := filepath.Join(home, GlobalDirName, SettingsFileName)
	if err := WriteFileAtomic(path, []byte("scramble:\n  length: 25\n")); err != nil {
		t.Fatalf("WriteFileAtomic() error: %v", err)
	}

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error: %v", err)
	}
	if s.Scramble.Length != 25 {
		t.Errorf("Length = %d, want 25", s.Scramble.Length)
	}
	if s.VisualCube.BaseURL == "" {
		t.Error("VisualCube.BaseURL should fall back to default")
	}
}

func TestValidateSettings(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *models.Settings)
		wantErr bool
	}{
		{name: "defaults", mutate: func(s *models.Settings) {}, wantErr: false},
		{name: "unknown backend", mutate: func(s *models.Settings) { s.Storage.Backend = "redis" }, wantErr: true},
		{name: "unknown renderer", mutate: func(s *models.Settings) { s.Scramble.Renderer = "png" }, wantErr: true},
		{name: "4x4", mutate: func(s *models.Settings) { s.Scramble.Size = 4 }, wantErr: true},
		{name: "slot with space", mutate: func(s *models.Settings) { s.Storage.Slot = "my times" }, wantErr: true},
		{name: "slot with path", mutate: func(s *models.Settings) { s.Storage.Slot = "../times" }, wantErr: true},
		{name: "custom slot", mutate: func(s *models.Settings) { s.Storage.Slot = "oh-2025.v2" }, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := models.NewSettings()
			tt.mutate(s)
			err := ValidateSettings(s)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSettings() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWriteFileAtomicLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "slot.json")

	if err := WriteFileAtomic(path, []byte(`["1.00"]`)); err != nil {
		t.Fatalf("WriteFileAtomic() error: %v", err)
	}
	if err := WriteFileAtomic(path, []byte(`["2.00"]`)); err != nil {
		t.Fatalf("WriteFileAtomic() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(data) != `["2.00"]` {
		t.Errorf("content = %s, want overwritten value", data)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("found %d entries, want only the target file", len(entries))
	}
}

func TestLoadSettingsKeepsBooleanDefaults(t *testing.T) {
	home := withHome(t)

	path := filepath.Join(home, GlobalDirName, SettingsFileName)
	if err := WriteFileAtomic(path, []byte("visualcube:\n  size: 200\n")); err != nil {
		t.Fatalf("WriteFileAtomic() error: %v", err)
	}

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error: %v", err)
	}
	if s.VisualCube.Size != 200 {
		t.Errorf("Size = %d, want 200", s.VisualCube.Size)
	}
	if !s.VisualCube.Fetch {
		t.Error("Fetch should keep its default when absent from the file")
	}
}
