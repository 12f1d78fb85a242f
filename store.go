package fintrack

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// The store is the durable local state of the tracker, the file-system analog
// of the browser's local storage: one document holding the serialized
// dashboard and one holding the user settings (theme, display currency).

const (
	dashboardFilename = "dashboard.json"
	settingsFilename  = "settings.json"
)

// Settings are the persisted user preferences.
type Settings struct {
	Theme    string `json:"theme"`
	Currency string `json:"currency"`
}

// DefaultSettings returns the settings used when none are stored yet.
func DefaultSettings() Settings {
	return Settings{Theme: "dark", Currency: "USD"}
}

// Store persists the dashboard and settings in a directory.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. The directory is created lazily on
// the first save.
func NewStore(dir string) *Store { return &Store{dir: dir} }

// Dir returns the store's root directory.
func (s *Store) Dir() string { return s.dir }

// LoadDashboard reads the persisted dashboard. A missing or unreadable store
// silently falls back to the built-in default dataset: durable state is a
// convenience here, never a reason to refuse to start.
func (s *Store) LoadDashboard() Dashboard {
	filename := filepath.Join(s.dir, dashboardFilename)
	data, err := os.ReadFile(filename)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: cannot read %q, starting from the default dashboard: %v", filename, err)
		}
		return DefaultDashboard()
	}
	d, err := DecodeDashboard(bytes.NewReader(data))
	if err != nil {
		log.Printf("warning: invalid dashboard in %q, starting from the default dashboard: %v", filename, err)
		return DefaultDashboard()
	}
	return d
}

// SaveDashboard persists the dashboard. The write is atomic: a temp file is
// written first, then renamed over the store file.
func (s *Store) SaveDashboard(d Dashboard) error {
	var buf bytes.Buffer
	if err := EncodeDashboard(&buf, d); err != nil {
		return err
	}
	return s.writeFile(dashboardFilename, buf.Bytes())
}

// LoadSettings reads the persisted settings, falling back to the defaults
// when missing or unreadable. Missing fields keep their default value.
func (s *Store) LoadSettings() Settings {
	settings := DefaultSettings()
	filename := filepath.Join(s.dir, settingsFilename)
	data, err := os.ReadFile(filename)
	if err != nil {
		return settings
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("warning: invalid settings in %q, using defaults: %v", filename, err)
		return DefaultSettings()
	}
	if settings.Theme == "" {
		settings.Theme = DefaultSettings().Theme
	}
	if settings.Currency == "" {
		settings.Currency = DefaultSettings().Currency
	}
	return settings
}

// SaveSettings persists the settings.
func (s *Store) SaveSettings(settings Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal settings: %w", err)
	}
	return s.writeFile(settingsFilename, append(data, '\n'))
}

// writeFile writes data to the named store file via a temp file and rename.
func (s *Store) writeFile(name string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("cannot create store directory %q: %w", s.dir, err)
	}
	filename := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, name+".*")
	if err != nil {
		return fmt.Errorf("cannot create temp file in %q: %w", s.dir, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot close %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("cannot replace %q: %w", filename, err)
	}
	return nil
}
