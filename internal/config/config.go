package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/ThatOtherAndrew/Handcloud/internal/dispatch"
	"github.com/ThatOtherAndrew/Handcloud/internal/spawn"
)

const MaxParticles = 1_000_000

type Settings struct {
	ParticleCount       int     `json:"particle_count"`
	Seed                uint64  `json:"seed"`
	Workers             int     `json:"workers"`
	DebounceMs          int     `json:"debounce_ms"`
	PulseMs             int     `json:"pulse_ms"`
	BurstMs             int     `json:"burst_ms"`
	PulseExpansion      float32 `json:"pulse_expansion"`
	SmoothingRate       float32 `json:"smoothing_rate"`
	PointSize           float32 `json:"point_size"`
	SupersedeReversions bool    `json:"supersede_reversions"`
	Sound               bool    `json:"sound"`
	InitialTemplate     string  `json:"initial_template"`
}

func Default() *Settings {
	return &Settings{
		ParticleCount:   5000,
		Workers:         0,
		DebounceMs:      500,
		PulseMs:         2000,
		BurstMs:         3000,
		PulseExpansion:  2.0,
		SmoothingRate:   0.05,
		PointSize:       0.5,
		InitialTemplate: string(spawn.Galaxy),
	}
}

func GetSettingsPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(homeDir, ".config", "handcloud")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(configDir, "settings.json"), nil
}

func LoadSettings() (*Settings, error) {
	settingsPath, err := GetSettingsPath()
	if err != nil {
		return nil, err
	}
	return LoadSettingsFrom(settingsPath)
}

// LoadSettingsFrom reads settings at path, writing a default file if there
// is none. Keys missing from the file keep their defaults.
func LoadSettingsFrom(settingsPath string) (*Settings, error) {
	defaultSettings := Default()

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Creating default settings file at %s", settingsPath)
			if err := createDefaultSettings(settingsPath, defaultSettings); err != nil {
				log.Printf("Failed to create default settings file: %v", err)
			}
			return defaultSettings, nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}

	// Check for unrecognised keys
	var rawSettings map[string]interface{}
	if err := json.Unmarshal(data, &rawSettings); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return defaultSettings, nil
	}

	knownKeys := getKnownKeys(Settings{})
	for key := range rawSettings {
		if !knownKeys[key] {
			log.Printf("Warning: unrecognised setting key '%s' in settings file", key)
		}
	}

	settings := Default()
	if err := json.Unmarshal(data, settings); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return defaultSettings, nil
	}

	settings.Validate()
	return settings, nil
}

// Validate resets every out-of-range value to its default, logging each one.
func (s *Settings) Validate() {
	d := Default()

	if s.ParticleCount < 1 || s.ParticleCount > MaxParticles {
		log.Printf("Invalid particle_count value %d, must be between 1 and %d, using default %d",
			s.ParticleCount, MaxParticles, d.ParticleCount)
		s.ParticleCount = d.ParticleCount
	}
	if s.Workers < 0 {
		log.Printf("Invalid workers value %d, must not be negative, using default %d", s.Workers, d.Workers)
		s.Workers = d.Workers
	}
	if s.DebounceMs < 0 {
		log.Printf("Invalid debounce_ms value %d, must not be negative, using default %d", s.DebounceMs, d.DebounceMs)
		s.DebounceMs = d.DebounceMs
	}
	if s.PulseMs <= 0 {
		log.Printf("Invalid pulse_ms value %d, must be positive, using default %d", s.PulseMs, d.PulseMs)
		s.PulseMs = d.PulseMs
	}
	if s.BurstMs <= 0 {
		log.Printf("Invalid burst_ms value %d, must be positive, using default %d", s.BurstMs, d.BurstMs)
		s.BurstMs = d.BurstMs
	}
	if s.PulseExpansion <= 0 {
		log.Printf("Invalid pulse_expansion value %.2f, must be positive, using default %.2f",
			s.PulseExpansion, d.PulseExpansion)
		s.PulseExpansion = d.PulseExpansion
	}
	// Validate smoothing_rate to (0, 1]
	if s.SmoothingRate <= 0.0 || s.SmoothingRate > 1.0 {
		log.Printf("Invalid smoothing_rate value %.2f, must be in (0.0, 1.0], using default %.2f",
			s.SmoothingRate, d.SmoothingRate)
		s.SmoothingRate = d.SmoothingRate
	}
	if s.PointSize <= 0 {
		log.Printf("Invalid point_size value %.2f, must be positive, using default %.2f", s.PointSize, d.PointSize)
		s.PointSize = d.PointSize
	}
	if _, err := spawn.ParseID(s.InitialTemplate); err != nil {
		log.Printf("Invalid initial_template: %v, using default %q", err, d.InitialTemplate)
		s.InitialTemplate = d.InitialTemplate
	}
}

// Template returns the configured starting template.
func (s *Settings) Template() spawn.ID {
	id, err := spawn.ParseID(s.InitialTemplate)
	if err != nil {
		return spawn.Galaxy
	}
	return id
}

// Dispatch returns the dispatcher timing these settings describe.
func (s *Settings) Dispatch() dispatch.Config {
	return dispatch.Config{
		Debounce:            time.Duration(s.DebounceMs) * time.Millisecond,
		PulseExpansion:      s.PulseExpansion,
		PulseDuration:       time.Duration(s.PulseMs) * time.Millisecond,
		BurstDuration:       time.Duration(s.BurstMs) * time.Millisecond,
		SupersedeReversions: s.SupersedeReversions,
	}
}

func createDefaultSettings(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func getKnownKeys(v interface{}) map[string]bool {
	keys := make(map[string]bool)
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if jsonTag := field.Tag.Get("json"); jsonTag != "" {
			// Handle json tags like "field,omitempty"
			tagName := strings.Split(jsonTag, ",")[0]
			if tagName != "-" {
				keys[tagName] = true
			}
		}
	}
	return keys
}
