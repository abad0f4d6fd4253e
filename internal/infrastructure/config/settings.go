package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Settings are the user's audio preferences, persisted between runs
type Settings struct {
	MasterVolume float64 `json:"master_volume"`
	SFXVolume    float64 `json:"sfx_volume"`
	MusicVolume  float64 `json:"music_volume"`
}

// DefaultSettings returns the settings used when no file exists
func DefaultSettings() Settings {
	return Settings{
		MasterVolume: 1.0,
		SFXVolume:    0.2,
		MusicVolume:  0.2,
	}
}

// Clamp keeps every volume in [0, 1]
func (s Settings) Clamp() Settings {
	s.MasterVolume = clamp01(s.MasterVolume)
	s.SFXVolume = clamp01(s.SFXVolume)
	s.MusicVolume = clamp01(s.MusicVolume)
	return s
}

// EffectiveSFX returns the volume applied to sound effects
func (s Settings) EffectiveSFX() float64 {
	return s.MasterVolume * s.SFXVolume
}

func clamp01(v float64) float64 {
	return max(0, min(v, 1))
}

// LoadSettings reads the settings file. A missing or corrupt file yields defaults.
func LoadSettings(path string) Settings {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Failed to read settings, using defaults: %v", err)
		}
		return DefaultSettings()
	}

	s := DefaultSettings()
	if err := json.Unmarshal(data, &s); err != nil {
		log.Printf("Failed to parse settings, using defaults: %v", err)
		return DefaultSettings()
	}
	return s.Clamp()
}

// SaveSettings writes the settings file, creating its directory if needed
func SaveSettings(path string, s Settings) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create settings dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(s.Clamp(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
