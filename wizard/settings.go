package wizard

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/randalmurphal/posekit/model"
	"github.com/randalmurphal/posekit/pricing"
)

// DefaultSettingsPath is the settings file location relative to the
// executable's working directory.
const DefaultSettingsPath = "config/settings.toml"

// Settings is the persisted wizard configuration. A missing file is not
// an error; every field has a default.
type Settings struct {
	// DefaultMode names the operating mode the wizard starts in.
	DefaultMode string `toml:"default_mode"`

	// OverrideModel pins a specific model, bypassing mode priority.
	OverrideModel string `toml:"override_model"`

	// PricingPath overrides the pricing file location.
	PricingPath string `toml:"pricing_path"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		DefaultMode: model.Balanced.Name,
		PricingPath: pricing.DefaultPath,
	}
}

// LoadSettings reads settings from path (DefaultSettingsPath when
// empty), then applies POSEKIT_* environment overrides. A missing file
// yields defaults; an unparseable file is an error.
func LoadSettings(path string) (Settings, error) {
	if path == "" {
		path = DefaultSettingsPath
	}
	s := DefaultSettings()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &s); err != nil {
			return s, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	s.LoadFromEnv()
	return s, nil
}

// LoadFromEnv applies environment overrides. Variables use the POSEKIT_
// prefix and take precedence over file values:
//   - POSEKIT_MODE: operating mode name
//   - POSEKIT_MODEL: model override
//   - POSEKIT_PRICING: pricing file path
func (s *Settings) LoadFromEnv() {
	if v := os.Getenv("POSEKIT_MODE"); v != "" {
		s.DefaultMode = v
	}
	if v := os.Getenv("POSEKIT_MODEL"); v != "" {
		s.OverrideModel = v
	}
	if v := os.Getenv("POSEKIT_PRICING"); v != "" {
		s.PricingPath = v
	}
}

// Mode resolves the configured mode name, falling back to Balanced when
// the name is unknown.
func (s Settings) Mode() model.Mode {
	if m, ok := model.ModeByName(s.DefaultMode); ok {
		return m
	}
	return model.Balanced
}
