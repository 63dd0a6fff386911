package adventure

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/mossvale/WildkeeperBot_Go/internal/combat"
	"github.com/mossvale/WildkeeperBot_Go/internal/flee"
)

// EngineConfig bundles the tunable parameters for the resolution engines.
// Values ship in configs/engine.json so game design can retune multipliers
// (notably the raid weapon multiplier) without a code change.
type EngineConfig struct {
	Version string          `json:"version" validate:"required"`
	Combat  combat.Settings `json:"combat"`
	Flee    flee.Settings   `json:"flee"`
}

// DefaultEngineConfig returns the documented defaults.
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		Version: "1.0",
		Combat:  combat.DefaultSettings(),
		Flee:    flee.DefaultSettings(),
	}
}

// LoadEngineConfig loads and validates the engine configuration from a JSON
// file.
func LoadEngineConfig(path string) (*EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read engine config: %w", err)
	}

	var cfg EngineConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse engine config: %w", err)
	}

	if err := validateEngineConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}

	return &cfg, nil
}

func validateEngineConfig(cfg *EngineConfig) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return err
	}
	if cfg.Flee.BaseChance > cfg.Flee.MaxChance {
		return fmt.Errorf("flee base chance %.2f exceeds max chance %.2f", cfg.Flee.BaseChance, cfg.Flee.MaxChance)
	}
	return nil
}
