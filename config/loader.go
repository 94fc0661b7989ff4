package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// DefaultPort is used when the server port is not configured.
const DefaultPort = 17280

// DefaultRunPrefix is the filename prefix the simulator uses for result documents.
const DefaultRunPrefix = "simulation"

// DefaultTickIntervalMS is the playback step cadence in milliseconds.
const DefaultTickIntervalMS = 300

// LoadAppConfig loads and validates the application configuration from config.yml
func LoadAppConfig() error {
	paths := []string{"config.yml", "./golang/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return err
	}
	// sources are optional; if present validate each
	for _, s := range cfg.Sources {
		if err := v.Struct(s); err != nil {
			return err
		}
	}
	Config = cfg
	applyDefaults(&Config)
	return nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Results.RunPrefix == "" {
		cfg.Results.RunPrefix = DefaultRunPrefix
	}
	if cfg.Playback.TickIntervalMS == 0 {
		cfg.Playback.TickIntervalMS = DefaultTickIntervalMS
	}
	for i := range cfg.Sources {
		if cfg.Sources[i].Results.RunPrefix == "" {
			cfg.Sources[i].Results.RunPrefix = cfg.Results.RunPrefix
		}
	}
}

// SelectSource chooses a result source by name; fallback to first; if none, use top-level Results.
func SelectSource(name string) ResultsConfig {
	if name != "" {
		for _, s := range Config.Sources {
			if s.Name == name {
				return s.Results
			}
		}
	}
	if len(Config.Sources) > 0 {
		return Config.Sources[0].Results
	}
	return Config.Results
}
