package config

// ServerConfig contains server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gte=0"`
}

// ResultsConfig describes where simulation result documents live.
// BaseURL may be an HTTP(S) URL or a local directory path.
type ResultsConfig struct {
	BaseURL   string `yaml:"baseURL" validate:"omitempty"`
	RunPrefix string `yaml:"runPrefix" validate:"omitempty"`
	TimeoutMS int    `yaml:"timeoutMS" validate:"gte=0"`
}

// PlaybackConfig contains playback timer configuration
type PlaybackConfig struct {
	TickIntervalMS int `yaml:"tickIntervalMS" validate:"gte=0"`
}

// Source represents a single named result source
type Source struct {
	Name    string        `yaml:"name" validate:"required"`
	Results ResultsConfig `yaml:"results" validate:"required"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig   `yaml:"server" validate:"required"`
	Results  ResultsConfig  `yaml:"results"`
	Playback PlaybackConfig `yaml:"playback"`
	Sources  []Source       `yaml:"sources"`
}
