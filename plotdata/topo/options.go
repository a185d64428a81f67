package topo

// DefaultUnits is the unit label of spectral power maps.
const DefaultUnits = "uV^2/Hz"

// Config holds the descriptive fields of an Interpolator.
type Config struct {
	Name  string
	Units string
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns an unnamed power map.
func DefaultConfig() Config {
	return Config{Units: DefaultUnits}
}

// WithName sets the map title.
func WithName(name string) Option {
	return func(cfg *Config) {
		cfg.Name = name
	}
}

// WithUnits sets the value unit label. An empty string keeps the default.
func WithUnits(units string) Option {
	return func(cfg *Config) {
		if units != "" {
			cfg.Units = units
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
