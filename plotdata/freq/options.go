package freq

// Orientation names the side of the plot an axis is drawn on.
type Orientation int

const (
	Bottom Orientation = iota
	Left
	Top
	Right
)

// String returns the lower-case side name.
func (o Orientation) String() string {
	switch o {
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Top:
		return "top"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Config holds the display settings an Axis carries for its renderer.
type Config struct {
	Bands []Band
	Axes  []Orientation
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the canonical bands with a bottom and a left axis.
func DefaultConfig() Config {
	return Config{
		Bands: DefaultBands(),
		Axes:  []Orientation{Bottom, Left},
	}
}

// WithBands replaces the band table. A nil or empty list leaves the
// defaults in place.
func WithBands(bands ...Band) Option {
	return func(cfg *Config) {
		if len(bands) > 0 {
			cfg.Bands = append([]Band(nil), bands...)
		}
	}
}

// WithAxes replaces the axis orientations.
func WithAxes(axes ...Orientation) Option {
	return func(cfg *Config) {
		if len(axes) > 0 {
			cfg.Axes = append([]Orientation(nil), axes...)
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
