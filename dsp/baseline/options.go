package baseline

// Config controls baseline estimation.
type Config struct {
	// Window is the noise window around each raster point, relative to its
	// m/z (0.1 means ±10%).
	Window float64
	// Offset lowers the level by Offset times the noise width.
	Offset float64
	// SingleSegment computes one flat baseline from the whole signal.
	SingleSegment bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a ±10% window without offset.
func DefaultConfig() Config {
	return Config{Window: 0.1}
}

// WithWindow sets the relative noise window. Non-positive values are
// ignored.
func WithWindow(window float64) Option {
	return func(cfg *Config) {
		if window > 0 {
			cfg.Window = window
		}
	}
}

// WithOffset sets the width multiple subtracted from the level.
func WithOffset(offset float64) Option {
	return func(cfg *Config) {
		cfg.Offset = offset
	}
}

// WithSingleSegment requests a single flat baseline.
func WithSingleSegment() Option {
	return func(cfg *Config) {
		cfg.SingleSegment = true
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
