package formula

import (
	"errors"
	"fmt"
	"strings"
)

// Units selects how a mass tolerance is interpreted.
type Units int

const (
	// PPM is relative to the neutral mass, in parts per million.
	PPM Units = iota
	// Dalton is absolute, scaled by the charge magnitude for charged ions.
	Dalton
)

// ErrUnknownUnits is returned by ParseUnits.
var ErrUnknownUnits = errors.New("formula: unknown tolerance units")

func (u Units) String() string {
	switch u {
	case PPM:
		return "ppm"
	case Dalton:
		return "Da"
	default:
		return fmt.Sprintf("Units(%d)", int(u))
	}
}

// ParseUnits accepts "ppm" and "Da" in any case.
func ParseUnits(s string) (Units, error) {
	switch strings.ToLower(s) {
	case "ppm":
		return PPM, nil
	case "da":
		return Dalton, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnits, s)
}

// Config controls a Formulator.
type Config struct {
	Charge      int
	Tolerance   float64
	Units       Units
	Agent       string
	AgentCharge int
	Limit       int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a neutral search with 1 ppm tolerance, protons as
// charging agent and at most 1000 formulas.
func DefaultConfig() Config {
	return Config{
		Tolerance:   1,
		Units:       PPM,
		Agent:       "H",
		AgentCharge: 1,
		Limit:       1000,
	}
}

// WithCharge sets the charge of the measured ion.
func WithCharge(charge int) Option {
	return func(cfg *Config) {
		cfg.Charge = charge
	}
}

// WithTolerance sets the mass tolerance.
func WithTolerance(tolerance float64, units Units) Option {
	return func(cfg *Config) {
		cfg.Tolerance = tolerance
		cfg.Units = units
	}
}

// WithAgent sets the charging agent formula and its unit charge. Use
// Electron with charge -1 for radical ions.
func WithAgent(formula string, charge int) Option {
	return func(cfg *Config) {
		cfg.Agent = formula
		cfg.AgentCharge = charge
	}
}

// WithLimit caps the number of formulas returned.
func WithLimit(limit int) Option {
	return func(cfg *Config) {
		cfg.Limit = limit
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
