package formula

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrInvalidTolerance = errors.New("formula: tolerance must be finite and >= 0")
	ErrInvalidAgent     = errors.New("formula: agent charge must be non-zero")
)

// Range bounds the count of one element.
type Range struct {
	Min, Max int
}

// Candidate is one formula matching a neutral mass window.
type Candidate struct {
	Formula     string
	Elements    []string
	Composition Composition
	Mass        float64
}

// Formulator turns measured m/z values into candidate formulas.
type Formulator struct {
	cfg Config
}

// NewFormulator returns a Formulator configured by opts.
func NewFormulator(opts ...Option) (*Formulator, error) {
	cfg := ApplyOptions(opts...)
	if cfg.Tolerance < 0 || math.IsNaN(cfg.Tolerance) || math.IsInf(cfg.Tolerance, 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidTolerance, cfg.Tolerance)
	}
	if cfg.Charge != 0 && cfg.Agent != "" {
		if cfg.AgentCharge == 0 {
			return nil, ErrInvalidAgent
		}
		if cfg.Agent != Electron {
			if _, err := Mass(cfg.Agent); err != nil {
				return nil, err
			}
		}
	}
	return &Formulator{cfg: cfg}, nil
}

// Config returns the effective configuration.
func (f *Formulator) Config() Config {
	return f.cfg
}

// NeutralMass converts mz of an ion carrying the configured charge into the
// mass of the uncharged molecule.
func (f *Formulator) NeutralMass(mz float64) (float64, error) {
	charge := f.cfg.Charge
	if charge == 0 || f.cfg.Agent == "" {
		return mz, nil
	}

	var agentMass float64
	if f.cfg.Agent == Electron {
		agentMass = ElectronMass
	} else {
		m, err := Mass(f.cfg.Agent)
		if err != nil {
			return 0, err
		}
		agentMass = m - float64(f.cfg.AgentCharge)*ElectronMass
	}

	agents := float64(charge) / float64(f.cfg.AgentCharge)
	return mz*math.Abs(float64(charge)) - agentMass*agents, nil
}

// Window returns the neutral mass window searched for mass.
func (f *Formulator) Window(mass float64) (lo, hi float64) {
	var d float64
	switch {
	case f.cfg.Units == PPM:
		d = mass / 1e6 * f.cfg.Tolerance
	case f.cfg.Charge != 0:
		d = math.Abs(float64(f.cfg.Charge)) * f.cfg.Tolerance
	default:
		d = f.cfg.Tolerance
	}
	return mass - d, mass + d
}

// Candidates returns the formulas whose neutral mass matches mz within the
// configured tolerance. Elements are ordered heaviest first both in the
// search and in the rendered formula. A non-positive neutral mass yields no
// candidates.
func (f *Formulator) Candidates(mz float64, composition map[string]Range) ([]Candidate, error) {
	mass, err := f.NeutralMass(mz)
	if err != nil {
		return nil, err
	}
	if mass <= 0 || len(composition) == 0 || f.cfg.Limit <= 0 {
		return nil, nil
	}
	lo, hi := f.Window(mass)

	elements, err := orderElements(composition)
	if err != nil {
		return nil, err
	}

	c := Constraints{
		Minimum: make([]int, len(elements)),
		Maximum: make([]int, len(elements)),
		Masses:  make([]float64, len(elements)),
		LoMass:  lo,
		HiMass:  hi,
	}
	for i, el := range elements {
		r := composition[el.symbol]
		if r.Min < 0 || r.Min > r.Max {
			return nil, fmt.Errorf("%w: %s has [%d, %d]", ErrInvalidBounds, el.symbol, r.Min, r.Max)
		}
		c.Minimum[i] = r.Min
		c.Maximum[i] = r.Max
		c.Masses[i] = el.mass
		if el.mass > 0 {
			c.Maximum[i] = min(r.Max, int(hi/el.mass))
		}
		if c.Minimum[i] > c.Maximum[i] {
			// The minimum alone is heavier than the window.
			return nil, nil
		}
	}

	seq, err := Search(c)
	if err != nil {
		return nil, err
	}

	symbols := make([]string, len(elements))
	for i, el := range elements {
		symbols[i] = el.symbol
	}

	var out []Candidate
	for comp := range seq {
		out = append(out, Candidate{
			Formula:     render(symbols, comp),
			Elements:    symbols,
			Composition: comp,
			Mass:        c.Mass(comp),
		})
		if len(out) == f.cfg.Limit {
			break
		}
	}
	return out, nil
}

// Formulas is Candidates reduced to the rendered formulas.
func (f *Formulator) Formulas(mz float64, composition map[string]Range) ([]string, error) {
	candidates, err := f.Candidates(mz, composition)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.Formula
	}
	return out, nil
}

type element struct {
	symbol string
	mass   float64
}

func orderElements(composition map[string]Range) ([]element, error) {
	out := make([]element, 0, len(composition))
	for symbol := range composition {
		m, err := ElementMass(symbol)
		if err != nil {
			return nil, err
		}
		out = append(out, element{symbol: symbol, mass: m})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].mass != out[j].mass {
			return out[i].mass > out[j].mass
		}
		return out[i].symbol > out[j].symbol
	})
	return out, nil
}

func render(symbols []string, counts Composition) string {
	var b strings.Builder
	for i, symbol := range symbols {
		b.WriteString(symbol)
		b.WriteString(strconv.Itoa(counts[i]))
	}
	return b.String()
}
