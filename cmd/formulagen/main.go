// Command formulagen lists elemental formulas matching a measured m/z.
//
// Usage:
//
//	formulagen [flags] mz
//
// Examples:
//
//	formulagen 28.0313
//	formulagen -elements C=0:20,H=0:40,N=0:4,O=0:8 -tol 3 180.0634
//	formulagen -charge 1 -tol 0.01 -units Da 181.0707
//	formulagen -charge 1 -agent e -agent-charge -1 78.0464
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-ms/chem/formula"
	"github.com/cwbudde/algo-ms/internal/logging"
)

const defaultElements = "C=0:40,H=0:80,N=0:10,O=0:20"

var errUsage = errors.New("formulagen: usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("formulagen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	charge := fs.Int("charge", 0, "charge of the measured ion")
	tol := fs.Float64("tol", 5, "mass tolerance")
	units := fs.String("units", "ppm", "tolerance units (ppm or Da)")
	agent := fs.String("agent", "H", "charging agent formula, or e for electrons")
	agentCharge := fs.Int("agent-charge", 1, "unit charge of the charging agent")
	limit := fs.Int("limit", 1000, "maximum number of formulas")
	elements := fs.String("elements", defaultElements, "element count ranges as SYMBOL=MIN:MAX,...")
	list := fs.Bool("list", false, "list known elements and exit")
	logFormat := fs.String("log-format", "text", "log format (text or json)")
	logLevel := fs.String("log-level", "warn", "log level (debug, info, warn, error)")
	verbose := fs.Bool("v", false, "verbose logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: formulagen [flags] mz\n\n")
		fmt.Fprintf(stderr, "Lists elemental formulas whose mass matches mz.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *list {
		return printElements(stdout)
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}

	log, err := logging.New(stderr, *logFormat, *logLevel, *verbose)
	if err != nil {
		return err
	}
	log = log.WithCommand("formulagen")
	ctx := context.Background()

	mz, err := strconv.ParseFloat(fs.Arg(0), 64)
	if err != nil {
		return fmt.Errorf("invalid m/z %q: %w", fs.Arg(0), err)
	}
	u, err := formula.ParseUnits(*units)
	if err != nil {
		return err
	}
	composition, err := parseComposition(*elements)
	if err != nil {
		return err
	}

	f, err := formula.NewFormulator(
		formula.WithCharge(*charge),
		formula.WithTolerance(*tol, u),
		formula.WithAgent(*agent, *agentCharge),
		formula.WithLimit(*limit),
	)
	if err != nil {
		return err
	}

	mass, err := f.NeutralMass(mz)
	if err != nil {
		return err
	}
	lo, hi := f.Window(mass)
	log.DebugContext(ctx, "search window", "neutral", mass, "lo", lo, "hi", hi)

	candidates, err := f.Candidates(mz, composition)
	log.LogFormulas(ctx, mz, len(candidates), err)
	if err != nil {
		return err
	}

	return printCandidates(stdout, candidates, mass)
}

// parseComposition reads "C=0:40,H=0:80". A bare symbol or "N=5" fixes
// the maximum and leaves the minimum at zero.
func parseComposition(arg string) (map[string]formula.Range, error) {
	out := make(map[string]formula.Range)
	for _, field := range strings.Split(arg, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		symbol, bounds, found := strings.Cut(field, "=")
		if _, err := formula.ElementMass(symbol); err != nil {
			return nil, err
		}
		r := formula.Range{Max: 10}
		if found {
			lo, hi, isRange := strings.Cut(bounds, ":")
			var err error
			if !isRange {
				hi, lo = lo, "0"
			}
			if r.Min, err = strconv.Atoi(lo); err != nil {
				return nil, fmt.Errorf("element %s: %w", symbol, err)
			}
			if r.Max, err = strconv.Atoi(hi); err != nil {
				return nil, fmt.Errorf("element %s: %w", symbol, err)
			}
		}
		if r.Min < 0 || r.Min > r.Max {
			return nil, fmt.Errorf("%w: %s=%d:%d", formula.ErrInvalidBounds, symbol, r.Min, r.Max)
		}
		out[symbol] = r
	}
	if len(out) == 0 {
		return nil, formula.ErrNoElements
	}
	return out, nil
}

func printElements(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, symbol := range formula.Elements() {
		m, err := formula.ElementMass(symbol)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(tw, "%s\t%.6f\n", symbol, m); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func printCandidates(w io.Writer, candidates []formula.Candidate, mass float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Formula\tMass\tError [ppm]\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "-------\t----\t-----------\n"); err != nil {
		return err
	}
	for _, c := range candidates {
		if _, err := fmt.Fprintf(tw, "%s\t%.6f\t%.3f\n", c.Formula, c.Mass, formula.Delta(mass, c.Mass)); err != nil {
			return err
		}
	}
	return tw.Flush()
}
