// Command specgen synthesizes or loads a profile spectrum, runs it through
// the processing chain and prints the result.
//
// Usage:
//
//	specgen [flags]
//
// Examples:
//
//	specgen -peaks 100:1000:0.2,150.5:400:0.3 -noise 20
//	specgen -peaks 500:100:0.5 -shape lorentzian -smooth SG -smooth-window 0.2
//	specgen -in spectrum.txt -baseline -normalize -format summary
//	specgen -peaks 1000:50:1 -crop 995:1005 -filter 0.05
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cwbudde/algo-ms/dsp/baseline"
	"github.com/cwbudde/algo-ms/dsp/model"
	"github.com/cwbudde/algo-ms/dsp/render"
	"github.com/cwbudde/algo-ms/dsp/signal"
	"github.com/cwbudde/algo-ms/dsp/smooth"
	"github.com/cwbudde/algo-ms/internal/logging"
)

var errNoInput = errors.New("specgen: either -peaks or -in is required")

type options struct {
	peaks          string
	in             string
	shape          string
	points         int
	noise          float64
	seed           int64
	smooth         string
	smoothWindow   float64
	cycles         int
	baseline       bool
	baselineWindow float64
	baselineOffset float64
	crop           string
	normalize      bool
	filter         float64
	format         string
	top            int
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var o options
	fs := flag.NewFlagSet("specgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.peaks, "peaks", "", "peaks to synthesize as MZ:INTENSITY:FWHM,...")
	fs.StringVar(&o.in, "in", "", "read a two-column x y text file instead (- for stdin)")
	fs.StringVar(&o.shape, "shape", "gaussian", "peak shape (gaussian, lorentzian, gausslorentzian)")
	fs.IntVar(&o.points, "points", 10, "raster points per FWHM")
	fs.Float64Var(&o.noise, "noise", 0, "uniform noise amplitude")
	fs.Int64Var(&o.seed, "seed", model.DefaultSeed, "noise seed")
	fs.StringVar(&o.smooth, "smooth", "", "smoothing method (MA, GA, SG)")
	fs.Float64Var(&o.smoothWindow, "smooth-window", 0.1, "smoothing window in m/z units")
	fs.IntVar(&o.cycles, "cycles", 1, "smoothing cycles")
	fs.BoolVar(&o.baseline, "baseline", false, "estimate and subtract the baseline")
	fs.Float64Var(&o.baselineWindow, "baseline-window", 0.1, "relative baseline noise window")
	fs.Float64Var(&o.baselineOffset, "baseline-offset", 0, "baseline offset in noise widths")
	fs.StringVar(&o.crop, "crop", "", "crop range as MIN:MAX")
	fs.BoolVar(&o.normalize, "normalize", false, "scale the maximum intensity to 100")
	fs.Float64Var(&o.filter, "filter", 0, "drop points closer than this resolution for display")
	fs.StringVar(&o.format, "format", "xy", "output format (xy or summary)")
	fs.IntVar(&o.top, "top", 10, "number of maxima in the summary")
	logFormat := fs.String("log-format", "text", "log format (text or json)")
	logLevel := fs.String("log-level", "warn", "log level (debug, info, warn, error)")
	verbose := fs.Bool("v", false, "verbose logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: specgen [flags]\n\n")
		fmt.Fprintf(stderr, "Synthesizes or loads a spectrum and processes it.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	log, err := logging.New(stderr, *logFormat, *logLevel, *verbose)
	if err != nil {
		return err
	}
	log = log.WithCommand("specgen")

	s, err := process(context.Background(), log, o)
	if err != nil {
		return err
	}

	switch o.format {
	case "xy":
		return writeXY(stdout, s)
	case "summary":
		return writeSummary(stdout, s, o.top)
	default:
		return fmt.Errorf("unknown format %q", o.format)
	}
}

type step struct {
	name string
	fn   func(signal.Signal) (signal.Signal, error)
}

func process(ctx context.Context, log *logging.Logger, o options) (signal.Signal, error) {
	steps, err := buildSteps(o)
	if err != nil {
		return signal.Signal{}, err
	}

	var s signal.Signal
	for _, st := range steps {
		start := time.Now()
		s, err = st.fn(s)
		log.LogStep(ctx, st.name, s.Len(), time.Since(start), err)
		if err != nil {
			return signal.Signal{}, fmt.Errorf("%s: %w", st.name, err)
		}
	}
	return s, nil
}

func buildSteps(o options) ([]step, error) {
	var steps []step

	switch {
	case o.in != "":
		path := o.in
		steps = append(steps, step{"load", func(signal.Signal) (signal.Signal, error) {
			return load(path)
		}})
	case o.peaks != "":
		peaks, err := parsePeaks(o.peaks)
		if err != nil {
			return nil, err
		}
		shape, err := model.ParseShape(o.shape)
		if err != nil {
			return nil, err
		}
		gen := model.NewGenerator(model.WithSeed(o.seed))
		steps = append(steps, step{"profile", func(signal.Signal) (signal.Signal, error) {
			return gen.Profile(peaks, o.points, o.noise, shape)
		}})
	default:
		return nil, errNoInput
	}

	if o.crop != "" {
		lo, hi, err := parseRange(o.crop)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step{"crop", func(s signal.Signal) (signal.Signal, error) {
			return signal.Crop(s, lo, hi), nil
		}})
	}

	if o.smooth != "" {
		method, err := smooth.ParseMethod(o.smooth)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step{"smooth", func(s signal.Signal) (signal.Signal, error) {
			return smooth.Smooth(s, method, o.smoothWindow, o.cycles)
		}})
	}

	if o.baseline {
		opts := []baseline.Option{
			baseline.WithWindow(o.baselineWindow),
			baseline.WithOffset(o.baselineOffset),
		}
		steps = append(steps, step{"baseline", func(s signal.Signal) (signal.Signal, error) {
			b, err := baseline.Estimate(s, opts...)
			if err != nil {
				return signal.Signal{}, err
			}
			return signal.SubtractBaseline(s, b.Signal()), nil
		}})
	}

	if o.normalize {
		steps = append(steps, step{"normalize", func(s signal.Signal) (signal.Signal, error) {
			n, err := signal.Normalize(s)
			if err != nil {
				return signal.Signal{}, err
			}
			return signal.Multiply(n, 1, 100), nil
		}})
	}

	if o.filter > 0 {
		steps = append(steps, step{"filter", func(s signal.Signal) (signal.Signal, error) {
			return render.Filter(s, o.filter), nil
		}})
	}

	return steps, nil
}

// parsePeaks reads "MZ:INTENSITY:FWHM,...".
func parsePeaks(arg string) ([]model.Peak, error) {
	var peaks []model.Peak
	for _, field := range strings.Split(arg, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		parts := strings.Split(field, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("peak %q: want MZ:INTENSITY:FWHM", field)
		}
		var vals [3]float64
		for i, p := range parts {
			v, err := strconv.ParseFloat(p, 64)
			if err != nil {
				return nil, fmt.Errorf("peak %q: %w", field, err)
			}
			vals[i] = v
		}
		peaks = append(peaks, model.Peak{MZ: vals[0], Intensity: vals[1], FWHM: vals[2]})
	}
	if len(peaks) == 0 {
		return nil, model.ErrNoPeaks
	}
	return peaks, nil
}

func parseRange(arg string) (lo, hi float64, err error) {
	a, b, ok := strings.Cut(arg, ":")
	if !ok {
		return 0, 0, fmt.Errorf("range %q: want MIN:MAX", arg)
	}
	if lo, err = strconv.ParseFloat(a, 64); err != nil {
		return 0, 0, fmt.Errorf("range %q: %w", arg, err)
	}
	if hi, err = strconv.ParseFloat(b, 64); err != nil {
		return 0, 0, fmt.Errorf("range %q: %w", arg, err)
	}
	return lo, hi, nil
}

func load(path string) (signal.Signal, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return signal.Signal{}, err
		}
		defer f.Close()
		r = f
	}
	return readXY(r)
}

// readXY parses whitespace separated x y pairs, one per line. Blank lines
// and lines starting with # are skipped.
func readXY(r io.Reader) (signal.Signal, error) {
	var xs, ys []float64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 2 {
			return signal.Signal{}, fmt.Errorf("line %d: want x y", line)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return signal.Signal{}, fmt.Errorf("line %d: %w", line, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return signal.Signal{}, fmt.Errorf("line %d: %w", line, err)
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	if err := sc.Err(); err != nil {
		return signal.Signal{}, err
	}
	return signal.FromXY(xs, ys)
}
