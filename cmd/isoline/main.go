// Command isoline extracts a marching-squares contour from a grid.
//
// The grid is read as JSON ([][]float64) from -in, or generated with
// -gen random|gaussian. The contour is written as JSON to -out and can be
// rendered with -png / -svg.
//
// Usage:
//
//	isoline -gen gaussian -threshold 2 -png contour.png
//	isoline -in grid.json -threshold 0.5 -interp=false -out -
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/katalvlaran/isoline/geom"
	"github.com/katalvlaran/isoline/grid"
	"github.com/katalvlaran/isoline/marching"
	"github.com/katalvlaran/isoline/render"
)

// config holds the parsed command line.
type config struct {
	in        string
	gen       string
	width     int
	height    int
	seed      uint64
	threshold float64
	interp    bool
	workers   int
	out       string
	png       string
	svg       string
	values    bool
	verbose   bool
}

var errNoGrid = errors.New("isoline: one of -in or -gen is required")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "isoline: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("isoline", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.in, "in", "", "JSON grid file ([][]float64); - for stdin")
	fs.StringVar(&cfg.gen, "gen", "", "generate the grid instead: random or gaussian")
	fs.IntVar(&cfg.width, "width", grid.DefaultWidth, "generated grid width")
	fs.IntVar(&cfg.height, "height", grid.DefaultHeight, "generated grid height")
	fs.Uint64Var(&cfg.seed, "seed", 1, "seed for -gen random")
	fs.Float64Var(&cfg.threshold, "threshold", 5, "contour value")
	fs.BoolVar(&cfg.interp, "interp", marching.DefaultInterpolation, "interpolate crossings (false: edge midpoints)")
	fs.IntVar(&cfg.workers, "workers", marching.DefaultWorkers, "row-parallel workers")
	fs.StringVar(&cfg.out, "out", "-", "contour JSON output file; - for stdout, empty to skip")
	fs.StringVar(&cfg.png, "png", "", "render the grid and contour to this PNG file")
	fs.StringVar(&cfg.svg, "svg", "", "render the grid and contour to this SVG file")
	fs.BoolVar(&cfg.values, "values", false, "print sample values in rendered images")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.in == "" && cfg.gen == "" {
		return cfg, errNoGrid
	}
	if cfg.in != "" && cfg.gen != "" {
		return cfg, errors.New("isoline: -in and -gen are mutually exclusive")
	}
	if cfg.workers < 1 {
		return cfg, fmt.Errorf("isoline: -workers must be >= 1, got %d", cfg.workers)
	}
	return cfg, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	marching.SetLogger(log)

	g, err := loadGrid(cfg, stdin)
	if err != nil {
		return err
	}
	log.Debug("grid loaded", "rows", g.Rows(), "cols", g.Cols())

	contour := marching.MarchGrid(g, cfg.threshold,
		marching.WithInterpolation(cfg.interp),
		marching.WithWorkers(cfg.workers),
	)
	log.Info("contour extracted", "segments", contour.Len(), "threshold", cfg.threshold)

	if cfg.out != "" {
		if err := writeContour(cfg.out, stdout, contour, log); err != nil {
			return err
		}
	}

	opts := render.DefaultOptions()
	opts.Threshold = cfg.threshold
	opts.ShowValues = cfg.values
	opts.Title = fmt.Sprintf("threshold %g", cfg.threshold)
	for _, path := range []string{cfg.png, cfg.svg} {
		if path == "" {
			continue
		}
		if err := render.Save(path, g, contour, opts); err != nil {
			return err
		}
		log.Info("image written", "path", path)
	}
	return nil
}

// loadGrid reads or generates the input grid.
func loadGrid(cfg config, stdin io.Reader) (*grid.Grid, error) {
	switch cfg.gen {
	case "random":
		return grid.Random(cfg.width, cfg.height, rand.NewPCG(cfg.seed, cfg.seed))
	case "gaussian":
		return grid.Gaussian(cfg.width, cfg.height)
	case "":
	default:
		return nil, fmt.Errorf("isoline: unknown generator %q", cfg.gen)
	}

	r := stdin
	if cfg.in != "-" {
		f, err := os.Open(cfg.in)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var values [][]float64
	if err := json.NewDecoder(r).Decode(&values); err != nil {
		return nil, fmt.Errorf("isoline: decode grid: %w", err)
	}
	return grid.New(values)
}

// writeContour encodes the finite part of c as indented JSON.
func writeContour(path string, stdout io.Writer, c geom.Contour, log *slog.Logger) (err error) {
	finite := c.Finite()
	if n := c.Len() - finite.Len(); n > 0 {
		log.Warn("dropping non-finite segments", "count", n)
	}

	w := stdout
	if path != "-" {
		f, ferr := os.Create(path)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(finite)
}
