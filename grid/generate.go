package grid

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Generator defaults.
const (
	// DefaultWidth is the column count used by the demo generators.
	DefaultWidth = 10
	// DefaultHeight is the row count used by the demo generators.
	DefaultHeight = 10

	// RandomScale maps a uniform [0,1) draw onto [0, RandomScale] with one
	// decimal of precision.
	RandomScale = 10.0

	// GaussianMean is the centre of the bump along both axes.
	GaussianMean = 4.5
	// GaussianSigma is the standard deviation along both axes.
	GaussianSigma = 2.0
	// GaussianAmplitude scales the product of the two densities.
	GaussianAmplitude = 300.0
)

// Random returns a width×height grid of uniform samples in [0, RandomScale],
// rounded to one decimal place. src seeds the draw; nil uses the global
// math/rand/v2 source, so pass a seeded source for reproducible grids.
// Returns ErrBadDimensions for negative sizes.
// Complexity: O(W×H).
func Random(width, height int, src rand.Source) (*Grid, error) {
	if width < 0 || height < 0 {
		return nil, ErrBadDimensions
	}
	u := distuv.Uniform{Min: 0, Max: 1, Src: src}
	values := make([][]float64, height)
	for y := range values {
		values[y] = make([]float64, width)
		for x := range values[y] {
			values[y][x] = math.Round(u.Rand()*RandomScale*10) / 10
		}
	}
	return New(values)
}

// Gaussian returns a width×height grid holding a separable 2D Gaussian bump:
//
//	v(x, y) = N(x; GaussianMean, GaussianSigma) · N(y; GaussianMean, GaussianSigma) · GaussianAmplitude
//
// The peak (≈ 11.2 for the defaults) sits between the four central samples
// of a 10×10 grid. Deterministic.
// Returns ErrBadDimensions for negative sizes.
// Complexity: O(W×H).
func Gaussian(width, height int) (*Grid, error) {
	if width < 0 || height < 0 {
		return nil, ErrBadDimensions
	}
	n := distuv.Normal{Mu: GaussianMean, Sigma: GaussianSigma}
	// Densities are separable; evaluate each axis once.
	px := make([]float64, width)
	for x := range px {
		px[x] = n.Prob(float64(x))
	}
	values := make([][]float64, height)
	for y := range values {
		py := n.Prob(float64(y))
		values[y] = make([]float64, width)
		for x := range values[y] {
			values[y][x] = px[x] * py * GaussianAmplitude
		}
	}
	return New(values)
}
