package stats

import (
	"daostats/domain/core"

	"gonum.org/v1/gonum/stat/distuv"
)

// NormalFit evaluates the density of a normal distribution fitted to the
// sample (mean and unbiased std) at the given points. The charts overlay
// this on the KDE curve to show departure from normality. A constant sample
// has no defined normal fit and returns a degenerate-distribution error.
func (s Sample) NormalFit(points []float64) (DensityCurve, error) {
	if len(s.values) == 0 {
		return nil, core.NewEmptyInputError("normal fit")
	}
	std, err := s.StdDev()
	if err != nil {
		return nil, err
	}
	if std == 0 {
		return nil, core.NewDegenerateError("normal fit", "zero standard deviation")
	}
	mean, _ := s.Mean()
	dist := distuv.Normal{Mu: mean, Sigma: std}
	curve := make(DensityCurve, len(points))
	for i, x := range points {
		curve[i] = DensityPoint{X: x, Density: dist.Prob(x)}
	}
	return curve, nil
}

// NormalFitGrid evaluates the fitted normal on the same grid shape KDEGrid
// uses, spanning [min-3*std, max+3*std].
func (s Sample) NormalFitGrid(gridSize int) (DensityCurve, error) {
	if gridSize < 2 {
		return nil, core.NewInvalidParameterError("gridSize", "must be >= 2")
	}
	std, err := s.StdDev()
	if err != nil {
		return nil, err
	}
	if std == 0 {
		return nil, core.NewDegenerateError("normal fit", "zero standard deviation")
	}
	min, _ := s.Min()
	max, _ := s.Max()
	return s.NormalFit(EvaluationGrid(min-3*std, max+3*std, gridSize))
}
