package stats

import (
	"math"

	"daostats/domain/core"
)

// CorrelationStrength is the qualitative label the charts attach to a
// Pearson coefficient.
type CorrelationStrength string

const (
	StrengthNegligible CorrelationStrength = "negligible"
	StrengthWeak       CorrelationStrength = "weak"
	StrengthModerate   CorrelationStrength = "moderate"
	StrengthStrong     CorrelationStrength = "strong"
	StrengthVeryStrong CorrelationStrength = "very_strong"
)

// Pearson returns the Pearson product-moment correlation coefficient:
//
//	sum((xi-mx)*(yi-my)) / sqrt(sum((xi-mx)^2) * sum((yi-my)^2))
//
// By explicit contract it returns 0 (not NaN) when either series has zero
// variance, so the interpretation labels downstream never see NaN.
func (p PairedSample) Pearson() (float64, error) {
	n := p.Len()
	if n == 0 {
		return 0, core.NewEmptyInputError("pearson correlation")
	}
	mx, _ := p.x.Mean()
	my, _ := p.y.Mean()

	var sumXY, sumXX, sumYY float64
	xs := p.x.values
	ys := p.y.values
	for i := 0; i < n; i++ {
		dx := xs[i] - mx
		dy := ys[i] - my
		sumXY += dx * dy
		sumXX += dx * dx
		sumYY += dy * dy
	}
	if sumXX == 0 || sumYY == 0 {
		// zero-variance contract
		return 0, nil
	}
	return sumXY / math.Sqrt(sumXX*sumYY), nil
}

// Strength maps |r| onto the conventional descriptive buckets.
func Strength(r float64) CorrelationStrength {
	abs := math.Abs(r)
	switch {
	case abs < 0.1:
		return StrengthNegligible
	case abs < 0.3:
		return StrengthWeak
	case abs < 0.5:
		return StrengthModerate
	case abs < 0.7:
		return StrengthStrong
	default:
		return StrengthVeryStrong
	}
}
