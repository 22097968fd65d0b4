package elo

import "math"

type Points float64

const (
	Win  Points = 1
	Draw Points = 0.5
	Lose Points = 0
)

const DefaultScale = 400.0

// Expected is the expected score of A against B.
// Ra - player A rating.
// Rb - player B rating.
// scale - rating difference at which A is ten times as likely to win.
func Expected(Ra, Rb, scale float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (Rb-Ra)/scale))
}

// Update returns the new rating of A after a game against B.
// K - learning rate.
// Sa - points: 1 for win; 0.5 for draw; 0 for lose.
func Update(Ra, Rb, K, scale float64, Sa Points) float64 {
	return Ra + K*(float64(Sa)-Expected(Ra, Rb, scale))
}

// Distribution is the expected share of a common outcome for every rating:
// 10^(r_i/scale) / sum_j 10^(r_j/scale). Ratings are shifted by their maximum
// before exponentiation, which leaves the ratios unchanged. A degenerate
// denominator yields the uniform distribution.
func Distribution(ratings []float64, scale float64) []float64 {
	if len(ratings) == 0 {
		return nil
	}
	top := math.Inf(-1)
	for _, r := range ratings {
		if r > top {
			top = r
		}
	}
	weights := make([]float64, len(ratings))
	var sum float64
	for i, r := range ratings {
		weights[i] = math.Pow(10, (r-top)/scale)
		sum += weights[i]
	}
	if !usable(sum) {
		return Uniform(len(ratings))
	}
	for i := range weights {
		weights[i] /= sum
	}
	return weights
}

// Shares normalizes values to fractions of their total, falling back to the
// uniform distribution when the total is not positive.
func Shares(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	if !usable(sum) {
		return Uniform(len(values))
	}
	shares := make([]float64, len(values))
	for i, v := range values {
		shares[i] = v / sum
	}
	return shares
}

func Uniform(n int) []float64 {
	if n <= 0 {
		return nil
	}
	u := make([]float64, n)
	for i := range u {
		u[i] = 1.0 / float64(n)
	}
	return u
}

func usable(sum float64) bool {
	return sum > 0 && !math.IsInf(sum, 0) && !math.IsNaN(sum)
}
