package kernel

import "math"

// ScoreCountProfile computes the positional-weighted log2 score of a
// component/state's column parameters against a count- or frequency-
// profile subject, at alignment offset j:
//
//	score(j) = Σ_{i∈overlap} w[i-j+c] · Σ_a subject[i][a] · component[i-j+c][a]
//
// where overlap = {max(0,j-c) .. min(subjectLen-1,j+c)} and c = Center(W).
//
// If logSpace is true, component holds log2-space values and each
// weighted column contribution is accumulated directly in log space (the
// caller's chosen approximation for scoring against a log-converted
// library). If logSpace is false, component holds linear-space values; the
// weighted contributions are accumulated linearly and a single log2 is
// taken at the end. Either way the returned value is a log2 score.
//
// subject must have at least subjectLen rows; component must have exactly
// len(weights) rows. Weight positions landing outside [0,subjectLen)
// contribute nothing, so partial overlap at subject boundaries is
// well-defined and finite.
func ScoreCountProfile(
	weights []float64,
	subject [][]float64,
	subjectLen int,
	component [][]float64,
	j int,
	logSpace bool,
) float64 {
	c := Center(len(weights))
	lo := j - c
	if lo < 0 {
		lo = 0
	}
	hi := j + c
	if hi > subjectLen-1 {
		hi = subjectLen - 1
	}

	var linear, log float64
	for i := lo; i <= hi; i++ {
		wi := weights[i-j+c]
		row := component[i-j+c]
		var dot float64
		for a, v := range subject[i] {
			dot += v * row[a]
		}
		if logSpace {
			log += wi * dot
		} else {
			linear += wi * dot
		}
	}
	if logSpace {
		return log
	}
	if linear <= 0 {
		return math.Inf(-1)
	}
	return math.Log2(linear)
}

// ScoreIndices computes the positional-weighted score of a component/state
// column parameters against a concrete window of alphabet indices, at
// alignment offset j:
//
//	score(j) = Σ_{i∈overlap, x[i]≠anyIndex} w[i-j+c] · component[i-j+c][x[i]]
//
// A column whose subject letter is anyIndex (the alphabet's "any"/wildcard
// sentinel) contributes zero. This shape is used both for scoring a
// concrete sequence against a log-space component and, with an externally
// added bias, for CRF state scoring.
func ScoreIndices(
	weights []float64,
	x []int,
	anyIndex int,
	component [][]float64,
	j int,
) float64 {
	c := Center(len(weights))
	lo := j - c
	if lo < 0 {
		lo = 0
	}
	hi := j + c
	if hi > len(x)-1 {
		hi = len(x) - 1
	}

	var score float64
	for i := lo; i <= hi; i++ {
		if x[i] == anyIndex {
			continue
		}
		wi := weights[i-j+c]
		score += wi * component[i-j+c][x[i]]
	}
	return score
}
