package crf

// Gradient holds a per-state (bias, context-weight, pseudocount-weight)
// accumulator of the same shape as a CRF's parameters, used for both the
// log-likelihood gradient g_L and the prior gradient g_Π.
type Gradient struct {
	Bias              []float64     // K
	Context           [][][]float64 // K x W x A
	PseudocountWeight [][]float64   // K x A
}

// NewGradient allocates a zeroed gradient accumulator.
func NewGradient(k, width, alphabetSize int) *Gradient {
	context := make([][][]float64, k)
	pc := make([][]float64, k)
	for i := 0; i < k; i++ {
		rows := make([][]float64, width)
		for j := range rows {
			rows[j] = make([]float64, alphabetSize)
		}
		context[i] = rows
		pc[i] = make([]float64, alphabetSize)
	}
	return &Gradient{Bias: make([]float64, k), Context: context, PseudocountWeight: pc}
}

// AddFrom adds other into g elementwise, in place.
func (g *Gradient) AddFrom(other *Gradient) {
	for k := range g.Bias {
		g.Bias[k] += other.Bias[k]
		for j := range g.Context[k] {
			for a := range g.Context[k][j] {
				g.Context[k][j][a] += other.Context[k][j][a]
			}
		}
		for a := range g.PseudocountWeight[k] {
			g.PseudocountWeight[k][a] += other.PseudocountWeight[k][a]
		}
	}
}

// Scale multiplies every entry of g by f, in place.
func (g *Gradient) Scale(f float64) {
	for k := range g.Bias {
		g.Bias[k] *= f
		for j := range g.Context[k] {
			for a := range g.Context[k][j] {
				g.Context[k][j][a] *= f
			}
		}
		for a := range g.PseudocountWeight[k] {
			g.PseudocountWeight[k][a] *= f
		}
	}
}

// Flatten lays the gradient out in the same [b_k, c_k row-major, q_k]
// layout FlattenParams uses for CRF parameter vectors.
func (g *Gradient) Flatten() []float64 {
	return FlattenParams(g.Bias, g.Context, g.PseudocountWeight)
}
