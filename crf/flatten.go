package crf

// FlattenParams lays out a per-state (bias, context-weight, pseudocount-
// weight) triple into a single flat vector of length K*(1+W*A+A), ordered
// per state as [b_k, c_k row-major, q_k]. The same layout is used for both a CRF's parameter vector and
// its gradient.
func FlattenParams(bias []float64, context [][][]float64, pc [][]float64) []float64 {
	k := len(bias)
	if k == 0 {
		return nil
	}
	w := len(context[0])
	a := len(pc[0])
	out := make([]float64, 0, k*(1+w*a+a))
	for i := 0; i < k; i++ {
		out = append(out, bias[i])
		for _, row := range context[i] {
			out = append(out, row...)
		}
		out = append(out, pc[i]...)
	}
	return out
}

// UnflattenParams is the inverse of FlattenParams, splitting a flat vector
// back into per-state bias, context-weight, and pseudocount-weight slices.
func UnflattenParams(flat []float64, k, width, alphabetSize int) (bias []float64, context [][][]float64, pc [][]float64) {
	bias = make([]float64, k)
	context = make([][][]float64, k)
	pc = make([][]float64, k)
	stride := 1 + width*alphabetSize + alphabetSize
	for i := 0; i < k; i++ {
		base := i * stride
		bias[i] = flat[base]
		rows := make([][]float64, width)
		for j := 0; j < width; j++ {
			start := base + 1 + j*alphabetSize
			row := make([]float64, alphabetSize)
			copy(row, flat[start:start+alphabetSize])
			rows[j] = row
		}
		context[i] = rows
		pcStart := base + 1 + width*alphabetSize
		pcRow := make([]float64, alphabetSize)
		copy(pcRow, flat[pcStart:pcStart+alphabetSize])
		pc[i] = pcRow
	}
	return bias, context, pc
}

// Pack flattens a CRF's current parameters into a single vector, in the
// layout FlattenParams documents.
func Pack(c *CRF) []float64 {
	bias := make([]float64, len(c.States))
	context := make([][][]float64, len(c.States))
	pc := make([][]float64, len(c.States))
	for i, s := range c.States {
		bias[i] = s.Bias
		context[i] = s.ContextWeights
		pc[i] = s.PseudocountWeights
	}
	return FlattenParams(bias, context, pc)
}

// Unpack rebuilds a CRF of the given shape from a flat parameter vector.
func Unpack(flat []float64, width, alphabetSize, k int) (*CRF, error) {
	bias, context, pc := UnflattenParams(flat, k, width, alphabetSize)
	states := make([]*State, k)
	for i := range states {
		states[i] = &State{Bias: bias[i], ContextWeights: context[i], PseudocountWeights: pc[i]}
	}
	return NewCRF(width, states)
}
