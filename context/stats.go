package context

// Stats is a sufficient-statistics accumulator for all K components of a
// library: per component, a prior scalar and a W x A emission accumulator,
// held as arrays indexed by component. The EM driver keeps one global Stats
// across scans and builds one per mini-batch in the E-step, rather than
// holding a back-pointer into the library.
type Stats struct {
	Prior      []float64     // len K
	Emissions  [][][]float64 // K x W x A
}

// NewStats allocates a zeroed statistics block for k components of the
// given width and alphabet size.
func NewStats(k, width, alphabetSize int) *Stats {
	emissions := make([][][]float64, k)
	for c := range emissions {
		rows := make([][]float64, width)
		for j := range rows {
			rows[j] = make([]float64, alphabetSize)
		}
		emissions[c] = rows
	}
	return &Stats{Prior: make([]float64, k), Emissions: emissions}
}

// Reset zeroes the accumulator in place, for reuse at the start of a block.
func (s *Stats) Reset() {
	for k := range s.Prior {
		s.Prior[k] = 0
		for j := range s.Emissions[k] {
			row := s.Emissions[k][j]
			for a := range row {
				row[a] = 0
			}
		}
	}
}

// AddFrom adds other into s elementwise, in place.
func (s *Stats) AddFrom(other *Stats) {
	for k := range s.Prior {
		s.Prior[k] += other.Prior[k]
		for j := range s.Emissions[k] {
			for a := range s.Emissions[k][j] {
				s.Emissions[k][j][a] += other.Emissions[k][j][a]
			}
		}
	}
}

// Blend merges block into s in place as S ← η·S + block, the EM driver's
// merge step. η is typically 1 in batch mode and < 1 for
// online mini-batch training.
func (s *Stats) Blend(block *Stats, eta float64) {
	for k := range s.Prior {
		s.Prior[k] = eta*s.Prior[k] + block.Prior[k]
		for j := range s.Emissions[k] {
			for a := range s.Emissions[k][j] {
				s.Emissions[k][j][a] = eta*s.Emissions[k][j][a] + block.Emissions[k][j][a]
			}
		}
	}
}
