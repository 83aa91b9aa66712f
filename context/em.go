package context

import (
	"fmt"
	"math"
	"sync"

	"github.com/soedinglab/csblast/kernel"
	"github.com/soedinglab/csblast/profile"
	"github.com/soedinglab/csblast/telemetry"
)

// Config holds the EM driver's hyperparameters.
type Config struct {
	Weights             kernel.WeightConfig
	MaxScans            int
	MinScans            int
	LogLikelihoodChange float64 // relative convergence threshold
	Blending            float64 // η, in (0, 1]
	NumBlocks           int     // B
	Workers             int     // parallel worker count for the E-step
}

// DefaultConfig returns documented defaults; NumBlocks and Workers are left
// at 0, meaning "derive from corpus size" and "use a single worker"
// respectively, resolved by Validate.
func DefaultConfig() Config {
	return Config{
		Weights:             kernel.DefaultWeightConfig(),
		MaxScans:            100,
		MinScans:            1,
		LogLikelihoodChange: 1e-4,
		Blending:            1.0,
	}
}

// Validate checks the configuration and fills in size-derived defaults.
func (c *Config) Validate(corpusSize int) error {
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if c.Blending <= 0 || c.Blending > 1 {
		return fmt.Errorf("%w: blending factor must be in (0, 1]", ErrShapeMismatch)
	}
	if c.MaxScans <= 0 {
		return fmt.Errorf("%w: max_scans must be positive", ErrShapeMismatch)
	}
	if c.MinScans < 0 || c.MinScans > c.MaxScans {
		return fmt.Errorf("%w: min_scans out of range", ErrShapeMismatch)
	}
	if c.NumBlocks <= 0 {
		// A function of corpus size: one block per ~500 training pairs,
		// never fewer than 1.
		c.NumBlocks = corpusSize/500 + 1
	}
	if c.NumBlocks > corpusSize {
		c.NumBlocks = corpusSize
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	return nil
}

// Driver runs online mini-batch EM over a context library.
type Driver struct {
	Library    *Library
	Config     Config
	Background []float64 // f(a), len A
	AnyIndex   int

	stats *Stats // global sufficient statistics, persists across scans
}

// NewDriver builds an EM driver. The library's width and alphabet size
// must already match Config.Weights / len(background).
func NewDriver(lib *Library, cfg Config, background []float64) (*Driver, error) {
	if len(background) != lib.AlphabetSize() {
		return nil, fmt.Errorf("%w: background length %d, alphabet size %d",
			ErrShapeMismatch, len(background), lib.AlphabetSize())
	}
	return &Driver{
		Library:    lib,
		Config:     cfg,
		Background: background,
		AnyIndex:   lib.AlphabetSize(),
		stats:      NewStats(lib.NumComponents(), lib.Width, lib.AlphabetSize()),
	}, nil
}

// Result summarizes a training run.
type Result struct {
	Scans                  int
	Converged              bool
	LogLikelihoodPerColumn []float64 // one entry per completed scan
}

// Run executes the per-scan EM loop over pairs until convergence or
// max_scans is reached.
func (d *Driver) Run(pairs []*profile.TrainingPair, table *telemetry.Table) (*Result, error) {
	if err := d.Config.Validate(len(pairs)); err != nil {
		return nil, err
	}
	weights, err := kernel.PositionalWeights(d.Library.Width, d.Config.Weights)
	if err != nil {
		return nil, err
	}
	var sumWeights float64
	for _, w := range weights {
		sumWeights += w
	}

	blocks := partitionContiguous(len(pairs), d.Config.NumBlocks)
	result := &Result{}
	prevLL := math.Inf(-1)

	for scan := 0; scan < d.Config.MaxScans; scan++ {
		var scanLL float64
		stop := false
		for b, block := range blocks {
			blockPairs := pairs[block.start:block.end]
			blockStats, blockLL, err := eStep(d.Library, blockPairs, weights, d.Background, d.AnyIndex, d.Config.Workers)
			if err != nil {
				return nil, err
			}
			scanLL += blockLL
			d.stats.Blend(blockStats, d.Config.Blending)
			mStep(d.Library, d.stats)

			if table != nil {
				rec := telemetry.Record{
					Scan:          scan,
					Block:         b,
					NumBlocks:     len(blocks),
					PairsSeen:     len(blockPairs),
					LogLikelihood: blockLL,
				}
				if table.Advance(len(blockPairs), rec) {
					stop = true
				}
			}
		}

		llPerColumn := scanLL / sumWeights
		result.Scans = scan + 1
		result.LogLikelihoodPerColumn = append(result.LogLikelihoodPerColumn, llPerColumn)

		if scan+1 >= d.Config.MinScans {
			relChange := math.Abs(llPerColumn-prevLL) / math.Max(math.Abs(prevLL), 1e-12)
			if !math.IsInf(prevLL, -1) && relChange < d.Config.LogLikelihoodChange {
				result.Converged = true
				return result, nil
			}
		}
		prevLL = llPerColumn
		if stop {
			return result, nil
		}
	}
	return result, nil
}

type blockRange struct{ start, end int }

// partitionContiguous splits [0,n) into numBlocks contiguous,
// near-equal-sized ranges.
func partitionContiguous(n, numBlocks int) []blockRange {
	if numBlocks > n {
		numBlocks = n
	}
	if numBlocks <= 0 {
		numBlocks = 1
	}
	base := n / numBlocks
	rem := n % numBlocks
	ranges := make([]blockRange, 0, numBlocks)
	start := 0
	for i := 0; i < numBlocks; i++ {
		size := base
		if i < rem {
			size++
		}
		ranges = append(ranges, blockRange{start, start + size})
		start += size
	}
	return ranges
}

// eStep runs the E-step over a block of training pairs with a static
// contiguous partition across d.Config.Workers goroutines. Each worker
// produces a partial Stats and log-likelihood sum in its own pair-index
// order; partials are then combined in worker-id order, so two runs over
// the same pairs and worker count always blend identical partial sums.
func eStep(
	lib *Library,
	pairs []*profile.TrainingPair,
	weights []float64,
	background []float64,
	anyIndex int,
	workers int,
) (*Stats, float64, error) {
	k, w, a := lib.NumComponents(), lib.Width, lib.AlphabetSize()
	ranges := partitionContiguous(len(pairs), workers)

	partialStats := make([]*Stats, len(ranges))
	partialLL := make([]float64, len(ranges))
	errs := make([]error, len(ranges))

	var wg sync.WaitGroup
	for wi, r := range ranges {
		wg.Add(1)
		go func(wi int, r blockRange) {
			defer wg.Done()
			local := NewStats(k, w, a)
			var ll float64
			for _, pair := range pairs[r.start:r.end] {
				posterior, err := Posterior(lib, weights, pair.X, anyIndex)
				if err != nil {
					errs[wi] = err
					return
				}
				for kk, p := range posterior {
					local.Prior[kk] += p
					for j, idx := range pair.X {
						if idx == anyIndex {
							continue
						}
						local.Emissions[kk][j][idx] += p
					}
				}
				mixed := MixedPseudocount(lib, posterior)
				for aIdx, y := range pair.Y {
					if y == 0 || mixed[aIdx] <= 0 {
						continue
					}
					ll += y * (math.Log2(mixed[aIdx]) - math.Log2(background[aIdx]))
				}
			}
			partialStats[wi] = local
			partialLL[wi] = ll
		}(wi, r)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, 0, err
		}
	}

	global := NewStats(k, w, a)
	var totalLL float64
	for wi := range ranges {
		global.AddFrom(partialStats[wi])
		totalLL += partialLL[wi]
	}
	return global, totalLL, nil
}

// mStep updates π_k and, for every component with nonzero aggregated
// evidence, its profile. Components with zero evidence are
// left unchanged rather than divided by zero.
func mStep(lib *Library, stats *Stats) {
	var priorTotal float64
	for _, p := range stats.Prior {
		priorTotal += p
	}
	if priorTotal == 0 {
		return
	}
	for k, c := range lib.Components {
		c.Prior = stats.Prior[k] / priorTotal

		for j, row := range stats.Emissions[k] {
			var colTotal float64
			for _, v := range row {
				colTotal += v
			}
			if colTotal == 0 {
				continue // left unchanged: no evidence for this column
			}
			newRow := c.Profile[j]
			for a, v := range row {
				freq := v / colTotal
				if freq <= 0 {
					newRow[a] = math.Inf(-1)
				} else {
					newRow[a] = math.Log2(freq)
				}
			}
		}
		c.LogSpace = true
	}
}
