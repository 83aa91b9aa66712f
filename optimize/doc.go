// Package optimize is the optimizer façade: it consumes the stable
// value+gradient oracle contract exposed by package crf ("evaluate at θ
// over block b of B") and drives it with either a batched L-BFGS method
// or an HMC-style leapfrog sampler over corpus blocks. Only the oracle
// contract is fixed; the two concrete consumers here use
// gonum.org/v1/gonum/optimize (L-BFGS) and a hand-written leapfrog
// integrator built on gonum/floats and gonum/stat/distuv for momentum
// resampling.
package optimize
