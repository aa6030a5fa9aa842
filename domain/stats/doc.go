// Package stats is the single home for the descriptive statistics and
// density estimation used across the governance-metrics charts.
//
// Every function is pure: it takes a Sample (or PairedSample) plus explicit
// configuration and returns an immutable result. Callers own caching and
// invocation timing. Quantiles use linear interpolation (the R-7 method)
// everywhere a quantile is needed; nearest-rank estimates are deliberately
// not offered so call sites cannot diverge again.
//
// Indeterminate computations never surface as NaN or Inf in a "valid"
// result. They either return a typed error from domain/core or a sentinel
// documented on the specific function (Pearson's zero-variance 0, the
// skewness/kurtosis constant-sample 0, the bandwidth fallback).
package stats
