// Package bench implements the benchmark harness: it runs each registered
// evaluator repeatedly over one generated input and reports per-algorithm
// timing statistics and allocation totals. Trial counts can be calibrated to
// the host and persisted in a profile so repeated campaigns are comparable.
package bench
