// Package polynomial implements evaluation of real polynomials given their
// coefficient sequence, using several independent algorithms: direct
// summation, power accumulation, Horner's nested scheme, and a big-float
// reference backed by an arbitrary-precision kernel.
//
// All evaluators are pure functions of their inputs and safe for concurrent
// use. For a fixed coefficient sequence and evaluation point every evaluator
// agrees within floating-point tolerance; Horner is the numerically preferred
// and fastest method, the others exist as baselines and cross-checks.
package polynomial
