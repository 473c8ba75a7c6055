// Package orchestration coordinates the concurrent execution of polynomial
// evaluators and the cross-checking of their results. It owns the concurrency
// model of a comparison run and the agreement analysis, while presentation
// and error handling are injected through small interfaces.
package orchestration
