// Package symbolic provides the arbitrary-precision polynomial backend used
// by the reference evaluator as an independent correctness oracle. The
// backend is consumed through the Backend interface so it can be stubbed in
// tests or omitted entirely when unavailable.
package symbolic
