// Package pipeline streams sensor reports through a Solver across worker
// goroutines and calls a visit callback with each Result.
//
// The only contract to implement is Solver (Solve).
// This keeps the pipeline swappable and testable.
package pipeline
