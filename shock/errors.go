// Package shock: sentinel error set.
// Run validates before it computes: all errors below abort the experiment
// with no partial Result and no RNG consumption for sampling.
package shock

import "errors"

var (
	// ErrNilModel indicates a nil *leontief.Model was passed to Run.
	ErrNilModel = errors.New("shock: model is nil")

	// ErrUnknownType indicates a shock type other than Demand or Supply.
	ErrUnknownType = errors.New("shock: unknown shock type")

	// ErrSampleSize indicates SampleSize outside [1, N].
	ErrSampleSize = errors.New("shock: sample size out of range")

	// ErrShockSize indicates Size outside [0, 1].
	ErrShockSize = errors.New("shock: shock size out of range")
)
