// Package replicate: sentinel error set.
package replicate

import "errors"

var (
	// ErrNilModel indicates a nil *leontief.Model was passed to Run.
	ErrNilModel = errors.New("replicate: model is nil")

	// ErrNoShockSizes indicates an empty shock-size list.
	ErrNoShockSizes = errors.New("replicate: no shock sizes configured")

	// ErrReplications indicates Replications < 1.
	ErrReplications = errors.New("replicate: replications must be >= 1")
)
