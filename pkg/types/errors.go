// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Error kinds for the pipeline. Every failure is fatal to the run; stages
// wrap their errors onto one of these sentinels so the CLI can map them to
// distinct exit codes with errors.Is.
var (
	// ErrConfiguration marks a missing or invalid runtime setting, detected
	// before any network call is made.
	ErrConfiguration = errors.New("configuration error")

	// ErrSearchAPI marks a failed or unparsable response from the
	// patent-search endpoint.
	ErrSearchAPI = errors.New("patent search API error")

	// ErrInference marks a failed call to, or an unusable completion from,
	// the model-inference endpoint.
	ErrInference = errors.New("inference error")
)
