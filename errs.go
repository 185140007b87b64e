// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package updates

import "fmt"

type constError string

func (e constError) Error() string {
	return string(e)
}

const ErrMissingField = constError("line has fewer than two fields")
const ErrNotNumeric = constError("field is not a number")
const ErrSeriesCount = constError("series count does not match series labels")
const ErrSeriesLength = constError("series has fewer points than groups")
const ErrNoSamples = constError("no samples")

// ParseError records the location of a malformed line in a statistics or
// sample file.
type ParseError struct {
	File string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
