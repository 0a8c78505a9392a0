package argsum_api

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// Returned when neither report files nor a fofn were supplied
	ErrNoInput = errors.New("no input report files supplied. Cannot continue")

	// Returned when no record of a gene carries both an assembled length
	// and a percent identity, so no summary code can be derived
	ErrNoIdentity = errors.New("no record carries a percent identity for its longest assembly")
)

// A FormatError describes a malformed line in a report file
type FormatError struct {
	// The path of the offending report file
	File string

	// The 1-based line number of the offending line
	Line int

	// What was wrong with the line
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: line %d: %s", e.File, e.Line, e.Reason)
}

// An InsufficientDataError is returned when clustering is requested on a
// summary with too few samples or without any informative gene
type InsufficientDataError struct {
	// Why the distance matrix cannot be calculated
	Reason string
}

func (e *InsufficientDataError) Error() string {
	return "cannot calculate the distance matrix to make the tree: " + e.Reason
}

// An ExternalToolError reports a failed invocation of an external program
type ExternalToolError struct {
	// The full command line that failed
	Command string

	// The underlying execution error
	Err error
}

func (e *ExternalToolError) Error() string {
	return fmt.Sprintf("external command %q failed: %v", e.Command, e.Err)
}

func (e *ExternalToolError) Unwrap() error {
	return e.Err
}
