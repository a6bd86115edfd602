// Package errs defines the sentinel errors shared across the bstr packages.
//
// All recoverable failures surfaced by the library wrap one of these
// sentinels, so callers can classify errors with errors.Is:
//
//	tokens, err := bstr.SplitArgs(line)
//	if errors.Is(err, errs.ErrUnbalancedQuotes) {
//	    // reject the input line
//	}
package errs

import "errors"

var (
	// ErrAllocationFailure indicates the tracked allocator could not provide
	// memory, typically because a configured byte budget was exceeded and the
	// installed OOM policy chose not to abort.
	ErrAllocationFailure = errors.New("allocation failure")

	// ErrUnbalancedQuotes indicates a quoted argument was still open when the
	// input ended.
	ErrUnbalancedQuotes = errors.New("unbalanced quotes in input")

	// ErrTrailingGarbage indicates a closing quote was immediately followed by
	// a byte that is neither whitespace nor end of input.
	ErrTrailingGarbage = errors.New("closing quote followed by non-space character")

	// ErrEmptySeparator indicates Split was called with a zero-length
	// separator.
	ErrEmptySeparator = errors.New("empty separator")
)
