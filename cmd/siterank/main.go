// siterank is the main CLI: analyze, sensitivity, frontier, criteria, pairs.
//
// Usage:
//
//	siterank criteria                        # List the selectable criteria
//	siterank pairs <criterion>...            # Pairwise comparison schedule
//	siterank analyze <request-file>...       # Rank alternatives, write reports
//	siterank sensitivity <request-file>      # Weight perturbation sweep
//	siterank frontier <request-file>         # Pareto non-dominated set
package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for the different failure modes.
const (
	ExitSuccess = 0 // Analysis completed and every request was valid
	ExitInvalid = 1 // A request failed validation; its report was still produced
	ExitError   = 2 // Configuration or runtime error
)

// InvalidRequestError indicates an analysis ran to completion but the
// request failed validation. The report envelope carries the collected
// validation messages.
type InvalidRequestError struct {
	Path string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("request %s failed validation", e.Path)
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var invalidErr *InvalidRequestError
		if errors.As(err, &invalidErr) {
			os.Exit(ExitInvalid)
		}
		os.Exit(ExitError)
	}
}
