package resolve

import (
	"fmt"
	"strings"

	"github.com/harkoussomar/enhanced-project-creator/internal/catalog"
)

// IncompatibleSelectionError reports two chosen options that cannot coexist.
type IncompatibleSelectionError struct {
	Option string
	Peer   string
}

func (e *IncompatibleSelectionError) Error() string {
	return fmt.Sprintf("incompatible selection: %q cannot be combined with %q", e.Option, e.Peer)
}

// AmbiguousRequirementError reports an unmet requirement with more than one
// legal value, which the resolver refuses to guess.
type AmbiguousRequirementError struct {
	Option   string
	Category catalog.Category
	Choices  []string
}

func (e *AmbiguousRequirementError) Error() string {
	return fmt.Sprintf("%q requires a %s but any of [%s] would satisfy it; choose one explicitly",
		e.Option, e.Category, strings.Join(e.Choices, ", "))
}

// ResolutionCycleError reports a requirement chain that never converged.
// This only happens with a mis-authored catalog; the iteration cap keeps it
// from looping forever.
type ResolutionCycleError struct {
	Iterations int
}

func (e *ResolutionCycleError) Error() string {
	return fmt.Sprintf("selection did not resolve after %d iterations; the option catalog likely contains a requirement cycle", e.Iterations)
}
