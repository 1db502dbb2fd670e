package depgraph

import "strings"

// CycleError reports a dependency cycle discovered during traversal.
//
// Path holds the walk that exposed the cycle: every identity from the
// traversal start down to the node that was re-entered, with the
// re-entered identity appended once more at the end. When the start node
// itself closes the cycle the path begins and ends with the same
// identity, e.g. [b c a b]; when the cycle is reached through a prefix
// of non-cyclic nodes the prefix is kept, e.g. [d a b c a].
type CycleError struct {
	// Path is the ordered walk that exposed the cycle.
	Path []string
}

// Error renders the cycle path joined with " -> ".
func (e *CycleError) Error() string {
	return ErrCycleDetected.Error() + ": " + strings.Join(e.Path, " -> ")
}

// Is matches ErrCycleDetected, so callers classify with errors.Is and
// recover the structured path with errors.As.
func (e *CycleError) Is(target error) bool {
	return target == ErrCycleDetected
}
