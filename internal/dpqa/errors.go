package dpqa

import "fmt"

// Sentinel errors for the cases that are Go errors rather than a Result
// value: invariant violations at construction, and internal contract
// violations after the solver reports sat. Infeasibility and solver
// "unknown" are not errors; they are the Failed variant of Result,
// returned by Solve with no error.
var (
	ErrInvalidQubit         = fmt.Errorf("dpqa: qubit index must be non-negative")
	ErrInternalModelMissing = fmt.Errorf("dpqa: solver reported sat but a variable has no concrete value")
)
