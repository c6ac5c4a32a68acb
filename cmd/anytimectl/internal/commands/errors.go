package commands

import (
	"errors"

	"github.com/nibzard/anytime/spec"
)

// exitCodeFor maps a core error to a process exit code: 0 success, 2
// ConfigError/schema error, 3 AssumptionViolationError escaping the
// stream. Any other error (I/O, parse failures) also maps to 2, since it
// is a precondition failure rather than a data-dependent assumption
// violation.
func exitCodeFor(err error) int {
	var ave *spec.AssumptionViolationError
	if errors.As(err, &ave) {
		return exitAssumptionError
	}
	return exitConfigError
}
