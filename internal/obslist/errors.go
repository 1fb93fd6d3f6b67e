package obslist

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnsupportedConfiguration reports a proposal whose exposure table spans
// more than one instrument (mixed or parallel proposals). These are out of
// scope and the conversion aborts before any grouping.
var ErrUnsupportedConfiguration = errors.New("unsupported proposal configuration")

// unsupportedInstrumentsError wraps ErrUnsupportedConfiguration with the
// instrument codes that were found.
func unsupportedInstrumentsError(instruments []string) error {
	return fmt.Errorf("%w: %d distinct instruments in one proposal (%s)",
		ErrUnsupportedConfiguration, len(instruments), strings.Join(instruments, ", "))
}

// CardinalityError reports per-observation collections that disagree in
// length. The conversion aborts with no output written.
type CardinalityError struct {
	// Lengths maps each collection name to its observed length.
	Lengths map[string]int
}

func (e *CardinalityError) Error() string {
	names := make([]string, 0, len(e.Lengths))
	for name := range e.Lengths {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%d", name, e.Lengths[name]))
	}
	return "per-observation collections disagree in length: " + strings.Join(parts, " ")
}
