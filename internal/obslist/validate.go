package obslist

// ValidateCardinality checks that every per-observation collection has the
// same length. When it passes, positional access across all collections is
// safe. Any disagreement is fatal for the whole conversion: the caller must
// not write output.
func ValidateCardinality(lengths map[string]int) error {
	distinct := make(map[int]bool)
	for _, n := range lengths {
		distinct[n] = true
	}
	if len(distinct) > 1 {
		return &CardinalityError{Lengths: lengths}
	}
	return nil
}
