package obslist

import (
	"strings"

	"github.com/banshee-data/obslist/internal/apt"
)

// Selection holds the supported subset of a proposal's observations. The
// four slices are aligned: entry i describes the same observation in each.
type Selection struct {
	Nodes       []apt.ObservationNode
	Positions   []int // 0-based positions in the original, unfiltered list
	Names       []string
	Instruments []string
}

// Len returns the number of selected observations.
func (s *Selection) Len() int {
	return len(s.Nodes)
}

// SelectObservations keeps the observations whose instrument the converter
// supports, preserving document order. Positions index into the original
// list so observation numbers keep their gaps when unsupported instruments
// are interleaved.
func SelectObservations(nodes []apt.ObservationNode) *Selection {
	sel := &Selection{}
	for i, node := range nodes {
		if !IsSupported(node.Instrument) {
			continue
		}
		sel.Nodes = append(sel.Nodes, node)
		sel.Positions = append(sel.Positions, i)
		sel.Names = append(sel.Names, observationName(node.Label))
		sel.Instruments = append(sel.Instruments, node.Instrument)
	}
	return sel
}

// observationName derives the rendered name from an observation label by
// dropping a trailing parenthetical, e.g. "OTE-01 (Commissioning)" becomes
// "OTE-01". Labels without a parenthetical pass through unchanged.
func observationName(label string) string {
	open := strings.Index(label, " (")
	if open >= 0 && strings.Contains(label, ")") {
		return label[:open]
	}
	return label
}
