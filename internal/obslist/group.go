package obslist

import "fmt"

// FilterGroup holds, for one observation id, the filter values extracted
// from every exposure row carrying that id, in row order. Channels has one
// slice per filter channel (SW then LW for the dichroic family, a single
// slice for the single-channel family) and every channel slice has one
// entry per contributing row.
type FilterGroup struct {
	ID       string
	Channels [][]string
}

// GroupFilters groups the given filter columns by observation id. Ids are
// ordered by first appearance in the table so repeated runs produce
// identical output. All columns must have the same length as ids (the
// exposure table guarantees this).
//
// A channel whose values are not uniform within one observation id is a
// notable condition but not an error: the full heterogeneous sequence is
// kept and a notice is returned for each affected observation. Tile
// numbers are not used to disambiguate conflicting filters.
func GroupFilters(ids []string, channels ...[]string) ([]FilterGroup, []string) {
	var order []string
	index := make(map[string]int)
	for _, id := range ids {
		if _, seen := index[id]; !seen {
			index[id] = len(order)
			order = append(order, id)
		}
	}

	groups := make([]FilterGroup, len(order))
	for i, id := range order {
		groups[i] = FilterGroup{ID: id, Channels: make([][]string, len(channels))}
	}
	for row, id := range ids {
		g := &groups[index[id]]
		for c, channel := range channels {
			g.Channels[c] = append(g.Channels[c], channel[row])
		}
	}

	var notices []string
	for _, g := range groups {
		for _, values := range g.Channels {
			if !uniform(values) {
				notices = append(notices,
					fmt.Sprintf("multiple filters in observation %s", g.ID))
				break
			}
		}
	}

	return groups, notices
}

func uniform(values []string) bool {
	if len(values) == 0 {
		return true
	}
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}
