package obslist

import (
	"bytes"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/banshee-data/obslist/internal/apt"
	"github.com/banshee-data/obslist/internal/fsutil"
)

// Converter runs the full proposal-to-observation-list pipeline. One
// invocation is independent and synchronous; identical inputs produce
// byte-identical output.
type Converter struct {
	FS  fsutil.FileSystem
	Log *zap.SugaredLogger
}

// Request describes one conversion. Catalogs feeds the single-channel
// family (one entry broadcasts to all selected observations); SWCatalogs
// and LWCatalogs feed the dichroic family, aligned one-to-one with the
// selected observations.
type Request struct {
	XMLPath    string
	OutputPath string

	Catalogs   []string
	SWCatalogs []string
	LWCatalogs []string

	Defaults Defaults
}

// Result reports a successful conversion.
type Result struct {
	ObservationsWritten int
	Notices             []string
}

// Convert reads the proposal, selects supported observations, groups the
// exposure table by observation id, validates cardinality and writes the
// rendered observation list. Nothing is written on any error: rendering
// happens entirely in memory and the single write is the last step.
func (c *Converter) Convert(req Request) (*Result, error) {
	data, err := c.FS.ReadFile(req.XMLPath)
	if err != nil {
		return nil, fmt.Errorf("read proposal: %w", err)
	}
	prop, err := apt.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	c.logTableSummary(req.XMLPath, prop.Exposures)

	sel := SelectObservations(prop.Observations)

	table := prop.Exposures
	instruments := distinct(table.Instrument)
	if len(instruments) == 0 {
		return nil, fmt.Errorf("proposal %s contains no exposures", req.XMLPath)
	}
	if len(instruments) > 1 {
		// Several instruments within one proposal, e.g. parallels.
		return nil, unsupportedInstrumentsError(instruments)
	}
	family, ok := FamilyOf(instruments[0])
	if !ok {
		return nil, fmt.Errorf("%w: instrument %s", ErrUnsupportedConfiguration, instruments[0])
	}

	var (
		groups  []FilterGroup
		notices []string
		text    string
	)
	switch family {
	case Dichroic:
		groups, notices = GroupFilters(table.ObservationID, table.ShortFilter, table.LongFilter)
		c.logNotices(notices)

		if err := ValidateCardinality(map[string]int{
			"observations":  sel.Len(),
			"positions":     len(sel.Positions),
			"names":         len(sel.Names),
			"filter_groups": len(groups),
			"sw_catalogs":   len(req.SWCatalogs),
			"lw_catalogs":   len(req.LWCatalogs),
		}); err != nil {
			return nil, err
		}
		text = RenderDichroic(sel, groups, req.SWCatalogs, req.LWCatalogs, req.Defaults)

	case SingleChannel:
		groups, notices = GroupFilters(table.ObservationID, table.PupilWheel)
		c.logNotices(notices)

		// A lone catalog path serves every selected observation.
		catalogs := req.Catalogs
		if len(catalogs) == 1 && sel.Len() > 1 {
			broadcast := make([]string, sel.Len())
			for i := range broadcast {
				broadcast[i] = catalogs[0]
			}
			catalogs = broadcast
		}

		if err := ValidateCardinality(map[string]int{
			"observations":  sel.Len(),
			"positions":     len(sel.Positions),
			"names":         len(sel.Names),
			"filter_groups": len(groups),
			"catalogs":      len(catalogs),
		}); err != nil {
			return nil, err
		}
		text = RenderSingleChannel(sel, groups, catalogs, req.Defaults)
	}

	if err := c.FS.WriteFile(req.OutputPath, []byte(text), 0644); err != nil {
		return nil, fmt.Errorf("write observation list: %w", err)
	}
	c.Log.Infof("wrote %d observations to %s", sel.Len(), req.OutputPath)

	return &Result{
		ObservationsWritten: sel.Len(),
		Notices:             notices,
	}, nil
}

func (c *Converter) logTableSummary(xmlPath string, table *apt.ExposureTable) {
	cols := table.Columns()
	names := make([]string, 0, len(cols))
	for name := range cols {
		names = append(names, name)
	}
	sort.Strings(names)

	c.Log.Debugf("exposure table extracted from %s:", xmlPath)
	for _, name := range names {
		c.Log.Debugf("%-25s: number of elements is %5d", name, len(cols[name]))
	}
}

func (c *Converter) logNotices(notices []string) {
	for _, notice := range notices {
		c.Log.Warnf("note: %s", notice)
	}
}

// distinct returns the unique values of a column in first-appearance order.
func distinct(values []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
