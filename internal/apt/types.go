// Package apt reads observing proposals exported in the APT XML format.
//
// The package exposes two views of a proposal: the ordered list of
// observation nodes (instrument and label per observation) and a flattened
// per-exposure table spanning all observations, keyed by column name.
package apt

// Namespace is the XML namespace used by APT proposal documents.
const Namespace = "http://www.stsci.edu/JWST/APT"

// ObservationNode is one entry in the proposal's observation list.
type ObservationNode struct {
	Instrument string
	Label      string
}

// ExposureTable is the flattened per-exposure view of a proposal. All
// column slices have equal length; row i describes one exposure.
type ExposureTable struct {
	Instrument    []string
	ShortFilter   []string
	LongFilter    []string
	PupilWheel    []string
	TileNumber    []string
	ObservationID []string
}

// Len returns the number of exposure rows.
func (t *ExposureTable) Len() int {
	return len(t.Instrument)
}

// Columns returns the table keyed by column name, one equal-length ordered
// slice per column.
func (t *ExposureTable) Columns() map[string][]string {
	return map[string][]string{
		"Instrument":    t.Instrument,
		"ShortFilter":   t.ShortFilter,
		"LongFilter":    t.LongFilter,
		"PupilWheel":    t.PupilWheel,
		"TileNumber":    t.TileNumber,
		"ObservationID": t.ObservationID,
	}
}

func (t *ExposureTable) appendRow(instrument, short, long, pupil, tile, obsID string) {
	t.Instrument = append(t.Instrument, instrument)
	t.ShortFilter = append(t.ShortFilter, short)
	t.LongFilter = append(t.LongFilter, long)
	t.PupilWheel = append(t.PupilWheel, pupil)
	t.TileNumber = append(t.TileNumber, tile)
	t.ObservationID = append(t.ObservationID, obsID)
}

// Proposal is the parsed form of an APT document.
type Proposal struct {
	Observations []ObservationNode
	Exposures    *ExposureTable
}
