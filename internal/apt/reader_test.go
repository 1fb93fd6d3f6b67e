package apt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nircamProposal = `<?xml version="1.0" encoding="UTF-8"?>
<JwstProposal xmlns="http://www.stsci.edu/JWST/APT"
              xmlns:nci="http://www.stsci.edu/JWST/APT/Template/NircamImaging">
  <DataRequests>
    <ObservationGroup>
      <Observation>
        <Number>1</Number>
        <Label>OTE-01 (Commissioning)</Label>
        <Instrument>NIRCAM</Instrument>
        <Template>
          <nci:NircamImaging>
            <nci:Filters>
              <nci:FilterConfig>
                <nci:ShortFilter>F070W</nci:ShortFilter>
                <nci:LongFilter>F277W</nci:LongFilter>
              </nci:FilterConfig>
              <nci:FilterConfig>
                <nci:ShortFilter>F150W</nci:ShortFilter>
                <nci:LongFilter>F444W</nci:LongFilter>
                <nci:TileNumber>2</nci:TileNumber>
              </nci:FilterConfig>
            </nci:Filters>
          </nci:NircamImaging>
        </Template>
      </Observation>
      <Observation>
        <Number>2</Number>
        <Label>Deep Field</Label>
        <Instrument>NIRCAM</Instrument>
        <Template>
          <nci:NircamImaging>
            <nci:Filters>
              <nci:FilterConfig>
                <nci:ShortFilter>F090W</nci:ShortFilter>
                <nci:LongFilter>F356W</nci:LongFilter>
              </nci:FilterConfig>
            </nci:Filters>
          </nci:NircamImaging>
        </Template>
      </Observation>
    </ObservationGroup>
  </DataRequests>
</JwstProposal>`

func TestParse_NircamProposal(t *testing.T) {
	prop, err := Parse(strings.NewReader(nircamProposal))
	require.NoError(t, err)

	require.Len(t, prop.Observations, 2)
	assert.Equal(t, ObservationNode{Instrument: "NIRCAM", Label: "OTE-01 (Commissioning)"}, prop.Observations[0])
	assert.Equal(t, ObservationNode{Instrument: "NIRCAM", Label: "Deep Field"}, prop.Observations[1])

	table := prop.Exposures
	require.Equal(t, 3, table.Len())
	assert.Equal(t, []string{"NIRCAM", "NIRCAM", "NIRCAM"}, table.Instrument)
	assert.Equal(t, []string{"F070W", "F150W", "F090W"}, table.ShortFilter)
	assert.Equal(t, []string{"F277W", "F444W", "F356W"}, table.LongFilter)
	assert.Equal(t, []string{"", "", ""}, table.PupilWheel)
	assert.Equal(t, []string{"1", "2", "1"}, table.TileNumber)
	assert.Equal(t, []string{"1", "1", "2"}, table.ObservationID)
}

func TestParse_NirissPupilWheel(t *testing.T) {
	doc := `<?xml version="1.0"?>
<JwstProposal xmlns="http://www.stsci.edu/JWST/APT"
              xmlns:nis="http://www.stsci.edu/JWST/APT/Template/NirissImaging">
  <DataRequests>
    <Observation>
      <Number>4</Number>
      <Label>Focus Sweep</Label>
      <Instrument>NIRISS</Instrument>
      <Template>
        <nis:NirissImaging>
          <nis:FilterConfig>
            <nis:PupilWheel>F090W</nis:PupilWheel>
          </nis:FilterConfig>
        </nis:NirissImaging>
      </Template>
    </Observation>
  </DataRequests>
</JwstProposal>`

	prop, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	require.Equal(t, 1, prop.Exposures.Len())
	assert.Equal(t, []string{"F090W"}, prop.Exposures.PupilWheel)
	assert.Equal(t, []string{""}, prop.Exposures.ShortFilter)
	assert.Equal(t, []string{"4"}, prop.Exposures.ObservationID)
}

func TestParse_ObservationWithoutNumberGetsOrdinalID(t *testing.T) {
	doc := `<?xml version="1.0"?>
<JwstProposal xmlns="http://www.stsci.edu/JWST/APT">
  <DataRequests>
    <Observation>
      <Label>First</Label>
      <Instrument>FGS</Instrument>
      <FilterConfig><PupilWheel>F110W</PupilWheel></FilterConfig>
    </Observation>
    <Observation>
      <Label>Second</Label>
      <Instrument>FGS</Instrument>
      <FilterConfig><PupilWheel>F110W</PupilWheel></FilterConfig>
    </Observation>
  </DataRequests>
</JwstProposal>`

	prop, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, prop.Exposures.ObservationID)
}

func TestParse_IgnoresObservationsOutsideDataRequests(t *testing.T) {
	doc := `<?xml version="1.0"?>
<JwstProposal xmlns="http://www.stsci.edu/JWST/APT">
  <History>
    <Observation>
      <Label>Stale</Label>
      <Instrument>NIRCAM</Instrument>
    </Observation>
  </History>
  <DataRequests>
    <Observation>
      <Label>Live</Label>
      <Instrument>NIRCAM</Instrument>
    </Observation>
  </DataRequests>
</JwstProposal>`

	prop, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, prop.Observations, 1)
	assert.Equal(t, "Live", prop.Observations[0].Label)
	assert.Equal(t, 0, prop.Exposures.Len())
}

func TestParse_MissingInstrumentFails(t *testing.T) {
	doc := `<?xml version="1.0"?>
<JwstProposal xmlns="http://www.stsci.edu/JWST/APT">
  <DataRequests>
    <Observation>
      <Label>No instrument</Label>
    </Observation>
  </DataRequests>
</JwstProposal>`

	_, err := Parse(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Instrument")
}

func TestParse_MalformedXML(t *testing.T) {
	_, err := Parse(strings.NewReader("<JwstProposal><DataRequests>"))
	require.Error(t, err)
}

func TestExposureTable_Columns(t *testing.T) {
	table := &ExposureTable{}
	table.appendRow("NIRCAM", "F070W", "F277W", "", "1", "1")

	cols := table.Columns()
	for _, name := range []string{"Instrument", "ShortFilter", "LongFilter", "PupilWheel", "TileNumber", "ObservationID"} {
		col, ok := cols[name]
		if !ok {
			t.Errorf("missing column %s", name)
			continue
		}
		if len(col) != table.Len() {
			t.Errorf("column %s has %d entries, want %d", name, len(col), table.Len())
		}
	}
}
