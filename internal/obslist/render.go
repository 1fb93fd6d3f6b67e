package obslist

import (
	"fmt"
	"strings"
)

const fileHeader = "# Observation list created by obslist. Note: all values\n" +
	"# except filters and observation names are default.\n\n"

// RenderDichroic renders the observation list for the dichroic family.
// Selection, groups and both catalog lists must already have passed
// cardinality validation: entry i of each describes the same observation.
func RenderDichroic(sel *Selection, groups []FilterGroup, swCatalogs, lwCatalogs []string, d Defaults) string {
	var b strings.Builder
	b.WriteString(fileHeader)

	for i := range sel.Nodes {
		writeObservationHeader(&b, sel.Positions[i]+1, sel.Names[i], d)

		swFilters := groups[i].Channels[0]
		lwFilters := groups[i].Channels[1]
		for k := range swFilters {
			fmt.Fprintf(&b, "  FilterConfig%d:\n", k+1)
			b.WriteString("    SW:\n")
			writeChannelFields(&b, "      ", swFilters[k], swCatalogs[i], d, d.BackgroundRateSW)
			b.WriteString("    LW:\n")
			writeChannelFields(&b, "      ", lwFilters[k], lwCatalogs[i], d, d.BackgroundRateLW)
			b.WriteString("\n")
		}
	}

	return b.String()
}

// RenderSingleChannel renders the observation list for the single-channel
// family. The catalog list is already broadcast: one entry per selected
// observation.
func RenderSingleChannel(sel *Selection, groups []FilterGroup, catalogs []string, d Defaults) string {
	var b strings.Builder
	b.WriteString(fileHeader)

	for i := range sel.Nodes {
		writeObservationHeader(&b, sel.Positions[i]+1, sel.Names[i], d)

		for _, filter := range groups[i].Channels[0] {
			writeChannelFields(&b, "  ", filter, catalogs[i], d, d.BackgroundRateSingle)
		}
	}

	return b.String()
}

func writeObservationHeader(b *strings.Builder, number int, name string, d Defaults) {
	fmt.Fprintf(b, "Observation%d:\n", number)
	fmt.Fprintf(b, "  Name: '%s'\n", name)
	fmt.Fprintf(b, "  Date: %s\n", d.Date)
	fmt.Fprintf(b, "  PAV3: %s\n", d.PAV3)
}

func writeChannelFields(b *strings.Builder, indent, filter, catalog string, d Defaults, backgroundRate string) {
	fmt.Fprintf(b, "%sFilter: %s\n", indent, filter)
	fmt.Fprintf(b, "%sPointSourceCatalog: %s\n", indent, catalog)
	fmt.Fprintf(b, "%sGalaxyCatalog: %s\n", indent, d.GalaxyCatalog)
	fmt.Fprintf(b, "%sExtendedCatalog: %s\n", indent, d.ExtendedCatalog)
	fmt.Fprintf(b, "%sExtendedScale: %s\n", indent, d.ExtendedScale)
	fmt.Fprintf(b, "%sExtendedCenter: %s\n", indent, d.ExtendedCenter)
	fmt.Fprintf(b, "%sMovingTargetList: %s\n", indent, d.MovingTargetList)
	fmt.Fprintf(b, "%sMovingTargetSersic: %s\n", indent, d.MovingTargetSersic)
	fmt.Fprintf(b, "%sMovingTargetExtended: %s\n", indent, d.MovingTargetExtended)
	fmt.Fprintf(b, "%sMovingTargetConvolveExtended: %s\n", indent, d.MovingTargetConvolveExtended)
	fmt.Fprintf(b, "%sMovingTargetToTrack: %s\n", indent, d.MovingTargetToTrack)
	fmt.Fprintf(b, "%sBackgroundRate: %s\n", indent, backgroundRate)
}
