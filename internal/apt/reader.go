package apt

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// filterConfig matches one filter configuration element inside an
// observation template. Instrument templates use their own namespaces, so
// fields match on local name only. Dichroic-family templates carry
// ShortFilter/LongFilter; single-channel templates carry PupilWheel.
type filterConfig struct {
	ShortFilter string `xml:"ShortFilter"`
	LongFilter  string `xml:"LongFilter"`
	PupilWheel  string `xml:"PupilWheel"`
	TileNumber  string `xml:"TileNumber"`
}

// Parse reads an APT proposal document and returns the observation node
// list together with the flattened per-exposure table.
func Parse(r io.Reader) (*Proposal, error) {
	dec := xml.NewDecoder(r)
	prop := &Proposal{Exposures: &ExposureTable{}}

	// Observations can sit at any depth below DataRequests (folders and
	// observation groups nest them), so walk tokens rather than decoding
	// a fixed document shape.
	inDataRequests := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse proposal: %w", err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch {
			case el.Name.Space == Namespace && el.Name.Local == "DataRequests":
				inDataRequests++
			case inDataRequests > 0 && el.Name.Space == Namespace && el.Name.Local == "Observation":
				if err := parseObservation(dec, prop); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			if el.Name.Space == Namespace && el.Name.Local == "DataRequests" {
				inDataRequests--
			}
		}
	}

	return prop, nil
}

// parseObservation consumes one Observation element. The decoder is
// positioned just after the observation's start element on entry and just
// after its end element on return.
func parseObservation(dec *xml.Decoder, prop *Proposal) error {
	var (
		instrument string
		label      string
		number     string
		configs    []filterConfig
	)

	depth := 0
	for depth >= 0 {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("parse observation: %w", err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch {
			case el.Name.Space == Namespace && el.Name.Local == "Instrument" && instrument == "":
				if err := decodeText(dec, &el, &instrument); err != nil {
					return err
				}
			case el.Name.Space == Namespace && el.Name.Local == "Label" && label == "":
				if err := decodeText(dec, &el, &label); err != nil {
					return err
				}
			case el.Name.Space == Namespace && el.Name.Local == "Number" && number == "":
				if err := decodeText(dec, &el, &number); err != nil {
					return err
				}
			case el.Name.Local == "FilterConfig":
				var fc filterConfig
				if err := dec.DecodeElement(&fc, &el); err != nil {
					return fmt.Errorf("parse filter config: %w", err)
				}
				configs = append(configs, fc)
			default:
				depth++
			}
		case xml.EndElement:
			depth--
		}
	}

	if instrument == "" {
		return fmt.Errorf("observation %d has no Instrument element", len(prop.Observations)+1)
	}

	prop.Observations = append(prop.Observations, ObservationNode{
		Instrument: instrument,
		Label:      label,
	})

	// The observation id is opaque; APT's Number element when present,
	// otherwise the 1-based ordinal.
	obsID := number
	if obsID == "" {
		obsID = strconv.Itoa(len(prop.Observations))
	}
	for _, fc := range configs {
		tile := fc.TileNumber
		if tile == "" {
			tile = "1"
		}
		prop.Exposures.appendRow(instrument,
			strings.TrimSpace(fc.ShortFilter),
			strings.TrimSpace(fc.LongFilter),
			strings.TrimSpace(fc.PupilWheel),
			tile, obsID)
	}

	return nil
}

// decodeText reads the character data of the element whose start tag was
// just consumed, leaving the decoder past its end tag.
func decodeText(dec *xml.Decoder, start *xml.StartElement, out *string) error {
	var s string
	if err := dec.DecodeElement(&s, start); err != nil {
		return fmt.Errorf("parse %s: %w", start.Name.Local, err)
	}
	*out = strings.TrimSpace(s)
	return nil
}
