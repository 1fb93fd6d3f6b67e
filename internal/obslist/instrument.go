// Package obslist converts an APT proposal into the observation list file
// consumed by the scene simulator: one block per supported observation,
// filters and catalogs filled per instrument family, everything else held
// at defaults.
package obslist

// Instrument codes as they appear in APT proposals.
const (
	NIRCam = "NIRCAM"
	WFSC   = "WFSC"
	NIRISS = "NIRISS"
	FGS    = "FGS"
)

// SupportedInstruments contains every instrument code the converter
// understands; observations for any other instrument are skipped.
var SupportedInstruments = []string{NIRCam, WFSC, NIRISS, FGS}

// IsSupported checks if the given instrument code is supported.
func IsSupported(instrument string) bool {
	for _, supported := range SupportedInstruments {
		if instrument == supported {
			return true
		}
	}
	return false
}

// Family identifies the rendering schema for an instrument.
type Family int

const (
	// Dichroic instruments expose short- and long-wavelength channels
	// simultaneously and take one point-source catalog per channel.
	Dichroic Family = iota

	// SingleChannel instruments expose one filter wheel and take a
	// single catalog per observation.
	SingleChannel
)

// String returns the family name for log messages.
func (f Family) String() string {
	switch f {
	case Dichroic:
		return "dichroic"
	case SingleChannel:
		return "single-channel"
	default:
		return "unknown"
	}
}

// FamilyOf returns the rendering family for a supported instrument code.
// The boolean is false for unsupported instruments.
func FamilyOf(instrument string) (Family, bool) {
	switch instrument {
	case NIRCam, WFSC:
		return Dichroic, true
	case NIRISS, FGS:
		return SingleChannel, true
	default:
		return 0, false
	}
}
