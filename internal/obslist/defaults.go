package obslist

import (
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/banshee-data/obslist/internal/fsutil"
)

// Defaults holds the fixed values the renderer fills into every block. The
// renderer carries no embedded literals: callers pass StandardDefaults or a
// file-loaded override. All values are rendered verbatim, so they are kept
// as strings.
type Defaults struct {
	Date                         string
	PAV3                         string
	GalaxyCatalog                string
	ExtendedCatalog              string
	ExtendedScale                string
	ExtendedCenter               string
	MovingTargetList             string
	MovingTargetSersic           string
	MovingTargetExtended         string
	MovingTargetConvolveExtended string
	MovingTargetToTrack          string

	// Background rates: SW/LW for the dichroic family, Single for the
	// single-channel family.
	BackgroundRateSW     string
	BackgroundRateLW     string
	BackgroundRateSingle string
}

// StandardDefaults returns the stock default values.
func StandardDefaults() Defaults {
	return Defaults{
		Date:                         "2019-07-04",
		PAV3:                         "0.",
		GalaxyCatalog:                "None",
		ExtendedCatalog:              "None",
		ExtendedScale:                "1.0",
		ExtendedCenter:               "1024,1024",
		MovingTargetList:             "None",
		MovingTargetSersic:           "None",
		MovingTargetExtended:         "None",
		MovingTargetConvolveExtended: "True",
		MovingTargetToTrack:          "None",
		BackgroundRateSW:             "0.5",
		BackgroundRateLW:             "1.2",
		BackgroundRateSingle:         "0.5",
	}
}

// defaultsOverlay is the file form of Defaults. Fields are pointers so a
// partial file overrides only what it names.
type defaultsOverlay struct {
	Date                         *string `yaml:"date,omitempty"`
	PAV3                         *string `yaml:"pav3,omitempty"`
	GalaxyCatalog                *string `yaml:"galaxy_catalog,omitempty"`
	ExtendedCatalog              *string `yaml:"extended_catalog,omitempty"`
	ExtendedScale                *string `yaml:"extended_scale,omitempty"`
	ExtendedCenter               *string `yaml:"extended_center,omitempty"`
	MovingTargetList             *string `yaml:"moving_target_list,omitempty"`
	MovingTargetSersic           *string `yaml:"moving_target_sersic,omitempty"`
	MovingTargetExtended         *string `yaml:"moving_target_extended,omitempty"`
	MovingTargetConvolveExtended *string `yaml:"moving_target_convolve_extended,omitempty"`
	MovingTargetToTrack          *string `yaml:"moving_target_to_track,omitempty"`
	BackgroundRateSW             *string `yaml:"background_rate_sw,omitempty"`
	BackgroundRateLW             *string `yaml:"background_rate_lw,omitempty"`
	BackgroundRateSingle         *string `yaml:"background_rate,omitempty"`
}

// LoadDefaults reads a partial defaults file and applies it over
// StandardDefaults. Fields omitted from the file retain their stock
// values, so partial files are safe.
func LoadDefaults(fs fsutil.FileSystem, path string) (Defaults, error) {
	d := StandardDefaults()

	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".yaml" && ext != ".yml" {
		return d, fmt.Errorf("defaults file must have .yaml or .yml extension, got %q", ext)
	}

	data, err := fs.ReadFile(cleanPath)
	if err != nil {
		return d, fmt.Errorf("failed to read defaults file: %w", err)
	}

	var overlay defaultsOverlay
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return d, fmt.Errorf("failed to parse defaults file: %w", err)
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&d.Date, overlay.Date)
	apply(&d.PAV3, overlay.PAV3)
	apply(&d.GalaxyCatalog, overlay.GalaxyCatalog)
	apply(&d.ExtendedCatalog, overlay.ExtendedCatalog)
	apply(&d.ExtendedScale, overlay.ExtendedScale)
	apply(&d.ExtendedCenter, overlay.ExtendedCenter)
	apply(&d.MovingTargetList, overlay.MovingTargetList)
	apply(&d.MovingTargetSersic, overlay.MovingTargetSersic)
	apply(&d.MovingTargetExtended, overlay.MovingTargetExtended)
	apply(&d.MovingTargetConvolveExtended, overlay.MovingTargetConvolveExtended)
	apply(&d.MovingTargetToTrack, overlay.MovingTargetToTrack)
	apply(&d.BackgroundRateSW, overlay.BackgroundRateSW)
	apply(&d.BackgroundRateLW, overlay.BackgroundRateLW)
	apply(&d.BackgroundRateSingle, overlay.BackgroundRateSingle)

	return d, nil
}
