// Command obslist converts an APT proposal XML file into the observation
// list file consumed by the scene simulator.
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/banshee-data/obslist/internal/fsutil"
	"github.com/banshee-data/obslist/internal/obslist"
	"github.com/banshee-data/obslist/internal/version"
)

var (
	xmlFile      = flag.String("xml", "", "Path to the APT proposal XML file")
	outFile      = flag.String("out", "", "Path of the observation list file to write")
	catalogs     = flag.String("catalog", "", "Comma-separated point-source catalog paths (NIRISS/FGS; a single path is reused for every observation)")
	swCatalogs   = flag.String("sw-catalog", "", "Comma-separated short-wavelength catalog paths, one per observation (NIRCam/WFSC)")
	lwCatalogs   = flag.String("lw-catalog", "", "Comma-separated long-wavelength catalog paths, one per observation (NIRCam/WFSC)")
	defaultsFile = flag.String("defaults", "", "Optional YAML file overriding built-in default values")
	debugLogs    = flag.Bool("debug", false, "Enable debug logging")
	showVersion  = flag.Bool("version", false, "Print version and exit")
)

// parseCSVStringSlice parses a comma-separated list of paths
func parseCSVStringSlice(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("obslist %s (%s, built %s)\n", version.Version, version.GitSHA, version.BuildTime)
		return
	}

	cfg := zap.NewDevelopmentConfig()
	if !*debugLogs {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to build logger: %v", err))
	}
	defer func() { _ = logger.Sync() }()
	sugar := logger.Sugar().With("run_id", uuid.NewString())

	if *xmlFile == "" {
		sugar.Fatal("proposal XML path is required (-xml)")
	}
	if *outFile == "" {
		sugar.Fatal("output path is required (-out)")
	}

	osfs := fsutil.OSFileSystem{}

	defaults := obslist.StandardDefaults()
	if *defaultsFile != "" {
		defaults, err = obslist.LoadDefaults(osfs, *defaultsFile)
		if err != nil {
			sugar.Fatalf("failed to load defaults: %v", err)
		}
	}

	conv := &obslist.Converter{FS: osfs, Log: sugar}
	result, err := conv.Convert(obslist.Request{
		XMLPath:    *xmlFile,
		OutputPath: *outFile,
		Catalogs:   parseCSVStringSlice(*catalogs),
		SWCatalogs: parseCSVStringSlice(*swCatalogs),
		LWCatalogs: parseCSVStringSlice(*lwCatalogs),
		Defaults:   defaults,
	})
	if err != nil {
		sugar.Fatalf("conversion failed: %v", err)
	}

	sugar.Infof("done: %d observations", result.ObservationsWritten)
}
