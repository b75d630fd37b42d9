// Command plate-segment runs the character segmentation pipeline over
// cropped plate images.
//
// It is the offline inspection tool for the pipeline: point it at one or
// more plate crops and it writes per-character canvases, optionally dumps
// every intermediate stage as an overlay image, and prints a result
// summary (human-readable or JSON). With Tesseract available it can also
// read the extracted characters as a stand-in for the production
// classifier.
//
// Usage:
//
//	plate-segment [flags] plate.jpg [plate2.jpg ...]
//
// Exit status is 0 even when nothing is detected on a plate, since an
// empty plate is a legitimate outcome. Non-zero status is reserved for
// invalid input, invalid configuration, and I/O failures.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	plateimaging "github.com/openlpr/plate-segmenter/internal/imaging"
	"github.com/openlpr/plate-segmenter/internal/ocr"
	"github.com/openlpr/plate-segmenter/internal/segment"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// profileFile is the YAML layout of --config: named tuning profiles, each
// a partial override of the built-in defaults.
type profileFile struct {
	Profiles map[string]yaml.Node `yaml:"profiles"`
}

// plateReport is the per-image JSON output shape.
type plateReport struct {
	File       string                  `json:"file"`
	Candidates []segment.RectCandidate `json:"candidates"`
	Stats      segment.Stats           `json:"stats"`
	Inverted   bool                    `json:"inverted"`
	Letters    []string                `json:"letters,omitempty"`
	Text       string                  `json:"text,omitempty"`
}

func main() {
	var (
		configPath  = flag.String("config", "", "YAML file with named tuning profiles")
		profileName = flag.String("profile", "normal", "tuning profile: normal or broad, or a name from -config")
		outDir      = flag.String("out", "", "directory for per-character crop images (omit to skip writing)")
		debugDir    = flag.String("debug-dir", "", "directory for per-stage overlay dumps (omit to disable)")
		runOCR      = flag.Bool("ocr", false, "read extracted characters with Tesseract")
		jsonOut     = flag.Bool("json", false, "print machine-readable JSON results on stdout")
		verbose     = flag.Bool("verbose", false, "enable debug logging")
		version     = flag.Bool("version", false, "print version information")
	)
	flag.Parse()

	if *version {
		fmt.Printf("plate-segment %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *verbose || os.Getenv("LOG_LEVEL") == "debug" {
		log.SetLevel(logrus.DebugLevel)
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: plate-segment [flags] plate.jpg [plate2.jpg ...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := resolveConfig(*configPath, *profileName)
	if err != nil {
		log.WithError(err).Fatal("configuration")
	}
	if *debugDir != "" {
		cfg.DebugDumpDir = *debugDir
	}

	reader := ocr.NewReader()
	loader := plateimaging.NewLoader()

	reports := make([]plateReport, 0, flag.NArg())
	failed := false
	for _, path := range flag.Args() {
		report, err := processPlate(path, cfg, loader, reader, *outDir, *runOCR, log)
		if err != nil {
			log.WithError(err).WithField("file", path).Error("segmentation failed")
			failed = true
			continue
		}
		reports = append(reports, *report)
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			log.WithError(err).Fatal("encoding results")
		}
	}

	if failed {
		os.Exit(1)
	}
}

// resolveConfig builds the segmentation config from the profile name and
// the optional YAML profile file. File profiles override the built-in
// defaults field by field; unknown names fail unless defined in the file.
func resolveConfig(configPath, profileName string) (segment.Config, error) {
	cfg := segment.DefaultConfig()
	if profileName == "broad" {
		cfg = segment.BroadConfig()
	}

	if configPath == "" {
		if profileName != "normal" && profileName != "broad" {
			return cfg, fmt.Errorf("unknown profile %q and no -config file given", profileName)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	var file profileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	node, ok := file.Profiles[profileName]
	if !ok {
		if profileName == "normal" || profileName == "broad" {
			return cfg, nil
		}
		return cfg, fmt.Errorf("profile %q not found in %s", profileName, configPath)
	}
	// Decoding onto the prefilled struct keeps defaults for absent keys.
	if err := node.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode profile %q: %w", profileName, err)
	}
	return cfg, nil
}

// processPlate segments one plate image and writes its artifacts.
func processPlate(path string, cfg segment.Config, loader *plateimaging.Loader, reader *ocr.Reader, outDir string, runOCR bool, log *logrus.Logger) (*plateReport, error) {
	img, err := loader.Load(path)
	if err != nil {
		return nil, err
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	opts := []segment.Option{}
	if cfg.DebugDumpDir != "" {
		opts = append(opts, segment.WithObserver(
			segment.NewDumpObserver(cfg.DebugDumpDir, base, img, log)))
	}

	seg, err := segment.NewSegmenter(cfg, opts...)
	if err != nil {
		return nil, err
	}
	result, err := seg.Segment(img)
	if err != nil {
		return nil, err
	}

	report := &plateReport{
		File:       path,
		Candidates: result.Candidates,
		Stats:      result.Stats,
		Inverted:   result.Inverted,
	}

	if outDir != "" && len(result.Letters) > 0 {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
		for i, letter := range result.Letters {
			cropPath := filepath.Join(outDir, fmt.Sprintf("%s.letter.%d.%d.png", base, i, letter.Candidate.X))
			if err := imaging.Save(letter.Image, cropPath); err != nil {
				return nil, fmt.Errorf("failed to write crop: %w", err)
			}
			report.Letters = append(report.Letters, cropPath)
		}
	}

	if runOCR && len(result.Letters) > 0 {
		crops := make([]image.Image, len(result.Letters))
		for i, letter := range result.Letters {
			crops[i] = letter.Image
		}
		text, err := reader.ReadString(crops)
		if err != nil {
			log.WithError(err).Warn("character read")
		}
		report.Text = text
	}

	log.WithFields(logrus.Fields{
		"file":       path,
		"candidates": len(result.Candidates),
		"letters":    len(result.Letters),
		"inverted":   result.Inverted,
	}).Info("plate segmented")

	return report, nil
}
