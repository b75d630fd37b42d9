package segment

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/sirupsen/logrus"

	segimaging "github.com/openlpr/plate-segmenter/internal/imaging"
)

// StageObserver receives a callback after every pipeline stage. Observers
// exist for diagnostics only: the pipeline never depends on them, and their
// failures are never propagated.
type StageObserver interface {
	// ObserveStage is called after a stage completes with the stage name
	// and the current candidate set. The slice must not be retained or
	// mutated.
	ObserveStage(stage string, cands []RectCandidate)

	// ObserveRaster is called with derived rasters worth inspecting (the
	// thresholded plate, the letter canvas, the working mask).
	ObserveRaster(stage string, img image.Image)
}

// NopObserver is the default observer; it discards everything.
type NopObserver struct{}

func (NopObserver) ObserveStage(string, []RectCandidate) {}
func (NopObserver) ObserveRaster(string, image.Image)    {}

// DumpObserver writes per-stage diagnostic images to a directory and logs
// candidate counts. Overlay images are named {name}_{stage}.jpg and show
// every candidate's bounding box drawn over the plate in a deterministic
// per-index color, so successive runs produce identical files.
type DumpObserver struct {
	dir   string
	name  string
	plate image.Image
	log   logrus.FieldLogger
}

// NewDumpObserver creates a dump observer writing into dir. name is the
// originating file's base name, used as the filename prefix; plate is the
// original color plate the candidate boxes are drawn over.
func NewDumpObserver(dir, name string, plate image.Image, log logrus.FieldLogger) *DumpObserver {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &DumpObserver{dir: dir, name: name, plate: plate, log: log}
}

// ObserveStage draws the candidate boxes over a copy of the plate and
// writes the overlay. Write failures are logged and swallowed; debug
// output is best-effort.
func (o *DumpObserver) ObserveStage(stage string, cands []RectCandidate) {
	o.log.WithFields(logrus.Fields{
		"stage":      stage,
		"candidates": len(cands),
	}).Debug("stage complete")

	overlay := imaging.Clone(o.plate)
	for i, c := range cands {
		segimaging.DrawRectOutline(overlay, c.Bounds(), overlayColor(i))
	}
	o.write(stage, overlay)
}

// ObserveRaster writes a derived raster as-is.
func (o *DumpObserver) ObserveRaster(stage string, img image.Image) {
	o.write(stage, img)
}

func (o *DumpObserver) write(stage string, img image.Image) {
	if err := os.MkdirAll(o.dir, 0o755); err != nil {
		o.log.WithError(err).Warn("debug dump directory")
		return
	}
	path := filepath.Join(o.dir, fmt.Sprintf("%s_%s.jpg", o.name, stage))
	if err := imaging.Save(img, path); err != nil {
		o.log.WithError(err).WithField("path", path).Warn("debug dump write")
	}
}

// overlayColor returns a deterministic, well-separated color for the i-th
// candidate box. Stepping the hue by a constant keeps neighboring boxes
// visually distinct without any randomness.
func overlayColor(i int) colorful.Color {
	hue := float64((i * 47) % 360)
	return colorful.Hsv(hue, 0.9, 0.9)
}
