package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"
)

// Loader provides thread-safe caching of decoded plate images.
//
// Detector output for a single vehicle often yields several crops of the
// same source frame; caching decoded rasters by path avoids redundant disk
// reads when the CLI processes such batches. Loaded images are validated
// once at decode time, so every image handed to the segmentation pipeline
// has positive dimensions.
//
// Cached images remain in memory until Evict or Clear is called. The
// zero-size cache of a freshly constructed Loader is ready for use and safe
// for concurrent access.
type Loader struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewLoader creates an empty image loader.
func NewLoader() *Loader {
	return &Loader{images: make(map[string]image.Image)}
}

// Load retrieves an image from the cache or decodes it from disk.
//
// Supported formats are PNG, JPEG, and GIF. Images are cached by the exact
// path string provided; relative and absolute paths to the same file are
// separate entries.
func (l *Loader) Load(path string) (image.Image, error) {
	l.mu.RLock()
	if img, ok := l.images[path]; ok {
		l.mu.RUnlock()
		return img, nil
	}
	l.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if img.Bounds().Dx() <= 0 || img.Bounds().Dy() <= 0 {
		return nil, fmt.Errorf("decoded %s image has empty bounds", format)
	}

	l.mu.Lock()
	l.images[path] = img
	l.mu.Unlock()
	return img, nil
}

// Evict removes a single cached image. Evicting an unknown path is a no-op.
func (l *Loader) Evict(path string) {
	l.mu.Lock()
	delete(l.images, path)
	l.mu.Unlock()
}

// Clear removes all cached images.
func (l *Loader) Clear() {
	l.mu.Lock()
	l.images = make(map[string]image.Image)
	l.mu.Unlock()
}

// Len returns the number of cached images.
func (l *Loader) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.images)
}
