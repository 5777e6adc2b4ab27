// Package texture resolves texture handles held by controls into ebiten
// images. Images load in the background on first use; until then the cache
// hands out a placeholder.
package texture

import (
	"fmt"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Handle names a texture. Controls store handles only; the cache owns the
// images behind them.
type Handle string

// Loader produces the image for a handle.
type Loader func(h Handle) (*ebiten.Image, error)

// FileLoader loads handles as image files relative to root.
func FileLoader(root string) Loader {
	return func(h Handle) (*ebiten.Image, error) {
		path := filepath.Join(root, filepath.FromSlash(string(h)))
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading texture %s failed: %w", path, err)
		}
		return img, nil
	}
}

// Cache maps handles to loaded images.
type Cache struct {
	load   Loader
	logger *log.Logger

	images      map[Handle]*ebiten.Image
	imagesMu    sync.RWMutex
	placeholder *ebiten.Image

	// fetching holds handles with a load in flight, failed those whose load
	// errored so they are not retried every frame.
	fetching   map[Handle]bool
	failed     map[Handle]bool
	fetchingMu sync.Mutex
	wg         sync.WaitGroup
}

// New creates a cache that loads images with load. A nil logger uses the
// package default.
func New(load Loader, logger *log.Logger) *Cache {
	if logger == nil {
		logger = log.Default()
	}
	return &Cache{
		load:     load,
		logger:   logger,
		images:   make(map[Handle]*ebiten.Image),
		fetching: make(map[Handle]bool),
		failed:   make(map[Handle]bool),
	}
}

// SetPlaceholder sets the image returned while a texture is loading or after
// it failed to load. It may be nil.
func (c *Cache) SetPlaceholder(img *ebiten.Image) {
	c.imagesMu.Lock()
	c.placeholder = img
	c.imagesMu.Unlock()
}

// Image returns the image for h, starting a background load the first time
// h is seen. The empty handle always yields nil.
func (c *Cache) Image(h Handle) *ebiten.Image {
	if h == "" {
		return nil
	}

	c.imagesMu.RLock()
	img, found := c.images[h]
	placeholder := c.placeholder
	c.imagesMu.RUnlock()
	if found {
		return img
	}

	c.startLoad(h)
	return placeholder
}

// Preload starts loading every handle without waiting for completion.
func (c *Cache) Preload(handles ...Handle) {
	for _, h := range handles {
		if h == "" {
			continue
		}
		c.imagesMu.RLock()
		_, found := c.images[h]
		c.imagesMu.RUnlock()
		if !found {
			c.startLoad(h)
		}
	}
}

// Wait blocks until every load started so far has finished.
func (c *Cache) Wait() {
	c.wg.Wait()
}

// Len returns the number of loaded images.
func (c *Cache) Len() int {
	c.imagesMu.RLock()
	defer c.imagesMu.RUnlock()
	return len(c.images)
}

func (c *Cache) startLoad(h Handle) {
	c.fetchingMu.Lock()
	defer c.fetchingMu.Unlock()
	if c.fetching[h] || c.failed[h] {
		return
	}
	c.fetching[h] = true
	c.wg.Add(1)
	go c.loadAndCache(h)
}

func (c *Cache) loadAndCache(h Handle) {
	defer c.wg.Done()

	img, err := c.load(h)
	if err == nil && img == nil {
		err = fmt.Errorf("loader returned no image for %q", h)
	}

	if err == nil {
		c.imagesMu.Lock()
		c.images[h] = img
		c.imagesMu.Unlock()
	}

	c.fetchingMu.Lock()
	delete(c.fetching, h)
	if err != nil {
		c.failed[h] = true
	}
	c.fetchingMu.Unlock()

	if err != nil {
		c.logger.Error("texture load failed", "handle", h, "err", err)
		return
	}
	c.logger.Debug("texture loaded", "handle", h)
}
