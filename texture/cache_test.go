package texture

import (
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// fakeImages hands out distinct image pointers that are only compared, never
// drawn.
func fakeImages() (Loader, *atomic.Int32) {
	var calls atomic.Int32
	return func(h Handle) (*ebiten.Image, error) {
		calls.Add(1)
		return new(ebiten.Image), nil
	}, &calls
}

func TestCacheEmptyHandle(t *testing.T) {
	load, calls := fakeImages()
	c := New(load, quietLogger())

	if img := c.Image(""); img != nil {
		t.Errorf("Image(\"\") = %p, expected nil", img)
	}
	c.Wait()
	if calls.Load() != 0 {
		t.Errorf("loader called %d times for the empty handle", calls.Load())
	}
}

func TestCachePlaceholderUntilLoaded(t *testing.T) {
	release := make(chan struct{})
	loaded := new(ebiten.Image)
	c := New(func(h Handle) (*ebiten.Image, error) {
		<-release
		return loaded, nil
	}, quietLogger())

	placeholder := new(ebiten.Image)
	c.SetPlaceholder(placeholder)

	if got := c.Image("button.png"); got != placeholder {
		t.Errorf("Image() before load = %p, expected placeholder %p", got, placeholder)
	}

	close(release)
	c.Wait()

	if got := c.Image("button.png"); got != loaded {
		t.Errorf("Image() after load = %p, expected %p", got, loaded)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", c.Len())
	}
}

func TestCacheLoadsOnce(t *testing.T) {
	load, calls := fakeImages()
	c := New(load, quietLogger())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Image("idle.png")
		}()
	}
	wg.Wait()
	c.Wait()

	first := c.Image("idle.png")
	if first == nil {
		t.Fatal("image not cached")
	}
	if second := c.Image("idle.png"); second != first {
		t.Error("cached image changed between calls")
	}
	if calls.Load() != 1 {
		t.Errorf("loader called %d times, expected 1", calls.Load())
	}
}

func TestCacheFailedLoadNotRetried(t *testing.T) {
	var calls atomic.Int32
	c := New(func(h Handle) (*ebiten.Image, error) {
		calls.Add(1)
		return nil, errors.New("missing")
	}, quietLogger())

	for i := 0; i < 5; i++ {
		if img := c.Image("missing.png"); img != nil {
			t.Errorf("Image() = %p, expected nil placeholder", img)
		}
		c.Wait()
	}
	if calls.Load() != 1 {
		t.Errorf("loader called %d times, expected 1", calls.Load())
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", c.Len())
	}
}

func TestCacheNilImageIsFailure(t *testing.T) {
	c := New(func(h Handle) (*ebiten.Image, error) {
		return nil, nil
	}, quietLogger())

	c.Preload("a.png")
	c.Wait()
	if c.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", c.Len())
	}
}

func TestCachePreload(t *testing.T) {
	load, calls := fakeImages()
	c := New(load, quietLogger())

	c.Preload("a.png", "b.png", "", "a.png")
	c.Wait()

	if c.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", c.Len())
	}
	if calls.Load() != 2 {
		t.Errorf("loader called %d times, expected 2", calls.Load())
	}
}
