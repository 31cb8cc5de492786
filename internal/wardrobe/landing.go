package wardrobe

import (
	"sync"
	"time"

	"github.com/erazemk/garderoba/internal/model"
)

// DefaultLandingDelay is how long the landing screen shows placeholders.
const DefaultLandingDelay = 2 * time.Second

// TileStagger separates the entrance of consecutive tiles.
const TileStagger = 100 * time.Millisecond

// Tile is one category entry of the landing screen.
type Tile struct {
	Index    int
	Category model.Category
	Label    string
	Icon     string

	// Placeholder is set until the landing delay has elapsed.
	Placeholder bool

	// Delay is the tile's entrance delay once revealed.
	Delay time.Duration

	Hovered bool
}

var landingTiles = []Tile{
	{Category: model.CategoryClothes, Label: "Clothes", Icon: "👕"},
	{Category: model.CategoryFootwear, Label: "Footwears", Icon: "👟"},
	{Category: model.CategoryAccessories, Label: "Accessories", Icon: "👜"},
}

// Landing is the category picker shown on entry. It renders placeholders
// until a one-shot timer fires after the configured delay.
//
// Landing models the screen's whole lifecycle (Mount, Teardown, hover) for
// callers that drive it over time. A server-rendered page only needs Tiles
// and Delay and leaves the timer and hover to the browser.
type Landing struct {
	delay time.Duration

	mu      sync.Mutex
	ready   bool
	hovered int

	// lifeMu serializes the timer callback with Teardown.
	lifeMu  sync.Mutex
	timer   *time.Timer
	mounted bool
	torn    bool
}

// NewLanding returns an unmounted landing screen.
func NewLanding(delay time.Duration) *Landing {
	return &Landing{delay: delay, hovered: -1}
}

// Delay returns the placeholder duration.
func (l *Landing) Delay() time.Duration {
	return l.delay
}

// Mount starts the reveal timer. onReady, if non-nil, is called once the
// tiles are revealed. Mounting twice or after Teardown does nothing.
func (l *Landing) Mount(onReady func()) {
	l.lifeMu.Lock()
	defer l.lifeMu.Unlock()

	if l.mounted || l.torn {
		return
	}
	l.mounted = true
	l.timer = time.AfterFunc(l.delay, func() {
		l.lifeMu.Lock()
		defer l.lifeMu.Unlock()
		if l.torn {
			return
		}

		l.mu.Lock()
		l.ready = true
		l.mu.Unlock()

		if onReady != nil {
			onReady()
		}
	})
}

// Teardown stops the reveal timer. Once Teardown returns, the landing
// state no longer changes and onReady is not called.
func (l *Landing) Teardown() {
	l.lifeMu.Lock()
	defer l.lifeMu.Unlock()

	l.torn = true
	if l.timer != nil {
		l.timer.Stop()
	}
}

// Ready reports whether the tiles have been revealed.
func (l *Landing) Ready() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ready
}

// Hover marks tile i as hovered. Out of range indexes are ignored.
func (l *Landing) Hover(i int) {
	if i < 0 || i >= len(landingTiles) {
		return
	}
	l.mu.Lock()
	l.hovered = i
	l.mu.Unlock()
}

// Leave clears the hovered tile.
func (l *Landing) Leave() {
	l.mu.Lock()
	l.hovered = -1
	l.mu.Unlock()
}

// Hovered returns the hovered tile index, or -1.
func (l *Landing) Hovered() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.hovered
}

// Tiles returns the tiles as they should currently be rendered.
func (l *Landing) Tiles() []Tile {
	l.mu.Lock()
	defer l.mu.Unlock()

	tiles := make([]Tile, len(landingTiles))
	for i, t := range landingTiles {
		t.Index = i
		t.Placeholder = !l.ready
		t.Delay = time.Duration(i) * TileStagger
		t.Hovered = l.hovered == i
		tiles[i] = t
	}
	return tiles
}
