package wardrobe

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestLandingShowsPlaceholdersUntilReady(t *testing.T) {
	l := NewLanding(20 * time.Millisecond)
	ready := make(chan struct{})
	l.Mount(func() { close(ready) })
	defer l.Teardown()

	for _, tile := range l.Tiles() {
		if !tile.Placeholder {
			t.Errorf("tile %d: expected placeholder before the delay", tile.Index)
		}
	}

	select {
	case <-ready:
	case <-time.After(2 * time.Second):
		t.Fatal("landing never became ready")
	}

	tiles := l.Tiles()
	if len(tiles) != 3 {
		t.Fatalf("expected 3 tiles, got %d", len(tiles))
	}
	labels := []string{"Clothes", "Footwears", "Accessories"}
	for i, tile := range tiles {
		if tile.Placeholder {
			t.Errorf("tile %d: expected revealed tile", i)
		}
		if tile.Label != labels[i] || tile.Icon == "" {
			t.Errorf("tile %d: unexpected label %q / icon %q", i, tile.Label, tile.Icon)
		}
		if tile.Delay != time.Duration(i)*TileStagger {
			t.Errorf("tile %d: delay = %v, want %v", i, tile.Delay, time.Duration(i)*TileStagger)
		}
	}
}

func TestLandingTeardownBeforeDelay(t *testing.T) {
	l := NewLanding(30 * time.Millisecond)
	var fired atomic.Bool
	l.Mount(func() { fired.Store(true) })
	l.Teardown()

	time.Sleep(80 * time.Millisecond)

	if fired.Load() {
		t.Error("onReady called after teardown")
	}
	if l.Ready() {
		t.Error("landing state changed after teardown")
	}
}

func TestLandingMountAfterTeardownDoesNothing(t *testing.T) {
	l := NewLanding(0)
	l.Teardown()

	var fired atomic.Bool
	l.Mount(func() { fired.Store(true) })
	time.Sleep(20 * time.Millisecond)

	if fired.Load() || l.Ready() {
		t.Error("expected mount after teardown to be ignored")
	}
}

func TestLandingHover(t *testing.T) {
	l := NewLanding(time.Second)

	if l.Hovered() != -1 {
		t.Errorf("expected no hovered tile, got %d", l.Hovered())
	}

	l.Hover(1)
	if l.Hovered() != 1 {
		t.Errorf("expected tile 1 hovered, got %d", l.Hovered())
	}
	tiles := l.Tiles()
	if !tiles[1].Hovered || tiles[0].Hovered || tiles[2].Hovered {
		t.Error("expected only tile 1 to be marked hovered")
	}

	l.Hover(7)
	if l.Hovered() != 1 {
		t.Error("expected out of range hover to be ignored")
	}

	l.Leave()
	if l.Hovered() != -1 {
		t.Errorf("expected hover cleared, got %d", l.Hovered())
	}
}
