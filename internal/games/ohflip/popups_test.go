package ohflip

import (
	"testing"

	"github.com/vovakirdan/ohflip/internal/config"
	"github.com/vovakirdan/ohflip/internal/core"
)

func TestPopupsExpire(t *testing.T) {
	cfg := config.DefaultFlipConfig().Popups
	q := NewPopupQueue(cfg)

	q.Spawn(core.Vec2{X: 1, Y: 2}, "good", core.ColorGreen)
	q.Advance(0.25)
	if q.Len() != 1 {
		t.Fatalf("popup expired early, len = %d", q.Len())
	}

	q.Spawn(core.Vec2{}, "x1", core.ColorMagenta)
	q.Advance(0.25)

	items := q.Items()
	if len(items) != 1 || items[0].Text != "x1" {
		t.Fatalf("items after expiry = %+v", items)
	}

	q.Advance(0.25)
	if q.Len() != 0 {
		t.Errorf("popups remain after lifetime: %d", q.Len())
	}
}

func TestPopupsBounded(t *testing.T) {
	q := NewPopupQueue(config.DefaultFlipConfig().Popups)

	for i := 0; i < 100; i++ {
		q.Spawn(core.Vec2{}, "x", core.ColorWhite)
	}
	if q.Len() > maxPopups {
		t.Errorf("queue grew to %d", q.Len())
	}
}

func TestPopupOffset(t *testing.T) {
	cfg := config.DefaultFlipConfig().Popups

	start := Popup{}.Offset(cfg)
	if start.X != 0 || start.Y != 0 {
		t.Errorf("offset at spawn = %+v", start)
	}

	end := Popup{Age: cfg.Drift}.Offset(cfg)
	if end.X <= 0 || end.Y >= 0 {
		t.Errorf("popup should drift up and right, got %+v", end)
	}
}
