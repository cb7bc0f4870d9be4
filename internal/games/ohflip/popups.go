package ohflip

import (
	"math"

	"github.com/vovakirdan/ohflip/internal/config"
	"github.com/vovakirdan/ohflip/internal/core"
)

// maxPopups bounds the queue; the oldest entry is dropped first.
const maxPopups = 16

// Popup is a short-lived piece of floating text in canvas coordinates.
type Popup struct {
	Pos   core.Vec2
	Text  string
	Color core.Color
	Age   float64
}

// PopupQueue holds live popups in spawn order.
type PopupQueue struct {
	items []Popup
	cfg   config.PopupConfig
}

// NewPopupQueue returns an empty queue.
func NewPopupQueue(cfg config.PopupConfig) PopupQueue {
	return PopupQueue{cfg: cfg}
}

// Spawn adds a popup with age zero.
func (q *PopupQueue) Spawn(pos core.Vec2, text string, c core.Color) {
	if len(q.items) >= maxPopups {
		q.items = append(q.items[:0], q.items[1:]...)
	}
	q.items = append(q.items, Popup{Pos: pos, Text: text, Color: c})
}

// Advance ages every popup and removes the expired ones.
func (q *PopupQueue) Advance(dt float64) {
	kept := q.items[:0]
	for _, p := range q.items {
		p.Age += dt
		if p.Age >= q.cfg.Lifetime {
			continue
		}
		kept = append(kept, p)
	}
	q.items = kept
}

// Items returns a copy of the live popups.
func (q *PopupQueue) Items() []Popup {
	out := make([]Popup, len(q.items))
	copy(out, q.items)
	return out
}

// Len returns the number of live popups.
func (q *PopupQueue) Len() int {
	return len(q.items)
}

// Size returns the popup's text size relative to its resting size. It
// overshoots while growing in.
func (p Popup) Size(cfg config.PopupConfig) float64 {
	pct := 1.0
	if cfg.GrowIn > 0 {
		pct = math.Min(p.Age/cfg.GrowIn, 1)
	}
	return 1 + math.Sin(pct*0.75*math.Pi)*25/30
}

// Offset returns the drift applied to the spawn position, up and to the
// right, in canvas units.
func (p Popup) Offset(cfg config.PopupConfig) core.Vec2 {
	pct := 1.0
	if cfg.Drift > 0 {
		pct = math.Min(p.Age/cfg.Drift, 1)
	}
	k := math.Sin(pct * math.Pi * 0.5)
	return core.Vec2{X: k * 25, Y: -k * 50}
}
