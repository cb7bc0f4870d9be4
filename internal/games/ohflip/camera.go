package ohflip

import (
	"math"

	"github.com/vovakirdan/ohflip/internal/config"
)

// Camera zooms out as the player climbs and drifts back in after a while.
// Zoom-out is immediate, zoom-in waits for HoldDelay.
type Camera struct {
	Scale  float64
	Hold   float64 // seconds before recovery starts
	Impact float64 // transient zoom added on perfect landings

	cfg config.CameraConfig
}

// NewCamera returns a camera at its base scale.
func NewCamera(cfg config.CameraConfig) Camera {
	return Camera{Scale: cfg.BaseScale, cfg: cfg}
}

// Advance updates the scale for the current player height.
func (c *Camera) Advance(dt, height float64) {
	desired := c.cfg.FrameHeight / math.Max(height, c.cfg.FrameHeight) * c.cfg.MaxZoom

	if desired < c.Scale {
		c.Hold = c.cfg.HoldDelay
	} else {
		c.Hold = math.Max(c.Hold-dt, 0)
	}

	desired = math.Min(c.Scale, desired)
	c.Scale += (desired - c.Scale) * c.cfg.Blend

	if c.Hold <= 0 {
		c.Scale += (c.cfg.BaseScale - c.Scale) * c.cfg.RecoverBlend
	}

	c.Impact *= c.cfg.ImpactZoomDecay
}

// Kick adds the impact zoom.
func (c *Camera) Kick() {
	c.Impact = c.cfg.ImpactZoom
}

// Presented returns the scale the renderer should use.
func (c Camera) Presented() float64 {
	return c.Scale + c.Impact
}
